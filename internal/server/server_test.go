package server

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/FatemeGhalandari/ontario-service-finder/internal/auth"
	commonhttp "github.com/FatemeGhalandari/ontario-service-finder/internal/interfaces/http/common"
)

func testServer() *Server {
	return &Server{
		logger: log.New(io.Discard, "", 0),
		tokens: auth.NewTokenManager("test-secret", "test-issuer", time.Hour),
	}
}

func okHandler(t *testing.T, sawUser *commonhttp.AuthenticatedUser) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sawUser != nil {
			user, ok := commonhttp.UserFromContext(r.Context())
			require.True(t, ok)
			*sawUser = user
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	srv := testServer()
	token, err := srv.tokens.Mint("admin@example.com", auth.RoleAdmin, time.Now())
	require.NoError(t, err)

	var user commonhttp.AuthenticatedUser
	handler := srv.authMiddleware(okHandler(t, &user))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "admin@example.com", user.Email)
	require.Equal(t, auth.RoleAdmin, user.Role)
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	srv := testServer()
	handler := srv.authMiddleware(okHandler(t, nil))

	for _, header := range []string{"", "Basic dXNlcg==", "Bearer ", "token-without-scheme"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, "header: %q", header)
		require.Contains(t, rec.Body.String(), "Missing or invalid Authorization header")
	}
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	srv := testServer()
	handler := srv.authMiddleware(okHandler(t, nil))

	otherManager := auth.NewTokenManager("other-secret", "test-issuer", time.Hour)
	forged, err := otherManager.Mint("admin@example.com", auth.RoleAdmin, time.Now())
	require.NoError(t, err)

	expired, err := srv.tokens.Mint("admin@example.com", auth.RoleAdmin, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	for _, token := range []string{"garbage", forged, expired} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid or expired token")
	}
}

func TestRequireAdmin(t *testing.T) {
	srv := testServer()
	handler := srv.requireAdmin(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := commonhttp.ContextWithUser(req.Context(), commonhttp.AuthenticatedUser{Email: "a@b.c", Role: auth.RoleAdmin})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx = commonhttp.ContextWithUser(req.Context(), commonhttp.AuthenticatedUser{Email: "a@b.c", Role: "viewer"})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "Admin access required")

	// no user in context at all
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestWithCORS(t *testing.T) {
	middleware := withCORS([]string{"https://service-finder.example.com"})
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		origin     string
		wantHeader string
	}{
		{"configured origin allowed", "https://service-finder.example.com", "https://service-finder.example.com"},
		{"any localhost port allowed", "http://localhost:5173", "http://localhost:5173"},
		{"bare localhost allowed", "http://localhost", "http://localhost"},
		{"unknown origin gets no header", "https://evil.example.com", ""},
		{"no origin header", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, tt.wantHeader, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestWithCORSPreflight(t *testing.T) {
	middleware := withCORS(nil)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("preflight must not reach the next handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/services", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PUT")
}
