package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	adminapp "github.com/FatemeGhalandari/ontario-service-finder/internal/admin/application"
	"github.com/FatemeGhalandari/ontario-service-finder/internal/auth"
	"github.com/FatemeGhalandari/ontario-service-finder/internal/config"
	mongodoc "github.com/FatemeGhalandari/ontario-service-finder/internal/infrastructure/mongo"
	adminhttp "github.com/FatemeGhalandari/ontario-service-finder/internal/interfaces/http/admin"
	commonhttp "github.com/FatemeGhalandari/ontario-service-finder/internal/interfaces/http/common"
	publichttp "github.com/FatemeGhalandari/ontario-service-finder/internal/interfaces/http/public"
	publicapp "github.com/FatemeGhalandari/ontario-service-finder/internal/public/application"
)

// Server は HTTP サーバーのライフサイクルを管理し、Public/Admin の各ハンドラへ依存注入するコンポジションルート。
// DDD の Interface 層に相当し、アプリケーションサービスをルータへ接続する責務を担う。
type Server struct {
	logger         *log.Logger
	client         *mongo.Client
	database       *mongo.Database
	queryService   publicapp.ServiceQueryService
	adminService   adminapp.ServiceService
	statsService   adminapp.StatsService
	tokens         *auth.TokenManager
	credentials    auth.CredentialVerifier
	addr           string
	allowedOrigins []string
}

// Run はHTTPサーバーを起動し、Public/Adminのルーティングやミドルウェアを組み立てる。
// インフラ初期化に限定し、ドメインロジックをここに書かないことで層の責務を守る。
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/", s.bannerHandler())
	router.Get("/api/health", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:      s.logger,
		Queries:     s.queryService,
		Tokens:      s.tokens,
		Credentials: s.credentials,
	})
	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:   s.logger,
		Services: s.adminService,
		Stats:    s.statsService,
	})
	router.Route("/api", func(r chi.Router) {
		publicHandler.Register(r)
		adminHandler.Register(r, s.authMiddleware, s.requireAdmin)
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP server listening on %s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// withCORS は許可されたオリジン情報をもとに CORS ヘッダーを付与するミドルウェアを返す。
// Any localhost origin is allowed regardless of port so local frontends can
// talk to the API without extra configuration.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// originAllowed は指定された Origin が許可リストに含まれるか判定する。
func originAllowed(origin string, allowed map[string]struct{}) bool {
	if strings.HasPrefix(origin, "http://localhost:") || origin == "http://localhost" {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// bannerHandler answers the root path so load balancers and humans get a
// quick liveness signal without touching the store.
func (s *Server) bannerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Backend is running")); err != nil {
			s.logger.Printf("banner write failed: %v", err)
		}
	}
}

// healthHandler は MongoDB への疎通確認を行い、監視系からのヘルスチェック要求に応える。
// ドメインの状態ではなくインフラ状態のみを返す設計。
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			commonhttp.WriteJSON(s.logger, w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		commonhttp.WriteJSON(s.logger, w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// authMiddleware は Authorization ヘッダーから JWT を検証し、認証済みユーザーをコンテキストへ詰める。
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		const bearerPrefix = "Bearer "
		if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "Missing or invalid Authorization header")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "Missing or invalid Authorization header")
			return
		}

		claims, err := s.tokens.Verify(tokenString)
		if err != nil {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		user := commonhttp.AuthenticatedUser{
			Email: claims.Subject,
			Role:  claims.Role,
		}

		ctx := commonhttp.ContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin rejects authenticated callers that do not carry the admin
// role. It assumes authMiddleware already ran.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := commonhttp.UserFromContext(r.Context())
		if !ok || user.Role != auth.RoleAdmin {
			commonhttp.WriteError(s.logger, w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// shutdown は MongoDB クライアントをタイムアウト付きで切断し、プロセス終了時のリソースリークを防ぐ。
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Printf("error while disconnecting MongoDB: %v", err)
	}
}

// waitForShutdown は ListenAndServe の終了と OS シグナルを監視し、graceful shutdown を実現する。
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("server exited abnormally: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("received signal %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("error during server shutdown: %v", err)
		}
	}

	srv.shutdown(context.Background())
}

// New は Config と Mongo クライアントを受け取り、アプリケーションサービスとハンドラを組み立てた Server を返す。
// 依存解決の起点となるファクトリとして機能する。
func New(cfg config.Config, client *mongo.Client) *Server {
	srv := &Server{
		logger:         cfg.ServerLog,
		client:         client,
		database:       client.Database(cfg.MongoDatabase),
		tokens:         auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL),
		credentials:    selectCredentials(cfg),
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
	}

	serviceRepo := mongodoc.NewServiceRepository(srv.database, cfg.ServiceCollection)
	srv.queryService = publicapp.NewServiceQueryService(serviceRepo)
	adminServiceRepo := mongodoc.NewAdminServiceRepository(srv.database, cfg.ServiceCollection, cfg.CounterCollection)
	srv.adminService = adminapp.NewServiceService(adminServiceRepo)
	statsRepo := mongodoc.NewStatsRepository(srv.database, cfg.ServiceCollection)
	srv.statsService = adminapp.NewStatsService(statsRepo)

	return srv
}

// selectCredentials prefers the bcrypt hash when both forms are configured.
func selectCredentials(cfg config.Config) auth.CredentialVerifier {
	if cfg.AdminPasswordHash != "" {
		return auth.BcryptCredentials{Email: cfg.AdminEmail, PasswordHash: cfg.AdminPasswordHash}
	}
	return auth.EnvCredentials{Email: cfg.AdminEmail, Password: cfg.AdminPassword}
}
