package public

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/FatemeGhalandari/ontario-service-finder/internal/auth"
	"github.com/FatemeGhalandari/ontario-service-finder/internal/interfaces/http/common"
)

// loginHandler exchanges the admin credentials for a signed session token.
// Wrong email and wrong password are indistinguishable in the response.
func (h *Handler) loginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		if err := decoder.Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Email and password are required")
			return
		}

		email := strings.TrimSpace(req.Email)
		if email == "" || req.Password == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Email and password are required")
			return
		}

		if !h.credentials.Configured() || !h.tokens.Configured() {
			h.logger.Printf("login rejected: admin credentials or JWT secret not configured")
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Auth not configured on server")
			return
		}

		if !h.credentials.Verify(email, req.Password) {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		token, err := h.tokens.Mint(email, auth.RoleAdmin, time.Now())
		if err != nil {
			h.logger.Printf("token mint failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Failed to issue token")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, loginResponse{Token: token})
	}
}
