package public

import (
	"log"

	"github.com/go-chi/chi/v5"

	"github.com/FatemeGhalandari/ontario-service-finder/internal/auth"
	publicapp "github.com/FatemeGhalandari/ontario-service-finder/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger      *log.Logger
	queries     publicapp.ServiceQueryService
	tokens      *auth.TokenManager
	credentials auth.CredentialVerifier
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger      *log.Logger
	Queries     publicapp.ServiceQueryService
	Tokens      *auth.TokenManager
	Credentials auth.CredentialVerifier
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:      cfg.Logger,
		queries:     cfg.Queries,
		tokens:      cfg.Tokens,
		credentials: cfg.Credentials,
	}
}

// Register mounts all public routes onto the router. The export route must
// precede the id route so "export" is never parsed as an identifier.
func (h *Handler) Register(r chi.Router) {
	r.Get("/services", h.serviceListHandler())
	r.Get("/services/export", h.serviceExportHandler())
	r.Get("/services/{id}", h.serviceDetailHandler())
	r.Post("/auth/login", h.loginHandler())
}
