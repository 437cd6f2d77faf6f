package admin

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/FatemeGhalandari/ontario-service-finder/internal/admin/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger   *log.Logger
	services adminapp.ServiceService
	stats    adminapp.StatsService
}

// Config provides dependencies for Handler.
type Config struct {
	Logger   *log.Logger
	Services adminapp.ServiceService
	Stats    adminapp.StatsService
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:   cfg.Logger,
		services: cfg.Services,
		stats:    cfg.Stats,
	}
}

// Register mounts the protected routes onto the router. Every route passes
// through token authentication and the admin role check.
func (h *Handler) Register(r chi.Router, authMiddleware, requireAdmin func(http.Handler) http.Handler) {
	r.With(authMiddleware, requireAdmin).Post("/services", h.serviceCreateHandler())
	r.With(authMiddleware, requireAdmin).Put("/services/{id}", h.serviceUpdateHandler())
	r.With(authMiddleware, requireAdmin).Delete("/services/{id}", h.serviceDeleteHandler())
	r.With(authMiddleware, requireAdmin).Get("/admin/stats", h.statsHandler())
}
