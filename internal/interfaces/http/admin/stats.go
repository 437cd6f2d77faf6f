package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/FatemeGhalandari/ontario-service-finder/internal/interfaces/http/common"
)

func (h *Handler) statsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		overview, err := h.stats.Overview(ctx)
		if err != nil {
			h.logger.Printf("stats overview failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Failed to fetch stats")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, statsResponse{
			TotalServices: overview.TotalServices,
			ByCity:        overview.ByCity,
			ByCategory:    overview.ByCategory,
		})
	}
}
