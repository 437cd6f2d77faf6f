package public

import (
	"context"
	"net/http"
	"time"

	"github.com/FatemeGhalandari/ontario-service-finder/internal/interfaces/http/common"
	publicapp "github.com/FatemeGhalandari/ontario-service-finder/internal/public/application"
)

// serviceExportHandler streams the filtered result set as CSV. The export is
// never paginated, so it gets a longer deadline than the list endpoint.
func (h *Handler) serviceExportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter := publicapp.NewServiceFilter(query.Get("q"), query.Get("city"), query.Get("category"))
		sort := publicapp.ResolveSort(query.Get("sortBy"), query.Get("sortDirection"))

		services, err := h.queries.Export(ctx, filter, sort)
		if err != nil {
			h.logger.Printf("service export failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Failed to export services")
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="services.csv"`)
		w.WriteHeader(http.StatusOK)
		if err := publicapp.WriteServicesCSV(w, services); err != nil {
			// Headers are already out; all we can do is log.
			h.logger.Printf("service CSV write failed: %v", err)
		}
	}
}
