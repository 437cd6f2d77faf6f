package public

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/FatemeGhalandari/ontario-service-finder/internal/interfaces/http/common"
	publicapp "github.com/FatemeGhalandari/ontario-service-finder/internal/public/application"
)

func (h *Handler) serviceListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter := publicapp.NewServiceFilter(query.Get("q"), query.Get("city"), query.Get("category"))
		sort := publicapp.ResolveSort(query.Get("sortBy"), query.Get("sortDirection"))
		paging := publicapp.NewPaging(
			common.ParseIntOrDefault(query.Get("page"), 1),
			common.ParseIntOrDefault(query.Get("pageSize"), 10),
		)

		result, err := h.queries.List(ctx, filter, sort, paging)
		if err != nil {
			h.logger.Printf("service list fetch failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Failed to fetch services")
			return
		}

		data := result.Items
		if data == nil {
			data = []serviceResponse{}
		}
		common.WriteJSON(h.logger, w, http.StatusOK, serviceListResponse{
			Data:       data,
			Total:      result.Meta.Total,
			Page:       result.Meta.Page,
			PageSize:   result.Meta.PageSize,
			TotalPages: result.Meta.TotalPages,
		})
	}
}

func (h *Handler) serviceDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		id, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Invalid service id")
			return
		}

		service, err := h.queries.Detail(ctx, id)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "Service not found")
				return
			}
			h.logger.Printf("service detail fetch failed id=%d err=%v", id, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Failed to fetch service")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, service)
	}
}
