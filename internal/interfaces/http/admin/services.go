package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	adminapp "github.com/FatemeGhalandari/ontario-service-finder/internal/admin/application"
	admindomain "github.com/FatemeGhalandari/ontario-service-finder/internal/admin/domain"
	"github.com/FatemeGhalandari/ontario-service-finder/internal/interfaces/http/common"
)

func (h *Handler) serviceCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var req serviceCreateRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		if err := decoder.Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Invalid request body")
			return
		}

		cmd, errs := buildCreateCommand(req)
		if len(errs) > 0 {
			common.WriteValidationErrors(h.logger, w, errs)
			return
		}

		service, err := h.services.Create(ctx, cmd)
		if err != nil {
			h.logger.Printf("service create failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Failed to create service")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, service)
	}
}

func (h *Handler) serviceUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, ok := h.parseServiceID(w, r)
		if !ok {
			return
		}

		var req serviceUpdateRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		if err := decoder.Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Invalid request body")
			return
		}

		cmd, errs := buildUpdateCommand(req)
		if len(errs) > 0 {
			common.WriteValidationErrors(h.logger, w, errs)
			return
		}

		service, err := h.services.Update(ctx, id, cmd)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "Service not found")
				return
			}
			h.logger.Printf("service update failed id=%d err=%v", id, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Failed to update service")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, service)
	}
}

func (h *Handler) serviceDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, ok := h.parseServiceID(w, r)
		if !ok {
			return
		}

		if err := h.services.Delete(ctx, id); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "Service not found")
				return
			}
			h.logger.Printf("service delete failed id=%d err=%v", id, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Failed to delete service")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) parseServiceID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idParam := strings.TrimSpace(chi.URLParam(r, "id"))
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		common.WriteError(h.logger, w, http.StatusBadRequest, "Invalid service id")
		return 0, false
	}
	return id, true
}

// buildCreateCommand validates the whole payload and reports every failure
// at once rather than stopping at the first.
func buildCreateCommand(req serviceCreateRequest) (adminapp.CreateServiceCommand, admindomain.ValidationErrors) {
	var errs admindomain.ValidationErrors
	cmd := adminapp.CreateServiceCommand{
		Name:    strings.TrimSpace(req.Name),
		Address: strings.TrimSpace(req.Address),
		City:    strings.TrimSpace(req.City),
	}

	if err := admindomain.ValidateName(cmd.Name); err != nil {
		errs = append(errs, *err)
	}
	if err := admindomain.ValidateAddress(cmd.Address); err != nil {
		errs = append(errs, *err)
	}
	if err := admindomain.ValidateCity(cmd.City); err != nil {
		errs = append(errs, *err)
	}

	cmd.Category = normalizeOptional("category", req.Category, admindomain.NormalizeCategory, &errs)
	cmd.Phone = normalizeOptional("phone", req.Phone, admindomain.NormalizePhone, &errs)
	cmd.Website = normalizeOptional("website", req.Website, admindomain.NormalizeWebsite, &errs)
	cmd.PostalCode = normalizeOptional("postalCode", req.PostalCode, admindomain.NormalizePostalCode, &errs)
	cmd.Latitude = normalizeCoordinate("latitude", req.Latitude, admindomain.ValidateLatitude, &errs)
	cmd.Longitude = normalizeCoordinate("longitude", req.Longitude, admindomain.ValidateLongitude, &errs)

	return cmd, errs
}

// buildUpdateCommand carries over only the fields whose key was present in
// the payload. An explicit null on a required column is rejected; on an
// optional one it clears the stored value.
func buildUpdateCommand(req serviceUpdateRequest) (adminapp.UpdateServiceCommand, admindomain.ValidationErrors) {
	var errs admindomain.ValidationErrors
	var cmd adminapp.UpdateServiceCommand

	cmd.Name = requiredUpdate("name", req.Name, admindomain.ValidateName, &errs)
	cmd.Address = requiredUpdate("address", req.Address, admindomain.ValidateAddress, &errs)
	cmd.City = requiredUpdate("city", req.City, admindomain.ValidateCity, &errs)

	cmd.Category = optionalUpdate("category", req.Category, admindomain.NormalizeCategory, &errs)
	cmd.Phone = optionalUpdate("phone", req.Phone, admindomain.NormalizePhone, &errs)
	cmd.Website = optionalUpdate("website", req.Website, admindomain.NormalizeWebsite, &errs)
	cmd.PostalCode = optionalUpdate("postalCode", req.PostalCode, admindomain.NormalizePostalCode, &errs)
	cmd.Latitude = coordinateUpdate("latitude", req.Latitude, admindomain.ValidateLatitude, &errs)
	cmd.Longitude = coordinateUpdate("longitude", req.Longitude, admindomain.ValidateLongitude, &errs)

	return cmd, errs
}

func normalizeOptional(path string, field optionalString, normalize func(*string) (*string, *admindomain.FieldError), errs *admindomain.ValidationErrors) *string {
	if field.invalid {
		*errs = append(*errs, admindomain.NotAStringError(path))
		return nil
	}
	value, err := normalize(field.value)
	if err != nil {
		*errs = append(*errs, *err)
		return nil
	}
	return value
}

func normalizeCoordinate(path string, field coordinateField, validate func(*float64) *admindomain.FieldError, errs *admindomain.ValidationErrors) *float64 {
	if field.invalid {
		*errs = append(*errs, admindomain.NotANumberError(path))
		return nil
	}
	if !field.set || field.null {
		return nil
	}
	value := field.value
	if err := validate(&value); err != nil {
		*errs = append(*errs, *err)
		return nil
	}
	return &value
}

func requiredUpdate(path string, field optionalString, validate func(string) *admindomain.FieldError, errs *admindomain.ValidationErrors) adminapp.FieldUpdate {
	if !field.set {
		return adminapp.FieldUpdate{}
	}
	if field.invalid {
		*errs = append(*errs, admindomain.NotAStringError(path))
		return adminapp.FieldUpdate{}
	}
	if field.value == nil {
		*errs = append(*errs, admindomain.NullRequiredError(path))
		return adminapp.FieldUpdate{}
	}
	trimmed := strings.TrimSpace(*field.value)
	if err := validate(trimmed); err != nil {
		*errs = append(*errs, *err)
		return adminapp.FieldUpdate{}
	}
	return adminapp.FieldUpdate{Set: true, Value: &trimmed}
}

func optionalUpdate(path string, field optionalString, normalize func(*string) (*string, *admindomain.FieldError), errs *admindomain.ValidationErrors) adminapp.FieldUpdate {
	if !field.set {
		return adminapp.FieldUpdate{}
	}
	if field.invalid {
		*errs = append(*errs, admindomain.NotAStringError(path))
		return adminapp.FieldUpdate{}
	}
	value, err := normalize(field.value)
	if err != nil {
		*errs = append(*errs, *err)
		return adminapp.FieldUpdate{}
	}
	return adminapp.FieldUpdate{Set: true, Value: value}
}

func coordinateUpdate(path string, field coordinateField, validate func(*float64) *admindomain.FieldError, errs *admindomain.ValidationErrors) adminapp.CoordinateUpdate {
	if !field.set {
		return adminapp.CoordinateUpdate{}
	}
	if field.invalid {
		*errs = append(*errs, admindomain.NotANumberError(path))
		return adminapp.CoordinateUpdate{}
	}
	if field.null {
		return adminapp.CoordinateUpdate{Set: true}
	}
	value := field.value
	if err := validate(&value); err != nil {
		*errs = append(*errs, *err)
		return adminapp.CoordinateUpdate{}
	}
	return adminapp.CoordinateUpdate{Set: true, Value: &value}
}
