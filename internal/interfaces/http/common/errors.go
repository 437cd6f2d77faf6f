package common

import (
	"log"
	"net/http"

	admindomain "github.com/FatemeGhalandari/ontario-service-finder/internal/admin/domain"
)

// ValidationErrorResponse is the 400 payload for rejected write requests.
// Details list every offending field, not just the first one found.
type ValidationErrorResponse struct {
	Error   string                   `json:"error"`
	Details []admindomain.FieldError `json:"details"`
}

// WriteValidationErrors writes the standard validation failure payload.
func WriteValidationErrors(logger *log.Logger, w http.ResponseWriter, errs admindomain.ValidationErrors) {
	WriteJSON(logger, w, http.StatusBadRequest, ValidationErrorResponse{
		Error:   "Validation failed",
		Details: errs,
	})
}
