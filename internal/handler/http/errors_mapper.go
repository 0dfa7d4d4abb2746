package http

import (
	"errors"
	"net/http"

	"stockroom/internal/logger"
	"stockroom/internal/service"
	"stockroom/internal/utils"
)

// renderError writes the failure body the API has always used: every field
// violation under its own key, plus "error": true. Business failures are
// answered with HTTP 200; only the body distinguishes them from success.
// Anything that is neither a validation nor a field error is a storage-level
// failure and is passed through under the "storage" key.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	body := map[string]any{"error": true}

	var validationErr *service.ValidationError
	var fieldErr *service.FieldError
	switch {
	case errors.As(err, &validationErr):
		for field, message := range validationErr.Fields {
			body[field] = message
		}
	case errors.As(err, &fieldErr):
		body[fieldErr.Field] = fieldErr.Message
	default:
		log.Err(err).Msg("request failed on storage")
		body["storage"] = err.Error()
	}

	utils.WriteJSON(w, body, http.StatusOK)
}
