package api

import (
	"encoding/json"
	"github.com/go-playground/validator/v10"
	"github.com/maxaizer/recruit-dashboard/internal/logger"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeHttp).Errorf("failed to encode response: %v", err)
	}
}

// writeFound writes 404 for a nil entity and 200 otherwise.
func writeFound[T any](w http.ResponseWriter, entity *T) {
	if entity == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, entity)
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validationErrs.Error()})
		return
	}

	log.WithField(logger.ErrorTypeField, logger.ErrorTypeHttp).
		Errorf("%s %s failed: %v", r.Method, r.URL.Path, err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}
