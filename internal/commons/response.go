package commons

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"bancada/internal/dto"
	apperrors "bancada/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Responder writes JSON bodies and maps domain errors to HTTP statuses.
type Responder struct {
	logger *zap.Logger
}

func NewResponder(logger *zap.Logger) *Responder {
	return &Responder{logger: logger}
}

func (r *Responder) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		r.logger.Error("failed to encode response", zap.Error(apperrors.NewInternalError("encoding json", err)))
	}
}

func (r *Responder) Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		r.logger.Error("failed to write response", zap.Error(err))
	}
}

func (r *Responder) ValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	r.write(w, uuid.New().String(), http.StatusBadRequest, "VALIDATION_ERROR", message, details)
}

// Error maps err onto a response: validation 400, not found 404, anything
// else 500 with a generic message.
func (r *Responder) Error(w http.ResponseWriter, err error) {
	traceID := uuid.New().String()

	if ve, ok := apperrors.IsValidationError(err); ok {
		r.write(w, traceID, http.StatusBadRequest, "VALIDATION_ERROR", ve.Message, ve.Details)
		return
	}

	if nf, ok := apperrors.IsNotFoundError(err); ok {
		r.write(w, traceID, http.StatusNotFound, "NOT_FOUND", nf.Message, nil)
		return
	}

	r.logger.Error("unexpected error", zap.String("traceId", traceID), zap.Error(err))
	r.write(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred", nil)
}

func (r *Responder) write(w http.ResponseWriter, traceID string, status int, code, message string, details []apperrors.ValidationDetail) {
	r.JSON(w, status, dto.ErrorResponse{
		TraceID:   traceID,
		Status:    status,
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

// DecodeJSON reads the request body into v, answering 400 itself on failure.
func (r *Responder) DecodeJSON(w http.ResponseWriter, req *http.Request, v interface{}) bool {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		r.logger.Warn("invalid JSON body", zap.Error(err))
		r.ValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return false
	}
	return true
}

// IDParam reads a positive integer path parameter, answering 400 itself when
// it is missing or malformed.
func (r *Responder) IDParam(w http.ResponseWriter, req *http.Request, name string) (int, bool) {
	raw := chi.URLParam(req, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		r.ValidationError(w, "invalid "+name, apperrors.ValidationDetail{
			Field:   name,
			Message: name + " must be a positive integer",
		})
		return 0, false
	}
	return id, true
}
