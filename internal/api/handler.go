package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/notemaster/backend/internal/domain/note"
	"github.com/notemaster/backend/internal/service"
	"github.com/notemaster/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store  *store.Store
	quiz   *service.QuizCoordinator
	logger *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(s *store.Store, quiz *service.QuizCoordinator, logger *slog.Logger) *Handler {
	return &Handler{
		store:  s,
		quiz:   quiz,
		logger: logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes the request body into v. On failure it writes a 400
// and returns false (caller should return).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// validator is implemented by request types that can check themselves.
type validator interface {
	Validate() error
}

// decodeAndValidate decodes the request body and runs its Validate method.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleStoreError checks for common store and domain errors and writes the
// appropriate HTTP response. Returns true if an error was handled (caller
// should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, service.ErrNoSession):
		respondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, note.ErrEmptyTitle), errors.Is(err, note.ErrInvalidTitle):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("store error", "error", err, "entity", entity)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
