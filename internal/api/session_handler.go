package api

import (
	"errors"
	"net/http"

	"github.com/notemaster/backend/internal/domain/note"
	"github.com/notemaster/backend/internal/service"
	"github.com/notemaster/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateQuizSessionRequest struct {
	NoteTitle string `json:"note_title"`
}

func (r *CreateQuizSessionRequest) Validate() error {
	return note.ValidateTitle(r.NoteTitle)
}

type SubmitQuizAnswerRequest struct {
	Index  int    `json:"index"`
	Answer string `json:"answer"`
}

type QuizSessionResponse struct {
	ID        string             `json:"id"`
	NoteTitle string             `json:"note_title"`
	State     string             `json:"state"`
	Questions []QuestionResponse `json:"questions"`
}

func toSessionResponse(session *service.QuizSession) QuizSessionResponse {
	return QuizSessionResponse{
		ID:        session.ID,
		NoteTitle: session.NoteTitle,
		State:     string(session.State),
		Questions: toQuestionResponses(session.Questions),
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /quiz/sessions
func (h *Handler) createQuizSession(w http.ResponseWriter, r *http.Request) {
	var req CreateQuizSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.quiz.Start(r.Context(), req.NoteTitle)
	if h.handleStoreError(w, err, "note") {
		return
	}

	respondJSON(w, http.StatusCreated, toSessionResponse(session))
}

// GET /quiz/sessions/{sessionID}
func (h *Handler) getQuizSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.quiz.Get(r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusOK, toSessionResponse(session))
}

// POST /quiz/sessions/{sessionID}/generate
func (h *Handler) generateQuizQuestions(w http.ResponseWriter, r *http.Request) {
	session, err := h.quiz.Generate(r.Context(), r.PathValue("sessionID"))
	if errors.Is(err, service.ErrNoSession) {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "note not found")
		return
	}
	if err != nil {
		// Generation failures leave the session and stored questions as
		// they were; the caller just hears that the model let them down.
		respondError(w, http.StatusBadGateway, "question generation failed")
		return
	}

	respondJSON(w, http.StatusOK, toSessionResponse(session))
}

// POST /quiz/sessions/{sessionID}/answers
func (h *Handler) submitQuizAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	var req SubmitQuizAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.quiz.SubmitAnswer(sessionID, req.Index, req.Answer)
	if errors.Is(err, service.ErrNoSession) {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// POST /quiz/sessions/{sessionID}/grade
func (h *Handler) gradeQuizSession(w http.ResponseWriter, r *http.Request) {
	report, err := h.quiz.Grade(r.Context(), r.PathValue("sessionID"))
	if errors.Is(err, service.ErrNoSession) {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// POST /quiz/sessions/{sessionID}/retry
func (h *Handler) retryQuizSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.quiz.Retry(r.PathValue("sessionID"))
	if errors.Is(err, service.ErrNoSession) {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, toSessionResponse(session))
}

// DELETE /quiz/sessions/{sessionID}/questions
func (h *Handler) clearQuizQuestions(w http.ResponseWriter, r *http.Request) {
	session, err := h.quiz.ClearQuestions(r.Context(), r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusOK, toSessionResponse(session))
}
