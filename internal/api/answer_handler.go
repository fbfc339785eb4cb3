package api

import (
	"errors"
	"net/http"

	"github.com/notemaster/backend/internal/domain/stats"
)

// ── Request / Response types ────────────────────────────────────────────────

type ScoreAnswerRequest struct {
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expected_answer"`
	UserAnswer     string `json:"user_answer"`
}

func (r *ScoreAnswerRequest) Validate() error {
	if r.Question == "" {
		return errors.New("question is required")
	}
	return nil
}

type ScoreAnswerResponse struct {
	Score int `json:"score"`
}

type AppendAttemptRequest struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Score         int    `json:"score"`
}

func (r *AppendAttemptRequest) Validate() error {
	if r.Question == "" {
		return errors.New("question is required")
	}
	return nil
}

type AttemptResponse struct {
	Timestamp     string `json:"timestamp"`
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Score         int    `json:"score"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /answers/score
//
// Scoring never hard-fails: an unreachable or incoherent model degrades to
// score 0 rather than an error response.
func (h *Handler) scoreAnswer(w http.ResponseWriter, r *http.Request) {
	var req ScoreAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	score := h.quiz.Score(r.Context(), req.Question, req.ExpectedAnswer, req.UserAnswer)
	respondJSON(w, http.StatusOK, ScoreAnswerResponse{Score: score})
}

// POST /notes/{title}/attempts
func (h *Handler) appendAttempt(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")

	var req AppendAttemptRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	attempt := stats.NewAttempt(req.Question, req.UserAnswer, req.CorrectAnswer, req.Score)
	if h.handleStoreError(w, h.store.Scores.Append(title, attempt), "attempt") {
		return
	}

	respondJSON(w, http.StatusCreated, AttemptResponse(attempt))
}
