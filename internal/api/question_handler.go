package api

import (
	"net/http"

	"github.com/notemaster/backend/internal/domain/question"
)

// ── Request / Response types ────────────────────────────────────────────────

type GenerateQuestionsRequest struct {
	// Content optionally overrides the stored note content as generation
	// input. When empty the note is loaded from the store.
	Content string `json:"content,omitempty"`
}

type QuestionResponse struct {
	Text           string `json:"text"`
	ExpectedAnswer string `json:"expected_answer"`
}

func toQuestionResponses(questions []question.Question) []QuestionResponse {
	response := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		response[i] = QuestionResponse{Text: q.Text, ExpectedAnswer: q.ExpectedAnswer}
	}
	return response
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /notes/{title}/questions
//
// A note with no question file answers with an empty list; "no questions
// yet" and "cleared" are indistinguishable by design.
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")

	questions, err := h.store.Questions.Load(title)
	if h.handleStoreError(w, err, "questions") {
		return
	}

	respondJSON(w, http.StatusOK, toQuestionResponses(questions))
}

// POST /notes/{title}/questions/generate
func (h *Handler) generateQuestions(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")

	var req GenerateQuestionsRequest
	if r.ContentLength > 0 && !decodeJSON(w, r, &req) {
		return
	}

	content := req.Content
	if content == "" {
		n, err := h.store.Notes.Get(title)
		if h.handleStoreError(w, err, "note") {
			return
		}
		content = n.Content
	}

	questions, err := h.quiz.GenerateQuestions(r.Context(), title, content)
	if err != nil {
		// The previous question list survives a failed generation.
		respondError(w, http.StatusBadGateway, "question generation failed")
		return
	}

	respondJSON(w, http.StatusOK, toQuestionResponses(questions))
}

// DELETE /notes/{title}/questions
func (h *Handler) clearQuestions(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")

	if h.handleStoreError(w, h.store.Questions.Clear(title), "questions") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
