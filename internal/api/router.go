package api

import "net/http"

// RegisterRoutes wires every handler onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Notes
	mux.HandleFunc("GET /notes", h.listNotes)
	mux.HandleFunc("POST /notes", h.createNote)
	mux.HandleFunc("PUT /notes/{title}", h.updateNote)
	mux.HandleFunc("DELETE /notes/{title}", h.deleteNote)

	// Questions
	mux.HandleFunc("GET /notes/{title}/questions", h.listQuestions)
	mux.HandleFunc("POST /notes/{title}/questions/generate", h.generateQuestions)
	mux.HandleFunc("DELETE /notes/{title}/questions", h.clearQuestions)

	// Answers
	mux.HandleFunc("POST /answers/score", h.scoreAnswer)
	mux.HandleFunc("POST /notes/{title}/attempts", h.appendAttempt)

	// Stats
	mux.HandleFunc("GET /notes/{title}/stats", h.getNoteStats)
	mux.HandleFunc("GET /stats", h.getAllStats)
	mux.HandleFunc("GET /stats/summary", h.getStatsSummary)
	mux.HandleFunc("DELETE /notes/{title}/stats", h.deleteNoteStats)
	mux.HandleFunc("DELETE /stats", h.deleteAllStats)

	// Quiz sessions
	mux.HandleFunc("POST /quiz/sessions", h.createQuizSession)
	mux.HandleFunc("GET /quiz/sessions/{sessionID}", h.getQuizSession)
	mux.HandleFunc("POST /quiz/sessions/{sessionID}/generate", h.generateQuizQuestions)
	mux.HandleFunc("POST /quiz/sessions/{sessionID}/answers", h.submitQuizAnswer)
	mux.HandleFunc("POST /quiz/sessions/{sessionID}/grade", h.gradeQuizSession)
	mux.HandleFunc("POST /quiz/sessions/{sessionID}/retry", h.retryQuizSession)
	mux.HandleFunc("DELETE /quiz/sessions/{sessionID}/questions", h.clearQuizQuestions)
}
