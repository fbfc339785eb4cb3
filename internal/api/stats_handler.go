package api

import (
	"net/http"

	"github.com/notemaster/backend/internal/domain/stats"
)

// ── Response types ──────────────────────────────────────────────────────────

type HistoryResponse struct {
	Attempts []AttemptResponse `json:"attempts"`
}

type NoteReportResponse struct {
	Average  float64 `json:"average"`
	Best     int     `json:"best"`
	Attempts int     `json:"attempts"`
}

// StatsSummaryResponse reports aggregated averages. GlobalAverage is absent
// entirely when no note has any attempts, so "no data" never reads as a
// zero score.
type StatsSummaryResponse struct {
	Notes         map[string]NoteReportResponse `json:"notes"`
	GlobalAverage *float64                      `json:"global_average,omitempty"`
	TotalAttempts int                           `json:"total_attempts"`
}

type DeleteStatsResponse struct {
	Deleted bool `json:"deleted"`
}

func toHistoryResponse(history stats.History) HistoryResponse {
	attempts := make([]AttemptResponse, len(history.Attempts))
	for i, a := range history.Attempts {
		attempts[i] = AttemptResponse(a)
	}
	return HistoryResponse{Attempts: attempts}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /notes/{title}/stats
func (h *Handler) getNoteStats(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")

	history, err := h.store.Scores.GetForNote(title)
	if h.handleStoreError(w, err, "stats") {
		return
	}

	respondJSON(w, http.StatusOK, toHistoryResponse(history))
}

// GET /stats
func (h *Handler) getAllStats(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.Scores.GetAll()
	if h.handleStoreError(w, err, "stats") {
		return
	}

	response := make(map[string]HistoryResponse, len(all))
	for title, history := range all {
		response[title] = toHistoryResponse(history)
	}
	respondJSON(w, http.StatusOK, response)
}

// GET /stats/summary
func (h *Handler) getStatsSummary(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.Scores.GetAll()
	if h.handleStoreError(w, err, "stats") {
		return
	}

	report := stats.Aggregate(all)

	response := StatsSummaryResponse{
		Notes:         make(map[string]NoteReportResponse, len(report.Notes)),
		TotalAttempts: report.TotalAttempts,
	}
	for title, noteReport := range report.Notes {
		response.Notes[title] = NoteReportResponse(noteReport)
	}
	if report.TotalAttempts > 0 {
		avg := report.GlobalAverage
		response.GlobalAverage = &avg
	}

	respondJSON(w, http.StatusOK, response)
}

// DELETE /notes/{title}/stats
func (h *Handler) deleteNoteStats(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")
	respondJSON(w, http.StatusOK, DeleteStatsResponse{Deleted: h.store.Scores.DeleteForNote(title)})
}

// DELETE /stats
func (h *Handler) deleteAllStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, DeleteStatsResponse{Deleted: h.store.Scores.DeleteAll()})
}
