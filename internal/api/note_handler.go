package api

import (
	"net/http"

	"github.com/notemaster/backend/internal/domain/note"
)

// ── Request / Response types ────────────────────────────────────────────────

type SaveNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r *SaveNoteRequest) Validate() error {
	return note.ValidateTitle(r.Title)
}

type UpdateNoteRequest struct {
	Content string `json:"content"`
}

type NoteResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /notes
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.store.Notes.List()
	if h.handleStoreError(w, err, "notes") {
		return
	}

	response := make([]NoteResponse, len(notes))
	for i, n := range notes {
		response[i] = NoteResponse{Title: n.Title, Content: n.Content}
	}
	respondJSON(w, http.StatusOK, response)
}

// POST /notes
func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var req SaveNoteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.store.Notes.Save(req.Title, req.Content); h.handleStoreError(w, err, "note") {
		return
	}

	respondJSON(w, http.StatusCreated, NoteResponse{Title: req.Title, Content: req.Content})
}

// PUT /notes/{title}
func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")

	var req UpdateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ok, err := h.store.Notes.Update(title, req.Content)
	if h.handleStoreError(w, err, "note") {
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "note not found")
		return
	}

	respondJSON(w, http.StatusOK, NoteResponse{Title: title, Content: req.Content})
}

// DELETE /notes/{title}
//
// Deleting a note also removes its question file and attempt log, so a
// deleted note leaves nothing orphaned behind.
func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")

	if h.handleStoreError(w, h.store.DeleteNote(title), "note") {
		return
	}

	// Deleting an unknown title is a no-op, not an error.
	w.WriteHeader(http.StatusNoContent)
}
