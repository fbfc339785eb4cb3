package note

import (
	"errors"
	"strings"
)

// Note is a user-authored text document. The title is the unique key:
// it names the note file, the question file, and the stats file.
type Note struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

var (
	ErrEmptyTitle   = errors.New("note title cannot be empty")
	ErrInvalidTitle = errors.New("note title is not a valid filename")
)

// ValidateTitle checks that a title can safely be used as a filename stem.
// Titles containing path separators or dot-traversal are rejected outright
// rather than rewritten, so one title always maps to one file.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if title == "." || title == ".." {
		return ErrInvalidTitle
	}
	if strings.ContainsAny(title, `/\`) || strings.ContainsRune(title, 0) {
		return ErrInvalidTitle
	}
	return nil
}
