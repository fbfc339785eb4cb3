package note_test

import (
	"testing"

	"github.com/notemaster/backend/internal/domain/note"
)

func TestValidateTitle(t *testing.T) {
	valid := []string{"Biology", "chapter 3", "Révision-1", "a"}
	for _, title := range valid {
		if err := note.ValidateTitle(title); err != nil {
			t.Errorf("expected %q to be valid, got %v", title, err)
		}
	}
}

func TestValidateTitle_Empty(t *testing.T) {
	for _, title := range []string{"", "   ", "\t"} {
		if err := note.ValidateTitle(title); err != note.ErrEmptyTitle {
			t.Errorf("expected ErrEmptyTitle for %q, got %v", title, err)
		}
	}
}

func TestValidateTitle_Unsafe(t *testing.T) {
	unsafe := []string{"a/b", `a\b`, "..", ".", "../../etc/passwd"}
	for _, title := range unsafe {
		if err := note.ValidateTitle(title); err != note.ErrInvalidTitle {
			t.Errorf("expected ErrInvalidTitle for %q, got %v", title, err)
		}
	}
}
