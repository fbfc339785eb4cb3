package store_test

import (
	"fmt"
	"testing"

	"github.com/notemaster/backend/internal/domain/stats"
)

func TestScoreAppend_Growth(t *testing.T) {
	s := openStore(t)

	var want []stats.Attempt
	for i := 0; i < 3; i++ {
		attempt := stats.NewAttempt(fmt.Sprintf("q%d", i), "answer", "expected", i)
		want = append(want, attempt)
		if err := s.Scores.Append("T", attempt); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	history, err := s.Scores.GetForNote("T")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history.Attempts) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(history.Attempts))
	}
	// Prior entries are unchanged and the new entry is last.
	for i, attempt := range want {
		if history.Attempts[i] != attempt {
			t.Errorf("attempt %d: expected %+v, got %+v", i, attempt, history.Attempts[i])
		}
	}
}

func TestScoreGetForNote_MissingIsEmpty(t *testing.T) {
	s := openStore(t)

	history, err := s.Scores.GetForNote("never-quizzed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if history.Attempts == nil {
		t.Fatal("expected empty attempts slice, got nil")
	}
	if len(history.Attempts) != 0 {
		t.Errorf("expected no attempts, got %d", len(history.Attempts))
	}
}

func TestScoreGetAll_FreshStoreIsEmpty(t *testing.T) {
	s := openStore(t)

	all, err := s.Scores.GetAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty mapping, got %d entries", len(all))
	}
}

func TestScoreGetAll(t *testing.T) {
	s := openStore(t)

	if err := s.Scores.Append("A", stats.NewAttempt("q", "ua", "ca", 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Scores.Append("B", stats.NewAttempt("q", "ua", "ca", 2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, err := s.Scores.GetAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}
	if len(all["A"].Attempts) != 1 || all["A"].Attempts[0].Score != 5 {
		t.Errorf("unexpected history for A: %+v", all["A"])
	}
}

func TestScoreDeleteForNote(t *testing.T) {
	s := openStore(t)

	if err := s.Scores.Append("T", stats.NewAttempt("q", "ua", "ca", 3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !s.Scores.DeleteForNote("T") {
		t.Error("expected delete of existing log to report true")
	}
	if s.Scores.DeleteForNote("T") {
		t.Error("expected delete of missing log to report false")
	}

	history, err := s.Scores.GetForNote("T")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history.Attempts) != 0 {
		t.Errorf("expected empty history after delete, got %d attempts", len(history.Attempts))
	}
}

func TestScoreDeleteAll(t *testing.T) {
	s := openStore(t)

	for _, title := range []string{"A", "B", "C"} {
		if err := s.Scores.Append(title, stats.NewAttempt("q", "ua", "ca", 1)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if !s.Scores.DeleteAll() {
		t.Error("expected DeleteAll to report true")
	}

	all, err := s.Scores.GetAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected no histories after DeleteAll, got %d", len(all))
	}
}
