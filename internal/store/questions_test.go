package store_test

import (
	"testing"

	"github.com/notemaster/backend/internal/domain/question"
)

func TestQuestionLoad_MissingFileIsEmpty(t *testing.T) {
	s := openStore(t)

	questions, err := s.Questions.Load("never-generated")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("expected empty list, got %d questions", len(questions))
	}
}

func TestQuestionReplaceAll_KeepsOrder(t *testing.T) {
	s := openStore(t)

	want := []question.Question{
		{Text: "What is photosynthesis?", ExpectedAnswer: "Conversion of light into chemical energy"},
		{Text: "Where does it happen?", ExpectedAnswer: "In the chloroplasts"},
		{Text: "What gas is produced?", ExpectedAnswer: "Oxygen"},
	}

	if err := s.Questions.ReplaceAll("Bio", want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Questions.Load("Bio")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d questions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("question %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestQuestionReplaceAll_Overwrites(t *testing.T) {
	s := openStore(t)

	first := []question.Question{{Text: "old", ExpectedAnswer: "old"}}
	second := []question.Question{
		{Text: "new 1", ExpectedAnswer: "a1"},
		{Text: "new 2", ExpectedAnswer: "a2"},
	}

	if err := s.Questions.ReplaceAll("T", first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Questions.ReplaceAll("T", second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Questions.Load("T")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Text != "new 1" {
		t.Errorf("expected the replacement list, got %+v", got)
	}
}

func TestQuestionClear_ThenRegenerate(t *testing.T) {
	s := openStore(t)

	if err := s.Questions.ReplaceAll("T", []question.Question{{Text: "q", ExpectedAnswer: "a"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Questions.Clear("T"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Questions.Load("T")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected cleared list, got %d questions", len(got))
	}

	regenerated := []question.Question{
		{Text: "q1", ExpectedAnswer: "a1"},
		{Text: "q2", ExpectedAnswer: "a2"},
	}
	if err := s.Questions.ReplaceAll("T", regenerated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err = s.Questions.Load("T")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != regenerated[0] || got[1] != regenerated[1] {
		t.Errorf("expected regenerated list in order, got %+v", got)
	}
}

func TestQuestionClear_WithoutFile(t *testing.T) {
	s := openStore(t)

	// Clearing a note that never had questions still converges on the
	// canonical empty list.
	if err := s.Questions.Clear("fresh"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Questions.Load("fresh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %+v", got)
	}
}
