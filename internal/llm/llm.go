package llm

import (
	"context"
	"fmt"

	"github.com/notemaster/backend/internal/domain/question"
)

// Client is the boundary to the language-model service: it writes quiz
// questions from note content and grades free-text answers.
// Implementations may call an LLM endpoint or return canned results (for tests).
type Client interface {
	// GenerateQuestions asks the model for open-ended questions covering the
	// note content. It returns at least one question or an error; callers
	// treat any error as "no questions".
	GenerateQuestions(ctx context.Context, noteTitle, noteContent string) ([]question.Question, error)

	// ScoreAnswer grades a user's answer against the expected answer on a
	// 0-5 scale. Callers treat any error as score 0.
	ScoreAnswer(ctx context.Context, questionText, expectedAnswer, userAnswer string) (int, error)
}

// CallError is returned when a model call fails, so the caller can
// distinguish "the model returned garbage" from "the endpoint was
// unreachable" via the wrapped error.
type CallError struct {
	Op      string // "generate" or "score"
	Reason  string
	Wrapped error
}

func (e *CallError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Op, e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("%s failed: %s", e.Op, e.Reason)
}

func (e *CallError) Unwrap() error {
	return e.Wrapped
}
