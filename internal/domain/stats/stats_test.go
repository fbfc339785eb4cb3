package stats_test

import (
	"testing"
	"time"

	"github.com/notemaster/backend/internal/domain/stats"
)

func attemptsWithScores(scores ...int) stats.History {
	history := stats.History{}
	for _, s := range scores {
		history.Attempts = append(history.Attempts, stats.Attempt{Score: s})
	}
	return history
}

func TestAggregate(t *testing.T) {
	all := map[string]stats.History{
		"A": attemptsWithScores(3, 4, 5),
		"B": attemptsWithScores(2),
	}

	report := stats.Aggregate(all)

	if got := report.Notes["A"].Average; got != 4.0 {
		t.Errorf("expected average 4.0 for A, got %v", got)
	}
	if got := report.Notes["B"].Average; got != 2.0 {
		t.Errorf("expected average 2.0 for B, got %v", got)
	}
	if report.GlobalAverage != 3.5 {
		t.Errorf("expected global average 3.5, got %v", report.GlobalAverage)
	}
	if report.TotalAttempts != 4 {
		t.Errorf("expected 4 attempts total, got %d", report.TotalAttempts)
	}
}

func TestAggregate_BestAndCount(t *testing.T) {
	report := stats.Aggregate(map[string]stats.History{
		"A": attemptsWithScores(1, 5, 3),
	})

	if got := report.Notes["A"].Best; got != 5 {
		t.Errorf("expected best 5, got %d", got)
	}
	if got := report.Notes["A"].Attempts; got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
}

func TestAggregate_ExcludesEmptyNotes(t *testing.T) {
	all := map[string]stats.History{
		"answered": attemptsWithScores(4),
		"fresh":    {},
	}

	report := stats.Aggregate(all)

	if _, ok := report.Notes["fresh"]; ok {
		t.Error("expected note with zero attempts to be excluded")
	}
	// A note with no attempts must not drag the global average toward zero.
	if report.GlobalAverage != 4.0 {
		t.Errorf("expected global average 4.0, got %v", report.GlobalAverage)
	}
}

func TestAggregate_Empty(t *testing.T) {
	report := stats.Aggregate(map[string]stats.History{})

	if len(report.Notes) != 0 {
		t.Errorf("expected no note reports, got %d", len(report.Notes))
	}
	if report.TotalAttempts != 0 {
		t.Errorf("expected 0 attempts, got %d", report.TotalAttempts)
	}
	if report.GlobalAverage != 0 {
		t.Errorf("expected zero-value global average, got %v", report.GlobalAverage)
	}
}

func TestNewAttempt(t *testing.T) {
	attempt := stats.NewAttempt("Q?", "my answer", "the answer", 4)

	if attempt.Score != 4 {
		t.Errorf("expected score 4, got %d", attempt.Score)
	}
	if _, err := time.Parse(time.RFC3339, attempt.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC 3339: %v", attempt.Timestamp, err)
	}
}

func TestNewAttempt_ClampsScore(t *testing.T) {
	if got := stats.NewAttempt("q", "a", "b", 17).Score; got != 5 {
		t.Errorf("expected score clamped to 5, got %d", got)
	}
	if got := stats.NewAttempt("q", "a", "b", -3).Score; got != 0 {
		t.Errorf("expected score clamped to 0, got %d", got)
	}
}
