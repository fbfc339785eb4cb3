package stats

import "time"

// MaxScore is the top grade the scorer can award for a single answer.
const MaxScore = 5

// Attempt is one graded answer event. Attempts carry a denormalized copy of
// the question text and expected answer, so later regeneration of a note's
// questions never rewrites history.
type Attempt struct {
	Timestamp     string `json:"timestamp"`
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Score         int    `json:"score"`
}

// History is the append-only attempt log for one note.
type History struct {
	Attempts []Attempt `json:"attempts"`
}

// NewAttempt stamps a graded answer with the current UTC time.
// The score is clamped into [0, MaxScore].
func NewAttempt(question, userAnswer, correctAnswer string, score int) Attempt {
	return Attempt{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Question:      question,
		UserAnswer:    userAnswer,
		CorrectAnswer: correctAnswer,
		Score:         ClampScore(score),
	}
}

// ClampScore forces a score into the valid [0, MaxScore] range.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// NoteReport summarizes the attempt history of a single note.
type NoteReport struct {
	Average  float64 `json:"average"`
	Best     int     `json:"best"`
	Attempts int     `json:"attempts"`
}

// Report aggregates attempt histories across all notes. Notes without any
// attempts are excluded entirely, not counted as zero, so an empty report
// (TotalAttempts == 0) is distinguishable from a report full of zero scores.
type Report struct {
	Notes         map[string]NoteReport `json:"notes"`
	GlobalAverage float64               `json:"global_average"`
	TotalAttempts int                   `json:"total_attempts"`
}

// Aggregate computes per-note averages, best scores and attempt counts,
// plus the global average over every score of every note.
func Aggregate(all map[string]History) Report {
	report := Report{Notes: make(map[string]NoteReport)}

	sum := 0
	for title, history := range all {
		if len(history.Attempts) == 0 {
			continue
		}

		noteSum, best := 0, 0
		for _, attempt := range history.Attempts {
			noteSum += attempt.Score
			if attempt.Score > best {
				best = attempt.Score
			}
		}

		report.Notes[title] = NoteReport{
			Average:  float64(noteSum) / float64(len(history.Attempts)),
			Best:     best,
			Attempts: len(history.Attempts),
		}

		sum += noteSum
		report.TotalAttempts += len(history.Attempts)
	}

	if report.TotalAttempts > 0 {
		report.GlobalAverage = float64(sum) / float64(report.TotalAttempts)
	}
	return report
}
