package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/notemaster/backend/internal/domain/question"
	"github.com/notemaster/backend/internal/domain/stats"
	"github.com/notemaster/backend/internal/id"
	"github.com/notemaster/backend/internal/llm"
	"github.com/notemaster/backend/internal/store"
)

// SessionState is the phase a quiz session is in for one note.
type SessionState string

const (
	// StateIdle: a note is selected but has no questions to practice.
	StateIdle SessionState = "idle"
	// StateQuestionsLoaded: questions exist, no answers buffered yet.
	StateQuestionsLoaded SessionState = "questions_loaded"
	// StateAnswering: at least one answer has been buffered in memory.
	StateAnswering SessionState = "answering"
	// StateGraded: every question has been scored and logged.
	StateGraded SessionState = "graded"
)

var (
	ErrNoSession   = errors.New("quiz session not found")
	ErrNoQuestions = errors.New("session has no questions to grade")
)

// QuizSession tracks one note's quiz flow. Answers are buffered in memory
// only; nothing touches storage until the session is graded.
type QuizSession struct {
	ID        string
	NoteTitle string
	State     SessionState
	Questions []question.Question
	answers   map[int]string
}

// Answer returns the buffered answer for a question index, or "".
func (s *QuizSession) Answer(index int) string {
	return s.answers[index]
}

// GradedAnswer is the outcome of scoring a single question.
type GradedAnswer struct {
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expected_answer"`
	UserAnswer     string `json:"user_answer"`
	Score          int    `json:"score"`
}

// GradeReport is the outcome of grading a whole session.
type GradeReport struct {
	SessionID  string         `json:"session_id"`
	NoteTitle  string         `json:"note_title"`
	Results    []GradedAnswer `json:"results"`
	TotalScore int            `json:"total_score"`
	MaxScore   int            `json:"max_score"`
	Average    float64        `json:"average"`
}

// QuizCoordinator orchestrates the quiz flow: fetch note, generate
// questions, buffer answers, score them in order, and log every attempt.
// Sessions live in memory; their question lists and attempt logs live in
// the store.
type QuizCoordinator struct {
	store  *store.Store
	llm    llm.Client
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*QuizSession
}

// NewQuizCoordinator creates a QuizCoordinator.
func NewQuizCoordinator(s *store.Store, client llm.Client, logger *slog.Logger) *QuizCoordinator {
	return &QuizCoordinator{
		store:    s,
		llm:      client,
		logger:   logger,
		sessions: make(map[string]*QuizSession),
	}
}

// Start opens a session for a note, loading whatever questions are already
// stored. With no questions the session starts idle.
func (qc *QuizCoordinator) Start(ctx context.Context, title string) (*QuizSession, error) {
	if _, err := qc.store.Notes.Get(title); err != nil {
		return nil, err
	}

	questions, err := qc.store.Questions.Load(title)
	if err != nil {
		return nil, err
	}

	state := StateIdle
	if len(questions) > 0 {
		state = StateQuestionsLoaded
	}

	session := &QuizSession{
		ID:        id.New(),
		NoteTitle: title,
		State:     state,
		Questions: questions,
		answers:   make(map[int]string),
	}

	qc.mu.Lock()
	qc.sessions[session.ID] = session
	qc.mu.Unlock()

	return session, nil
}

// Get returns a session by ID.
func (qc *QuizCoordinator) Get(sessionID string) (*QuizSession, error) {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	session, ok := qc.sessions[sessionID]
	if !ok {
		return nil, ErrNoSession
	}
	return session, nil
}

// GenerateQuestions calls the model and replaces the stored question list
// for a note. On failure nothing is written and the previous list survives.
func (qc *QuizCoordinator) GenerateQuestions(ctx context.Context, title, content string) ([]question.Question, error) {
	questions, err := qc.llm.GenerateQuestions(ctx, title, content)
	if err != nil {
		qc.logger.Error("question generation failed", "note", title, "error", err)
		return nil, err
	}

	if err := qc.store.Questions.ReplaceAll(title, questions); err != nil {
		return nil, fmt.Errorf("failed to persist generated questions: %w", err)
	}

	qc.logger.Info("questions generated", "note", title, "count", len(questions))
	return questions, nil
}

// Generate regenerates a session's questions from its note content.
// The answer buffer is cleared; on failure the session keeps its prior
// state and storage is untouched.
func (qc *QuizCoordinator) Generate(ctx context.Context, sessionID string) (*QuizSession, error) {
	session, err := qc.Get(sessionID)
	if err != nil {
		return nil, err
	}

	n, err := qc.store.Notes.Get(session.NoteTitle)
	if err != nil {
		return nil, err
	}

	questions, err := qc.GenerateQuestions(ctx, session.NoteTitle, n.Content)
	if err != nil {
		return nil, err
	}

	qc.mu.Lock()
	session.Questions = questions
	session.answers = make(map[int]string)
	session.State = StateQuestionsLoaded
	qc.mu.Unlock()

	return session, nil
}

// SubmitAnswer buffers an answer for one question index. Nothing is
// persisted until the session is graded.
func (qc *QuizCoordinator) SubmitAnswer(sessionID string, index int, answer string) error {
	session, err := qc.Get(sessionID)
	if err != nil {
		return err
	}

	qc.mu.Lock()
	defer qc.mu.Unlock()

	if session.State != StateQuestionsLoaded && session.State != StateAnswering {
		return fmt.Errorf("cannot answer in state %q", session.State)
	}
	if index < 0 || index >= len(session.Questions) {
		return fmt.Errorf("question index %d out of range", index)
	}

	session.answers[index] = answer
	session.State = StateAnswering
	return nil
}

// Grade scores every question strictly in list order, appending one attempt
// per question to the score log. Each append is an independent write; a
// scorer failure yields score 0 for that question and the loop continues.
func (qc *QuizCoordinator) Grade(ctx context.Context, sessionID string) (*GradeReport, error) {
	session, err := qc.Get(sessionID)
	if err != nil {
		return nil, err
	}

	qc.mu.Lock()
	if len(session.Questions) == 0 {
		qc.mu.Unlock()
		return nil, ErrNoQuestions
	}
	if session.State == StateGraded {
		qc.mu.Unlock()
		return nil, fmt.Errorf("session already graded; retry to answer again")
	}
	questions := session.Questions
	answers := make(map[int]string, len(session.answers))
	for i, a := range session.answers {
		answers[i] = a
	}
	qc.mu.Unlock()

	report := &GradeReport{
		SessionID: session.ID,
		NoteTitle: session.NoteTitle,
		Results:   make([]GradedAnswer, 0, len(questions)),
		MaxScore:  stats.MaxScore * len(questions),
	}

	for i, q := range questions {
		userAnswer := answers[i]
		score := qc.Score(ctx, q.Text, q.ExpectedAnswer, userAnswer)

		attempt := stats.NewAttempt(q.Text, userAnswer, q.ExpectedAnswer, score)
		if err := qc.store.Scores.Append(session.NoteTitle, attempt); err != nil {
			// Accepted semantics: earlier appends stand, grading goes on.
			qc.logger.Error("failed to log attempt",
				"note", session.NoteTitle,
				"question", i,
				"error", err,
			)
		}

		report.Results = append(report.Results, GradedAnswer{
			Question:       q.Text,
			ExpectedAnswer: q.ExpectedAnswer,
			UserAnswer:     userAnswer,
			Score:          score,
		})
		report.TotalScore += score
	}

	report.Average = float64(report.TotalScore) / float64(len(questions))

	qc.mu.Lock()
	session.State = StateGraded
	qc.mu.Unlock()

	return report, nil
}

// Score grades a single answer, degrading any external failure to 0.
func (qc *QuizCoordinator) Score(ctx context.Context, questionText, expectedAnswer, userAnswer string) int {
	score, err := qc.llm.ScoreAnswer(ctx, questionText, expectedAnswer, userAnswer)
	if err != nil {
		qc.logger.Error("scoring failed, falling back to 0", "question", questionText, "error", err)
		return 0
	}
	return stats.ClampScore(score)
}

// Retry returns a graded session to answering, clearing only the in-memory
// answer buffer. Stored questions and logged attempts are untouched.
func (qc *QuizCoordinator) Retry(sessionID string) (*QuizSession, error) {
	session, err := qc.Get(sessionID)
	if err != nil {
		return nil, err
	}

	qc.mu.Lock()
	defer qc.mu.Unlock()

	if session.State != StateGraded {
		return nil, fmt.Errorf("cannot retry in state %q", session.State)
	}

	session.answers = make(map[int]string)
	session.State = StateAnswering
	return session, nil
}

// ClearQuestions empties the note's stored question list and resets the
// session to idle.
func (qc *QuizCoordinator) ClearQuestions(ctx context.Context, sessionID string) (*QuizSession, error) {
	session, err := qc.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if err := qc.store.Questions.Clear(session.NoteTitle); err != nil {
		return nil, err
	}

	qc.mu.Lock()
	session.Questions = []question.Question{}
	session.answers = make(map[int]string)
	session.State = StateIdle
	qc.mu.Unlock()

	return session, nil
}
