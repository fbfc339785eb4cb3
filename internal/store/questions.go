package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/notemaster/backend/internal/domain/question"
)

const questionExt = ".json"

// QuestionStore keeps one JSON file per note holding the note's ordered
// question list. The list is always written wholesale: generation replaces
// it, clearing truncates it to the canonical empty list.
type QuestionStore struct {
	dir   string
	locks *keyedMutex
}

// Load returns the stored question list, or an empty list when no file
// exists. "No questions yet" and "cleared" are indistinguishable.
func (s *QuestionStore) Load(title string) ([]question.Question, error) {
	stem, err := fileStem(title)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, stem+questionExt))
	if os.IsNotExist(err) {
		return []question.Question{}, nil
	}
	if err != nil {
		return nil, err
	}

	var questions []question.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("question file for %q is corrupt: %w", title, err)
	}
	if questions == nil {
		questions = []question.Question{}
	}
	return questions, nil
}

// ReplaceAll overwrites the full question list for title.
func (s *QuestionStore) ReplaceAll(title string, questions []question.Question) error {
	stem, err := fileStem(title)
	if err != nil {
		return err
	}
	if questions == nil {
		questions = []question.Question{}
	}

	data, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return err
	}

	lock := s.locks.get(title)
	lock.Lock()
	defer lock.Unlock()

	return writeFileAtomic(filepath.Join(s.dir, stem+questionExt), data)
}

// Clear truncates the question list to empty. Every clear path converges on
// an empty JSON list so Load never sees a placeholder value.
func (s *QuestionStore) Clear(title string) error {
	return s.ReplaceAll(title, nil)
}

// Remove deletes the question file entirely; missing files are a no-op.
// Used when the owning note is deleted.
func (s *QuestionStore) Remove(title string) error {
	stem, err := fileStem(title)
	if err != nil {
		return err
	}

	lock := s.locks.get(title)
	lock.Lock()
	defer lock.Unlock()

	err = os.Remove(filepath.Join(s.dir, stem+questionExt))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
