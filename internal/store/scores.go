package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/notemaster/backend/internal/domain/stats"
)

const statsSuffix = "_stats.json"

// ScoreStore keeps one append-only attempt log per note, as
// <title>_stats.json holding {"attempts": [...]}. Appends are
// load-modify-write under the per-title lock, so two graders of the same
// note cannot lose each other's attempts.
type ScoreStore struct {
	dir   string
	locks *keyedMutex
}

// Append adds one attempt to the end of a note's log, creating the log on
// first use.
func (s *ScoreStore) Append(title string, attempt stats.Attempt) error {
	stem, err := fileStem(title)
	if err != nil {
		return err
	}

	lock := s.locks.get(title)
	lock.Lock()
	defer lock.Unlock()

	path := filepath.Join(s.dir, stem+statsSuffix)
	history, err := s.read(path, title)
	if err != nil {
		return err
	}

	history.Attempts = append(history.Attempts, attempt)

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

// GetForNote returns a note's attempt history; a note with no log yields an
// empty history, not an error.
func (s *ScoreStore) GetForNote(title string) (stats.History, error) {
	stem, err := fileStem(title)
	if err != nil {
		return stats.History{}, err
	}
	return s.read(filepath.Join(s.dir, stem+statsSuffix), title)
}

// GetAll returns every note's attempt history keyed by title. A fresh store
// yields an empty map.
func (s *ScoreStore) GetAll() (map[string]stats.History, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	all := make(map[string]stats.History)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), statsSuffix) {
			continue
		}
		title := strings.TrimSuffix(entry.Name(), statsSuffix)
		history, err := s.read(filepath.Join(s.dir, entry.Name()), title)
		if err != nil {
			return nil, err
		}
		all[title] = history
	}
	return all, nil
}

// DeleteForNote removes a note's attempt log. It reports true only when a
// log existed and was removed; missing files and I/O failures both come
// back as false.
func (s *ScoreStore) DeleteForNote(title string) bool {
	stem, err := fileStem(title)
	if err != nil {
		return false
	}

	lock := s.locks.get(title)
	lock.Lock()
	defer lock.Unlock()

	return os.Remove(filepath.Join(s.dir, stem+statsSuffix)) == nil
}

// DeleteAll removes every attempt log. Any individual failure degrades the
// whole call to false, though files removed before the failure stay gone.
func (s *ScoreStore) DeleteAll() bool {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return false
	}

	ok := true
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), statsSuffix) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			ok = false
		}
	}
	return ok
}

func (s *ScoreStore) read(path, title string) (stats.History, error) {
	empty := stats.History{Attempts: []stats.Attempt{}}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return empty, nil
	}
	if err != nil {
		return stats.History{}, err
	}

	var history stats.History
	if err := json.Unmarshal(data, &history); err != nil {
		return stats.History{}, fmt.Errorf("stats file for %q is corrupt: %w", title, err)
	}
	if history.Attempts == nil {
		history.Attempts = []stats.Attempt{}
	}
	return history, nil
}
