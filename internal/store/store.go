package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/notemaster/backend/internal/domain/note"
)

var ErrNotFound = errors.New("not found")

// Store bundles the three flat-file stores over one data directory:
//
//	<dataDir>/notes/<title>.txt          raw note content
//	<dataDir>/questions/<title>.json     ordered question list
//	<dataDir>/stats/<title>_stats.json   append-only attempt log
//
// All three share a per-title lock so writers touching the same note are
// serialized while operations on different notes stay concurrent.
type Store struct {
	Notes     *NoteStore
	Questions *QuestionStore
	Scores    *ScoreStore
}

// Open creates the data directories if needed and returns a ready Store.
func Open(dataDir string) (*Store, error) {
	notesDir := filepath.Join(dataDir, "notes")
	questionsDir := filepath.Join(dataDir, "questions")
	statsDir := filepath.Join(dataDir, "stats")

	for _, dir := range []string{notesDir, questionsDir, statsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	locks := newKeyedMutex()
	return &Store{
		Notes:     &NoteStore{dir: notesDir, locks: locks},
		Questions: &QuestionStore{dir: questionsDir, locks: locks},
		Scores:    &ScoreStore{dir: statsDir, locks: locks},
	}, nil
}

// Dirs returns the three backing directories, notes first.
func (s *Store) Dirs() []string {
	return []string{s.Notes.dir, s.Questions.dir, s.Scores.dir}
}

// DeleteNote removes a note together with its question file and attempt
// log. The three files are independent, so this is three removals, not a
// transaction; a failure partway leaves the remaining files in place.
func (s *Store) DeleteNote(title string) error {
	if err := s.Notes.Delete(title); err != nil {
		return err
	}
	if err := s.Questions.Remove(title); err != nil {
		return err
	}
	s.Scores.DeleteForNote(title)
	return nil
}

// keyedMutex hands out one mutex per note title, lazily. It keeps writers
// to the same note serialized without a global lock across all notes.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (km *keyedMutex) get(key string) *sync.Mutex {
	km.mu.Lock()
	defer km.mu.Unlock()

	lock, ok := km.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		km.locks[key] = lock
	}
	return lock
}

// fileStem validates a title and returns it unchanged as the filename stem.
func fileStem(title string) (string, error) {
	if err := note.ValidateTitle(title); err != nil {
		return "", err
	}
	return title, nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it into place, so readers never observe a half-written file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".write-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
