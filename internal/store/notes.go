package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/notemaster/backend/internal/domain/note"
)

const noteExt = ".txt"

// NoteStore keeps one raw text file per note under its directory.
// Last write wins; there is no versioning.
type NoteStore struct {
	dir   string
	locks *keyedMutex
}

// List returns every stored note, sorted by title.
func (s *NoteStore) List() ([]note.Note, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	notes := make([]note.Note, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), noteExt) {
			continue
		}
		title := strings.TrimSuffix(entry.Name(), noteExt)
		content, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		notes = append(notes, note.Note{Title: title, Content: string(content)})
	}
	// os.ReadDir already sorts by filename, which is sorting by title here.
	return notes, nil
}

// Get returns a single note or ErrNotFound.
func (s *NoteStore) Get(title string) (note.Note, error) {
	stem, err := fileStem(title)
	if err != nil {
		return note.Note{}, err
	}

	content, err := os.ReadFile(filepath.Join(s.dir, stem+noteExt))
	if os.IsNotExist(err) {
		return note.Note{}, ErrNotFound
	}
	if err != nil {
		return note.Note{}, err
	}
	return note.Note{Title: title, Content: string(content)}, nil
}

// Save creates or overwrites the note file for title.
func (s *NoteStore) Save(title, content string) error {
	stem, err := fileStem(title)
	if err != nil {
		return err
	}

	lock := s.locks.get(title)
	lock.Lock()
	defer lock.Unlock()

	return writeFileAtomic(filepath.Join(s.dir, stem+noteExt), []byte(content))
}

// Update overwrites an existing note and reports whether it existed.
// An absent title is not an error; the caller checks the boolean.
func (s *NoteStore) Update(title, content string) (bool, error) {
	stem, err := fileStem(title)
	if err != nil {
		return false, err
	}

	lock := s.locks.get(title)
	lock.Lock()
	defer lock.Unlock()

	path := filepath.Join(s.dir, stem+noteExt)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	if err := writeFileAtomic(path, []byte(content)); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the note file if present; deleting an unknown title is a
// no-op, not an error.
func (s *NoteStore) Delete(title string) error {
	stem, err := fileStem(title)
	if err != nil {
		return err
	}

	lock := s.locks.get(title)
	lock.Lock()
	defer lock.Unlock()

	err = os.Remove(filepath.Join(s.dir, stem+noteExt))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
