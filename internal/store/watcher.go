package store

import (
	"log/slog"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports files in the data directories being created, rewritten or
// removed from outside the API. The flat-file layout invites editing notes
// with a text editor while the server runs; the watcher makes those
// out-of-band changes visible in the logs.
type Watcher struct {
	fw     *fsnotify.Watcher
	logger *slog.Logger
	done   chan struct{}
}

// NewWatcher starts watching the given directories.
func NewWatcher(logger *slog.Logger, dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
	}

	w := &Watcher{fw: fw, logger: logger, done: make(chan struct{})}
	go w.run()
	return w, nil
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			// Atomic writes go through temp files; only named files matter.
			if strings.HasPrefix(baseName(event.Name), ".write-") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.logger.Info("data file changed on disk",
					"file", event.Name,
					"op", event.Op.String(),
				)
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "error", err)
		case <-w.done:
			return
		}
	}
}

func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
