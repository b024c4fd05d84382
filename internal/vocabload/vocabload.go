// Package vocabload loads a vocabulary file from disk into a
// vocabulary.Vocabulary and optionally watches it for changes, reloading
// without restarting the server. Grounded on the teacher's
// internal/ui/server.go watchFiles/watchDirRecursive pattern.
package vocabload

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/darkcollective/relalg/pkg/vocab/vocabulary"
)

// Loader owns the vocabulary file path and the Vocabulary instance it
// keeps populated.
type Loader struct {
	path   string
	vocab  *vocabulary.Vocabulary
	logger *slog.Logger
}

// New returns a Loader for the vocabulary file at path, logging through
// logger.
func New(path string, logger *slog.Logger) *Loader {
	return &Loader{path: path, vocab: vocabulary.New(), logger: logger}
}

// Vocabulary returns the loader's underlying vocabulary, safe to read
// concurrently with reloads.
func (l *Loader) Vocabulary() *vocabulary.Vocabulary { return l.vocab }

// LoadOnce reads the vocabulary file once, synchronously.
func (l *Loader) LoadOnce() error {
	f, err := os.Open(l.path)
	if err != nil {
		return fmt.Errorf("open vocabulary file: %w", err)
	}
	defer f.Close()
	if err := l.vocab.Load(f); err != nil {
		return fmt.Errorf("load vocabulary: %w", err)
	}
	l.logger.Info("vocabulary loaded", "path", l.path, "words", l.vocab.WordCount())
	return nil
}

// Watch blocks, reloading the vocabulary file whenever it changes, until
// ctx is cancelled. A 100ms debounce absorbs editors that perform several
// writes per save, matching the teacher's watchFiles debounce.
func (l *Loader) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(l.path); err != nil {
		l.logger.Error("failed to watch vocabulary file", "error", err, "path", l.path)
		return nil
	}

	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(100*time.Millisecond, func() {
				l.logger.Debug("vocabulary file changed, reloading", "path", l.path)
				if err := l.LoadOnce(); err != nil {
					l.logger.Error("vocabulary reload failed", "error", err)
				}
			})
		case err := <-watcher.Errors:
			l.logger.Error("vocabulary watcher error", "error", err)
		}
	}
}
