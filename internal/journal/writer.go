// Package journal writes journal entries to timestamped text files and keeps
// the toolkit-neutral state of an open entry editor.
package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"journal-desk/internal/logger"
)

const (
	EmptyTitle   = "Empty"
	EmptyMessage = "Entry not saved - no content!"
	SavedTitle   = "Saved"
)

// maxSuffix bounds the search for a free name within one second.
const maxSuffix = 1000

var (
	ErrEmptyEntry   = errors.New("entry has no content")
	ErrEditorClosed = errors.New("editor is closed")
)

// SavedMessage is the confirmation shown after a successful save.
func SavedMessage(path string) string {
	return "Entry saved to:\n" + path
}

type Writer struct {
	dir       string
	now       func() time.Time
	overwrite bool
	logger    logger.Logger
}

type Option func(*Writer)

func WithClock(now func() time.Time) Option {
	return func(w *Writer) { w.now = now }
}

// WithOverwrite makes a save in the same second as an earlier one replace it.
func WithOverwrite(overwrite bool) Option {
	return func(w *Writer) { w.overwrite = overwrite }
}

func WithLogger(log logger.Logger) Option {
	return func(w *Writer) { w.logger = log }
}

func NewWriter(dir string, opts ...Option) *Writer {
	w := &Writer{
		dir:    dir,
		now:    time.Now,
		logger: logger.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Writer) Dir() string {
	return w.dir
}

// Write stores the trimmed body as a new file for owner and returns its path.
func (w *Writer) Write(owner, body string) (string, error) {
	content := strings.TrimSpace(body)
	if content == "" {
		return "", ErrEmptyEntry
	}

	if err := EnsureDir(w.dir); err != nil {
		w.logger.Error("JournalWriter", err, map[string]interface{}{"dir": w.dir})
		return "", err
	}

	now := w.now()
	var (
		path string
		err  error
	)
	if w.overwrite {
		path = filepath.Join(w.dir, FileName(owner, now))
		err = os.WriteFile(path, []byte(content), 0o644)
	} else {
		path, err = w.writeExclusive(fileStem(owner, now), content)
	}
	if err != nil {
		w.logger.Error("JournalWriter", err, map[string]interface{}{
			"owner": owner,
			"dir":   w.dir,
		})
		return "", fmt.Errorf("write entry: %w", err)
	}

	w.logger.Info("JournalWriter", "entry saved", map[string]interface{}{
		"path":  path,
		"bytes": len(content),
	})
	return path, nil
}

func (w *Writer) writeExclusive(stem, content string) (string, error) {
	for n := 1; n <= maxSuffix; n++ {
		name := stem + fileExt
		if n > 1 {
			name = suffixedName(stem, n)
		}
		path := filepath.Join(w.dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}

		if _, err := f.WriteString(content); err != nil {
			f.Close()
			return "", err
		}
		if err := f.Close(); err != nil {
			return "", err
		}

		if n > 1 {
			w.logger.Debug("JournalWriter", "name taken, used suffix", map[string]interface{}{
				"stem":   stem,
				"suffix": n,
			})
		}
		return path, nil
	}
	return "", fmt.Errorf("no free file name for %s after %d attempts", stem, maxSuffix)
}
