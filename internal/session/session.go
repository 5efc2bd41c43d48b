// Package session holds the state of one running journal session: the
// resolved identity and the editors currently open.
package session

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"journal-desk/internal/journal"
	"journal-desk/internal/logger"
)

var ErrEmptyIdentity = errors.New("session requires a non-empty identity")

type Session struct {
	identity string
	writer   *journal.Writer
	logger   logger.Logger

	mu      sync.Mutex
	editors map[uuid.UUID]*journal.Editor
}

func New(identity string, writer *journal.Writer, log logger.Logger) (*Session, error) {
	if strings.TrimSpace(identity) == "" {
		return nil, ErrEmptyIdentity
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}

	return &Session{
		identity: identity,
		writer:   writer,
		logger:   log,
		editors:  make(map[uuid.UUID]*journal.Editor),
	}, nil
}

func (s *Session) Identity() string {
	return s.identity
}

func (s *Session) OpenEditor() *journal.Editor {
	ed := journal.NewEditor(s.identity, s.writer)

	s.mu.Lock()
	s.editors[ed.ID()] = ed
	open := len(s.editors)
	s.mu.Unlock()

	s.logger.Debug("Session", "editor opened", map[string]interface{}{
		"editor_id": ed.ID().String(),
		"open":      open,
	})
	return ed
}

func (s *Session) Editor(id uuid.UUID) (*journal.Editor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ed, ok := s.editors[id]
	return ed, ok
}

// CloseEditor cancels and forgets an editor. Unknown ids are ignored.
func (s *Session) CloseEditor(id uuid.UUID) {
	s.mu.Lock()
	ed, ok := s.editors[id]
	delete(s.editors, id)
	s.mu.Unlock()

	if !ok {
		return
	}
	ed.Cancel()

	s.logger.Debug("Session", "editor closed", map[string]interface{}{
		"editor_id": id.String(),
	})
}

func (s *Session) OpenEditors() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.editors)
}

// Shutdown closes every open editor. Unsaved text is discarded.
func (s *Session) Shutdown() {
	s.mu.Lock()
	editors := s.editors
	s.editors = make(map[uuid.UUID]*journal.Editor)
	s.mu.Unlock()

	for _, ed := range editors {
		ed.Cancel()
	}

	s.logger.Info("Session", "session closed", map[string]interface{}{
		"identity":        s.identity,
		"editors_dropped": len(editors),
	})
}
