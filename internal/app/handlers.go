// Package app binds the journal's named user actions to a front end.
//
// Each handler reads the current state, applies one event and tells the View
// what to show next. Nothing here depends on a particular UI toolkit.
package app

import (
	"errors"

	"github.com/google/uuid"

	"journal-desk/internal/identity"
	"journal-desk/internal/journal"
	"journal-desk/internal/logger"
	"journal-desk/internal/session"
)

type Handlers struct {
	view     View
	resolver *identity.Resolver
	writer   *journal.Writer
	logger   logger.Logger

	session  *session.Session
	surfaces map[uuid.UUID]EditorSurface
	aborted  bool
}

func NewHandlers(view View, resolver *identity.Resolver, writer *journal.Writer, log logger.Logger) *Handlers {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Handlers{
		view:     view,
		resolver: resolver,
		writer:   writer,
		logger:   log,
		surfaces: make(map[uuid.UUID]EditorSurface),
	}
}

// Session is nil until the identity has been resolved.
func (h *Handlers) Session() *session.Session {
	return h.session
}

// Aborted reports whether startup ended without an identity.
func (h *Handlers) Aborted() bool {
	return h.aborted
}

func (h *Handlers) HandleStart() {
	h.dispatch(h.resolver.Start())
}

func (h *Handlers) HandleConfirmIdentity(yes bool) {
	h.dispatch(h.resolver.Confirm(yes))
}

func (h *Handlers) HandleSubmitName(name string, ok bool) {
	h.dispatch(h.resolver.SubmitName(name, ok))
}

func (h *Handlers) dispatch(step identity.Step, err error) {
	if err != nil {
		h.logger.Error("Handlers", err, map[string]interface{}{"stage": "identity"})
		h.abort(err.Error())
		return
	}

	switch step.Action {
	case identity.ActionConfirm:
		h.view.ShowConfirm(identity.ConfirmTitle, identity.ConfirmMessage(step.Name), h.HandleConfirmIdentity)
	case identity.ActionAskName:
		h.view.ShowNamePrompt(identity.NameTitle, identity.NamePrompt, h.HandleSubmitName)
	case identity.ActionProceed:
		h.proceed(step.Name)
	case identity.ActionAbort:
		h.logger.Error("Handlers", identity.ErrNameRequired, nil)
		h.abort(identity.NameRequiredMessage)
	}
}

func (h *Handlers) proceed(name string) {
	s, err := session.New(name, h.writer, h.logger)
	if err != nil {
		h.logger.Error("Handlers", err, nil)
		h.abort(identity.NameRequiredMessage)
		return
	}
	h.session = s

	h.logger.Info("Handlers", "session started", map[string]interface{}{
		"identity":    name,
		"journal_dir": h.writer.Dir(),
	})
	h.view.ShowMain(name, h.HandleOpenEditor)
}

func (h *Handlers) abort(message string) {
	h.aborted = true
	h.view.ShowFatal(identity.ErrorTitle, message, h.view.Quit)
}

func (h *Handlers) HandleOpenEditor() {
	if h.session == nil {
		h.logger.Warning("Handlers", "open editor before identity resolved", nil)
		return
	}

	ed := h.session.OpenEditor()
	id := ed.ID()

	surface := h.view.OpenEditor(h.session.Identity(), id, EditorActions{
		Save:   func() { h.HandleSaveEntry(id) },
		Cancel: func() { h.HandleCancelEditor(id) },
		Closed: func() { h.HandleEditorClosed(id) },
	})
	h.surfaces[id] = surface
}

func (h *Handlers) HandleSaveEntry(id uuid.UUID) {
	ed, surface, ok := h.editor(id)
	if !ok {
		return
	}

	ed.SetText(surface.Text())
	path, err := ed.Save()
	switch {
	case errors.Is(err, journal.ErrEmptyEntry):
		h.logger.Debug("Handlers", "empty entry rejected", map[string]interface{}{
			"editor_id": id.String(),
		})
		surface.ShowWarning(journal.EmptyTitle, journal.EmptyMessage)
	case err != nil:
		surface.ShowError(err)
	default:
		surface.SetText(ed.Text())
		surface.ShowInfo(journal.SavedTitle, journal.SavedMessage(path))
	}
}

func (h *Handlers) HandleCancelEditor(id uuid.UUID) {
	surface, ok := h.surfaces[id]
	h.forget(id)
	if ok {
		surface.Close()
	}
}

func (h *Handlers) HandleEditorClosed(id uuid.UUID) {
	h.forget(id)
}

func (h *Handlers) forget(id uuid.UUID) {
	delete(h.surfaces, id)
	if h.session != nil {
		h.session.CloseEditor(id)
	}
}

func (h *Handlers) editor(id uuid.UUID) (*journal.Editor, EditorSurface, bool) {
	if h.session == nil {
		return nil, nil, false
	}
	ed, ok := h.session.Editor(id)
	if !ok {
		return nil, nil, false
	}
	surface, ok := h.surfaces[id]
	if !ok {
		return nil, nil, false
	}
	return ed, surface, true
}

// Shutdown drops every open editor; it is registered with the shutdown manager.
func (h *Handlers) Shutdown() {
	if h.session != nil {
		h.session.Shutdown()
	}
	h.surfaces = make(map[uuid.UUID]EditorSurface)
}
