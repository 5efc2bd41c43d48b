package app

import "github.com/google/uuid"

// View is what a front end must provide for the handlers to drive it.
// Callbacks fire at most once; the handlers never block waiting for them.
type View interface {
	ShowConfirm(title, message string, onResult func(yes bool))
	ShowNamePrompt(title, message string, onSubmit func(name string, ok bool))
	// ShowFatal shows a blocking notice and calls onClosed once dismissed.
	ShowFatal(title, message string, onClosed func())
	ShowMain(identity string, onNewEntry func())
	OpenEditor(identity string, id uuid.UUID, actions EditorActions) EditorSurface
	Quit()
}

// EditorActions are the named actions an editor surface can trigger.
type EditorActions struct {
	Save   func()
	Cancel func()
	// Closed reports that the surface went away without Cancel, e.g. the
	// window was closed by the window manager.
	Closed func()
}

// EditorSurface is one open text-entry surface.
type EditorSurface interface {
	Text() string
	SetText(text string)
	ShowWarning(title, message string)
	ShowInfo(title, message string)
	ShowError(err error)
	Close()
}
