package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"journal-desk/internal/app"
	"journal-desk/internal/logger"
)

// EditorWindow is one "New Entry" window; it implements app.EditorSurface.
type EditorWindow struct {
	window  fyne.Window
	id      uuid.UUID
	logger  logger.Logger
	closing bool

	entry        *widget.Entry
	saveButton   *widget.Button
	cancelButton *widget.Button
}

func NewEditorWindow(w fyne.Window, id uuid.UUID, actions app.EditorActions, log logger.Logger) *EditorWindow {
	ew := &EditorWindow{
		window: w,
		id:     id,
		logger: log,
	}

	ew.entry = widget.NewMultiLineEntry()
	ew.entry.Wrapping = fyne.TextWrapWord

	ew.saveButton = widget.NewButton("Save Entry", actions.Save)
	ew.saveButton.Importance = widget.HighImportance

	ew.cancelButton = widget.NewButton("Cancel", actions.Cancel)
	ew.cancelButton.Importance = widget.DangerImportance

	buttons := container.NewHBox(layout.NewSpacer(), ew.cancelButton, ew.saveButton)

	w.SetContent(container.NewPadded(container.NewBorder(nil, buttons, nil, nil, ew.entry)))
	w.SetOnClosed(func() {
		if ew.closing {
			return
		}
		ew.logger.Debug("EditorWindow", "closed by window manager", map[string]interface{}{
			"editor_id": ew.id.String(),
		})
		if actions.Closed != nil {
			actions.Closed()
		}
	})
	w.Canvas().Focus(ew.entry)

	return ew
}

func (ew *EditorWindow) Text() string {
	return ew.entry.Text
}

func (ew *EditorWindow) SetText(text string) {
	ew.entry.SetText(text)
}

func (ew *EditorWindow) ShowWarning(title, message string) {
	dialog.ShowInformation(title, message, ew.window)
}

func (ew *EditorWindow) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, ew.window)
}

func (ew *EditorWindow) ShowError(err error) {
	ew.logger.Error("EditorWindow", err, map[string]interface{}{
		"editor_id": ew.id.String(),
	})
	dialog.ShowError(err, ew.window)
}

func (ew *EditorWindow) Close() {
	ew.closing = true
	ew.window.Close()
}
