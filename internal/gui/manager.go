package gui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"journal-desk/internal/app"
	"journal-desk/internal/logger"
)

const (
	MainMinWidth     = 400
	MainMinHeight    = 200
	EditorWidth      = 600
	EditorHeight     = 400
	namePromptWidth  = 360
	startupMinHeight = 260
)

// Manager is the Fyne implementation of app.View.
type Manager struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	main *MainView
}

func NewManager(fyneApp fyne.App, window fyne.Window, log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	// Dialogs need a visible parent before the identity is known.
	placeholder := canvas.NewRectangle(color.Transparent)
	placeholder.SetMinSize(fyne.NewSize(MainMinWidth, startupMinHeight))
	window.SetContent(placeholder)

	return &Manager{
		fyneApp: fyneApp,
		window:  window,
		logger:  log,
	}
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) ShowConfirm(title, message string, onResult func(bool)) {
	dialog.ShowConfirm(title, message, onResult, m.window)
}

func (m *Manager) ShowNamePrompt(title, message string, onSubmit func(string, bool)) {
	entry := widget.NewEntry()

	form := dialog.NewForm(title, "OK", "Cancel",
		[]*widget.FormItem{widget.NewFormItem(message, entry)},
		func(ok bool) {
			onSubmit(entry.Text, ok)
		}, m.window)

	form.Resize(fyne.NewSize(namePromptWidth, form.MinSize().Height))
	form.Show()
	m.window.Canvas().Focus(entry)
}

func (m *Manager) ShowFatal(title, message string, onClosed func()) {
	m.logger.Warning("GUIManager", "fatal notice", map[string]interface{}{
		"title":   title,
		"message": message,
	})

	d := dialog.NewInformation(title, message, m.window)
	d.SetOnClosed(onClosed)
	d.Show()
}

func (m *Manager) ShowMain(identity string, onNewEntry func()) {
	m.main = NewMainView(identity, onNewEntry)

	m.window.SetTitle(fmt.Sprintf("%s's Journal", identity))
	m.window.SetContent(m.main.Container())

	m.logger.Debug("GUIManager", "main window shown", map[string]interface{}{
		"identity": identity,
	})
}

func (m *Manager) OpenEditor(identity string, id uuid.UUID, actions app.EditorActions) app.EditorSurface {
	w := m.fyneApp.NewWindow(fmt.Sprintf("New Entry - %s", identity))
	ew := NewEditorWindow(w, id, actions, m.logger)

	w.Resize(fyne.NewSize(EditorWidth, EditorHeight))
	w.Show()

	m.logger.Debug("GUIManager", "editor window opened", map[string]interface{}{
		"editor_id": id.String(),
	})
	return ew
}

func (m *Manager) Quit() {
	m.logger.Info("GUIManager", "quitting", nil)
	m.fyneApp.Quit()
}

// MainView shows who is writing and offers a new entry.
type MainView struct {
	container *fyne.Container
	header    *widget.Label
	newButton *widget.Button
}

func NewMainView(identity string, onNewEntry func()) *MainView {
	header := widget.NewLabelWithStyle(
		fmt.Sprintf("User: %s", identity),
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true},
	)

	newButton := widget.NewButton("New Journal Entry", onNewEntry)
	newButton.Importance = widget.SuccessImportance

	minSize := canvas.NewRectangle(color.Transparent)
	minSize.SetMinSize(fyne.NewSize(MainMinWidth, MainMinHeight))

	content := container.NewBorder(
		container.NewPadded(header),
		nil, nil, nil,
		container.NewCenter(newButton),
	)

	return &MainView{
		container: container.NewStack(minSize, content),
		header:    header,
		newButton: newButton,
	}
}

func (v *MainView) Container() *fyne.Container {
	return v.container
}
