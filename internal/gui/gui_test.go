package gui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal-desk/internal/app"
	"journal-desk/internal/logger"
)

func TestMainView_ButtonOpensEditor(t *testing.T) {
	test.NewTempApp(t)

	opened := 0
	v := NewMainView("Alice", func() { opened++ })

	assert.Equal(t, "User: Alice", v.header.Text)
	assert.Equal(t, "New Journal Entry", v.newButton.Text)

	test.Tap(v.newButton)
	test.Tap(v.newButton)
	assert.Equal(t, 2, opened)

	size := v.Container().MinSize()
	assert.GreaterOrEqual(t, size.Width, float32(MainMinWidth))
	assert.GreaterOrEqual(t, size.Height, float32(MainMinHeight))
}

func TestManager_ShowMainSetsTitle(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("Journal")
	m := NewManager(a, w, logger.NoOpLogger{})

	m.ShowMain("Alice", func() {})

	assert.Equal(t, "Alice's Journal", w.Title())
	require.NotNil(t, m.main)
}

func TestEditorWindow_ActionsAndText(t *testing.T) {
	a := test.NewTempApp(t)
	m := NewManager(a, a.NewWindow("Journal"), logger.NoOpLogger{})

	var saved, cancelled, closed int
	surface := m.OpenEditor("Alice", uuid.New(), app.EditorActions{
		Save:   func() { saved++ },
		Cancel: func() { cancelled++ },
		Closed: func() { closed++ },
	})

	ew, ok := surface.(*EditorWindow)
	require.True(t, ok)
	assert.Equal(t, "New Entry - Alice", ew.window.Title())
	assert.Equal(t, fyne.TextWrapWord, ew.entry.Wrapping)
	assert.True(t, ew.entry.MultiLine)

	ew.SetText("dear diary")
	assert.Equal(t, "dear diary", ew.Text())

	test.Tap(ew.saveButton)
	assert.Equal(t, 1, saved)

	test.Tap(ew.cancelButton)
	assert.Equal(t, 1, cancelled)

	ew.Close()
	assert.Zero(t, closed, "programmatic close must not report a window-manager close")
}

func TestEditorWindow_WindowManagerCloseReportsClosed(t *testing.T) {
	a := test.NewTempApp(t)
	m := NewManager(a, a.NewWindow("Journal"), logger.NoOpLogger{})

	closed := 0
	surface := m.OpenEditor("Alice", uuid.New(), app.EditorActions{
		Save:   func() {},
		Cancel: func() {},
		Closed: func() { closed++ },
	})

	surface.(*EditorWindow).window.Close()
	assert.Equal(t, 1, closed)
}
