package journal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditor_SaveClearsTextAndStaysOpen(t *testing.T) {
	dir := t.TempDir()
	ed := NewEditor("Alice", NewWriter(dir, WithClock(fixedClock)))

	ed.SetText("  Hello world  ")
	path, err := ed.Save()
	require.NoError(t, err)

	assert.Empty(t, ed.Text())
	assert.False(t, ed.Closed())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", string(raw))
}

func TestEditor_EmptySaveKeepsText(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "journals")
	ed := NewEditor("Alice", NewWriter(dir, WithClock(fixedClock)))

	ed.SetText("     ")
	_, err := ed.Save()

	assert.ErrorIs(t, err, ErrEmptyEntry)
	assert.Equal(t, "     ", ed.Text())
	assert.NoDirExists(t, dir)
}

func TestEditor_CancelDiscards(t *testing.T) {
	dir := t.TempDir()
	ed := NewEditor("Alice", NewWriter(dir, WithClock(fixedClock)))

	ed.SetText("draft")
	ed.Cancel()

	assert.True(t, ed.Closed())
	_, err := ed.Save()
	assert.ErrorIs(t, err, ErrEditorClosed)
	assert.Empty(t, listDir(t, dir))
}

func TestEditor_IndependentInstances(t *testing.T) {
	w := NewWriter(t.TempDir(), WithClock(fixedClock))
	a := NewEditor("Alice", w)
	b := NewEditor("Alice", w)

	assert.NotEqual(t, a.ID(), b.ID())

	a.SetText("one")
	b.SetText("two")
	a.Cancel()

	assert.Equal(t, "two", b.Text())
	_, err := b.Save()
	require.NoError(t, err)
}
