package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	ts := time.Date(2026, time.March, 4, 9, 5, 7, 0, time.Local)
	assert.Equal(t, "Alice_2026-03-04_09-05-07.txt", FileName("Alice", ts))
}

func TestSafeOwner(t *testing.T) {
	tests := map[string]string{
		"Alice":     "Alice",
		"Mary Jane": "Mary Jane",
		"../etc":    "..-etc",
		`a\b`:       "a-b",
		"what?":     "what-",
		"tab\there": "tab-here",
		"Zoë":       "Zoë",
		`<x>:"y"|*`: "-x---y---",
	}
	for in, want := range tests {
		assert.Equal(t, want, SafeOwner(in), in)
	}
}

func TestEnsureDir_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "journals")

	require.NoError(t, EnsureDir(dir))

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "journals")
	require.NoError(t, EnsureDir(dir))

	existing := filepath.Join(dir, "Alice_2026-01-01_00-00-00.txt")
	require.NoError(t, os.WriteFile(existing, []byte("keep me"), 0o644))

	require.NoError(t, EnsureDir(dir))

	raw, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(raw))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journals")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	assert.Error(t, EnsureDir(path))
}
