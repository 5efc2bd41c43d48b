package journal

import (
	"github.com/google/uuid"
)

// Editor is the state behind one entry editor surface. Editors share nothing
// but the Writer and the owner name.
type Editor struct {
	id     uuid.UUID
	owner  string
	writer *Writer
	text   string
	closed bool
}

func NewEditor(owner string, writer *Writer) *Editor {
	return &Editor{
		id:     uuid.New(),
		owner:  owner,
		writer: writer,
	}
}

func (e *Editor) ID() uuid.UUID { return e.id }

func (e *Editor) Owner() string { return e.owner }

func (e *Editor) Text() string { return e.text }

func (e *Editor) SetText(text string) { e.text = text }

func (e *Editor) Closed() bool { return e.closed }

// Save writes the current text. Empty content leaves the text as it was;
// a successful save clears it and keeps the editor open.
func (e *Editor) Save() (string, error) {
	if e.closed {
		return "", ErrEditorClosed
	}

	path, err := e.writer.Write(e.owner, e.text)
	if err != nil {
		return "", err
	}

	e.text = ""
	return path, nil
}

// Cancel discards the editor without writing anything.
func (e *Editor) Cancel() {
	e.closed = true
	e.text = ""
}
