// Package console is a line-oriented front end for terminals and pipes.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"journal-desk/internal/app"
	"journal-desk/internal/logger"
)

const (
	saveCommand   = ":save"
	cancelCommand = ":cancel"
)

// Console implements app.View over a reader and a writer. Prompts block on
// the reader, so every callback has fired by the time a Show method returns.
type Console struct {
	in          *bufio.Scanner
	out         io.Writer
	interactive bool
	logger      logger.Logger

	onNewEntry func()
	active     *editorSurface
	quit       bool
}

// New builds a Console. When interactive is false, prompt decoration is
// left out so piped input produces clean output.
func New(in io.Reader, out io.Writer, interactive bool, log logger.Logger) *Console {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Console{
		in:          bufio.NewScanner(in),
		out:         out,
		interactive: interactive,
		logger:      log,
	}
}

func (c *Console) ShowConfirm(title, message string, onResult func(bool)) {
	c.prompt("%s\n%s [y/N]: ", title, message)
	line, ok := c.readLine()
	onResult(ok && isYes(line))
}

func (c *Console) ShowNamePrompt(title, message string, onSubmit func(string, bool)) {
	c.prompt("%s\n%s ", title, message)
	line, ok := c.readLine()
	onSubmit(line, ok)
}

func (c *Console) ShowFatal(title, message string, onClosed func()) {
	fmt.Fprintf(c.out, "%s: %s\n", title, message)
	onClosed()
}

func (c *Console) ShowMain(identity string, onNewEntry func()) {
	c.onNewEntry = onNewEntry
	fmt.Fprintf(c.out, "User: %s\n", identity)
}

func (c *Console) OpenEditor(identity string, id uuid.UUID, actions app.EditorActions) app.EditorSurface {
	s := &editorSurface{console: c, actions: actions}
	c.active = s

	c.prompt("New Entry - %s (%s to save, %s to discard)\n", identity, saveCommand, cancelCommand)
	c.logger.Debug("Console", "editor opened", map[string]interface{}{
		"editor_id": id.String(),
	})
	return s
}

func (c *Console) Quit() {
	c.quit = true
}

// Run reads commands until the user quits or input ends.
func (c *Console) Run() {
	for !c.quit {
		if c.active != nil {
			c.editorLine()
			continue
		}

		c.prompt("[n] New Journal Entry  [q] Quit > ")
		line, ok := c.readLine()
		if !ok {
			c.quit = true
			break
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "n", "new":
			if c.onNewEntry != nil {
				c.onNewEntry()
			}
		case "q", "quit":
			c.quit = true
		case "":
		default:
			fmt.Fprintf(c.out, "unknown command %q\n", strings.TrimSpace(line))
		}
	}
}

func (c *Console) editorLine() {
	s := c.active
	line, ok := c.readLine()
	if !ok {
		// Input ended mid-entry: the editor goes away unsaved.
		c.active = nil
		c.quit = true
		if s.actions.Closed != nil {
			s.actions.Closed()
		}
		return
	}

	switch strings.TrimSpace(line) {
	case saveCommand:
		s.actions.Save()
	case cancelCommand:
		s.actions.Cancel()
	default:
		s.lines = append(s.lines, line)
	}
}

func (c *Console) readLine() (string, bool) {
	if c.in.Scan() {
		return c.in.Text(), true
	}
	if err := c.in.Err(); err != nil {
		c.logger.Error("Console", err, nil)
	}
	return "", false
}

func (c *Console) prompt(format string, args ...interface{}) {
	if c.interactive {
		fmt.Fprintf(c.out, format, args...)
	}
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

type editorSurface struct {
	console *Console
	actions app.EditorActions
	lines   []string
}

func (s *editorSurface) Text() string {
	return strings.Join(s.lines, "\n")
}

func (s *editorSurface) SetText(text string) {
	if text == "" {
		s.lines = nil
		return
	}
	s.lines = strings.Split(text, "\n")
}

func (s *editorSurface) ShowWarning(title, message string) {
	fmt.Fprintf(s.console.out, "%s: %s\n", title, message)
}

func (s *editorSurface) ShowInfo(title, message string) {
	fmt.Fprintf(s.console.out, "%s: %s\n", title, message)
}

func (s *editorSurface) ShowError(err error) {
	fmt.Fprintf(s.console.out, "Error: %v\n", err)
}

func (s *editorSurface) Close() {
	if s.console.active == s {
		s.console.active = nil
	}
}
