package inline

import (
	"os"

	"golang.org/x/term"
)

// Terminal is the sink the renderer writes to. Implementations are the real
// terminal on stdout, the capturing MockTerminal, and the headless
// VirtualTerminal used for exact assertions.
type Terminal interface {
	// Write sends raw bytes, escape sequences included, to the terminal.
	Write(p []byte) (int, error)

	// Size returns the terminal dimensions (columns, rows) in cells.
	Size() (cols, rows int)

	// IsTTY reports whether output goes to an interactive terminal. Color
	// detection degrades to no color when it does not.
	IsTTY() bool
}

// fileTerminal adapts an os.File (normally stdout) to the Terminal
// interface.
type fileTerminal struct {
	f *os.File
}

var _ Terminal = (*fileTerminal)(nil)

// NewStdoutTerminal returns a Terminal backed by os.Stdout.
func NewStdoutTerminal() Terminal {
	return &fileTerminal{f: os.Stdout}
}

// NewFileTerminal returns a Terminal backed by the given file.
func NewFileTerminal(f *os.File) Terminal {
	return &fileTerminal{f: f}
}

func (t *fileTerminal) Write(p []byte) (int, error) {
	return t.f.Write(p)
}

// Size queries the terminal driver. When the file is not a terminal (piped
// output, tests) it falls back to 80x24.
func (t *fileTerminal) Size() (cols, rows int) {
	cols, rows, err := term.GetSize(int(t.f.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return 80, 24
	}
	return cols, rows
}

func (t *fileTerminal) IsTTY() bool {
	return term.IsTerminal(int(t.f.Fd()))
}
