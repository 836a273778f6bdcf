package inline

import (
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// MockTerminal captures renderer output without interpreting it. It records
// every Write as-is, so tests can count writes, assert on exact byte
// sequences, and split the stream into frames at synchronized-output
// boundaries. For assertions on what a terminal would actually display, use
// VirtualTerminal instead.
type MockTerminal struct {
	mu     sync.Mutex
	cols   int
	rows   int
	tty    bool
	writes [][]byte
}

var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a capturing terminal of the given dimensions that
// reports itself as a TTY.
func NewMockTerminal(cols, rows int) *MockTerminal {
	return &MockTerminal{cols: cols, rows: rows, tty: true}
}

func (m *MockTerminal) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(p))
	copy(buf, p)
	m.writes = append(m.writes, buf)
	return len(p), nil
}

func (m *MockTerminal) Size() (cols, rows int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cols, m.rows
}

func (m *MockTerminal) IsTTY() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tty
}

// SetSize changes the reported dimensions, simulating a resize.
func (m *MockTerminal) SetSize(cols, rows int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cols = cols
	m.rows = rows
}

// SetTTY changes whether the terminal reports itself as interactive.
func (m *MockTerminal) SetTTY(tty bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tty = tty
}

// WriteCount returns how many Write calls have been captured.
func (m *MockTerminal) WriteCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.writes)
}

// Writes returns copies of every captured write in order.
func (m *MockTerminal) Writes() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.writes))
	for i, w := range m.writes {
		out[i] = append([]byte(nil), w...)
	}
	return out
}

// Output returns all captured bytes concatenated.
func (m *MockTerminal) Output() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var sb strings.Builder
	for _, w := range m.writes {
		sb.Write(w)
	}
	return sb.String()
}

// Plain returns the captured output with every escape sequence stripped.
func (m *MockTerminal) Plain() string {
	return ansi.Strip(m.Output())
}

// Frames splits the captured output into heuristic frames: a chunk ends at a
// synchronized-output end marker, or at a newline written outside any
// synchronized block. Newlines inside a block never split it, so each
// atomically painted frame stays one chunk.
func (m *MockTerminal) Frames() []string {
	out := m.Output()
	if out == "" {
		return nil
	}
	var frames []string
	depth := 0
	start := 0
	for i := 0; i < len(out); {
		switch {
		case strings.HasPrefix(out[i:], syncBeginMark):
			depth++
			i += len(syncBeginMark)
		case strings.HasPrefix(out[i:], syncEndMark):
			if depth > 0 {
				depth--
			}
			i += len(syncEndMark)
			if depth == 0 {
				frames = append(frames, out[start:i])
				start = i
			}
		case out[i] == '\n' && depth == 0:
			i++
			frames = append(frames, out[start:i])
			start = i
		default:
			i++
		}
	}
	if start < len(out) {
		frames = append(frames, out[start:])
	}
	return frames
}

// Reset discards everything captured so far.
func (m *MockTerminal) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = nil
}
