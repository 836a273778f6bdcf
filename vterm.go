package inline

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VirtualTerminal is a headless terminal emulator. Writes queue up until
// Flush interprets them, updating a visible grid, a scrollback buffer, and
// the cursor. Tests assert on the interpreted screen rather than raw escape
// bytes, which is the only reliable way to catch ghost-line regressions in
// the diffing renderer.
type VirtualTerminal struct {
	mu            sync.Mutex
	width, height int
	screen        [][]rune
	scrollback    []string
	cursorRow     int
	cursorCol     int
	cursorHidden  bool
	syncDepth     int

	// Scroll region (0-indexed, inclusive). Defaults to full screen.
	scrollTop    int
	scrollBottom int

	pending []byte
}

var _ Terminal = (*VirtualTerminal)(nil)

// NewVirtualTerminal creates an emulator of the given dimensions with a blank
// screen.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	screen := make([][]rune, height)
	for i := range screen {
		screen[i] = blankRow(width)
	}
	return &VirtualTerminal{
		width:        width,
		height:       height,
		screen:       screen,
		scrollBottom: height - 1,
	}
}

func blankRow(width int) []rune {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	return row
}

// Write queues bytes for interpretation. Nothing is applied to the screen
// until Flush.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pending = append(v.pending, p...)
	return len(p), nil
}

// Size returns the emulator dimensions.
func (v *VirtualTerminal) Size() (cols, rows int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width, v.height
}

// IsTTY always reports true; the emulator stands in for a real terminal.
func (v *VirtualTerminal) IsTTY() bool {
	return true
}

// SetSize resizes the emulator, simulating a terminal resize. Rows are
// truncated or padded to the new width, never reflowed. When the height
// shrinks, top rows move to scrollback as needed to keep the cursor visible;
// when it grows, blank rows are added at the bottom. The scroll region resets
// to the full screen.
func (v *VirtualTerminal) SetSize(cols, rows int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for r := range v.screen {
		row := blankRow(cols)
		copy(row, v.screen[r])
		v.screen[r] = row
	}
	v.width = cols

	if rows < v.height {
		shift := v.cursorRow - (rows - 1)
		if shift < 0 {
			shift = 0
		}
		for i := 0; i < shift; i++ {
			v.scrollback = append(v.scrollback, strings.TrimRight(string(v.screen[0]), " "))
			v.screen = v.screen[1:]
		}
		v.screen = v.screen[:rows]
		v.cursorRow -= shift
	} else {
		for len(v.screen) < rows {
			v.screen = append(v.screen, blankRow(cols))
		}
	}
	v.height = rows

	if v.cursorRow > rows-1 {
		v.cursorRow = rows - 1
	}
	if v.cursorCol > cols-1 {
		v.cursorCol = cols - 1
	}
	v.scrollTop = 0
	v.scrollBottom = rows - 1
}

// Flush interprets all queued writes. It returns an error for any escape
// sequence the emulator does not understand, so renderer output stays within
// the documented vocabulary. Flush is the only method that may suspend; it
// honors ctx cancellation.
func (v *VirtualTerminal) Flush(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		data := v.pending
		v.pending = nil
		done <- v.interpret(string(data))
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (v *VirtualTerminal) interpret(s string) error {
	for len(s) > 0 {
		if s[0] == '\x1b' {
			if len(s) < 2 {
				return fmt.Errorf("inline: truncated escape sequence")
			}
			switch s[1] {
			case '[':
				consumed, err := v.parseCSI(s[2:])
				if err != nil {
					return err
				}
				s = s[2+consumed:]
			case 'M':
				v.reverseIndex()
				s = s[2:]
			default:
				return fmt.Errorf("inline: unsupported escape %q", s[:2])
			}
			continue
		}

		// Control bytes are dispatched before grapheme segmentation: uniseg
		// treats "\r\n" as a single cluster, which must not reach the
		// printer.
		switch s[0] {
		case '\n':
			v.linefeed()
			s = s[1:]
			continue
		case '\r':
			v.cursorCol = 0
			s = s[1:]
			continue
		}

		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
		s = rest
		v.printCluster(cluster)
	}
	return nil
}

// parseCSI interprets one control sequence starting after "\x1b[" and returns
// how many bytes it consumed.
func (v *VirtualTerminal) parseCSI(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < 0x40 || ch > 0x7e {
			continue
		}
		params := s[:i]
		switch ch {
		case 'H':
			v.cursorPosition(params)
		case 'K':
			v.eraseLine(params)
		case 'J':
			v.eraseDisplay(params)
		case 'r':
			v.setScrollRegion(params)
		case 'M':
			v.deleteLines(params)
		case 'm':
			// SGR changes styling only; the grid tracks text.
		case 'h', 'l':
			if err := v.setMode(params, ch == 'h'); err != nil {
				return 0, err
			}
		default:
			return 0, fmt.Errorf("inline: unsupported CSI final %q (params %q)", ch, params)
		}
		return i + 1, nil
	}
	return 0, fmt.Errorf("inline: unterminated CSI sequence %q", s)
}

func (v *VirtualTerminal) setMode(params string, on bool) error {
	switch params {
	case "?25":
		// DECTCEM: set (h) enables the cursor, reset (l) hides it.
		v.cursorHidden = !on
	case "?2026":
		if on {
			v.syncDepth++
		} else if v.syncDepth > 0 {
			v.syncDepth--
		}
	default:
		return fmt.Errorf("inline: unsupported mode %q", params)
	}
	return nil
}

// cursorPosition handles CSI row;col H (1-indexed).
func (v *VirtualTerminal) cursorPosition(params string) {
	row, col := 1, 1
	parts := strings.Split(params, ";")
	if len(parts) >= 1 && parts[0] != "" {
		row, _ = strconv.Atoi(parts[0])
	}
	if len(parts) >= 2 && parts[1] != "" {
		col, _ = strconv.Atoi(parts[1])
	}
	v.cursorRow = row - 1
	v.cursorCol = col - 1
}

func (v *VirtualTerminal) eraseLine(params string) {
	n := 0
	if params != "" {
		n, _ = strconv.Atoi(params)
	}
	if v.cursorRow < 0 || v.cursorRow >= v.height {
		return
	}
	row := v.screen[v.cursorRow]
	switch n {
	case 0:
		for c := v.cursorCol; c < v.width; c++ {
			row[c] = ' '
		}
	case 1:
		for c := 0; c <= v.cursorCol && c < v.width; c++ {
			row[c] = ' '
		}
	case 2:
		copy(row, blankRow(v.width))
	}
}

func (v *VirtualTerminal) eraseDisplay(params string) {
	n := 0
	if params != "" {
		n, _ = strconv.Atoi(params)
	}
	switch n {
	case 0:
		if v.cursorRow >= 0 && v.cursorRow < v.height {
			for c := v.cursorCol; c < v.width; c++ {
				v.screen[v.cursorRow][c] = ' '
			}
		}
		for r := v.cursorRow + 1; r < v.height; r++ {
			copy(v.screen[r], blankRow(v.width))
		}
	case 2:
		for r := 0; r < v.height; r++ {
			copy(v.screen[r], blankRow(v.width))
		}
		v.cursorRow = 0
		v.cursorCol = 0
	}
}

// setScrollRegion handles DECSTBM. Real terminals home the cursor on any
// region change.
func (v *VirtualTerminal) setScrollRegion(params string) {
	if params == "" {
		v.scrollTop = 0
		v.scrollBottom = v.height - 1
		v.cursorRow = 0
		v.cursorCol = 0
		return
	}
	parts := strings.Split(params, ";")
	top, bottom := 1, v.height
	if len(parts) >= 1 && parts[0] != "" {
		top, _ = strconv.Atoi(parts[0])
	}
	if len(parts) >= 2 && parts[1] != "" {
		bottom, _ = strconv.Atoi(parts[1])
	}
	v.scrollTop = top - 1
	v.scrollBottom = bottom - 1
	v.cursorRow = 0
	v.cursorCol = 0
}

// deleteLines handles DL. Lines deleted at the top of a screen-top scroll
// region go to scrollback, same as normal scrolling; elsewhere they are
// discarded.
func (v *VirtualTerminal) deleteLines(params string) {
	n := 1
	if params != "" {
		n, _ = strconv.Atoi(params)
	}
	for count := 0; count < n; count++ {
		if v.cursorRow > v.scrollBottom {
			continue
		}
		if v.scrollTop == 0 && v.cursorRow == 0 {
			v.scrollback = append(v.scrollback, strings.TrimRight(string(v.screen[0]), " "))
		}
		for r := v.cursorRow; r < v.scrollBottom; r++ {
			copy(v.screen[r], v.screen[r+1])
		}
		copy(v.screen[v.scrollBottom], blankRow(v.width))
	}
}

// linefeed scrolls the region when the cursor sits on its bottom row,
// otherwise just moves down.
func (v *VirtualTerminal) linefeed() {
	if v.cursorRow == v.scrollBottom {
		v.scrollUp()
	} else if v.cursorRow < v.height-1 {
		v.cursorRow++
	}
}

// scrollUp scrolls the region one line. The departing top line reaches
// scrollback only when the region starts at the screen top.
func (v *VirtualTerminal) scrollUp() {
	if v.scrollTop == 0 {
		v.scrollback = append(v.scrollback, strings.TrimRight(string(v.screen[v.scrollTop]), " "))
	}
	for r := v.scrollTop; r < v.scrollBottom; r++ {
		copy(v.screen[r], v.screen[r+1])
	}
	copy(v.screen[v.scrollBottom], blankRow(v.width))
}

// reverseIndex scrolls the region down when the cursor is on its top row,
// otherwise just moves up.
func (v *VirtualTerminal) reverseIndex() {
	if v.cursorRow == v.scrollTop {
		for r := v.scrollBottom; r > v.scrollTop; r-- {
			copy(v.screen[r], v.screen[r-1])
		}
		copy(v.screen[v.scrollTop], blankRow(v.width))
	} else if v.cursorRow > 0 {
		v.cursorRow--
	}
}

// printCluster writes one grapheme cluster at the cursor. Wide clusters
// advance two columns; the grid stores the cluster's first rune in the
// starting cell and a space in the continuation cell, which is enough for
// text assertions.
func (v *VirtualTerminal) printCluster(cluster string) {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		return
	}
	if v.cursorRow >= 0 && v.cursorRow < v.height &&
		v.cursorCol >= 0 && v.cursorCol+w <= v.width {
		runes := []rune(cluster)
		v.screen[v.cursorRow][v.cursorCol] = runes[0]
		if w > 1 {
			v.screen[v.cursorRow][v.cursorCol+1] = ' '
		}
	}
	v.cursorCol += w
}

// --- Inspection ---

// Cursor returns the current cursor position (0-indexed column, row).
func (v *VirtualTerminal) Cursor() (col, row int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cursorCol, v.cursorRow
}

// CursorHidden reports whether the cursor is hidden.
func (v *VirtualTerminal) CursorHidden() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cursorHidden
}

// Row returns the content of one screen row, right-trimmed.
func (v *VirtualTerminal) Row(row int) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	if row < 0 || row >= v.height {
		return ""
	}
	return strings.TrimRight(string(v.screen[row]), " ")
}

// Screen returns the visible screen, one right-trimmed string per row.
func (v *VirtualTerminal) Screen() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	lines := make([]string, v.height)
	for r := 0; r < v.height; r++ {
		lines[r] = strings.TrimRight(string(v.screen[r]), " ")
	}
	return lines
}

// ScreenString returns the visible screen joined with newlines.
func (v *VirtualTerminal) ScreenString() string {
	return strings.Join(v.Screen(), "\n")
}

// ContentLines returns the visible rows up to the last non-blank one. A
// frame that shrank correctly leaves no trailing ghost rows here.
func (v *VirtualTerminal) ContentLines() []string {
	lines := v.Screen()
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	return lines[:end]
}

// Scrollback returns the lines that scrolled off the top of the screen.
func (v *VirtualTerminal) Scrollback() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]string, len(v.scrollback))
	copy(out, v.scrollback)
	return out
}
