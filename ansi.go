package inline

import (
	"strconv"
	"strings"
)

// escBuilder efficiently builds ANSI escape sequences into a reusable buffer.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built sequence.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// Len returns the current length of the buffer.
func (e *escBuilder) Len() int {
	return len(e.buf)
}

func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// CursorTo moves the cursor to the start of an absolute row (0-indexed;
// ANSI positions are 1-indexed).
func (e *escBuilder) CursorTo(row int) {
	e.writeCSI()
	e.writeInt(row + 1)
	e.buf = append(e.buf, ';', '1', 'H')
}

// CursorToCell moves the cursor to an absolute (row, col), both 0-indexed.
func (e *escBuilder) CursorToCell(row, col int) {
	e.writeCSI()
	e.writeInt(row + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(col + 1)
	e.buf = append(e.buf, 'H')
}

// ClearToLineEnd clears from the cursor to the end of the line (EL 0).
func (e *escBuilder) ClearToLineEnd() {
	e.writeCSI()
	e.buf = append(e.buf, 'K')
}

// ClearToScreenEnd clears from the cursor to the end of the screen (ED 0).
func (e *escBuilder) ClearToScreenEnd() {
	e.writeCSI()
	e.buf = append(e.buf, 'J')
}

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'l')
}

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'h')
}

// BeginSync starts a synchronized-output block. Terminals that support mode
// 2026 buffer everything until EndSync and paint it atomically; others ignore
// the sequence.
func (e *escBuilder) BeginSync() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '0', '2', '6', 'h')
}

// EndSync ends a synchronized-output block.
func (e *escBuilder) EndSync() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '0', '2', '6', 'l')
}

// Newline appends a linefeed, scrolling the screen when the cursor sits on
// the bottom row.
func (e *escBuilder) Newline() {
	e.buf = append(e.buf, '\r', '\n')
}

// WriteString appends a string verbatim.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}

const (
	sgrReset      = "\x1b[0m"
	syncBeginMark = "\x1b[?2026h"
	syncEndMark   = "\x1b[?2026l"
	cursorHide    = "\x1b[?25l"
	cursorShow    = "\x1b[?25h"
	clearLineEnd  = "\x1b[K"
)

// sgrParams appends the SGR parameter list for a style to params, in the
// fixed order bold, dim, italic, underline, strikethrough, foreground,
// background, so emitted byte sequences are deterministic. The style's colors
// are assumed to be already resolved to the active color level.
func sgrParams(params []string, s TextStyle) []string {
	if s.HasAttr(AttrBold) {
		params = append(params, "1")
	}
	if s.HasAttr(AttrDim) {
		params = append(params, "2")
	}
	if s.HasAttr(AttrItalic) {
		params = append(params, "3")
	}
	if s.HasAttr(AttrUnderline) {
		params = append(params, "4")
	}
	if s.HasAttr(AttrStrikethrough) {
		params = append(params, "9")
	}
	params = appendColorParams(params, s.Fg, true)
	params = appendColorParams(params, s.Bg, false)
	return params
}

// appendColorParams appends the SGR parameters for one color. Palette entries
// below 16 use the compact basic codes; the rest use 38/48;5 and RGB uses
// 38/48;2.
func appendColorParams(params []string, c Color, fg bool) []string {
	if c.IsDefault() {
		return params
	}

	base := 48
	if fg {
		base = 38
	}

	switch c.Type() {
	case ColorANSI:
		idx := int(c.ANSI())
		switch {
		case idx < 8 && fg:
			params = append(params, strconv.Itoa(30+idx))
		case idx < 8:
			params = append(params, strconv.Itoa(40+idx))
		case idx < 16 && fg:
			params = append(params, strconv.Itoa(90+idx-8))
		case idx < 16:
			params = append(params, strconv.Itoa(100+idx-8))
		default:
			params = append(params, strconv.Itoa(base), "5", strconv.Itoa(idx))
		}
	case ColorRGB:
		r, g, b := c.RGB()
		params = append(params, strconv.Itoa(base), "2",
			strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(b)))
	}
	return params
}

// sgrString returns the full escape sequence for a style, or "" for the zero
// style (callers emit a reset instead when leaving a styled run).
func sgrString(s TextStyle) string {
	if s.IsZero() {
		return ""
	}
	params := sgrParams(make([]string, 0, 8), s)
	return "\x1b[" + strings.Join(params, ";") + "m"
}
