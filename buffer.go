package inline

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell. Content holds a full grapheme cluster, so
// combining marks and ZWJ emoji stay intact. A wide cluster occupies its
// starting cell with Width 2 and a continuation cell (empty Content, Width 0)
// to its right.
type Cell struct {
	Content string
	Width   uint8
	Style   TextStyle
}

// IsContinuation reports whether this cell is the right half of a wide
// cluster.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Content == ""
}

// blankCell returns a space cell with the given style.
func blankCell(style TextStyle) Cell {
	return Cell{Content: " ", Width: 1, Style: style}
}

// OutputBuffer is a 2D grid of styled cells the compositor paints a frame
// into. Rows are later flattened to styled strings for diffing; the buffer
// itself never emits escape sequences for positioning.
type OutputBuffer struct {
	width  int
	height int
	cells  []Cell

	// extendBg marks rows whose background continues to the terminal's
	// right edge via clear-to-EOL instead of padded spaces.
	extendBg []Color
}

// NewOutputBuffer creates a buffer of the given dimensions filled with
// unstyled spaces.
func NewOutputBuffer(width, height int) *OutputBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blankCell(TextStyle{})
	}
	return &OutputBuffer{
		width:    width,
		height:   height,
		cells:    cells,
		extendBg: make([]Color, height),
	}
}

// Width returns the buffer width in columns.
func (b *OutputBuffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *OutputBuffer) Height() int {
	return b.height
}

func (b *OutputBuffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y), or the zero Cell out of bounds.
func (b *OutputBuffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

// SetCell overwrites the cell at (x, y). Out-of-bounds writes are dropped.
func (b *OutputBuffer) SetCell(x, y int, c Cell) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	b.cells[i] = c
}

// SetGrapheme places one grapheme cluster at (x, y) and returns the columns
// it consumed. Wide clusters claim a continuation cell; overwriting either
// half of an existing wide cluster blanks the other half so no torn glyphs
// survive. A wide cluster that would straddle the right edge is replaced by a
// space.
func (b *OutputBuffer) SetGrapheme(x, y int, cluster string, style TextStyle) int {
	if y < 0 || y >= b.height || x < 0 || x >= b.width {
		return 0
	}

	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		// Zero-width clusters (lone combining marks) attach to the
		// previous cell's content.
		if prev := b.Cell(x-1, y); prev.Width > 0 && x > 0 {
			prev.Content += cluster
			b.SetCell(x-1, y, prev)
		}
		return 0
	}
	if w > 2 {
		w = 2
	}

	if w == 2 && x+1 >= b.width {
		b.breakWideAt(x, y)
		b.SetCell(x, y, blankCell(style))
		return 1
	}

	b.breakWideAt(x, y)
	if w == 2 {
		b.breakWideAt(x+1, y)
		b.SetCell(x+1, y, Cell{})
	}
	b.SetCell(x, y, Cell{Content: cluster, Width: uint8(w), Style: style})
	return w
}

// breakWideAt blanks the wide cluster covering (x, y), if any, leaving both
// of its cells as styled spaces.
func (b *OutputBuffer) breakWideAt(x, y int) {
	cur := b.Cell(x, y)
	switch {
	case cur.IsContinuation():
		if left := b.Cell(x-1, y); left.Width == 2 {
			b.SetCell(x-1, y, blankCell(left.Style))
		}
		b.SetCell(x, y, blankCell(cur.Style))
	case cur.Width == 2:
		b.SetCell(x, y, blankCell(cur.Style))
		if right := b.Cell(x+1, y); right.IsContinuation() {
			b.SetCell(x+1, y, blankCell(cur.Style))
		}
	}
}

// FillRect paints a rectangle of styled spaces, clipped to the buffer.
func (b *OutputBuffer) FillRect(r Rect, style TextStyle) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if b.idx(x, y) < 0 {
				continue
			}
			b.breakWideAt(x, y)
			b.SetCell(x, y, blankCell(style))
		}
	}
}

// ExtendBackground marks a row's background as continuing to the terminal's
// right edge with the given color.
func (b *OutputBuffer) ExtendBackground(y int, bg Color) {
	if y < 0 || y >= b.height {
		return
	}
	b.extendBg[y] = bg
}

// Line flattens row y into a styled string: content with inline SGR
// sequences, trailing unstyled blanks trimmed, and a final reset whenever any
// styling was emitted. Rows marked ExtendBackground end with the background
// active across a clear-to-EOL before the reset.
func (b *OutputBuffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}

	end := b.rowEnd(y)
	var sb strings.Builder
	var active TextStyle

	for x := 0; x < end; x++ {
		cell := b.cells[y*b.width+x]
		if cell.IsContinuation() {
			continue
		}
		if !cell.Style.Equal(active) {
			if cell.Style.IsZero() {
				sb.WriteString(sgrReset)
			} else {
				if !active.IsZero() {
					sb.WriteString(sgrReset)
				}
				sb.WriteString(sgrString(cell.Style))
			}
			active = cell.Style
		}
		sb.WriteString(cell.Content)
	}

	if bg := b.extendBg[y]; !bg.IsDefault() {
		ext := TextStyle{Bg: bg}
		if !ext.Equal(active) {
			if !active.IsZero() {
				sb.WriteString(sgrReset)
			}
			sb.WriteString(sgrString(ext))
		}
		sb.WriteString(clearLineEnd)
		active = ext
	}

	if !active.IsZero() {
		sb.WriteString(sgrReset)
	}
	return sb.String()
}

// Lines flattens every row.
func (b *OutputBuffer) Lines() []string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.Line(y)
	}
	return lines
}

// rowEnd returns one past the last column of row y that carries visible
// content or styling, so trailing plain spaces never reach the terminal.
func (b *OutputBuffer) rowEnd(y int) int {
	for x := b.width - 1; x >= 0; x-- {
		cell := b.cells[y*b.width+x]
		if cell.IsContinuation() {
			continue
		}
		if cell.Content != " " || !cell.Style.IsZero() {
			return x + int(cell.Width)
		}
	}
	return 0
}
