package inline

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// paintTree renders a laid-out dynamic tree into buf. Text styles resolve
// nearest-wins down the tree; colors are downsampled to level as cells are
// written, so the buffer only ever holds styles the terminal can display.
func paintTree(buf *OutputBuffer, root Node, level ColorLevel) {
	clip := NewRect(0, 0, buf.Width(), buf.Height())
	paintNode(buf, root, TextStyle{}, level, clip)
}

func paintNode(buf *OutputBuffer, n Node, inherited TextStyle, level ColorLevel, clip Rect) {
	switch node := n.(type) {
	case *Box:
		paintBox(buf, node, inherited, level, clip)
	case *Text:
		paintText(buf, node, inherited, level, clip)
	case *Static:
		// Committed separately, occupies no space in the dynamic region.
	}
}

func paintBox(buf *OutputBuffer, b *Box, inherited TextStyle, level ColorLevel, clip Rect) {
	rect := b.handle.GetLayout().Rect.Intersect(clip)
	style := b.Style.Over(inherited)
	if !b.Background.IsDefault() {
		// Descendant text with no background of its own sits on the
		// box's fill rather than punching through to the terminal
		// default.
		style.Bg = b.Background
	}

	if !b.Background.IsDefault() {
		buf.FillRect(rect, TextStyle{Bg: b.Background}.Resolve(level))
		if b.ExtendBackground {
			for y := rect.Y; y < rect.Bottom(); y++ {
				buf.ExtendBackground(y, b.Background.Resolve(level))
			}
		}
	}

	if b.Border != BorderNone {
		paintBorder(buf, b.handle.GetLayout().Rect, b.Border, style.Resolve(level), clip)
	}

	childClip := b.handle.GetLayout().ContentRect.Intersect(clip)
	for _, child := range b.Children {
		paintNode(buf, child, style, level, childClip)
	}
}

func paintText(buf *OutputBuffer, t *Text, inherited TextStyle, level ColorLevel, clip Rect) {
	rect := t.handle.GetLayout().Rect
	w := &textWriter{
		buf:     buf,
		clip:    rect.Intersect(clip),
		x:       rect.X,
		y:       rect.Y,
		originX: rect.X,
	}
	paintSpans(w, t, inherited, level)
}

func paintSpans(w *textWriter, t *Text, inherited TextStyle, level ColorLevel) {
	style := t.Style.Over(inherited)
	for _, child := range t.Children {
		switch c := child.(type) {
		case *TextLeaf:
			w.write(c.Content, style.Resolve(level))
		case *Text:
			paintSpans(w, c, style, level)
		}
	}
}

// textWriter lays grapheme clusters into the buffer left to right, clipped to
// a rectangle. Newlines return to the origin column on the next row. Content
// never wraps; anything past the clip edge is dropped.
type textWriter struct {
	buf     *OutputBuffer
	clip    Rect
	x, y    int
	originX int
}

func (w *textWriter) write(s string, style TextStyle) {
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		if cluster == "\n" {
			w.y++
			w.x = w.originX
			continue
		}
		width := runewidth.StringWidth(cluster)
		if w.y >= w.clip.Y && w.y < w.clip.Bottom() &&
			w.x >= w.clip.X && w.x+width <= w.clip.Right() {
			w.buf.SetGrapheme(w.x, w.y, cluster, style)
		}
		w.x += width
	}
}

func paintBorder(buf *OutputBuffer, rect Rect, bs BorderStyle, style TextStyle, clip Rect) {
	if rect.Width < 2 || rect.Height < 2 {
		return
	}
	chars := bs.chars()
	set := func(x, y int, r rune) {
		if clip.Contains(x, y) {
			buf.SetGrapheme(x, y, string(r), style)
		}
	}

	top, bottom := rect.Y, rect.Bottom()-1
	left, right := rect.X, rect.Right()-1

	set(left, top, chars.topLeft)
	set(right, top, chars.topRight)
	set(left, bottom, chars.bottomLeft)
	set(right, bottom, chars.bottomRight)
	for x := left + 1; x < right; x++ {
		set(x, top, chars.top)
		set(x, bottom, chars.bottom)
	}
	for y := top + 1; y < bottom; y++ {
		set(left, y, chars.left)
		set(right, y, chars.right)
	}
}
