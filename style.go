package inline

// Attr represents text attributes as a bitfield for efficient comparison.
type Attr uint8

const (
	// AttrNone represents no text attributes.
	AttrNone Attr = 0
	// AttrBold makes text bold/bright.
	AttrBold Attr = 1 << iota
	// AttrDim makes text dimmed/faint.
	AttrDim
	// AttrItalic makes text italic.
	AttrItalic
	// AttrUnderline underlines the text.
	AttrUnderline
	// AttrStrikethrough draws a line through the text.
	AttrStrikethrough
)

// TextStyle combines text attributes with foreground and background colors.
// The zero value is "unstyled": every field inherits from the enclosing text.
//
// Each attribute tracks whether it was explicitly set, so style resolution is
// nearest-wins per field rather than a deep merge: a Text node that sets only
// Bold overrides the inherited bold flag but keeps the inherited color.
type TextStyle struct {
	Fg    Color
	Bg    Color
	Attrs Attr
	// Set marks which attribute bits were explicitly assigned. An explicit
	// "not bold" (bit in Set, clear in Attrs) overrides an inherited bold.
	Set Attr
}

// NewTextStyle returns an unstyled TextStyle.
func NewTextStyle() TextStyle {
	return TextStyle{}
}

// Foreground returns a copy with the given foreground color.
func (s TextStyle) Foreground(c Color) TextStyle {
	s.Fg = c
	return s
}

// Background returns a copy with the given background color.
func (s TextStyle) Background(c Color) TextStyle {
	s.Bg = c
	return s
}

// Bold returns a copy with bold explicitly enabled.
func (s TextStyle) Bold() TextStyle {
	return s.withAttr(AttrBold, true)
}

// Dim returns a copy with dim explicitly enabled.
func (s TextStyle) Dim() TextStyle {
	return s.withAttr(AttrDim, true)
}

// Italic returns a copy with italic explicitly enabled.
func (s TextStyle) Italic() TextStyle {
	return s.withAttr(AttrItalic, true)
}

// Underline returns a copy with underline explicitly enabled.
func (s TextStyle) Underline() TextStyle {
	return s.withAttr(AttrUnderline, true)
}

// Strikethrough returns a copy with strikethrough explicitly enabled.
func (s TextStyle) Strikethrough() TextStyle {
	return s.withAttr(AttrStrikethrough, true)
}

// WithAttr returns a copy with the given attribute explicitly set on or off.
// An explicit off wins over an inherited on.
func (s TextStyle) WithAttr(a Attr, on bool) TextStyle {
	return s.withAttr(a, on)
}

func (s TextStyle) withAttr(a Attr, on bool) TextStyle {
	s.Set |= a
	if on {
		s.Attrs |= a
	} else {
		s.Attrs &^= a
	}
	return s
}

// HasAttr returns true if the style has the given attribute(s) enabled.
func (s TextStyle) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}

// Over resolves this style against an inherited style: explicitly-set fields
// of s win, everything else comes from parent.
func (s TextStyle) Over(parent TextStyle) TextStyle {
	out := parent
	out.Attrs = (parent.Attrs &^ s.Set) | (s.Attrs & s.Set)
	out.Set = parent.Set | s.Set
	if !s.Fg.IsDefault() {
		out.Fg = s.Fg
	}
	if !s.Bg.IsDefault() {
		out.Bg = s.Bg
	}
	return out
}

// Resolve downsamples both colors to the given color level. Attributes are
// unaffected; LevelNone keeps text readable but colorless.
func (s TextStyle) Resolve(level ColorLevel) TextStyle {
	s.Fg = s.Fg.Resolve(level)
	s.Bg = s.Bg.Resolve(level)
	return s
}

// IsZero returns true if the style carries no visible styling.
func (s TextStyle) IsZero() bool {
	return s.Attrs == AttrNone && s.Fg.IsDefault() && s.Bg.IsDefault()
}

// Equal returns true if both styles render identically. The Set mask is
// ignored: it matters for inheritance, not output.
func (s TextStyle) Equal(other TextStyle) bool {
	return s.Attrs == other.Attrs && s.Fg == other.Fg && s.Bg == other.Bg
}
