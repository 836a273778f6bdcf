package inline

// Node is an element of the scene tree handed to Render. The concrete kinds
// are *Box (flex container), *Text (styled text run), *TextLeaf (raw string
// content inside a Text), and *Static (append-only region). The interface is
// sealed; rendering switches exhaustively over these four types.
type Node interface {
	isNode()
}

// Box is a flex container. It lays out its children with the flexbox rules in
// Layout, optionally paints a background and border, and contributes its
// TextStyle to the inherited style of descendant text.
type Box struct {
	Layout LayoutStyle

	// Style is inherited by descendant Text nodes and used to draw the
	// border characters. Fields left unset inherit from the enclosing box.
	Style TextStyle

	// Background fills the box's border box. The default color leaves
	// whatever is underneath untouched.
	Background Color

	// ExtendBackground extends the background color to the right edge of
	// the terminal on every row of the box, using clear-to-EOL rather than
	// explicit padding cells.
	ExtendBackground bool

	Border   BorderStyle
	Children []Node

	handle *layoutHandle
}

func (*Box) isNode() {}

// NewBox creates a Box with the given options. By default a Box has Auto
// width and height and lays out children in a row.
func NewBox(opts ...BoxOption) *Box {
	b := &Box{Layout: DefaultLayoutStyle()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Append adds children and returns the box for chaining.
func (b *Box) Append(children ...Node) *Box {
	b.Children = append(b.Children, children...)
	return b
}

// Text is a run of styled text. Its children are *TextLeaf content and nested
// *Text runs; nested runs resolve their style nearest-wins against this one.
// A Text is a layout leaf: flexbox never descends into it, it measures as a
// single block of content.
type Text struct {
	Style    TextStyle
	Children []Node

	handle *layoutHandle
}

func (*Text) isNode() {}

// NewText creates a Text with the given options.
func NewText(opts ...TextOption) *Text {
	t := &Text{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Append adds child spans and returns the text for chaining.
func (t *Text) Append(children ...Node) *Text {
	t.Children = append(t.Children, children...)
	return t
}

// content returns the flattened string of the run, nested spans included.
func (t *Text) content() string {
	var sb []byte
	t.appendContent(&sb)
	return string(sb)
}

func (t *Text) appendContent(sb *[]byte) {
	for _, child := range t.Children {
		switch c := child.(type) {
		case *TextLeaf:
			*sb = append(*sb, c.Content...)
		case *Text:
			c.appendContent(sb)
		}
	}
}

// TextLeaf is raw string content. It only appears inside a Text node; Content
// may span multiple lines with \n.
type TextLeaf struct {
	Content string
}

func (*TextLeaf) isNode() {}

// Str creates a TextLeaf. It is the usual way to put content into a Text:
//
//	NewText(WithStyle(NewTextStyle().Bold()), WithSpan(Str("done")))
func Str(content string) *TextLeaf {
	return &TextLeaf{Content: content}
}

// Static holds content that is emitted once and never repainted: log lines,
// completed task output, anything that should scroll away naturally. On each
// render, children beyond the committed count are laid out at full terminal
// width, written above the dynamic region, and marked committed. Mutating or
// removing committed children has no visible effect.
type Static struct {
	Children []Node

	committed int
}

func (*Static) isNode() {}

// NewStatic creates a Static region with the given initial children.
func NewStatic(children ...Node) *Static {
	return &Static{Children: children}
}

// Append adds children to be committed on the next render.
func (s *Static) Append(children ...Node) *Static {
	s.Children = append(s.Children, children...)
	return s
}

// Committed returns how many children have been written to the terminal.
func (s *Static) Committed() int {
	return s.committed
}
