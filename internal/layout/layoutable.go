package layout

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Rect is the border box: the space allocated by the parent after
	// applying this node's margin. Use for bounds checks and backgrounds.
	Rect Rect

	// ContentRect is Rect minus padding, the area where children and text
	// are placed.
	ContentRect Rect
}

// Layoutable is the interface for anything that can participate in layout
// calculation. The engine works entirely with this interface, so the scene
// graph (or any other tree) can adapt itself without depending on a concrete
// node type.
type Layoutable interface {
	// LayoutStyle returns the layout style properties for this element.
	LayoutStyle() Style

	// LayoutChildren returns the children to be laid out.
	LayoutChildren() []Layoutable

	// SetLayout is called by the layout engine to store computed layout.
	SetLayout(Layout)

	// GetLayout returns the last computed layout.
	GetLayout() Layout

	// IntrinsicSize returns the natural content-based dimensions of this
	// element. For text leaves this is the display width of the content and
	// its line count; for containers it is derived from children. The engine
	// uses this as the base size for Auto-sized elements.
	IntrinsicSize() (width, height int)
}
