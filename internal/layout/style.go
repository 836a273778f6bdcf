package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	// Row lays out children horizontally, left to right.
	Row Direction = iota
	// Column lays out children vertically, top to bottom.
	Column
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align uint8

const (
	AlignStretch Align = iota
	AlignStart
	AlignEnd
	AlignCenter
)

// Style holds the layout properties for a node.
type Style struct {
	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Flex container properties
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	Gap            int // Space between children along the main axis

	// Flex item properties
	FlexGrow   float64 // Share of free space to absorb relative to siblings
	FlexShrink float64 // Share of deficit to absorb relative to siblings
	AlignSelf  *Align  // Override parent's AlignItems (nil = inherit)

	// Spacing. Padding includes any border cells; the engine has no separate
	// border concept.
	Padding Edges
	Margin  Edges
}

// DefaultStyle returns a Style with sensible defaults: auto size, row
// direction, stretch alignment, shrink factor 1.
func DefaultStyle() Style {
	return Style{
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Fixed(0),
		MinHeight:  Fixed(0),
		MaxWidth:   Auto(),
		MaxHeight:  Auto(),
		Direction:  Row,
		AlignItems: AlignStretch,
		FlexShrink: 1.0,
	}
}
