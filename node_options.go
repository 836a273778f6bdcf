package inline

// BoxOption configures a Box.
type BoxOption func(*Box)

// --- Dimension Options ---

// WithWidth sets a fixed width in terminal cells.
func WithWidth(cells int) BoxOption {
	return func(b *Box) {
		b.Layout.Width = Fixed(cells)
	}
}

// WithWidthPercent sets width as a percentage of the parent's available width.
func WithWidthPercent(percent float64) BoxOption {
	return func(b *Box) {
		b.Layout.Width = Percent(percent)
	}
}

// WithHeight sets a fixed height in terminal cells.
func WithHeight(cells int) BoxOption {
	return func(b *Box) {
		b.Layout.Height = Fixed(cells)
	}
}

// WithHeightPercent sets height as a percentage of the parent's available height.
func WithHeightPercent(percent float64) BoxOption {
	return func(b *Box) {
		b.Layout.Height = Percent(percent)
	}
}

// WithSize sets both width and height in terminal cells.
func WithSize(width, height int) BoxOption {
	return func(b *Box) {
		b.Layout.Width = Fixed(width)
		b.Layout.Height = Fixed(height)
	}
}

// WithMinWidth sets the minimum width in terminal cells.
func WithMinWidth(cells int) BoxOption {
	return func(b *Box) {
		b.Layout.MinWidth = Fixed(cells)
	}
}

// WithMinHeight sets the minimum height in terminal cells.
func WithMinHeight(cells int) BoxOption {
	return func(b *Box) {
		b.Layout.MinHeight = Fixed(cells)
	}
}

// WithMaxWidth sets the maximum width in terminal cells.
func WithMaxWidth(cells int) BoxOption {
	return func(b *Box) {
		b.Layout.MaxWidth = Fixed(cells)
	}
}

// WithMaxHeight sets the maximum height in terminal cells.
func WithMaxHeight(cells int) BoxOption {
	return func(b *Box) {
		b.Layout.MaxHeight = Fixed(cells)
	}
}

// --- Flex Options ---

// WithDirection sets the main axis for laying out children.
func WithDirection(d Direction) BoxOption {
	return func(b *Box) {
		b.Layout.Direction = d
	}
}

// WithJustify sets how children are distributed along the main axis.
func WithJustify(j Justify) BoxOption {
	return func(b *Box) {
		b.Layout.JustifyContent = j
	}
}

// WithAlign sets how children are aligned along the cross axis.
func WithAlign(a Align) BoxOption {
	return func(b *Box) {
		b.Layout.AlignItems = a
	}
}

// WithGap sets the spacing between children in cells.
func WithGap(cells int) BoxOption {
	return func(b *Box) {
		b.Layout.Gap = cells
	}
}

// WithFlexGrow sets how much this box grows relative to siblings when there
// is extra space on the main axis.
func WithFlexGrow(factor float64) BoxOption {
	return func(b *Box) {
		b.Layout.FlexGrow = factor
	}
}

// WithFlexShrink sets how much this box shrinks relative to siblings when
// space is short on the main axis.
func WithFlexShrink(factor float64) BoxOption {
	return func(b *Box) {
		b.Layout.FlexShrink = factor
	}
}

// WithAlignSelf overrides the parent's AlignItems for this box.
func WithAlignSelf(a Align) BoxOption {
	return func(b *Box) {
		b.Layout.AlignSelf = &a
	}
}

// --- Spacing Options ---

// WithPadding sets uniform padding on all sides in cells.
func WithPadding(cells int) BoxOption {
	return func(b *Box) {
		b.Layout.Padding = EdgeAll(cells)
	}
}

// WithPaddingTRBL sets padding per side following CSS order: top, right,
// bottom, left.
func WithPaddingTRBL(top, right, bottom, left int) BoxOption {
	return func(b *Box) {
		b.Layout.Padding = EdgeTRBL(top, right, bottom, left)
	}
}

// WithMargin sets uniform margin on all sides in cells.
func WithMargin(cells int) BoxOption {
	return func(b *Box) {
		b.Layout.Margin = EdgeAll(cells)
	}
}

// WithMarginTRBL sets margin per side following CSS order: top, right,
// bottom, left.
func WithMarginTRBL(top, right, bottom, left int) BoxOption {
	return func(b *Box) {
		b.Layout.Margin = EdgeTRBL(top, right, bottom, left)
	}
}

// --- Visual Options ---

// WithBorder draws a border around the box. The border consumes one cell of
// padding on each side.
func WithBorder(style BorderStyle) BoxOption {
	return func(b *Box) {
		b.Border = style
	}
}

// WithBoxStyle sets the text style inherited by descendant text and used for
// the border characters.
func WithBoxStyle(s TextStyle) BoxOption {
	return func(b *Box) {
		b.Style = s
	}
}

// WithBackground fills the box with a background color.
func WithBackground(c Color) BoxOption {
	return func(b *Box) {
		b.Background = c
	}
}

// WithExtendBackground extends the background color to the right edge of the
// terminal on every row of the box.
func WithExtendBackground() BoxOption {
	return func(b *Box) {
		b.ExtendBackground = true
	}
}

// WithChildren appends children to the box.
func WithChildren(children ...Node) BoxOption {
	return func(b *Box) {
		b.Children = append(b.Children, children...)
	}
}

// TextOption configures a Text.
type TextOption func(*Text)

// WithContent appends raw string content to the run.
func WithContent(content string) TextOption {
	return func(t *Text) {
		t.Children = append(t.Children, Str(content))
	}
}

// WithSpan appends child spans (TextLeaf content or nested Text runs).
func WithSpan(children ...Node) TextOption {
	return func(t *Text) {
		t.Children = append(t.Children, children...)
	}
}

// WithStyle sets the run's text style. Unset fields inherit from the
// enclosing Text or Box.
func WithStyle(s TextStyle) TextOption {
	return func(t *Text) {
		t.Style = s
	}
}
