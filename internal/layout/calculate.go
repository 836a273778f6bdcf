package layout

// Calculate performs layout on the tree rooted at root, populating every
// node's Layout. availableWidth and availableHeight are the root constraint,
// typically the terminal size. The root takes the full available width unless
// pinned; an auto height resolves to the root's intrinsic height, so inline
// frames grow and shrink with their content.
func Calculate(root Layoutable, availableWidth, availableHeight int) {
	if root == nil {
		return
	}
	if availableWidth < 0 {
		availableWidth = 0
	}

	style := root.LayoutStyle()
	_, intrinsicH := root.IntrinsicSize()

	width := style.Width.Resolve(availableWidth, availableWidth)
	height := style.Height.Resolve(availableHeight, intrinsicH)

	calculateNode(root, NewRect(0, 0, width, height))
}

// calculateNode computes the layout for a single node within the available
// space. The available rect is the border box allocated by the parent (margin
// already applied).
func calculateNode(node Layoutable, available Rect) {
	style := node.LayoutStyle()

	borderBox := computeBorderBox(style, available)
	contentRect := borderBox.Inset(style.Padding)
	if contentRect.Width < 0 {
		contentRect.Width = 0
	}
	if contentRect.Height < 0 {
		contentRect.Height = 0
	}

	if children := node.LayoutChildren(); len(children) > 0 {
		layoutChildren(style, children, contentRect)
	}

	node.SetLayout(Layout{
		Rect:        borderBox,
		ContentRect: contentRect,
	})
}

// computeBorderBox clamps the parent-allocated dimensions against the node's
// min/max constraints. Width/Height were already consumed by the parent's
// flex pass, so only the constraints apply here.
func computeBorderBox(style Style, available Rect) Rect {
	width := available.Width
	height := available.Height

	minWidth := style.MinWidth.Resolve(available.Width, 0)
	maxWidth := style.MaxWidth.Resolve(available.Width, available.Width)
	width = clamp(width, minWidth, maxWidth)

	minHeight := style.MinHeight.Resolve(available.Height, 0)
	maxHeight := style.MaxHeight.Resolve(available.Height, available.Height)
	height = clamp(height, minHeight, maxHeight)

	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	return Rect{X: available.X, Y: available.Y, Width: width, Height: height}
}

// clamp restricts v to [minVal, maxVal]. If minVal > maxVal, minVal wins
// (matches CSS).
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
