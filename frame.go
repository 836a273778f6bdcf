package inline

// Frame is one rendered picture of the dynamic region: a styled string per
// row, ready for line-level diffing. Lines carry inline SGR sequences but no
// positioning escapes.
type Frame struct {
	Lines  []string
	Width  int
	Height int
}

// RenderFrame lays out and paints root at the given terminal size. cols is
// the terminal width; rows is the space available for percentage heights. The
// frame's own height comes from layout and may exceed rows. A tree that lays
// out to zero height, or a degenerate terminal size, produces an empty frame.
func RenderFrame(root Node, cols, rows int, level ColorLevel) (Frame, error) {
	if cols <= 0 || rows <= 0 {
		return Frame{}, nil
	}

	handle, err := buildLayout(root, cols, rows)
	if err != nil {
		return Frame{}, err
	}

	height := handle.GetLayout().Rect.Bottom()
	if height <= 0 {
		return Frame{Width: cols, Height: 0}, nil
	}

	buf := NewOutputBuffer(cols, height)
	paintTree(buf, root, level)
	return Frame{
		Lines:  buf.Lines(),
		Width:  cols,
		Height: height,
	}, nil
}
