package inline

// findStatic returns the first Static node in the tree, depth-first. Extra
// Static nodes are tolerated but never committed; one append-only region per
// tree is the supported shape.
func findStatic(n Node) *Static {
	switch node := n.(type) {
	case *Static:
		return node
	case *Box:
		for _, child := range node.Children {
			if s := findStatic(child); s != nil {
				return s
			}
		}
	}
	return nil
}

// extractStatic renders the uncommitted children of s at full terminal width
// and marks them committed. The returned lines are appended above the dynamic
// region exactly once; later mutation or removal of committed children has no
// visible effect. Static output is never height-capped, it scrolls away like
// ordinary program output.
func extractStatic(s *Static, cols, rows int, level ColorLevel) ([]string, error) {
	if s == nil || s.committed >= len(s.Children) {
		return nil, nil
	}

	var lines []string
	for _, child := range s.Children[s.committed:] {
		frame, err := RenderFrame(child, cols, rows, level)
		if err != nil {
			return nil, err
		}
		lines = append(lines, frame.Lines...)
	}
	s.committed = len(s.Children)
	return lines, nil
}
