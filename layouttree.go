package inline

import (
	"errors"

	"github.com/grindlemire/go-inline/internal/layout"
)

var (
	// ErrLeafOutsideText is returned when a TextLeaf appears anywhere but
	// inside a Text node.
	ErrLeafOutsideText = errors.New("inline: TextLeaf must be a child of Text")

	// ErrNodeInsideText is returned when a Box or Static appears inside a
	// Text node. Text runs only contain leaves and nested runs.
	ErrNodeInsideText = errors.New("inline: Box and Static cannot be nested inside Text")
)

// layoutHandle adapts a scene node to the layout engine. Handles are rebuilt
// on every render; the tree is small and rebuilding keeps the scene graph
// free of layout bookkeeping.
type layoutHandle struct {
	owner    Node
	children []layout.Layoutable
	result   layout.Layout
}

var _ layout.Layoutable = (*layoutHandle)(nil)

func (h *layoutHandle) LayoutStyle() layout.Style {
	if b, ok := h.owner.(*Box); ok {
		style := b.Layout
		if b.Border != BorderNone {
			// The border occupies one cell on each side of the content.
			style.Padding.Top++
			style.Padding.Right++
			style.Padding.Bottom++
			style.Padding.Left++
		}
		return style
	}
	return layout.DefaultStyle()
}

func (h *layoutHandle) LayoutChildren() []layout.Layoutable {
	return h.children
}

func (h *layoutHandle) SetLayout(l layout.Layout) {
	h.result = l
}

func (h *layoutHandle) GetLayout() layout.Layout {
	return h.result
}

// IntrinsicSize measures natural content size. Text measures its flattened
// content; a Box accumulates children along its main axis, gaps and spacing
// included. Fixed child dimensions participate at their fixed size, percent
// dimensions at content size since the parent extent is unknown here.
func (h *layoutHandle) IntrinsicSize() (int, int) {
	if t, ok := h.owner.(*Text); ok {
		return measureText(t.content())
	}

	style := h.LayoutStyle()
	horizontal := style.Direction == layout.Row
	var width, height int
	for i, child := range h.children {
		cs := child.LayoutStyle()
		cw, ch := child.IntrinsicSize()
		if cs.Width.Unit == layout.UnitFixed {
			cw = cs.Width.Resolve(0, cw)
		}
		if cs.Height.Unit == layout.UnitFixed {
			ch = cs.Height.Resolve(0, ch)
		}
		cw += cs.Margin.Horizontal()
		ch += cs.Margin.Vertical()

		if horizontal {
			width += cw
			if i > 0 {
				width += style.Gap
			}
			if ch > height {
				height = ch
			}
		} else {
			height += ch
			if i > 0 {
				height += style.Gap
			}
			if cw > width {
				width = cw
			}
		}
	}
	return width + style.Padding.Horizontal(), height + style.Padding.Vertical()
}

// buildLayout validates the dynamic tree rooted at root, computes flexbox
// layout for the given terminal size, and returns the root handle. Static
// subtrees are validated but excluded from layout; they never occupy space in
// the dynamic region.
func buildLayout(root Node, width, height int) (*layoutHandle, error) {
	handle, err := buildHandle(root)
	if err != nil {
		return nil, err
	}
	layout.Calculate(handle, width, height)
	return handle, nil
}

func buildHandle(n Node) (*layoutHandle, error) {
	switch node := n.(type) {
	case *Box:
		h := &layoutHandle{owner: node}
		node.handle = h
		for _, child := range node.Children {
			switch c := child.(type) {
			case *TextLeaf:
				return nil, ErrLeafOutsideText
			case *Static:
				if err := validateStatic(c); err != nil {
					return nil, err
				}
			default:
				ch, err := buildHandle(child)
				if err != nil {
					return nil, err
				}
				h.children = append(h.children, ch)
			}
		}
		return h, nil

	case *Text:
		if err := validateText(node); err != nil {
			return nil, err
		}
		h := &layoutHandle{owner: node}
		node.handle = h
		return h, nil

	case *TextLeaf:
		return nil, ErrLeafOutsideText

	case *Static:
		// A bare Static has no dynamic content. Render handles extraction;
		// layout sees an empty box.
		if err := validateStatic(node); err != nil {
			return nil, err
		}
		h := &layoutHandle{owner: node}
		return h, nil
	}
	return nil, errors.New("inline: unknown node type")
}

func validateText(t *Text) error {
	for _, child := range t.Children {
		switch c := child.(type) {
		case *TextLeaf:
		case *Text:
			if err := validateText(c); err != nil {
				return err
			}
		default:
			return ErrNodeInsideText
		}
	}
	return nil
}

// validateStatic checks static children without laying them out. Each child
// is laid out on its own at full terminal width when it is committed.
func validateStatic(s *Static) error {
	for _, child := range s.Children {
		switch c := child.(type) {
		case *TextLeaf:
			return ErrLeafOutsideText
		case *Static:
			return errors.New("inline: Static cannot be nested inside Static")
		case *Text:
			if err := validateText(c); err != nil {
				return err
			}
		case *Box:
			if _, err := buildHandleDry(c); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildHandleDry validates a subtree without touching node handles, so
// validation of uncommitted static children does not clobber the layout of
// the dynamic tree.
func buildHandleDry(n Node) (*layoutHandle, error) {
	switch node := n.(type) {
	case *Box:
		h := &layoutHandle{owner: node}
		for _, child := range node.Children {
			switch child.(type) {
			case *TextLeaf:
				return nil, ErrLeafOutsideText
			case *Static:
				return nil, errors.New("inline: Static cannot be nested inside Static")
			default:
				ch, err := buildHandleDry(child)
				if err != nil {
					return nil, err
				}
				h.children = append(h.children, ch)
			}
		}
		return h, nil
	case *Text:
		if err := validateText(node); err != nil {
			return nil, err
		}
		return &layoutHandle{owner: node}, nil
	case *TextLeaf:
		return nil, ErrLeafOutsideText
	}
	return nil, errors.New("inline: unknown node type")
}
