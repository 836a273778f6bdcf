package layout

// flexItem holds intermediate calculation state for one child.
// Stack-allocated per layout call, never stored on nodes.
type flexItem struct {
	node      Layoutable
	style     Style
	baseSize  int
	mainSize  int
	crossSize int
	mainPos   int
	crossPos  int
	grow      float64
	shrink    float64
}

// layoutChildren arranges children within the given content rect.
// This is the core flexbox pass: base sizes from explicit values or intrinsic
// content, free-space distribution via grow/shrink, min/max clamping, then
// justify and align placement, recursing into each child.
func layoutChildren(style Style, children []Layoutable, contentRect Rect) {
	isRow := style.Direction == Row

	mainSize := contentRect.Width
	crossSize := contentRect.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Phase 1: base sizes and flex factors. A child's base size on the main
	// axis is its explicit value when set, otherwise its intrinsic content
	// size. Margin counts toward the child's outer size.
	items := make([]flexItem, len(children))
	totalBase := 0
	totalGrow := 0.0
	totalShrink := 0.0

	for i, child := range children {
		item := &items[i]
		item.node = child
		item.style = child.LayoutStyle()

		intrinsicW, intrinsicH := child.IntrinsicSize()

		var mainValue Value
		var intrinsicMain, mainMargin int
		if isRow {
			mainValue = item.style.Width
			intrinsicMain = intrinsicW
			mainMargin = item.style.Margin.Horizontal()
		} else {
			mainValue = item.style.Height
			intrinsicMain = intrinsicH
			mainMargin = item.style.Margin.Vertical()
		}

		item.baseSize = mainValue.Resolve(mainSize, intrinsicMain) + mainMargin
		item.grow = item.style.FlexGrow
		item.shrink = item.style.FlexShrink

		totalBase += item.baseSize
		totalGrow += item.grow
		totalShrink += item.shrink
	}

	// Phase 2: distribute free space.
	totalGap := style.Gap * max(0, len(children)-1)
	freeSpace := mainSize - totalBase - totalGap

	switch {
	case freeSpace > 0 && totalGrow > 0:
		distributed := 0
		for i := range items {
			if items[i].grow > 0 {
				extra := int(float64(freeSpace) * items[i].grow / totalGrow)
				items[i].mainSize = items[i].baseSize + extra
				distributed += extra
			} else {
				items[i].mainSize = items[i].baseSize
			}
		}
		// Integer division leftovers go to the last growing item so the
		// children exactly fill the container.
		if rem := freeSpace - distributed; rem > 0 {
			for i := len(items) - 1; i >= 0; i-- {
				if items[i].grow > 0 {
					items[i].mainSize += rem
					break
				}
			}
		}
	case freeSpace < 0 && totalShrink > 0:
		deficit := -freeSpace
		for i := range items {
			if items[i].shrink > 0 {
				reduction := int(float64(deficit) * items[i].shrink / totalShrink)
				items[i].mainSize = max(0, items[i].baseSize-reduction)
			} else {
				items[i].mainSize = items[i].baseSize
			}
		}
	default:
		for i := range items {
			items[i].mainSize = items[i].baseSize
		}
	}

	// Phase 3: min/max constraints on the main axis.
	for i := range items {
		minMain := resolveMinMain(items[i].style, isRow, mainSize)
		maxMain := resolveMaxMain(items[i].style, isRow, mainSize)
		items[i].mainSize = clamp(items[i].mainSize, minMain, maxMain)
	}

	// Recompute free space after clamping; justify needs the real leftover.
	totalUsed := 0
	for i := range items {
		totalUsed += items[i].mainSize
	}
	freeSpace = mainSize - totalUsed - totalGap

	// Phase 4: main-axis positions.
	offset := justifyOffset(style.JustifyContent, freeSpace, len(items))
	spacing := justifySpacing(style.JustifyContent, freeSpace, len(items))

	for i := range items {
		items[i].mainPos = offset
		offset += items[i].mainSize + style.Gap + spacing
	}

	// Phase 5: cross-axis sizing and alignment.
	for i := range items {
		align := style.AlignItems
		if items[i].style.AlignSelf != nil {
			align = *items[i].style.AlignSelf
		}

		var crossValue Value
		var intrinsicCross, crossMargin int
		intrinsicW, intrinsicH := items[i].node.IntrinsicSize()
		if isRow {
			crossValue = items[i].style.Height
			intrinsicCross = intrinsicH
			crossMargin = items[i].style.Margin.Vertical()
		} else {
			crossValue = items[i].style.Width
			intrinsicCross = intrinsicW
			crossMargin = items[i].style.Margin.Horizontal()
		}

		availableCross := crossSize - crossMargin

		if align == AlignStretch && crossValue.IsAuto() {
			items[i].crossSize = crossSize
			items[i].crossPos = 0
		} else {
			contentCross := crossValue.Resolve(availableCross, intrinsicCross)
			items[i].crossSize = min(contentCross+crossMargin, crossSize)
			items[i].crossPos = alignOffset(align, crossSize, items[i].crossSize)
		}
	}

	// Phase 6: convert to rects and recurse.
	for i := range items {
		var slot Rect
		if isRow {
			slot = Rect{
				X:      contentRect.X + items[i].mainPos,
				Y:      contentRect.Y + items[i].crossPos,
				Width:  items[i].mainSize,
				Height: items[i].crossSize,
			}
		} else {
			slot = Rect{
				X:      contentRect.X + items[i].crossPos,
				Y:      contentRect.Y + items[i].mainPos,
				Width:  items[i].crossSize,
				Height: items[i].mainSize,
			}
		}

		// The child's border box is its slot minus margin; the child does not
		// re-apply margin.
		calculateNode(items[i].node, slot.Inset(items[i].style.Margin))
	}
}

// justifyOffset returns the initial main-axis offset for the given justify
// mode and leftover space.
func justifyOffset(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / (itemCount * 2)
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// justifySpacing returns the extra spacing inserted between children for the
// given justify mode.
func justifySpacing(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return freeSpace / (itemCount - 1)
	case JustifySpaceAround:
		return freeSpace / itemCount
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default:
		return 0
	}
}

// alignOffset returns the cross-axis offset for a child.
func alignOffset(align Align, crossSize, itemSize int) int {
	switch align {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}

func resolveMinMain(style Style, isRow bool, available int) int {
	if isRow {
		return style.MinWidth.Resolve(available, 0)
	}
	return style.MinHeight.Resolve(available, 0)
}

func resolveMaxMain(style Style, isRow bool, available int) int {
	if isRow {
		if style.MaxWidth.IsAuto() {
			return available
		}
		return style.MaxWidth.Resolve(available, available)
	}
	if style.MaxHeight.IsAuto() {
		return available
	}
	return style.MaxHeight.Resolve(available, available)
}
