package inline

// BorderStyle selects the box-drawing character set for a Box border.
type BorderStyle int

const (
	// BorderNone indicates no border should be drawn.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderRound uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRound
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderBold uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderBold
)

// borderChars holds the characters used to draw a box border.
type borderChars struct {
	topLeft     rune
	top         rune
	topRight    rune
	left        rune
	right       rune
	bottomLeft  rune
	bottom      rune
	bottomRight rune
}

// chars returns the box-drawing characters for this border style.
func (b BorderStyle) chars() borderChars {
	switch b {
	case BorderSingle:
		return borderChars{
			topLeft:     '┌',
			top:         '─',
			topRight:    '┐',
			left:        '│',
			right:       '│',
			bottomLeft:  '└',
			bottom:      '─',
			bottomRight: '┘',
		}
	case BorderRound:
		return borderChars{
			topLeft:     '╭',
			top:         '─',
			topRight:    '╮',
			left:        '│',
			right:       '│',
			bottomLeft:  '╰',
			bottom:      '─',
			bottomRight: '╯',
		}
	case BorderDouble:
		return borderChars{
			topLeft:     '╔',
			top:         '═',
			topRight:    '╗',
			left:        '║',
			right:       '║',
			bottomLeft:  '╚',
			bottom:      '═',
			bottomRight: '╝',
		}
	case BorderBold:
		return borderChars{
			topLeft:     '┏',
			top:         '━',
			topRight:    '┓',
			left:        '┃',
			right:       '┃',
			bottomLeft:  '┗',
			bottom:      '━',
			bottomRight: '┛',
		}
	default:
		return borderChars{
			topLeft:     ' ',
			top:         ' ',
			topRight:    ' ',
			left:        ' ',
			right:       ' ',
			bottomLeft:  ' ',
			bottom:      ' ',
			bottomRight: ' ',
		}
	}
}
