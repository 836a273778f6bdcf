package inline

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// stringWidth returns the display width of s in terminal columns.
// Wide characters (CJK, most emoji) count as 2 columns.
func stringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// measureText returns the display dimensions of multi-line text: the widest
// line in columns and the line count. Empty text measures 0x1.
func measureText(s string) (width, height int) {
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		if w := stringWidth(line); w > width {
			width = w
		}
	}
	return width, len(lines)
}

// Truncate shortens s to at most width display columns, appending tail when
// anything was cut. The engine never wraps text; explicit-width text boxes
// use this to keep frames diff-stable.
func Truncate(s string, width int, tail string) string {
	return runewidth.Truncate(s, width, tail)
}
