package inline

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"
)

func vtWrite(t *testing.T, vt *VirtualTerminal, chunks ...string) {
	t.Helper()
	for _, c := range chunks {
		if _, err := vt.Write([]byte(c)); err != nil {
			t.Fatalf("Write() error: %v", err)
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := vt.Flush(ctx); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}
}

func TestVirtualTerminal_PrintAndMove(t *testing.T) {
	vt := NewVirtualTerminal(10, 4)
	vtWrite(t, vt, "abc\r\ndef")

	if got := vt.Row(0); got != "abc" {
		t.Errorf("row 0 = %q, want abc", got)
	}
	if got := vt.Row(1); got != "def" {
		t.Errorf("row 1 = %q, want def", got)
	}
	if col, row := vt.Cursor(); col != 3 || row != 1 {
		t.Errorf("cursor = (%d,%d), want (3,1)", col, row)
	}
}

func TestVirtualTerminal_CursorPosition(t *testing.T) {
	vt := NewVirtualTerminal(10, 4)
	vtWrite(t, vt, "\x1b[3;2Hx")

	if got := vt.Row(2); got != " x" {
		t.Errorf("row 2 = %q, want %q", got, " x")
	}
	if col, row := vt.Cursor(); col != 2 || row != 2 {
		t.Errorf("cursor = (%d,%d), want (2,2)", col, row)
	}

	// Omitted parameters default to 1.
	vtWrite(t, vt, "\x1b[Hy")
	if got := vt.Row(0); got != "y" {
		t.Errorf("row 0 = %q, want y", got)
	}
}

func TestVirtualTerminal_EraseLine(t *testing.T) {
	vt := NewVirtualTerminal(10, 2)
	vtWrite(t, vt, "abcdef\x1b[1;3H\x1b[K")

	if got := vt.Row(0); got != "ab" {
		t.Errorf("row 0 = %q, want ab", got)
	}
}

func TestVirtualTerminal_EraseDisplay(t *testing.T) {
	vt := NewVirtualTerminal(10, 3)
	vtWrite(t, vt, "aa\r\nbb\r\ncc\x1b[2;1H\x1b[J")

	want := []string{"aa", "", ""}
	if got := vt.Screen(); !reflect.DeepEqual(got, want) {
		t.Errorf("screen = %q, want %q", got, want)
	}
}

func TestVirtualTerminal_LinefeedScrollsAtBottom(t *testing.T) {
	vt := NewVirtualTerminal(10, 2)
	vtWrite(t, vt, "one\r\ntwo\r\nthree")

	want := []string{"two", "three"}
	if got := vt.Screen(); !reflect.DeepEqual(got, want) {
		t.Errorf("screen = %q, want %q", got, want)
	}
	if got := vt.Scrollback(); !reflect.DeepEqual(got, []string{"one"}) {
		t.Errorf("scrollback = %q, want [one]", got)
	}
}

func TestVirtualTerminal_WideCharactersAdvanceTwoColumns(t *testing.T) {
	vt := NewVirtualTerminal(10, 1)
	vtWrite(t, vt, "你x")

	if col, _ := vt.Cursor(); col != 3 {
		t.Errorf("cursor col = %d, want 3", col)
	}
	if got := vt.Row(0); got != "你 x" && got != "你x" {
		// The grid keeps one placeholder column after the wide cell.
		t.Errorf("row 0 = %q", got)
	}
}

func TestVirtualTerminal_SGRAndModes(t *testing.T) {
	vt := NewVirtualTerminal(10, 1)
	vtWrite(t, vt, "\x1b[1;31mx\x1b[0m")

	if got := vt.Row(0); got != "x" {
		t.Errorf("row 0 = %q, want x (styling ignored)", got)
	}

	vtWrite(t, vt, "\x1b[?25l")
	if !vt.CursorHidden() {
		t.Error("cursor should be hidden after ?25l")
	}
	vtWrite(t, vt, "\x1b[?25h")
	if vt.CursorHidden() {
		t.Error("cursor should be visible after ?25h")
	}

	// Synchronized-output markers are tolerated silently.
	vtWrite(t, vt, "\x1b[?2026h\x1b[?2026l")
}

func TestVirtualTerminal_ContentLinesTrimsTrailingBlanks(t *testing.T) {
	vt := NewVirtualTerminal(10, 5)
	vtWrite(t, vt, "a\r\nb")

	if got := vt.ContentLines(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("ContentLines() = %q, want [a b]", got)
	}
}

func TestVirtualTerminal_UnknownSequenceFails(t *testing.T) {
	type tc struct {
		input string
		want  string
	}

	tests := map[string]tc{
		"unsupported CSI final": {
			input: "\x1b[5Z",
			want:  "unsupported CSI final",
		},
		"unsupported escape": {
			input: "\x1bQ",
			want:  "unsupported escape",
		},
		"truncated escape": {
			input: "abc\x1b",
			want:  "truncated escape",
		},
		"unterminated CSI": {
			input: "\x1b[12",
			want:  "unterminated CSI",
		},
		"unsupported private mode": {
			input: "\x1b[?47h",
			want:  "unsupported mode",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			vt := NewVirtualTerminal(10, 2)
			if _, err := vt.Write([]byte(tt.input)); err != nil {
				t.Fatalf("Write() error: %v", err)
			}
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			err := vt.Flush(ctx)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Flush() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestVirtualTerminal_SetSize(t *testing.T) {
	t.Run("width shrink truncates rows", func(t *testing.T) {
		vt := NewVirtualTerminal(10, 2)
		vtWrite(t, vt, "abcdef")
		vt.SetSize(3, 2)

		if got := vt.Row(0); got != "abc" {
			t.Errorf("row 0 = %q, want abc", got)
		}
		if cols, rows := vt.Size(); cols != 3 || rows != 2 {
			t.Errorf("Size() = %dx%d, want 3x2", cols, rows)
		}
	})

	t.Run("height shrink keeps cursor visible", func(t *testing.T) {
		vt := NewVirtualTerminal(10, 4)
		vtWrite(t, vt, "a\r\nb\r\nc\r\nd")
		vt.SetSize(10, 2)

		want := []string{"c", "d"}
		if got := vt.Screen(); !reflect.DeepEqual(got, want) {
			t.Errorf("screen = %q, want %q", got, want)
		}
		if got := vt.Scrollback(); !reflect.DeepEqual(got, []string{"a", "b"}) {
			t.Errorf("scrollback = %q, want [a b]", got)
		}
		if _, row := vt.Cursor(); row != 1 {
			t.Errorf("cursor row = %d, want 1", row)
		}
	})

	t.Run("height growth adds blank rows at the bottom", func(t *testing.T) {
		vt := NewVirtualTerminal(10, 2)
		vtWrite(t, vt, "a\r\nb")
		vt.SetSize(10, 4)

		want := []string{"a", "b", "", ""}
		if got := vt.Screen(); !reflect.DeepEqual(got, want) {
			t.Errorf("screen = %q, want %q", got, want)
		}
	})
}

func TestVirtualTerminal_WriteDoesNotApplyUntilFlush(t *testing.T) {
	vt := NewVirtualTerminal(10, 1)
	if _, err := vt.Write([]byte("hi")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	if got := vt.Row(0); got != "" {
		t.Errorf("row 0 before flush = %q, want blank", got)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := vt.Flush(ctx); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}
	if got := vt.Row(0); got != "hi" {
		t.Errorf("row 0 after flush = %q, want hi", got)
	}
}
