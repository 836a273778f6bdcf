package inline

import "testing"

func TestOutputBuffer_SetGrapheme(t *testing.T) {
	b := NewOutputBuffer(10, 2)

	if w := b.SetGrapheme(0, 0, "a", TextStyle{}); w != 1 {
		t.Errorf("width of 'a' = %d, want 1", w)
	}
	if w := b.SetGrapheme(1, 0, "你", TextStyle{}); w != 2 {
		t.Errorf("width of wide cluster = %d, want 2", w)
	}
	if got := b.Cell(1, 0); got.Content != "你" || got.Width != 2 {
		t.Errorf("cell (1,0) = %+v, want wide cluster", got)
	}
	if got := b.Cell(2, 0); !got.IsContinuation() {
		t.Errorf("cell (2,0) = %+v, want continuation", got)
	}
}

func TestOutputBuffer_OverwriteWideCluster(t *testing.T) {
	t.Run("overwriting the start blanks the continuation", func(t *testing.T) {
		b := NewOutputBuffer(10, 1)
		b.SetGrapheme(0, 0, "你", TextStyle{})
		b.SetGrapheme(0, 0, "x", TextStyle{})

		if got := b.Cell(1, 0); got.IsContinuation() {
			t.Errorf("cell (1,0) = %+v, want blanked continuation", got)
		}
		if got := b.Line(0); got != "x" {
			t.Errorf("Line(0) = %q, want %q", got, "x")
		}
	})

	t.Run("overwriting the continuation blanks the start", func(t *testing.T) {
		b := NewOutputBuffer(10, 1)
		b.SetGrapheme(0, 0, "你", TextStyle{})
		b.SetGrapheme(1, 0, "x", TextStyle{})

		if got := b.Cell(0, 0); got.Content != " " {
			t.Errorf("cell (0,0) = %+v, want blank", got)
		}
		if got := b.Line(0); got != " x" {
			t.Errorf("Line(0) = %q, want %q", got, " x")
		}
	})

	t.Run("wide cluster evicts overlapped wide cluster", func(t *testing.T) {
		b := NewOutputBuffer(10, 1)
		b.SetGrapheme(2, 0, "好", TextStyle{})
		b.SetGrapheme(1, 0, "你", TextStyle{})

		if got := b.Cell(1, 0); got.Content != "你" {
			t.Errorf("cell (1,0) = %+v, want new wide cluster", got)
		}
		if got := b.Cell(3, 0); got.IsContinuation() {
			t.Errorf("cell (3,0) = %+v, want blanked tail of evicted cluster", got)
		}
	})
}

func TestOutputBuffer_WideClusterAtRightEdge(t *testing.T) {
	b := NewOutputBuffer(3, 1)
	b.SetGrapheme(0, 0, "a", TextStyle{})
	if w := b.SetGrapheme(2, 0, "你", TextStyle{}); w != 1 {
		t.Errorf("edge write width = %d, want 1 (space placeholder)", w)
	}
	if got := b.Cell(2, 0); got.Content != " " {
		t.Errorf("cell (2,0) = %+v, want space placeholder", got)
	}
}

func TestOutputBuffer_Line(t *testing.T) {
	t.Run("trailing blanks trimmed", func(t *testing.T) {
		b := NewOutputBuffer(20, 1)
		for i, r := range "hi" {
			b.SetGrapheme(i, 0, string(r), TextStyle{})
		}
		if got := b.Line(0); got != "hi" {
			t.Errorf("Line(0) = %q, want %q", got, "hi")
		}
	})

	t.Run("styled run opens and closes once", func(t *testing.T) {
		b := NewOutputBuffer(20, 1)
		bold := NewTextStyle().Bold()
		for i, r := range "ab" {
			b.SetGrapheme(i, 0, string(r), bold)
		}
		want := "\x1b[1mab\x1b[0m"
		if got := b.Line(0); got != want {
			t.Errorf("Line(0) = %q, want %q", got, want)
		}
	})

	t.Run("style change resets before new style", func(t *testing.T) {
		b := NewOutputBuffer(20, 1)
		b.SetGrapheme(0, 0, "a", NewTextStyle().Bold())
		b.SetGrapheme(1, 0, "b", NewTextStyle().Foreground(Red))
		want := "\x1b[1ma\x1b[0m\x1b[31mb\x1b[0m"
		if got := b.Line(0); got != want {
			t.Errorf("Line(0) = %q, want %q", got, want)
		}
	})

	t.Run("styled trailing spaces survive trimming", func(t *testing.T) {
		b := NewOutputBuffer(5, 1)
		bg := TextStyle{Bg: Red}
		b.SetGrapheme(0, 0, "a", bg)
		b.SetGrapheme(1, 0, " ", bg)
		want := "\x1b[41ma \x1b[0m"
		if got := b.Line(0); got != want {
			t.Errorf("Line(0) = %q, want %q", got, want)
		}
	})

	t.Run("extended background ends with clear to eol", func(t *testing.T) {
		b := NewOutputBuffer(5, 1)
		bg := TextStyle{Bg: Red}
		b.SetGrapheme(0, 0, "a", bg)
		b.ExtendBackground(0, Red)
		// Style stays open across the clear so the background bleeds to
		// the terminal edge.
		want := "\x1b[41ma\x1b[K\x1b[0m"
		if got := b.Line(0); got != want {
			t.Errorf("Line(0) = %q, want %q", got, want)
		}
	})

	t.Run("empty row is empty string", func(t *testing.T) {
		b := NewOutputBuffer(10, 1)
		if got := b.Line(0); got != "" {
			t.Errorf("Line(0) = %q, want empty", got)
		}
	})
}

func TestOutputBuffer_FillRect(t *testing.T) {
	b := NewOutputBuffer(6, 2)
	b.FillRect(NewRect(1, 0, 3, 2), TextStyle{Bg: Blue})

	for y := 0; y < 2; y++ {
		for x := 1; x < 4; x++ {
			if got := b.Cell(x, y); !got.Style.Bg.Equal(Blue) {
				t.Errorf("cell (%d,%d) style = %+v, want blue background", x, y, got.Style)
			}
		}
	}
	if got := b.Cell(0, 0); !got.Style.IsZero() {
		t.Errorf("cell (0,0) = %+v, want untouched", got)
	}
	if got := b.Cell(4, 0); !got.Style.IsZero() {
		t.Errorf("cell (4,0) = %+v, want untouched", got)
	}
}

func TestOutputBuffer_ZeroSize(t *testing.T) {
	b := NewOutputBuffer(0, 0)
	b.SetGrapheme(0, 0, "a", TextStyle{})
	if got := b.Lines(); len(got) != 0 {
		t.Errorf("Lines() = %v, want empty", got)
	}

	neg := NewOutputBuffer(-3, -1)
	if neg.Width() != 0 || neg.Height() != 0 {
		t.Errorf("negative size buffer = %dx%d, want 0x0", neg.Width(), neg.Height())
	}
}
