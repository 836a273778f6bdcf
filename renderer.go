package inline

import (
	"sync"
)

// Renderer owns one inline rendering session on a terminal. It renders scene
// trees into frames, diffs each frame against the previous one line by line,
// and writes only the changed rows, addressed absolutely from the session
// anchor. Content committed through a Static node (or AppendStatic) is
// written above the anchor and never touched again.
//
// All methods are safe for concurrent use; writes to the terminal are
// serialized.
type Renderer struct {
	mu       sync.Mutex
	term     Terminal
	detector *LevelDetector
	forced   *ColorLevel

	// anchor is the absolute row of the first dynamic line. The first write
	// reserves rows with linefeeds and anchors the region at the bottom of
	// the screen, so pre-session content above is scrolled, never painted
	// over. Static commits advance the anchor; screen scrolls pull it back
	// up.
	anchor    int
	prev      []string
	prevWidth int
	prevRows  int
	started   bool
	disposed  bool

	esc *escBuilder
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithDetector uses the given color level detector instead of a fresh one
// reading the process environment.
func WithDetector(d *LevelDetector) RendererOption {
	return func(r *Renderer) {
		r.detector = d
	}
}

// WithLevel pins the color level, bypassing environment detection.
func WithLevel(level ColorLevel) RendererOption {
	return func(r *Renderer) {
		r.forced = &level
	}
}

// NewRenderer creates a renderer writing to term. Rendering begins on the
// first call to Render, which reserves room at the bottom of the screen and
// anchors the session there.
func NewRenderer(term Terminal, opts ...RendererOption) *Renderer {
	r := &Renderer{
		term: term,
		esc:  newEscBuilder(4096),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.detector == nil {
		r.detector = NewLevelDetector()
	}
	return r
}

// Level returns the color level this renderer emits at.
func (r *Renderer) Level() ColorLevel {
	if r.forced != nil {
		return *r.forced
	}
	return r.detector.Level(r.term.IsTTY())
}

// Render lays out and paints root, then updates the terminal with the
// minimal set of line writes. Unchanged lines produce no output at all;
// rendering the same tree twice writes nothing the second time. Uncommitted
// children of the tree's Static node are flushed above the dynamic region
// first. After Dispose, Render does nothing.
func (r *Renderer) Render(root Node) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disposed {
		return nil
	}

	cols, rows := r.term.Size()
	level := r.Level()

	var staticLines []string
	if s := findStatic(root); s != nil {
		var err error
		staticLines, err = extractStatic(s, cols, rows, level)
		if err != nil {
			return err
		}
	}

	frame, err := RenderFrame(root, cols, rows, level)
	if err != nil {
		return err
	}
	lines := frame.Lines
	if rows > 0 && len(lines) > rows {
		// Taller than the screen: keep the top. Absolute addressing
		// cannot survive content pushed into scrollback.
		lines = lines[:rows]
	}

	r.esc.Reset()
	body := newEscBuilder(4096)

	// The session starts by reserving one row per dynamic line with
	// linefeeds and anchoring at the bottom of the screen. Whatever was on
	// screen before the session scrolls up intact.
	if !r.started && rows > 0 {
		reserve := len(lines)
		if reserve < 1 {
			reserve = 1
		}
		for i := 0; i < reserve; i++ {
			body.Newline()
		}
		r.anchor = rows - reserve
		if r.anchor < 0 {
			r.anchor = 0
		}
	}

	// A resize reflows whatever is on screen, so neither the previous frame
	// nor the old anchor can be trusted row by row. Re-anchor at the bottom
	// and clear from whichever region starts higher.
	if r.prevWidth != 0 && (r.prevWidth != cols || r.prevRows != rows) && rows > 0 {
		anchor := rows - len(lines)
		if anchor < 0 {
			anchor = 0
		}
		if anchor > rows-1 {
			anchor = rows - 1
		}
		start := anchor
		if r.anchor >= 0 && r.anchor < start {
			start = r.anchor
		}
		body.CursorTo(start)
		body.ClearToScreenEnd()
		r.anchor = anchor
		r.prev = nil
	}

	if len(staticLines) > 0 {
		r.writeStatic(body, staticLines, rows, len(lines))
		r.prev = nil
	} else if over := r.anchor + len(lines) - rows; over > 0 && rows > 0 {
		// Not enough room below the anchor: scroll the screen. The
		// previous frame shifts up with everything else, so the diff
		// below stays valid.
		r.scrollUp(body, rows, over)
	}

	r.diffLines(body, lines)

	if body.Len() == 0 && r.started {
		r.prev = lines
		r.prevWidth = cols
		r.prevRows = rows
		return nil
	}

	if !r.started {
		r.esc.HideCursor()
		r.started = true
	}
	r.esc.BeginSync()
	r.esc.WriteString(string(body.Bytes()))
	r.parkCursor(rows, len(lines))
	r.esc.EndSync()

	if _, err := r.term.Write(r.esc.Bytes()); err != nil {
		return err
	}
	r.prev = lines
	r.prevWidth = cols
	r.prevRows = rows
	return nil
}

// AppendStatic writes pre-rendered lines above the dynamic region and
// advances the anchor past them. The current dynamic content is redrawn at
// its new position in the same synchronized write. After Dispose,
// AppendStatic does nothing.
func (r *Renderer) AppendStatic(lines ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disposed || len(lines) == 0 {
		return nil
	}

	_, rows := r.term.Size()
	r.esc.Reset()
	body := newEscBuilder(4096)

	// Starting the session here still reserves a row at the bottom first,
	// so the pre-session cursor line scrolls up instead of being cleared.
	if !r.started && rows > 0 {
		body.Newline()
		r.anchor = rows - 1
	}

	prev := r.prev
	r.writeStatic(body, lines, rows, len(prev))
	r.prev = nil
	r.diffLines(body, prev)
	r.prev = prev

	if !r.started {
		r.esc.HideCursor()
		r.started = true
	}
	r.esc.BeginSync()
	r.esc.WriteString(string(body.Bytes()))
	r.parkCursor(rows, len(prev))
	r.esc.EndSync()

	if _, err := r.term.Write(r.esc.Bytes()); err != nil {
		return err
	}
	return nil
}

// Dispose clears the dynamic region, restores the cursor, and ends the
// session. Static content stays on screen. Dispose is idempotent, and a
// disposed renderer ignores further Render and AppendStatic calls.
func (r *Renderer) Dispose() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disposed {
		return nil
	}
	r.disposed = true

	if !r.started {
		return nil
	}
	r.esc.Reset()
	r.esc.CursorTo(r.anchor)
	r.esc.ClearToScreenEnd()
	r.esc.ShowCursor()
	_, err := r.term.Write(r.esc.Bytes())
	r.prev = nil
	return err
}

// writeStatic clears the dynamic region, writes the static lines starting at
// the anchor, and moves the anchor below them, scrolling if the dynamic
// content would no longer fit on screen. Callers invalidate r.prev so the
// dynamic region is fully redrawn afterwards.
func (r *Renderer) writeStatic(body *escBuilder, lines []string, rows, dynHeight int) {
	body.CursorTo(r.anchor)
	body.ClearToScreenEnd()
	for _, line := range lines {
		body.WriteString(line)
		body.Newline()
	}

	r.anchor += len(lines)
	if rows > 0 && r.anchor > rows-1 {
		// Writing past the bottom already scrolled the screen.
		r.anchor = rows - 1
	}
	if over := r.anchor + dynHeight - rows; over > 0 && rows > 0 {
		r.scrollUp(body, rows, over)
	}
}

// scrollUp scrolls the screen n rows by emitting newlines at the bottom row
// and pulls the anchor up to match.
func (r *Renderer) scrollUp(body *escBuilder, rows, n int) {
	if n > r.anchor {
		n = r.anchor
	}
	if n <= 0 {
		return
	}
	body.CursorTo(rows - 1)
	for i := 0; i < n; i++ {
		body.Newline()
	}
	r.anchor -= n
}

// diffLines emits writes for every line that differs from the previous
// frame, plus clears for previous rows beyond the new frame's end.
func (r *Renderer) diffLines(body *escBuilder, lines []string) {
	for i, line := range lines {
		if i < len(r.prev) && r.prev[i] == line {
			continue
		}
		body.CursorTo(r.anchor + i)
		body.ClearToLineEnd()
		body.WriteString(line)
	}
	for i := len(lines); i < len(r.prev); i++ {
		body.CursorTo(r.anchor + i)
		body.ClearToLineEnd()
	}
}

// parkCursor leaves the cursor on the row just below the dynamic region.
func (r *Renderer) parkCursor(rows, dynHeight int) {
	park := r.anchor + dynHeight
	if rows > 0 && park > rows-1 {
		park = rows - 1
	}
	r.esc.CursorTo(park)
}
