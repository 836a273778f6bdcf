package inline

import (
	"os"
	"strings"
	"sync"
)

// ColorLevel is the negotiated color depth capability of a terminal.
type ColorLevel int

const (
	// LevelNone indicates no color output at all.
	LevelNone ColorLevel = iota
	// LevelBasic indicates the 16 standard ANSI colors.
	LevelBasic
	// Level256 indicates the ANSI 256 palette.
	Level256
	// LevelTrue indicates 24-bit true color.
	LevelTrue
)

// String returns a human-readable name for the level.
func (l ColorLevel) String() string {
	switch l {
	case LevelBasic:
		return "basic"
	case Level256:
		return "256"
	case LevelTrue:
		return "truecolor"
	default:
		return "none"
	}
}

// LevelDetector resolves and caches the terminal's color level from the
// environment. Construct one per process (or per test) and pass it by
// reference; there is no package-level mutable state, so tests can run
// concurrently with their own detectors.
type LevelDetector struct {
	mu     sync.Mutex
	env    func(string) string // Getenv hook; nil means os.Getenv
	cached [2]*ColorLevel      // indexed by isTTY
	forced *ColorLevel
}

// NewLevelDetector returns a detector reading the process environment.
func NewLevelDetector() *LevelDetector {
	return &LevelDetector{}
}

// NewLevelDetectorEnv returns a detector reading the given lookup function
// instead of the process environment. Used by tests.
func NewLevelDetectorEnv(getenv func(string) string) *LevelDetector {
	return &LevelDetector{env: getenv}
}

// Level returns the resolved color level for a terminal, computing it on
// first use and caching it per isTTY value. isTTY reports whether output goes
// to a terminal; without one, TERM-based detection degrades to LevelNone.
//
// Precedence: NO_COLOR (any value, including empty assignment semantics of
// "set") beats everything; then FORCE_COLOR 0|1|2|3; then COLORTERM
// truecolor|24bit; then TERM. Unparseable values fall through to the next
// rule. Detection never fails.
func (d *LevelDetector) Level(isTTY bool) ColorLevel {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.forced != nil {
		return *d.forced
	}
	idx := 0
	if isTTY {
		idx = 1
	}
	if d.cached[idx] != nil {
		return *d.cached[idx]
	}

	level := d.detect(isTTY)
	d.cached[idx] = &level
	return level
}

// Force overrides detection with an explicit level until Reset is called.
func (d *LevelDetector) Force(level ColorLevel) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.forced = &level
}

// Reset clears the cached detection results and any forced override.
func (d *LevelDetector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cached = [2]*ColorLevel{}
	d.forced = nil
}

func (d *LevelDetector) getenv(key string) string {
	if d.env != nil {
		return d.env(key)
	}
	return os.Getenv(key)
}

func (d *LevelDetector) detect(isTTY bool) ColorLevel {
	// NO_COLOR with any value disables color, regardless of FORCE_COLOR.
	if d.getenv("NO_COLOR") != "" {
		return LevelNone
	}

	switch d.getenv("FORCE_COLOR") {
	case "0":
		return LevelNone
	case "1":
		return LevelBasic
	case "2":
		return Level256
	case "3":
		return LevelTrue
	}

	colorterm := strings.ToLower(d.getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		return LevelTrue
	}

	term := strings.ToLower(d.getenv("TERM"))
	switch {
	case term == "dumb":
		return LevelNone
	case strings.HasSuffix(term, "-256color"):
		return Level256
	}

	if isTTY {
		return LevelBasic
	}
	return LevelNone
}
