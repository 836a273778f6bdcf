package inline

import "testing"

func envLookup(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func TestLevelDetector_Precedence(t *testing.T) {
	type tc struct {
		env   map[string]string
		isTTY bool
		want  ColorLevel
	}

	tests := map[string]tc{
		"no environment, tty": {
			env:   map[string]string{},
			isTTY: true,
			want:  LevelBasic,
		},
		"no environment, piped": {
			env:   map[string]string{},
			isTTY: false,
			want:  LevelNone,
		},
		"NO_COLOR beats FORCE_COLOR": {
			env:   map[string]string{"NO_COLOR": "1", "FORCE_COLOR": "3", "COLORTERM": "truecolor"},
			isTTY: true,
			want:  LevelNone,
		},
		"FORCE_COLOR zero disables": {
			env:   map[string]string{"FORCE_COLOR": "0", "COLORTERM": "truecolor"},
			isTTY: true,
			want:  LevelNone,
		},
		"FORCE_COLOR one": {
			env:   map[string]string{"FORCE_COLOR": "1"},
			isTTY: false,
			want:  LevelBasic,
		},
		"FORCE_COLOR two": {
			env:   map[string]string{"FORCE_COLOR": "2"},
			isTTY: false,
			want:  Level256,
		},
		"FORCE_COLOR three": {
			env:   map[string]string{"FORCE_COLOR": "3"},
			isTTY: false,
			want:  LevelTrue,
		},
		"unparseable FORCE_COLOR falls through": {
			env:   map[string]string{"FORCE_COLOR": "yes", "COLORTERM": "truecolor"},
			isTTY: true,
			want:  LevelTrue,
		},
		"COLORTERM truecolor": {
			env:   map[string]string{"COLORTERM": "truecolor", "TERM": "xterm-256color"},
			isTTY: true,
			want:  LevelTrue,
		},
		"COLORTERM 24bit": {
			env:   map[string]string{"COLORTERM": "24bit"},
			isTTY: true,
			want:  LevelTrue,
		},
		"TERM 256color suffix": {
			env:   map[string]string{"TERM": "xterm-256color"},
			isTTY: true,
			want:  Level256,
		},
		"TERM dumb": {
			env:   map[string]string{"TERM": "dumb"},
			isTTY: true,
			want:  LevelNone,
		},
		"plain TERM on tty": {
			env:   map[string]string{"TERM": "xterm"},
			isTTY: true,
			want:  LevelBasic,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d := NewLevelDetectorEnv(envLookup(tt.env))
			if got := d.Level(tt.isTTY); got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelDetector_CachesFirstResult(t *testing.T) {
	vars := map[string]string{"COLORTERM": "truecolor"}
	d := NewLevelDetectorEnv(envLookup(vars))

	if got := d.Level(true); got != LevelTrue {
		t.Fatalf("Level() = %v, want truecolor", got)
	}

	// Later environment changes are invisible until Reset.
	delete(vars, "COLORTERM")
	if got := d.Level(true); got != LevelTrue {
		t.Errorf("Level() after env change = %v, want cached truecolor", got)
	}

	d.Reset()
	if got := d.Level(true); got != LevelBasic {
		t.Errorf("Level() after Reset = %v, want re-detected basic", got)
	}
}

func TestLevelDetector_CachesPerTTY(t *testing.T) {
	// With an empty environment the result depends entirely on isTTY, so a
	// shared cache entry would leak one answer into the other.
	d := NewLevelDetectorEnv(envLookup(map[string]string{}))

	if got := d.Level(true); got != LevelBasic {
		t.Fatalf("Level(true) = %v, want basic", got)
	}
	if got := d.Level(false); got != LevelNone {
		t.Errorf("Level(false) after Level(true) = %v, want none", got)
	}
	if got := d.Level(true); got != LevelBasic {
		t.Errorf("Level(true) second call = %v, want basic", got)
	}
}

func TestLevelDetector_ForceOverrides(t *testing.T) {
	d := NewLevelDetectorEnv(envLookup(map[string]string{"NO_COLOR": "1"}))
	d.Force(LevelTrue)

	if got := d.Level(false); got != LevelTrue {
		t.Errorf("Level() = %v, want forced truecolor", got)
	}

	d.Reset()
	if got := d.Level(false); got != LevelNone {
		t.Errorf("Level() after Reset = %v, want detected none", got)
	}
}

func TestColorLevelString(t *testing.T) {
	want := map[ColorLevel]string{
		LevelNone:  "none",
		LevelBasic: "basic",
		Level256:   "256",
		LevelTrue:  "truecolor",
	}
	for level, s := range want {
		if got := level.String(); got != s {
			t.Errorf("%d.String() = %q, want %q", level, got, s)
		}
	}
}
