package strata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// scriptStep represents a single action in an interaction script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DeltaX float64 `json:"deltaX,omitempty"`
	DeltaY float64 `json:"deltaY,omitempty"`
	Button string  `json:"button,omitempty"`
	Ctrl   bool    `json:"ctrl,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// interactionScript is the top-level JSON structure for a script.
type interactionScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected input events and snapshots across frames
// for automated interaction testing. Attach to an Engine via
// [Engine.SetScriptRunner]; the runner advances one step per frame once the
// inject queue has drained.
//
// Supported actions: "press", "move", "release", "click", "drag", "wheel",
// "wait", and "snapshot" (which writes a PNG of the current layout to
// SnapshotDir).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	// SnapshotDir is where "snapshot" steps write their PNGs.
	// Defaults to "snapshots".
	SnapshotDir string
}

// LoadScript parses a JSON interaction script and returns a ScriptRunner
// ready to be attached to an Engine.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var script interactionScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse interaction script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse interaction script: no steps")
	}
	return &ScriptRunner{steps: script.Steps, SnapshotDir: "snapshots"}, nil
}

// SetScriptRunner attaches a ScriptRunner to the engine. The runner's step
// method is called from Step before injected events are consumed each frame.
func (e *Engine) SetScriptRunner(runner *ScriptRunner) {
	e.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Engine.Step.
func (r *ScriptRunner) step(e *Engine) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(e.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	mods := KeyModifiers(0)
	if st.Ctrl {
		mods |= ModCtrl
	}

	switch st.Action {
	case "snapshot":
		r.snapshot(e, st.Label)
	case "press":
		e.InjectPress(st.X, st.Y, scriptButton(st.Button), mods)
	case "move":
		e.InjectMove(st.X, st.Y)
	case "release":
		e.InjectRelease(st.X, st.Y)
	case "click":
		e.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		e.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames, scriptButton(st.Button), mods)
	case "wheel":
		e.InjectWheel(st.X, st.Y, st.DeltaX, st.DeltaY, mods)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0 {
		r.done = true
	}
}

// snapshot writes the current layout as a labeled, timestamped PNG.
func (r *ScriptRunner) snapshot(e *Engine, label string) {
	dir := r.SnapshotDir
	if dir == "" {
		dir = "snapshots"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[strata] snapshot: mkdir %s: %v\n", dir, err)
		return
	}
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))

	f, err := os.Create(path)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[strata] snapshot: %v\n", err)
		return
	}
	defer f.Close()
	if err := e.ExportSnapshot(f); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[strata] snapshot: %v\n", err)
	}
}

// sanitizeLabel makes a script label safe for use in a filename.
func sanitizeLabel(label string) string {
	if label == "" {
		return "snapshot"
	}
	return strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			return c
		default:
			return '-'
		}
	}, label)
}

// scriptButton maps a script button name to a MouseButton. Empty and unknown
// names mean left.
func scriptButton(name string) MouseButton {
	switch name {
	case "middle":
		return MouseButtonMiddle
	case "right":
		return MouseButtonRight
	default:
		return MouseButtonLeft
	}
}
