package hud

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script. Coordinates are
// logical, so one script drives the overlay at any resolution.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Delta  int     `json:"delta,omitempty"`
	Pause  bool    `json:"pause,omitempty"`
}

type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected input across frames for automated runs
// of an overlay. Attach it with Canvas.SetScriptRunner.
//
// Supported actions: interact, deactivate, screenshot, click, press, move, release,
// hold, drag, scroll and wait.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadInputScript parses a JSON input script.
func LoadInputScript(jsonData []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("hud: parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("hud: parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "interact", "deactivate", "screenshot", "click", "press", "move", "release", "hold", "drag", "scroll", "wait":
		default:
			return nil, fmt.Errorf("hud: parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches r. Its step runs at the start of every Update.
func (c *Canvas) SetScriptRunner(r *ScriptRunner) {
	c.runner = r
}

// Done reports whether every step has run and its input drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(c *Canvas) {
	if r.done {
		return
	}
	if len(c.injectQueue) > 0 {
		// Synthetic input only drains while active.
		if c.state != CanvasActive {
			logger.Warn("hud: script input dropped while canvas is inactive", "canvas", c.id, "step", r.cursor, "samples", len(c.injectQueue))
			c.injectQueue = c.injectQueue[:0]
		}
		return
	}
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
	p := c.ToPhysical(Vec2{st.X, st.Y})

	switch st.Action {
	case "interact":
		c.Interact(st.Pause)
	case "deactivate":
		c.Deactivate()
	case "screenshot":
		if c.loop == nil {
			logger.Warn("hud: screenshot step on a canvas without a loop", "canvas", c.id)
			break
		}
		c.loop.Screenshot(st.Label)
	case "click":
		c.InjectClick(p.X, p.Y)
	case "press":
		c.InjectPress(p.X, p.Y)
	case "move":
		c.InjectMove(p.X, p.Y)
	case "release":
		c.InjectRelease(p.X, p.Y)
	case "hold":
		c.InjectHold(p.X, p.Y, st.Frames)
	case "drag":
		to := c.ToPhysical(Vec2{st.ToX, st.ToY})
		c.InjectDrag(p.X, p.Y, to.X, to.Y, st.Frames)
	case "scroll":
		c.InjectScroll(p.X, p.Y, st.Delta)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
