package hud

import "time"

// MouseState is the primary button state as seen by the canvas.
type MouseState uint8

const (
	MouseUp MouseState = iota
	MouseDown
)

func (s MouseState) String() string {
	if s == MouseDown {
		return "down"
	}
	return "up"
}

// CanvasState gates whether a canvas processes input.
type CanvasState uint8

const (
	CanvasInactive CanvasState = iota
	CanvasActive
)

func (s CanvasState) String() string {
	if s == CanvasActive {
		return "active"
	}
	return "inactive"
}

// processMouse runs the mouse state machine for one cursor sample.
func (c *Canvas) processMouse(now time.Time) {
	cur := &c.cursor
	switch c.mouse {
	case MouseUp:
		c.manager.hover(cur)
		if cur.Down {
			c.mouse = MouseDown
			c.manager.press(now)
			return
		}
		if cur.Scroll != 0 {
			c.manager.scroll(cur)
		}
	case MouseDown:
		if !cur.Down {
			c.manager.release(cur)
			c.mouse = MouseUp
			return
		}
		c.manager.hold(cur, now)
	}
}

// Interact puts the canvas in interactive mode. It is refused while the
// host is paused or the canvas is already active. With pause set the host
// simulation is paused, otherwise only world controls are disabled.
// Reports whether the canvas was activated.
func (c *Canvas) Interact(pause bool) bool {
	if c.host.Paused() || c.state == CanvasActive {
		return false
	}
	if top := c.topWidget(); top != nil && c.resolution.X > 0 && c.resolution.Y > 0 {
		b := top.bounds
		c.host.WarpCursor(b.X/c.resolution.X, b.Y/c.resolution.Y)
		c.cursor.Position = b.Min()
	}
	c.cursor.Visible = true
	c.host.SetCursorVisible(true)
	if pause {
		c.host.SetPaused(true)
		c.pausedBySelf = true
	} else {
		c.setWorldControls(false)
	}
	c.state = CanvasActive
	c.mouse = MouseUp
	c.cursor.Down = false
	logger.Debug("hud: canvas activated", "canvas", c.id, "pause", pause)
	c.publish(Event{Type: EventActivated})
	return true
}

// Open is Interact with the pause mode taken from Settings.PauseOnInteract.
func (c *Canvas) Open() bool {
	return c.Interact(c.settings.PauseOnInteract)
}

// Deactivate leaves interactive mode: world controls come back, a pause the
// canvas requested is lifted, the cursor is hidden, and every hover, press
// and drag flag is cleared.
func (c *Canvas) Deactivate() {
	if c.state != CanvasActive {
		return
	}
	if c.pausedBySelf {
		c.host.SetPaused(false)
		c.pausedBySelf = false
	}
	c.setWorldControls(true)
	c.cursor.Visible = false
	c.host.SetCursorVisible(false)
	c.setCursorShape(CursorDefault)
	c.manager.reset()
	c.state = CanvasInactive
	c.mouse = MouseUp
	logger.Debug("hud: canvas deactivated", "canvas", c.id)
	c.publish(Event{Type: EventDeactivated})
}

// State returns the activation state.
func (c *Canvas) State() CanvasState {
	return c.state
}

// MouseState returns the button state machine's current state.
func (c *Canvas) MouseState() MouseState {
	return c.mouse
}

func (c *Canvas) setWorldControls(enabled bool) {
	if c.worldControls == enabled {
		return
	}
	c.worldControls = enabled
	c.host.SetWorldControls(enabled)
}

func (c *Canvas) setCursorShape(shape CursorShape) {
	if c.cursor.Shape == shape {
		return
	}
	c.cursor.Shape = shape
	c.host.SetCursorShape(shape)
}
