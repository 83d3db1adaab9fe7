package hud

// syntheticSample is one queued cursor sample in physical screen
// coordinates. Injected samples replace real input for one frame each.
type syntheticSample struct {
	x, y   float64
	down   bool
	scroll int
}

// InjectPress queues a sample with the primary button down at (x, y).
// Samples are consumed one per Update while the canvas is active.
func (c *Canvas) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticSample{x: x, y: y, down: true})
}

// InjectMove queues a sample at (x, y) with the button held. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (c *Canvas) InjectMove(x, y float64) {
	c.InjectPress(x, y)
}

// InjectRelease queues a sample with the button up at (x, y).
func (c *Canvas) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticSample{x: x, y: y})
}

// InjectClick queues a press and a release at the same point. Consumes two
// frames.
func (c *Canvas) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectHold queues a press followed by frames-1 held samples at (x, y).
func (c *Canvas) InjectHold(x, y float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 0; i < frames; i++ {
		c.InjectPress(x, y)
	}
}

// InjectDrag queues a press at (fromX, fromY), linearly interpolated moves
// and a release at (toX, toY), `frames` samples in total (minimum 2). The
// press only becomes a drag once the long-press delay has passed, so hold
// first with InjectHold when driving a real clock.
func (c *Canvas) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(toX, toY)
}

// InjectScroll queues a wheel step at (x, y) with the button up. Positive
// delta scrolls up.
func (c *Canvas) InjectScroll(x, y float64, delta int) {
	switch {
	case delta > 0:
		delta = 1
	case delta < 0:
		delta = -1
	}
	c.injectQueue = append(c.injectQueue, syntheticSample{x: x, y: y, scroll: delta})
}

// Pending returns the number of queued synthetic samples.
func (c *Canvas) Pending() int {
	return len(c.injectQueue)
}

// processInjectedInput pops one sample into the cursor. Reports whether a
// sample was consumed, in which case real input is skipped this frame.
func (c *Canvas) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	s := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	c.cursor.Position = Vec2{s.x, s.y}
	c.cursor.Down = s.down
	c.cursor.Scroll = s.scroll
	return true
}
