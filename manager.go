package hud

import "time"

// Cursor is the UI cursor in physical screen space, sampled once per frame.
type Cursor struct {
	Position Vec2
	Down     bool
	// Scroll is +1 for wheel up, -1 for wheel down, 0 otherwise.
	Scroll  int
	Visible bool
	Shape   CursorShape
}

// WidgetManager tracks which widget is hovered, which control inside it is
// hovered, and which widget is pressed, and turns cursor samples into hover,
// press, drag, scroll and click transitions. Nodes are held by handle, so a
// removed widget simply stops resolving.
type WidgetManager struct {
	canvas *Canvas

	hovered   NodeID
	control   NodeID
	pressed   NodeID
	pressedAt time.Time

	hitBuf []*Node
	fading []NodeID
}

// Hovered returns the hovered top-level widget, or nil.
func (m *WidgetManager) Hovered() *Node {
	return m.canvas.tree.Get(m.hovered)
}

// HoveredControl returns the hovered control inside the hovered widget, or nil.
func (m *WidgetManager) HoveredControl() *Node {
	return m.canvas.tree.Get(m.control)
}

// Pressed returns the pressed widget, or nil.
func (m *WidgetManager) Pressed() *Node {
	return m.canvas.tree.Get(m.pressed)
}

// hover runs while the button is up: acquire the topmost widget under the
// cursor, drop it once the cursor leaves, and track the control under the
// cursor inside it.
func (m *WidgetManager) hover(cur *Cursor) {
	x, y := cur.Position.X, cur.Position.Y
	w := m.Hovered()
	if w == nil {
		m.hovered = 0
		w = m.canvas.WidgetAt(x, y)
		if w == nil {
			m.setControl(nil)
			return
		}
		m.hovered = w.ID
		w.Widget.Hovered = true
	}
	if !w.Visible || !w.bounds.Contains(x, y) {
		m.clearHover()
		return
	}
	m.setControl(m.topControl(w, x, y))
}

func (m *WidgetManager) clearHover() {
	if w := m.Hovered(); w != nil {
		w.Widget.Hovered = false
	}
	m.hovered = 0
	m.setControl(nil)
}

// setControl changes the hovered control, fading highlights and switching
// the cursor glyph.
func (m *WidgetManager) setControl(ctrl *Node) {
	prev := m.HoveredControl()
	if prev == nil {
		m.control = 0
	}
	if prev == ctrl {
		return
	}
	if prev != nil && prev.Click != nil {
		m.fade(prev, 0)
	}
	m.control = 0
	shape := CursorDefault
	if ctrl != nil {
		m.control = ctrl.ID
		if ctrl.Click != nil {
			m.fade(ctrl, 1)
			shape = CursorPointer
		}
	}
	m.canvas.setCursorShape(shape)
}

// press makes the hovered widget the pressed one.
func (m *WidgetManager) press(now time.Time) {
	w := m.Hovered()
	if w == nil {
		return
	}
	m.pressed = w.ID
	m.pressedAt = now
	w.Widget.Pressed = true
}

// hold runs every frame the button stays down.
func (m *WidgetManager) hold(cur *Cursor, now time.Time) {
	w := m.Pressed()
	if w == nil {
		m.pressed = 0
		return
	}
	c := m.canvas
	if w.Widget.Dragging {
		p := c.ToLogical(cur.Position).Sub(w.Widget.DragOffset)
		w.SetPosition(p.X, p.Y)
		if cur.Scroll != 0 {
			scale := w.SetWidgetScale(w.Widget.Scale + float64(cur.Scroll)*c.settings.ScaleStep())
			e := c.nodeEvent(EventWidgetScale, w)
			e.Delta = cur.Scroll
			e.Scale = scale
			c.publish(e)
		}
		return
	}
	if !w.bounds.ContainsPoint(cur.Position) {
		// Leaving the widget cancels the press; no click follows.
		w.Widget.Pressed = false
		m.pressed = 0
		return
	}
	if w.Widget.Draggable && now.Sub(m.pressedAt) >= c.settings.LongPress() {
		w.Widget.Dragging = true
		w.Widget.DragOffset = c.ToLogical(cur.Position).Sub(w.pos)
		c.BringToFront(w)
		m.setControl(nil)
		c.publish(c.nodeEvent(EventDragStart, w))
	}
}

// release ends a press: a drag stops without a click, otherwise the control
// hovered at press time is clicked if it is still under the cursor.
func (m *WidgetManager) release(cur *Cursor) {
	w := m.Pressed()
	m.pressed = 0
	if w == nil {
		return
	}
	w.Widget.Pressed = false
	c := m.canvas
	if w.Widget.Dragging {
		p := c.ToLogical(cur.Position).Sub(w.Widget.DragOffset)
		w.SetPosition(p.X, p.Y)
		w.Widget.Dragging = false
		c.publish(c.nodeEvent(EventDragEnd, w))
		return
	}
	ctrl := m.HoveredControl()
	if ctrl == nil || ctrl.Click == nil {
		return
	}
	if m.topControl(w, cur.Position.X, cur.Position.Y) != ctrl {
		return
	}
	c.dispatchClick(ctrl)
}

// scroll feeds a wheel step to the hovered control without a click.
func (m *WidgetManager) scroll(cur *Cursor) {
	ctrl := m.HoveredControl()
	if ctrl == nil || ctrl.Scroll == nil {
		return
	}
	m.canvas.dispatchScroll(ctrl, cur.Scroll)
}

// reset clears every transient interaction flag in the tree.
func (m *WidgetManager) reset() {
	m.canvas.tree.root.walk(func(n *Node) {
		if n.Widget != nil {
			n.Widget.clearInteraction()
		}
		if n.Click != nil {
			n.Click.highlight = 0
			n.Click.fade = nil
		}
	})
	m.hovered, m.control, m.pressed = 0, 0, 0
	m.fading = m.fading[:0]
}
