package hud

// ScaleFor returns the uniform logical-to-physical factor for a screen
// resolution: physical height over logical height. Both axes use the same
// factor so that widgets keep their aspect ratio on any display.
func ScaleFor(resolution Vec2) float64 {
	if resolution.Y <= 0 {
		logger.Warn("hud: non-positive resolution, using unit scale",
			"width", resolution.X, "height", resolution.Y)
		return 1
	}
	return resolution.Y / LogicalHeight
}

// UpdateBounds recomputes the node's physical bounds from its logical
// placement and its parent's bounds, then recurses into the children.
// Propagation is top-down only; callers must refresh ancestors first.
// A node without a parent is left untouched.
func (n *Node) UpdateBounds() {
	if n.Kind == KindCanvas {
		n.updateChildBounds()
		return
	}
	p := n.Parent()
	if p == nil {
		logger.Warn("hud: bounds update on node without parent", "node", n.Name, "id", n.ID)
		return
	}
	ps := p.childScale
	own := n.ownScale()
	w, h := n.logicalSize()
	n.bounds = Rect{
		X:      p.bounds.X + n.pos.X*ps,
		Y:      p.bounds.Y + n.pos.Y*ps,
		Width:  w * ps * own,
		Height: h * ps * own,
	}
	n.childScale = ps * own
	if n.Tabs != nil {
		n.layoutTabs()
	}
	n.updateChildBounds()
}

func (n *Node) updateChildBounds() {
	for _, id := range n.children {
		if c := n.tree.nodes[id]; c != nil {
			c.UpdateBounds()
		}
	}
}

// refresh recomputes bounds when the node is connected to a canvas.
// Detached nodes are refreshed when they are added.
func (n *Node) refresh() {
	if n.attached() {
		n.UpdateBounds()
	}
}

// ownScale is the widget-local multiplier; 1 for everything but widgets.
func (n *Node) ownScale() float64 {
	if n.Widget != nil && n.Widget.Scale > 0 {
		return n.Widget.Scale
	}
	return 1
}

// logicalSize returns the unscaled size, deriving unset dimensions from the
// node's texture or measured text.
func (n *Node) logicalSize() (float64, float64) {
	w, h := n.width, n.height
	if w > 0 && h > 0 {
		return w, h
	}
	var dw, dh float64
	switch {
	case n.Texture != nil:
		if tex := n.texture(); tex != nil {
			dw, dh = float64(tex.Width), float64(tex.Height)
		}
	case n.Text != nil:
		dw, dh = n.Text.measure()
		dw += 2 * n.Text.Padding
		dh += 2 * n.Text.Padding
	}
	if w <= 0 {
		w = dw
	}
	if h <= 0 {
		h = dh
	}
	return w, h
}

// --- Placement accessors ---

// Position returns the logical position relative to the parent.
func (n *Node) Position() Vec2 {
	return n.pos
}

// SetPosition sets the logical position relative to the parent and
// recomputes the subtree's bounds.
func (n *Node) SetPosition(x, y float64) {
	n.pos = Vec2{x, y}
	n.refresh()
}

// Size returns the logical size, derived from texture or text when unset.
func (n *Node) Size() Vec2 {
	w, h := n.logicalSize()
	return Vec2{w, h}
}

// SetSize sets a fixed logical size. Zero restores the derived dimension.
func (n *Node) SetSize(w, h float64) {
	n.width, n.height = w, h
	if n.Text != nil {
		n.Text.setWrapWidth(w - 2*n.Text.Padding)
	}
	n.refresh()
}

// Bounds returns the physical screen rectangle computed by the last bounds
// update.
func (n *Node) Bounds() Rect {
	return n.bounds
}

// ChildScale returns the logical-to-physical factor applied to children.
func (n *Node) ChildScale() float64 {
	return n.childScale
}

// SetWidgetScale sets the widget-local scale, clamped to the canvas'
// configured percentage range, and recomputes bounds. Returns the applied
// value. Non-widgets are left unchanged.
func (n *Node) SetWidgetScale(scale float64) float64 {
	if n.Widget == nil {
		logger.Warn("hud: SetWidgetScale on non-widget", "node", n.Name, "kind", n.Kind)
		return 1
	}
	lo, hi := DefaultSettings().ScaleRange()
	if c := n.Canvas(); c != nil {
		lo, hi = c.settings.ScaleRange()
	}
	if scale < lo {
		scale = lo
	}
	if scale > hi {
		scale = hi
	}
	n.Widget.Scale = scale
	n.refresh()
	return scale
}

// WidgetScale returns the widget-local scale, or 1 for non-widgets.
func (n *Node) WidgetScale() float64 {
	return n.ownScale()
}
