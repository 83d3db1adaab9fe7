package hud

// isControl reports whether n reacts to pointer input.
func isControl(n *Node) bool {
	return n.Click != nil || n.Scroll != nil
}

// searchable reports whether child of n takes part in drawing and hit
// testing. Tabbed widgets hide every page but the active one.
func (n *Node) searchable(child *Node) bool {
	if !child.Visible {
		return false
	}
	if n.Tabs != nil {
		return n.Tabs.shows(child.ID)
	}
	return true
}

// Controls appends to buf every visible, enabled control under n whose
// bounds contain the physical point (x, y). The walk is depth-first in
// insertion order, parents before their children, so the topmost match is
// the last element appended.
func (n *Node) Controls(x, y float64, buf []*Node) []*Node {
	for _, id := range n.children {
		c := n.tree.nodes[id]
		if c == nil || !n.searchable(c) {
			continue
		}
		if isControl(c) && c.Enabled && c.bounds.Contains(x, y) {
			buf = append(buf, c)
		}
		if len(c.children) > 0 {
			buf = c.Controls(x, y, buf)
		}
	}
	return buf
}

// TopControl returns the topmost control under (x, y), or nil.
func (n *Node) TopControl(x, y float64) *Node {
	var buf [8]*Node
	hits := n.Controls(x, y, buf[:0])
	if len(hits) == 0 {
		return nil
	}
	return hits[len(hits)-1]
}

// topControl is TopControl reusing the manager's buffer.
func (m *WidgetManager) topControl(w *Node, x, y float64) *Node {
	m.hitBuf = w.Controls(x, y, m.hitBuf[:0])
	if len(m.hitBuf) == 0 {
		return nil
	}
	return m.hitBuf[len(m.hitBuf)-1]
}

// WidgetAt returns the topmost visible top-level widget containing the
// physical point (x, y), or nil.
func (c *Canvas) WidgetAt(x, y float64) *Node {
	root := c.tree.root
	for i := len(root.children) - 1; i >= 0; i-- {
		w := c.tree.nodes[root.children[i]]
		if w == nil || !w.Visible {
			continue
		}
		if w.bounds.Contains(x, y) {
			return w
		}
	}
	return nil
}
