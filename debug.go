package hud

// Tree sanity thresholds checked on Add in debug mode.
const (
	debugMaxTreeDepth  = 32
	debugMaxChildCount = 1000
)

// Outline colors drawn around bounds in debug mode.
var (
	debugWidgetOutline  = Color{R: 1, G: 0.8, B: 0, A: 1}
	debugControlOutline = Color{R: 0, G: 1, B: 0.4, A: 1}
	debugNodeOutline    = Color{R: 0.4, G: 0.6, B: 1, A: 0.6}
)

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent() {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("hud: tree depth exceeds threshold", "node", n.Name, "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		logger.Warn("hud: child count exceeds threshold", "node", n.Name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}

// collectOutlines appends a one-pixel outline for every drawn node.
func (c *Canvas) collectOutlines(buf []drawCommand) []drawCommand {
	var walk func(n *Node)
	walk = func(n *Node) {
		if !n.Visible {
			return
		}
		if n.Kind != KindCanvas {
			clr := debugNodeOutline
			switch {
			case n.Widget != nil:
				clr = debugWidgetOutline
			case isControl(n):
				clr = debugControlOutline
			}
			buf = append(buf, drawCommand{op: opStroke, node: n.ID, rect: n.bounds, color: clr, width: 1})
		}
		for _, id := range n.children {
			if child := c.tree.nodes[id]; child != nil && n.searchable(child) {
				walk(child)
			}
		}
	}
	walk(c.tree.root)
	return buf
}
