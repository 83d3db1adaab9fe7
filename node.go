package hud

// NodeID is a handle into a canvas' node arena. Zero is never a valid node.
type NodeID uint32

// Tree is the arena that owns every node of one canvas. Children are owned by
// their parent's child list; a child only holds its parent's handle, so
// lookups upward go through the arena and never keep a detached subtree alive.
type Tree struct {
	nodes  map[NodeID]*Node
	nextID NodeID
	root   *Node
	canvas *Canvas
}

func newTree(c *Canvas) *Tree {
	t := &Tree{nodes: make(map[NodeID]*Node), canvas: c}
	t.root = t.alloc("canvas", KindCanvas)
	return t
}

// alloc creates a detached node registered in the arena.
func (t *Tree) alloc(name string, kind NodeKind) *Node {
	t.nextID++
	n := &Node{
		ID:         t.nextID,
		Name:       name,
		Kind:       kind,
		tree:       t,
		Visible:    true,
		Enabled:    true,
		Color:      ColorWhite,
		childScale: 1,
	}
	t.nodes[n.ID] = n
	return n
}

// Get returns the live node for id, or nil if it was never allocated or has
// been disposed.
func (t *Tree) Get(id NodeID) *Node {
	if id == 0 {
		return nil
	}
	return t.nodes[id]
}

// Len returns the number of live nodes, including the root.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Root returns the canvas root node.
func (t *Tree) Root() *Node {
	return t.root
}

// release drops n and its subtree from the arena.
func (t *Tree) release(n *Node) {
	for _, id := range n.children {
		if c := t.nodes[id]; c != nil {
			t.release(c)
		}
	}
	delete(t.nodes, n.ID)
	n.children = nil
	n.parent = 0
	n.disposed = true
	n.Click = nil
	n.Scroll = nil
	n.UserData = nil
}

// Node is the single node type of the UI tree. What a node draws and how it
// reacts to input is selected by Kind and by the optional capability traits
// attached to it; a nil trait means the capability is absent.
type Node struct {
	// Identity
	ID   NodeID
	Name string
	Kind NodeKind

	// Hierarchy
	tree     *Tree
	parent   NodeID
	children []NodeID

	// Logical placement relative to the parent. A zero width or height is
	// derived from the node's texture or text.
	pos    Vec2
	width  float64
	height float64

	// Computed physical placement.
	bounds     Rect
	childScale float64

	Visible bool
	Enabled bool

	// Color tints textures and fills rectangles.
	Color Color
	// Background fills container bounds before children draw. Zero alpha
	// draws nothing.
	Background Color

	// Capability traits
	Widget  *WidgetState
	Texture *Textured
	Text    *TextState
	Click   *Clickable
	Scroll  *Scrollable
	Toggle  *Toggle
	Tabs    *Tabs

	UserData any

	disposed bool
}

// --- Tree manipulation ---

// Add appends child as the topmost item of n.
// If child already has a parent, it is moved. Containers observe clickable
// children so that selections bubble up (tab strips select their page).
// Panics on nil, disposed or foreign nodes, on cycles, on non-widgets added
// to the canvas root, and when a tabbed widget would end up inside another
// tabbed widget.
func (n *Node) Add(child *Node) {
	if child == nil {
		panic("hud: cannot add nil child")
	}
	if n.disposed || child.disposed {
		panic("hud: add on disposed node")
	}
	if child.tree != n.tree {
		panic("hud: child belongs to a different canvas")
	}
	if child.Kind == KindCanvas {
		panic("hud: canvas root cannot be a child")
	}
	if n.Kind == KindCanvas && child.Widget == nil {
		panic("hud: only widgets can be added to a canvas")
	}
	if isAncestor(child, n) {
		panic("hud: adding child would create a cycle")
	}
	if child.containsTabbed() && n.withinTabbed() {
		panic("hud: tabbed widget cannot be nested inside another tabbed widget")
	}
	old := child.Parent()
	if old != nil && old.Tabs != nil && old.Tabs.strip == child.ID {
		panic("hud: tab strip cannot leave its tabbed widget")
	}
	if old != nil {
		old.removeChildID(child.ID)
		if child.Click != nil {
			child.Click.unobserve(old.ID)
		}
	}
	child.parent = n.ID
	n.children = append(n.children, child.ID)
	if old != nil {
		old.forgetChild(child.ID)
	}
	if child.Click != nil {
		child.Click.observe(n.ID)
	}
	if n.attached() {
		child.UpdateBounds()
	}
	if n.tree.canvas != nil && n.tree.canvas.debug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// Remove detaches child from n and disposes its subtree. Removing a tab page
// also removes its tab button, and the other way round.
// Panics if child is not a direct child of n, or is a tabbed widget's strip.
func (n *Node) Remove(child *Node) {
	if child == nil || child.parent != n.ID || child.tree != n.tree {
		panic("hud: child's parent is not this node")
	}
	if n.Tabs != nil && n.Tabs.strip == child.ID {
		panic("hud: tab strip cannot leave its tabbed widget")
	}
	n.removeChildID(child.ID)
	n.tree.release(child)
	n.forgetChild(child.ID)
}

// Clear removes and disposes every child of n. A tabbed widget keeps its
// (now empty) tab strip, and clearing a tab strip removes every page.
func (n *Node) Clear() {
	if n.Kind == KindTabStrip {
		if tabbed := n.Parent(); tabbed != nil && tabbed.Tabs != nil {
			tabbed.resetTabs()
			tabbed.refresh()
			return
		}
	}
	var keep NodeID
	if n.Tabs != nil {
		n.resetTabs()
		keep = n.Tabs.strip
	}
	for _, id := range n.children {
		if id == keep {
			continue
		}
		if c := n.tree.nodes[id]; c != nil {
			n.tree.release(c)
		}
	}
	n.children = n.children[:0]
	if keep != 0 {
		n.children = append(n.children, keep)
		n.refresh()
	}
}

// Items returns the children in draw order (last = topmost).
func (n *Node) Items() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, id := range n.children {
		if c := n.tree.nodes[id]; c != nil {
			out = append(out, c)
		}
	}
	return out
}

// NumItems returns the number of children.
func (n *Node) NumItems() int {
	return len(n.children)
}

// ItemAt returns the child at index i.
func (n *Node) ItemAt(i int) *Node {
	return n.tree.Get(n.children[i])
}

// IndexOf returns the position of child among n's children, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, id := range n.children {
		if id == child.ID {
			return i
		}
	}
	return -1
}

// BringToFront moves child to the end of n's children so it draws last and
// wins hit tests.
func (n *Node) BringToFront(child *Node) {
	i := n.IndexOf(child)
	if i < 0 {
		panic("hud: child's parent is not this node")
	}
	if i == len(n.children)-1 {
		return
	}
	copy(n.children[i:], n.children[i+1:])
	n.children[len(n.children)-1] = child.ID
}

// Parent returns the parent node, or nil for detached nodes and the root.
func (n *Node) Parent() *Node {
	if n.tree == nil {
		return nil
	}
	return n.tree.Get(n.parent)
}

// IsDisposed reports whether the node was removed from its tree.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// Canvas returns the canvas that owns the node's arena.
func (n *Node) Canvas() *Canvas {
	if n.tree == nil {
		return nil
	}
	return n.tree.canvas
}

// --- Helpers ---

// attached reports whether n is connected to its canvas root.
func (n *Node) attached() bool {
	for p := n; p != nil; p = p.Parent() {
		if p.Kind == KindCanvas {
			return true
		}
	}
	return false
}

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent() {
		if p == candidate {
			return true
		}
	}
	return false
}

func (n *Node) withinTabbed() bool {
	for p := n; p != nil; p = p.Parent() {
		if p.Tabs != nil {
			return true
		}
	}
	return false
}

func (n *Node) containsTabbed() bool {
	if n.Tabs != nil {
		return true
	}
	for _, id := range n.children {
		if c := n.tree.nodes[id]; c != nil && c.containsTabbed() {
			return true
		}
	}
	return false
}

// removeChildID removes id from n.children without touching the child.
func (n *Node) removeChildID(id NodeID) {
	for i, c := range n.children {
		if c == id {
			copy(n.children[i:], n.children[i+1:])
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// walk calls fn for n and every descendant, parents first.
func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, id := range n.children {
		if c := n.tree.nodes[id]; c != nil {
			c.walk(fn)
		}
	}
}
