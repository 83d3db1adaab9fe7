package hud

// Tabs is the trait of tabbed widgets: a tab strip plus pages, exactly one of
// which is drawn and hit-tested at a time.
type Tabs struct {
	Font          *Font
	ActiveColor   Color
	InactiveColor Color

	strip   NodeID
	pages   []NodeID
	buttons []NodeID
	titles  []string
	active  int
}

func indexOfID(ids []NodeID, id NodeID) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func (t *Tabs) isPage(id NodeID) bool {
	return indexOfID(t.pages, id) >= 0
}

// shows reports whether child of the tabbed node is currently drawn.
func (t *Tabs) shows(id NodeID) bool {
	if !t.isPage(id) {
		return true
	}
	return t.active < len(t.pages) && t.pages[t.active] == id
}

// AddTab appends page under a new tab titled title and returns its index.
// The first page added becomes the active one. Pages must be widgets and
// must not contain tabbed widgets.
func (n *Node) AddTab(title string, page *Node) int {
	if n.Tabs == nil {
		panic("hud: AddTab on non-tabbed node")
	}
	if page == nil || page.Widget == nil {
		panic("hud: tab page must be a widget")
	}
	if page.containsTabbed() {
		panic("hud: tabbed widget cannot be nested inside another tabbed widget")
	}
	c := n.Canvas()
	strip := n.tree.Get(n.Tabs.strip)
	btn := c.NewRectButton(n.Name+"/tab/"+title, title, n.Tabs.Font, 0, 0, 0, TabStripHeight, nil)
	strip.Add(btn)

	page.pos = Vec2{0, TabStripHeight}
	page.Widget.Draggable = false
	n.Add(page)
	n.Tabs.pages = append(n.Tabs.pages, page.ID)
	n.Tabs.buttons = append(n.Tabs.buttons, btn.ID)
	n.Tabs.titles = append(n.Tabs.titles, title)
	n.styleTabs()
	n.refresh()
	return len(n.Tabs.pages) - 1
}

// SelectTab makes page i the visible one. Pages keep their own state while
// hidden. Out-of-range indexes are logged and ignored.
func (n *Node) SelectTab(i int) {
	if n.Tabs == nil {
		return
	}
	if i < 0 || i >= len(n.Tabs.pages) {
		logger.Warn("hud: tab index out of range", "node", n.Name, "index", i, "tabs", len(n.Tabs.pages))
		return
	}
	if i == n.Tabs.active {
		return
	}
	n.Tabs.active = i
	n.styleTabs()
	if c := n.Canvas(); c != nil {
		e := c.nodeEvent(EventTabSelected, n)
		e.Tab = i
		c.publish(e)
	}
}

// ActiveTab returns the index of the visible page.
func (n *Node) ActiveTab() int {
	if n.Tabs == nil {
		return -1
	}
	return n.Tabs.active
}

// ActivePage returns the visible page, or nil when there are none.
func (n *Node) ActivePage() *Node {
	if n.Tabs == nil || len(n.Tabs.pages) == 0 {
		return nil
	}
	return n.tree.Get(n.Tabs.pages[n.Tabs.active])
}

// Pages returns the tab pages in tab order.
func (n *Node) Pages() []*Node {
	if n.Tabs == nil {
		return nil
	}
	out := make([]*Node, 0, len(n.Tabs.pages))
	for _, id := range n.Tabs.pages {
		if p := n.tree.Get(id); p != nil {
			out = append(out, p)
		}
	}
	return out
}

// TabStrip returns the row holding the tab buttons.
func (n *Node) TabStrip() *Node {
	if n.Tabs == nil {
		return nil
	}
	return n.tree.Get(n.Tabs.strip)
}

// styleTabs colors the tab buttons by selection state.
func (n *Node) styleTabs() {
	strip := n.tree.Get(n.Tabs.strip)
	if strip == nil {
		return
	}
	for i, btn := range strip.Items() {
		if i == n.Tabs.active {
			btn.Background = n.Tabs.ActiveColor
		} else {
			btn.Background = n.Tabs.InactiveColor
		}
	}
}

// layoutTabs spreads the tab buttons evenly over the tabbed widget's width.
// Called from UpdateBounds before the children are refreshed.
func (n *Node) layoutTabs() {
	strip := n.tree.Get(n.Tabs.strip)
	if strip == nil {
		return
	}
	w, _ := n.logicalSize()
	strip.pos = Vec2{}
	strip.width, strip.height = w, TabStripHeight
	count := len(strip.children)
	if count == 0 {
		return
	}
	tabW := w / float64(count)
	for i, btn := range strip.Items() {
		btn.pos = Vec2{X: float64(i) * tabW}
		btn.width, btn.height = tabW, TabStripHeight
	}
}

// dropTab forgets page i and releases its tab button unless the button has
// moved elsewhere. The page node itself is left to the caller. When the visible page goes, the next one (or the
// new last one) is shown.
func (n *Node) dropTab(i int) NodeID {
	t := n.Tabs
	page := t.pages[i]
	btn := t.buttons[i]
	t.pages = append(t.pages[:i], t.pages[i+1:]...)
	t.buttons = append(t.buttons[:i], t.buttons[i+1:]...)
	t.titles = append(t.titles[:i], t.titles[i+1:]...)
	if strip := n.tree.Get(t.strip); strip != nil {
		strip.removeChildID(btn)
	}
	if b := n.tree.nodes[btn]; b != nil && b.parent == t.strip {
		n.tree.release(b)
	}

	wasActive := i == t.active
	switch {
	case len(t.pages) == 0:
		t.active = 0
	case i < t.active || t.active >= len(t.pages):
		t.active--
	}
	n.styleTabs()
	n.refresh()
	if wasActive && len(t.pages) > 0 {
		if c := n.Canvas(); c != nil {
			e := c.nodeEvent(EventTabSelected, n)
			e.Tab = t.active
			c.publish(e)
		}
	}
	return page
}

// resetTabs releases every page and tab button, keeping the empty strip.
func (n *Node) resetTabs() {
	t := n.Tabs
	for _, id := range t.pages {
		n.removeChildID(id)
		if p := n.tree.nodes[id]; p != nil {
			n.tree.release(p)
		}
	}
	if strip := n.tree.Get(t.strip); strip != nil {
		for _, id := range strip.children {
			if b := n.tree.nodes[id]; b != nil {
				n.tree.release(b)
			}
		}
		strip.children = strip.children[:0]
	}
	t.pages = t.pages[:0]
	t.buttons = t.buttons[:0]
	t.titles = t.titles[:0]
	t.active = 0
}

// forgetChild keeps tab bookkeeping in step after the child with id left n.
// A page takes its tab button with it and a tab button takes its page.
func (n *Node) forgetChild(id NodeID) {
	if n.Tabs != nil {
		if i := indexOfID(n.Tabs.pages, id); i >= 0 {
			n.dropTab(i)
		}
		return
	}
	if n.Kind != KindTabStrip {
		return
	}
	tabbed := n.Parent()
	if tabbed == nil || tabbed.Tabs == nil {
		return
	}
	if i := indexOfID(tabbed.Tabs.buttons, id); i >= 0 {
		page := tabbed.dropTab(i)
		tabbed.removeChildID(page)
		if p := tabbed.tree.nodes[page]; p != nil {
			tabbed.tree.release(p)
		}
	}
}
