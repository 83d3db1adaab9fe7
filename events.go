package hud

// EventType identifies a kind of UI event published by a canvas.
type EventType uint8

const (
	EventClick       EventType = iota // a control was clicked
	EventScroll                       // a scrollable control consumed a wheel step
	EventDragStart                    // a widget started dragging after a long press
	EventDragEnd                      // a dragged widget was released
	EventWidgetScale                  // a dragged widget was rescaled with the wheel
	EventTabSelected                  // a tabbed widget switched pages
	EventActivated                    // the canvas entered interactive mode
	EventDeactivated                  // the canvas left interactive mode
	EventResize                       // the physical resolution changed
)

var eventNames = [...]string{
	EventClick:       "click",
	EventScroll:      "scroll",
	EventDragStart:   "drag-start",
	EventDragEnd:     "drag-end",
	EventWidgetScale: "widget-scale",
	EventTabSelected: "tab-selected",
	EventActivated:   "activated",
	EventDeactivated: "deactivated",
	EventResize:      "resize",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event carries UI event data to canvas-level handlers and the EventStore.
type Event struct {
	Type   EventType
	Canvas CanvasID
	Node   NodeID
	Name   string // node name, empty for canvas-wide events
	X, Y   float64
	// Delta is the wheel direction for EventScroll and EventWidgetScale.
	Delta int
	// Tab is the selected page index for EventTabSelected.
	Tab int
	// Toggled is the new state of a toggle button for EventClick.
	Toggled bool
	// Scale is the widget scale for EventWidgetScale and the canvas scale
	// for EventResize.
	Scale float64
}

// EventStore is the interface for optional event bridges (see package ecs).
// When set on a Canvas, every published event is forwarded.
type EventStore interface {
	EmitEvent(event Event)
}

// --- Handler registry ---

type handlerEntry[F any] struct {
	id uint32
	fn F
}

// registry is an ordered list of callbacks with removable handles.
type registry[F any] struct {
	entries []handlerEntry[F]
	nextID  uint32
}

func (r *registry[F]) add(fn F) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.entries = append(r.entries, handlerEntry[F]{id: id, fn: fn})
	return CallbackHandle{id: id, remove: r.remove}
}

// remove deletes the entry with id. The slice is compacted to avoid nil
// iteration waste.
func (r *registry[F]) remove(id uint32) {
	for i := range r.entries {
		if r.entries[i].id == id {
			copy(r.entries[i:], r.entries[i+1:])
			var zero handlerEntry[F]
			r.entries[len(r.entries)-1] = zero
			r.entries = r.entries[:len(r.entries)-1]
			return
		}
	}
}

func (r *registry[F]) len() int {
	return len(r.entries)
}

// each calls fn for a snapshot of the registered callbacks, so handlers may
// remove themselves while running.
func (r *registry[F]) each(fn func(F)) {
	if len(r.entries) == 0 {
		return
	}
	snapshot := make([]handlerEntry[F], len(r.entries))
	copy(snapshot, r.entries)
	for _, e := range snapshot {
		fn(e.fn)
	}
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id     uint32
	remove func(uint32)
}

// Remove unregisters the callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove(h.id)
}

// --- Canvas-level events ---

// OnEvent registers a canvas-level handler receiving every published event.
func (c *Canvas) OnEvent(fn func(Event)) CallbackHandle {
	return c.handlers.add(fn)
}

// SetEventStore sets the optional event bridge.
func (c *Canvas) SetEventStore(store EventStore) {
	c.store = store
}

func (c *Canvas) publish(e Event) {
	e.Canvas = c.id
	c.handlers.each(func(fn func(Event)) { fn(e) })
	if c.store != nil {
		c.store.EmitEvent(e)
	}
}

func (c *Canvas) nodeEvent(t EventType, n *Node) Event {
	return Event{
		Type: t,
		Node: n.ID,
		Name: n.Name,
		X:    c.cursor.Position.X,
		Y:    c.cursor.Position.Y,
	}
}

// --- Dispatch ---

// dispatchClick runs a control's click action exactly once, then lets every
// observing container react (tab strips switch pages).
func (c *Canvas) dispatchClick(n *Node) {
	if n.Click == nil || !n.Enabled {
		return
	}
	ctx := ClickContext{Node: n, X: c.cursor.Position.X, Y: c.cursor.Position.Y}
	if n.Toggle != nil {
		n.SetToggled(!n.Toggle.Active)
		ctx.Toggled = n.Toggle.Active
	}
	logger.Debug("hud: click", "canvas", c.id, "node", n.Name, "id", n.ID)
	if n.Click.OnClick != nil {
		n.Click.OnClick(ctx)
	}
	if n.Click != nil {
		n.Click.handlers.each(func(fn func(ClickContext)) { fn(ctx) })
	}
	e := c.nodeEvent(EventClick, n)
	e.Toggled = ctx.Toggled
	c.publish(e)
	if n.Click == nil {
		return
	}
	for _, id := range append([]NodeID(nil), n.Click.observers...) {
		if o := c.tree.Get(id); o != nil {
			o.childClicked(n)
		}
	}
}

// childClicked is the container side of click propagation.
func (n *Node) childClicked(child *Node) {
	if n.Kind != KindTabStrip {
		return
	}
	tabbed := n.Parent()
	if tabbed == nil || tabbed.Tabs == nil {
		return
	}
	if i := n.IndexOf(child); i >= 0 {
		tabbed.SelectTab(i)
	}
}

// dispatchScroll feeds a wheel step to a scrollable control.
func (c *Canvas) dispatchScroll(n *Node, delta int) {
	if n.Scroll == nil || !n.Enabled || delta == 0 {
		return
	}
	if n.Text != nil && n.Text.MaxLines > 0 {
		// Wheel down advances through the text.
		n.Text.ScrollBy(-delta)
	}
	if n.Scroll.OnScroll != nil {
		n.Scroll.OnScroll(ScrollContext{Node: n, X: c.cursor.Position.X, Y: c.cursor.Position.Y, Delta: delta})
	}
	e := c.nodeEvent(EventScroll, n)
	e.Delta = delta
	c.publish(e)
}
