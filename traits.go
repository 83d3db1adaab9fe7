package hud

import "github.com/tanema/gween"

// WidgetState is the trait carried by draggable, scalable containers.
type WidgetState struct {
	// Scale multiplies the parent's scale for this widget and its subtree.
	Scale float64
	// Draggable allows a long press to start a drag.
	Draggable bool

	Dragging   bool
	DragOffset Vec2 // logical cursor minus position, captured at drag start
	Hovered    bool
	Pressed    bool
}

func (w *WidgetState) clearInteraction() {
	w.Dragging = false
	w.DragOffset = Vec2{}
	w.Hovered = false
	w.Pressed = false
}

// Textured binds a node to a texture name resolved through the canvas'
// registry on every use.
type Textured struct {
	Name string
}

// texture resolves the node's texture, or nil when missing.
func (n *Node) texture() *Texture {
	if n.Texture == nil || n.Texture.Name == "" {
		return nil
	}
	c := n.Canvas()
	if c == nil || c.textures == nil {
		return nil
	}
	return c.textures.Get(c.id, n.Texture.Name)
}

// SetTexture swaps the node's texture name and recomputes bounds, since a
// derived size may change.
func (n *Node) SetTexture(name string) {
	if n.Texture == nil {
		n.Texture = &Textured{}
	}
	n.Texture.Name = name
	n.refresh()
}

// ClickContext describes a click delivered to a control.
type ClickContext struct {
	Node    *Node
	X, Y    float64 // physical cursor position
	Toggled bool    // new state for toggle buttons
}

// ScrollContext describes a wheel step delivered to a scrollable control.
type ScrollContext struct {
	Node  *Node
	X, Y  float64
	Delta int // +1 wheel up, -1 wheel down
}

// Clickable is the trait that makes a node a clickable control.
type Clickable struct {
	OnClick func(ClickContext)

	// HoverColor is blended over the node's fill while hovered.
	HoverColor Color

	handlers  registry[func(ClickContext)]
	observers []NodeID

	highlight float64
	target    float64
	fade      *gween.Tween
}

// AddObserver registers fn to be called after OnClick on every click.
func (n *Node) AddObserver(fn func(ClickContext)) CallbackHandle {
	if n.Click == nil {
		panic("hud: AddObserver on non-clickable node")
	}
	return n.Click.handlers.add(fn)
}

// Highlight returns the current hover highlight amount in [0, 1].
func (c *Clickable) Highlight() float64 {
	return c.highlight
}

func (c *Clickable) observe(id NodeID) {
	for _, o := range c.observers {
		if o == id {
			return
		}
	}
	c.observers = append(c.observers, id)
}

func (c *Clickable) unobserve(id NodeID) {
	for i, o := range c.observers {
		if o == id {
			c.observers = append(c.observers[:i], c.observers[i+1:]...)
			return
		}
	}
}

// Scrollable is the trait for controls that consume wheel input while
// hovered. Text areas scroll their lines before OnScroll runs.
type Scrollable struct {
	OnScroll func(ScrollContext)
}

// Toggle is the two-state trait of toggle buttons.
type Toggle struct {
	Active          bool
	ActiveTexture   string
	InactiveTexture string
}

func (t *Toggle) textureName() string {
	if t.Active {
		return t.ActiveTexture
	}
	return t.InactiveTexture
}

// SetToggled sets a toggle button's state and swaps its texture.
func (n *Node) SetToggled(active bool) {
	if n.Toggle == nil {
		return
	}
	n.Toggle.Active = active
	n.SetTexture(n.Toggle.textureName())
}
