package hud

import (
	"io/fs"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// CanvasConfig configures NewCanvas.
type CanvasConfig struct {
	// ID namespaces the canvas' textures. Defaults to "canvas".
	ID CanvasID
	// Host and Input are required.
	Host  Host
	Input Input
	// Textures is the shared registry. Nil creates a private one.
	Textures *Textures
	// Assets is scanned for textures under Settings.Assets on Start. Nil
	// skips loading.
	Assets fs.FS
	// Settings zero value means DefaultSettings.
	Settings Settings
	// Clock drives long-press timing and highlight fades. Defaults to time.Now.
	Clock func() time.Time
}

// Canvas is the root of one widget tree. It maps the 1920×1080 logical
// canvas to the host resolution, owns the cursor and the widget manager, and
// runs the activation and mouse state machines once per frame.
//
// A Canvas is not safe for concurrent use; every method must be called from
// the game loop goroutine.
type Canvas struct {
	id       CanvasID
	host     Host
	input    Input
	textures *Textures
	assets   fs.FS
	settings Settings
	now      func() time.Time

	tree    *Tree
	cursor  Cursor
	manager WidgetManager

	state         CanvasState
	mouse         MouseState
	resolution    Vec2
	pausedBySelf  bool
	worldControls bool

	handlers registry[func(Event)]
	store    EventStore

	started     bool
	loop        *Loop
	loopHandles []CallbackHandle
	lastUpdate  time.Time

	drawBuf []drawCommand
	debug   bool

	injectQueue []syntheticSample
	runner      *ScriptRunner
}

// NewCanvas creates an inactive canvas sized to the host's current
// resolution. Panics when Host or Input is missing or Settings are invalid.
func NewCanvas(cfg CanvasConfig) *Canvas {
	if cfg.Host == nil || cfg.Input == nil {
		panic("hud: canvas needs a host and an input")
	}
	settings := cfg.Settings
	if settings == (Settings{}) {
		settings = DefaultSettings()
	}
	if err := settings.Validate(); err != nil {
		panic(err.Error())
	}
	if cfg.ID == "" {
		cfg.ID = "canvas"
	}
	if cfg.Textures == nil {
		cfg.Textures = NewTextures(nil)
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	c := &Canvas{
		id:            cfg.ID,
		host:          cfg.Host,
		input:         cfg.Input,
		textures:      cfg.Textures,
		assets:        cfg.Assets,
		settings:      settings,
		now:           cfg.Clock,
		worldControls: true,
		debug:         settings.Debug,
	}
	c.tree = newTree(c)
	c.manager.canvas = c
	c.host.SetCursorVisible(false)
	c.Tick()
	return c
}

// ID returns the canvas identity.
func (c *Canvas) ID() CanvasID { return c.id }

// Root returns the canvas root node. Its children are the top-level widgets.
func (c *Canvas) Root() *Node { return c.tree.root }

// Tree returns the node arena.
func (c *Canvas) Tree() *Tree { return c.tree }

// Settings returns the canvas tunables.
func (c *Canvas) Settings() Settings { return c.settings }

// Textures returns the texture registry.
func (c *Canvas) Textures() *Textures { return c.textures }

// Texture resolves name in the canvas' texture namespace.
func (c *Canvas) Texture(name string) *Texture { return c.textures.Get(c.id, name) }

// Cursor returns the last cursor sample.
func (c *Canvas) Cursor() Cursor { return c.cursor }

// Manager returns the widget manager.
func (c *Canvas) Manager() *WidgetManager { return &c.manager }

// Resolution returns the physical resolution the tree is laid out for.
func (c *Canvas) Resolution() Vec2 { return c.resolution }

// Scale returns the logical-to-physical factor of top-level widgets.
func (c *Canvas) Scale() float64 { return c.tree.root.childScale }

// SetDebugMode enables or disables tree checks and bounds outlines.
func (c *Canvas) SetDebugMode(enabled bool) { c.debug = enabled }

// --- Widgets ---

// Add registers a top-level widget, making the canvas its parent. Panics
// if w is not a widget.
func (c *Canvas) Add(w *Node) {
	if w == nil || w.Widget == nil {
		panic("hud: only widgets can be added to a canvas")
	}
	c.tree.root.Add(w)
}

// Remove disposes a top-level widget.
func (c *Canvas) Remove(w *Node) {
	c.tree.root.Remove(w)
}

// Widgets returns the top-level widgets, bottommost first.
func (c *Canvas) Widgets() []*Node {
	return c.tree.root.Items()
}

// BringToFront raises a top-level widget to the top of the z-order.
func (c *Canvas) BringToFront(w *Node) {
	c.tree.root.BringToFront(w)
}

// Center moves a widget to the middle of the logical canvas.
func (c *Canvas) Center(w *Node) {
	size := w.Size().Scale(w.ownScale())
	w.SetPosition((LogicalWidth-size.X)/2, (LogicalHeight-size.Y)/2)
}

func (c *Canvas) topWidget() *Node {
	root := c.tree.root
	for i := len(root.children) - 1; i >= 0; i-- {
		if w := c.tree.nodes[root.children[i]]; w != nil && w.Visible {
			return w
		}
	}
	return nil
}

// ToLogical converts a physical point to logical canvas space.
func (c *Canvas) ToLogical(p Vec2) Vec2 {
	s := c.tree.root.childScale
	if s == 0 {
		return p
	}
	return p.Scale(1 / s)
}

// ToPhysical converts a logical point to physical screen space.
func (c *Canvas) ToPhysical(p Vec2) Vec2 {
	return p.Scale(c.tree.root.childScale)
}

// --- Frame lifecycle ---

// Start loads the canvas' textures and subscribes it to the loop's frame
// callbacks. Texture loading blocks the current frame.
func (c *Canvas) Start(loop *Loop) {
	if c.started {
		return
	}
	c.started = true
	c.loop = loop
	if c.assets != nil {
		if _, err := c.textures.Load(c.id, c.assets, c.settings.Assets); err != nil {
			logger.Warn("hud: canvas started without all textures", "canvas", c.id, "err", err)
		}
	}
	c.loopHandles = append(c.loopHandles,
		loop.OnBeforeScene(c.Update),
		loop.OnAfterScene(c.Draw),
		loop.OnTick(c.settings.ResolutionPollFrames, func() { c.Tick() }),
	)
	c.Tick()
}

// Stop unsubscribes from the loop and clears every transient interaction
// flag. An active canvas is deactivated first.
func (c *Canvas) Stop() {
	if !c.started {
		return
	}
	c.started = false
	for _, h := range c.loopHandles {
		h.Remove()
	}
	c.loopHandles = c.loopHandles[:0]
	c.loop = nil
	c.Deactivate()
	c.manager.reset()
}

// Tick polls the host resolution and relayouts the whole tree when it
// changed. Reports whether it did.
func (c *Canvas) Tick() bool {
	w, h := c.host.Resolution()
	res := Vec2{float64(w), float64(h)}
	if res == c.resolution {
		return false
	}
	c.resolution = res
	root := c.tree.root
	root.bounds = Rect{Width: res.X, Height: res.Y}
	root.childScale = ScaleFor(res)
	root.UpdateBounds()
	logger.Debug("hud: resolution changed", "canvas", c.id, "width", w, "height", h, "scale", root.childScale)
	c.publish(Event{Type: EventResize, Scale: root.childScale})
	return true
}

// Update is the pre-render step: advance fades, then, while active, handle
// cancel input, sample the cursor and run the mouse state machine.
func (c *Canvas) Update() {
	now := c.now()
	if !c.lastUpdate.IsZero() {
		c.manager.animate(now.Sub(c.lastUpdate).Seconds())
	}
	c.lastUpdate = now

	if c.runner != nil {
		c.runner.step(c)
	}
	if c.state != CanvasActive {
		return
	}
	if c.input.CancelPressed() && !c.host.ConsoleOpen() {
		c.Deactivate()
		return
	}
	c.sampleCursor()
	c.processMouse(now)
}

// sampleCursor reads one cursor sample, preferring queued synthetic input.
func (c *Canvas) sampleCursor() {
	if c.processInjectedInput() {
		return
	}
	nx, ny := c.input.Cursor()
	c.cursor.Position = Vec2{nx * c.resolution.X, ny * c.resolution.Y}
	c.cursor.Down = c.input.PrimaryDown()
	c.cursor.Scroll = 0
	if c.input.ScrollUp() {
		c.cursor.Scroll++
	}
	if c.input.ScrollDown() {
		c.cursor.Scroll--
	}
}

// Draw is the post-scene step. Nothing is drawn while the host is paused
// unless this canvas requested the pause.
func (c *Canvas) Draw(dst *ebiten.Image) {
	if !c.drawable() {
		return
	}
	c.drawBuf = c.collect(c.tree.root, c.drawBuf[:0])
	if c.debug {
		c.drawBuf = c.collectOutlines(c.drawBuf)
	}
	c.submit(dst)
}

func (c *Canvas) drawable() bool {
	return !c.host.Paused() || c.pausedBySelf
}
