package hud

// TabStripHeight is the logical height of a tabbed widget's tab row.
const TabStripHeight = 40.0

// Stock colors for constructed elements. Callers restyle by assigning the
// node's Color, Background and trait fields.
var (
	PanelColor       = Color{R: 0.05, G: 0.05, B: 0.08, A: 0.75}
	ButtonColor      = Color{R: 0.2, G: 0.22, B: 0.28, A: 0.95}
	ButtonHoverColor = Color{R: 0.35, G: 0.4, B: 0.5, A: 1}
	BorderColor      = Color{R: 0.8, G: 0.8, B: 0.85, A: 1}
	TabActiveColor   = Color{R: 0.3, G: 0.45, B: 0.7, A: 1}
	TabInactiveColor = Color{R: 0.15, G: 0.16, B: 0.2, A: 0.95}
)

const textBoxPadding = 4.0

// --- Containers ---

// NewWidget creates a draggable rectangle container filled with PanelColor.
func (c *Canvas) NewWidget(name string, x, y, w, h float64) *Node {
	n := c.tree.alloc(name, KindWidget)
	n.pos = Vec2{x, y}
	n.width, n.height = w, h
	n.Widget = &WidgetState{Scale: 1, Draggable: true}
	n.Background = PanelColor
	return n
}

// NewFrame creates a draggable container drawn with a texture. Its size
// follows the texture unless set explicitly.
func (c *Canvas) NewFrame(name, texture string, x, y float64) *Node {
	n := c.tree.alloc(name, KindFrame)
	n.pos = Vec2{x, y}
	n.Widget = &WidgetState{Scale: 1, Draggable: true}
	n.Texture = &Textured{Name: texture}
	return n
}

// NewTabbed creates a widget that shows one page at a time below a row of
// tab buttons. Pages are added with AddTab.
func (c *Canvas) NewTabbed(name string, x, y, w, h float64, font *Font) *Node {
	n := c.tree.alloc(name, KindTabbed)
	n.pos = Vec2{x, y}
	n.width, n.height = w, h
	n.Widget = &WidgetState{Scale: 1, Draggable: true}
	n.Background = PanelColor
	n.Tabs = &Tabs{
		Font:          font,
		ActiveColor:   TabActiveColor,
		InactiveColor: TabInactiveColor,
	}
	strip := c.tree.alloc(name+"/tabs", KindTabStrip)
	strip.width, strip.height = w, TabStripHeight
	n.Tabs.strip = strip.ID
	n.Add(strip)
	return n
}

// --- Leaves ---

// NewRect creates a filled rectangle.
func (c *Canvas) NewRect(name string, x, y, w, h float64, fill Color) *Node {
	n := c.tree.alloc(name, KindRect)
	n.pos = Vec2{x, y}
	n.width, n.height = w, h
	n.Color = fill
	return n
}

// NewLabel creates a text run sized to its content.
func (c *Canvas) NewLabel(name, content string, font *Font, x, y float64) *Node {
	n := c.tree.alloc(name, KindLabel)
	n.pos = Vec2{x, y}
	n.Text = newTextState(content, font)
	return n
}

// NewTextBox creates a bordered single-line text box. Text wider than the
// box is cut with an ellipsis.
func (c *Canvas) NewTextBox(name, content string, font *Font, x, y, w, h float64) *Node {
	n := c.tree.alloc(name, KindTextBox)
	n.pos = Vec2{x, y}
	n.Text = newTextState(content, font)
	n.Text.SingleLine = true
	n.Text.Padding = textBoxPadding
	n.Text.BorderColor = BorderColor
	n.Text.BorderWidth = 1
	n.Background = PanelColor
	n.SetSize(w, h)
	return n
}

// NewTextArea creates a bordered multi-line text area showing maxLines lines
// at a time. It scrolls with the wheel while hovered. The height follows the
// font's line height unless set with SetSize.
func (c *Canvas) NewTextArea(name, content string, font *Font, x, y, w float64, maxLines int) *Node {
	if maxLines <= 0 {
		maxLines = 1
	}
	n := c.tree.alloc(name, KindTextArea)
	n.pos = Vec2{x, y}
	n.Text = newTextState(content, font)
	n.Text.MaxLines = maxLines
	n.Text.Padding = textBoxPadding
	n.Text.BorderColor = BorderColor
	n.Text.BorderWidth = 1
	n.Background = PanelColor
	n.Scroll = &Scrollable{}
	n.SetSize(w, 0)
	return n
}

// NewSprite creates a texture node sized to its texture.
func (c *Canvas) NewSprite(name, texture string, x, y float64) *Node {
	n := c.tree.alloc(name, KindSprite)
	n.pos = Vec2{x, y}
	n.Texture = &Textured{Name: texture}
	return n
}

// --- Buttons ---

// NewTextureButton creates a clickable texture.
func (c *Canvas) NewTextureButton(name, texture string, x, y float64, onClick func(ClickContext)) *Node {
	n := c.tree.alloc(name, KindTextureButton)
	n.pos = Vec2{x, y}
	n.Texture = &Textured{Name: texture}
	n.Click = &Clickable{OnClick: onClick, HoverColor: ColorWhite}
	return n
}

// NewRectButton creates a clickable filled rectangle with a centred caption.
func (c *Canvas) NewRectButton(name, caption string, font *Font, x, y, w, h float64, onClick func(ClickContext)) *Node {
	n := c.tree.alloc(name, KindRectButton)
	n.pos = Vec2{x, y}
	n.width, n.height = w, h
	n.Background = ButtonColor
	n.Text = newTextState(caption, font)
	n.Text.Align = TextAlignCenter
	n.Text.SingleLine = true
	n.Click = &Clickable{OnClick: onClick, HoverColor: ButtonHoverColor}
	return n
}

// NewToggleButton creates a clickable texture that flips between two
// textures on every click. ClickContext.Toggled carries the new state.
func (c *Canvas) NewToggleButton(name, activeTexture, inactiveTexture string, x, y float64, active bool, onClick func(ClickContext)) *Node {
	n := c.tree.alloc(name, KindToggleButton)
	n.pos = Vec2{x, y}
	n.Toggle = &Toggle{Active: active, ActiveTexture: activeTexture, InactiveTexture: inactiveTexture}
	n.Texture = &Textured{Name: n.Toggle.textureName()}
	n.Click = &Clickable{OnClick: onClick, HoverColor: ColorWhite}
	return n
}

// SetEnabled enables or disables a control. Disabled controls are skipped
// by hit testing and draw dimmed.
func (n *Node) SetEnabled(enabled bool) {
	n.Enabled = enabled
}

// SetVisible shows or hides a node and its subtree.
func (n *Node) SetVisible(visible bool) {
	n.Visible = visible
}
