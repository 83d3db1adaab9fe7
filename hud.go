package hud

import "image/color"

// Logical canvas dimensions. Every position and size handed to the package is
// expressed in this fixed coordinate space and scaled to the physical screen.
const (
	LogicalWidth  = 1920.0
	LogicalHeight = 1080.0
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA, clamping each component.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// lerpColor blends from a to b by t in [0, 1].
func lerpColor(a, b Color, t float64) Color {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsPoint is Contains for a Vec2.
func (r Rect) ContainsPoint(p Vec2) bool {
	return r.Contains(p.X, p.Y)
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 { return Vec2{r.X, r.Y} }

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 { return Vec2{r.Width, r.Height} }

// Inset shrinks the rectangle by d on every side. Sizes never go negative.
func (r Rect) Inset(d float64) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// NodeKind selects how a Node draws and which traits it carries.
type NodeKind uint8

const (
	KindCanvas        NodeKind = iota // tree root owned by a Canvas
	KindWidget                        // rectangle container with drag and scale state
	KindFrame                         // texture-backed widget
	KindTabbed                        // widget showing one page at a time
	KindTabStrip                      // row of tab buttons inside a tabbed widget
	KindRect                          // filled rectangle
	KindLabel                         // single text run
	KindTextBox                       // bordered single-line text
	KindTextArea                      // bordered, scrollable multi-line text
	KindSprite                        // texture
	KindTextureButton                 // clickable texture
	KindRectButton                    // clickable filled rectangle with caption
	KindToggleButton                  // clickable texture with two states
)

var kindNames = [...]string{
	KindCanvas:        "canvas",
	KindWidget:        "widget",
	KindFrame:         "frame",
	KindTabbed:        "tabbed",
	KindTabStrip:      "tabstrip",
	KindRect:          "rect",
	KindLabel:         "label",
	KindTextBox:       "textbox",
	KindTextArea:      "textarea",
	KindSprite:        "sprite",
	KindTextureButton: "texturebutton",
	KindRectButton:    "rectbutton",
	KindToggleButton:  "togglebutton",
}

func (k NodeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// CursorShape is the glyph the host shows for the UI cursor.
type CursorShape uint8

const (
	CursorDefault CursorShape = iota // arrow
	CursorPointer                    // hand, shown over clickable controls
)

// TextAlign controls horizontal text alignment inside a node's bounds.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)
