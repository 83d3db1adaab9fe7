package hud

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawOp identifies the kind of draw command.
type drawOp uint8

const (
	opFill    drawOp = iota // filled rectangle
	opStroke                // rectangle outline
	opTexture               // scaled image
	opText                  // one or more lines of text
)

// disabledDim darkens disabled controls.
const disabledDim = 0.5

// drawCommand is a single draw instruction emitted during tree traversal.
// Everything is in physical pixels.
type drawCommand struct {
	op    drawOp
	node  NodeID
	rect  Rect
	color Color

	// opStroke
	width float64

	// opTexture
	image *ebiten.Image

	// opText
	text  string
	font  *Font
	scale float64
	align TextAlign
	// middle centres the text vertically in rect.
	middle bool
}

// collect walks n's visible subtree in paint order, parents first, and
// appends its draw commands to buf. Inactive tab pages are skipped.
func (c *Canvas) collect(n *Node, buf []drawCommand) []drawCommand {
	if !n.Visible {
		return buf
	}
	buf = n.appendCommands(buf)
	for _, id := range n.children {
		child := c.tree.nodes[id]
		if child == nil || !n.searchable(child) {
			continue
		}
		buf = c.collect(child, buf)
	}
	return buf
}

// appendCommands emits the commands for n alone.
func (n *Node) appendCommands(buf []drawCommand) []drawCommand {
	switch n.Kind {
	case KindCanvas, KindTabStrip:
		return buf
	case KindRect:
		return n.fill(buf, n.Color)
	case KindFrame, KindSprite, KindTextureButton, KindToggleButton:
		buf = n.fill(buf, n.Background)
		return n.appendTexture(buf)
	case KindRectButton:
		bg := n.Background
		if n.Click != nil && n.Click.highlight > 0 {
			bg = lerpColor(bg, n.Click.HoverColor, n.Click.highlight)
		}
		buf = n.fill(buf, n.dim(bg))
		return n.appendText(buf, n.Text.Lines(), true)
	case KindLabel:
		buf = n.fill(buf, n.Background)
		return n.appendText(buf, n.Text.Lines(), false)
	case KindTextBox:
		buf = n.fill(buf, n.Background)
		buf = n.border(buf)
		lines := n.Text.Lines()
		if len(lines) > 0 {
			inner := n.logicalInnerWidth()
			lines = []string{n.Text.ellipsize(lines[0], inner)}
		}
		return n.appendText(buf, lines, true)
	case KindTextArea:
		buf = n.fill(buf, n.Background)
		buf = n.border(buf)
		return n.appendText(buf, n.Text.VisibleLines(), false)
	default:
		return n.fill(buf, n.Background)
	}
}

func (n *Node) fill(buf []drawCommand, clr Color) []drawCommand {
	if clr.A <= 0 || n.bounds.Width <= 0 || n.bounds.Height <= 0 {
		return buf
	}
	return append(buf, drawCommand{op: opFill, node: n.ID, rect: n.bounds, color: clr})
}

func (n *Node) border(buf []drawCommand) []drawCommand {
	if n.Text == nil || n.Text.BorderWidth <= 0 || n.Text.BorderColor.A <= 0 {
		return buf
	}
	return append(buf, drawCommand{
		op:    opStroke,
		node:  n.ID,
		rect:  n.bounds,
		color: n.Text.BorderColor,
		width: n.Text.BorderWidth * n.childScale,
	})
}

// dim darkens clr when n is a disabled control.
func (n *Node) dim(clr Color) Color {
	if n.Enabled || !isControl(n) {
		return clr
	}
	return Color{clr.R * disabledDim, clr.G * disabledDim, clr.B * disabledDim, clr.A}
}

func (n *Node) appendTexture(buf []drawCommand) []drawCommand {
	tex := n.texture()
	if tex == nil || tex.Image == nil || tex.Width == 0 || tex.Height == 0 {
		return buf
	}
	tint := n.Color
	if n.Click != nil && n.Click.highlight > 0 {
		tint = lerpColor(tint, n.Click.HoverColor, n.Click.highlight)
	}
	return append(buf, drawCommand{
		op:    opTexture,
		node:  n.ID,
		rect:  n.bounds,
		color: n.dim(tint),
		image: tex.Image,
	})
}

func (n *Node) appendText(buf []drawCommand, lines []string, middle bool) []drawCommand {
	t := n.Text
	if t == nil || t.Font == nil || len(lines) == 0 {
		return buf
	}
	pad := t.Padding * n.childScale
	r := n.bounds.Inset(pad)
	s := lines[0]
	for _, l := range lines[1:] {
		s += "\n" + l
	}
	if s == "" {
		return buf
	}
	return append(buf, drawCommand{
		op:     opText,
		node:   n.ID,
		rect:   r,
		color:  n.dim(t.Color),
		text:   s,
		font:   t.Font,
		scale:  n.childScale,
		align:  t.Align,
		middle: middle,
	})
}

// logicalInnerWidth is the text width available inside padding.
func (n *Node) logicalInnerWidth() float64 {
	w, _ := n.logicalSize()
	return w - 2*n.Text.Padding
}

// submit issues the collected commands to dst.
func (c *Canvas) submit(dst *ebiten.Image) {
	if dst == nil {
		return
	}
	for i := range c.drawBuf {
		cmd := &c.drawBuf[i]
		r := cmd.rect
		switch cmd.op {
		case opFill:
			vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), cmd.color.toRGBA(), true)
		case opStroke:
			vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(cmd.width), cmd.color.toRGBA(), true)
		case opTexture:
			b := cmd.image.Bounds()
			var op ebiten.DrawImageOptions
			op.GeoM.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
			op.GeoM.Translate(r.X, r.Y)
			op.ColorScale.ScaleWithColor(cmd.color.toRGBA())
			op.Filter = ebiten.FilterLinear
			dst.DrawImage(cmd.image, &op)
		case opText:
			drawText(dst, cmd)
		}
	}
}

func drawText(dst *ebiten.Image, cmd *drawCommand) {
	face := cmd.font.face(cmd.scale)
	r := cmd.rect
	op := &text.DrawOptions{}
	op.LineSpacing = cmd.font.LineHeight() * cmd.scale
	x, y := r.X, r.Y
	switch cmd.align {
	case TextAlignCenter:
		x += r.Width / 2
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		x += r.Width
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	if cmd.middle {
		y += r.Height / 2
		op.SecondaryAlign = text.AlignCenter
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(cmd.color.toRGBA())
	text.Draw(dst, cmd.text, face, op)
}
