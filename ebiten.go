package hud

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenHost implements Host and Input on top of Ebitengine's window and
// input state.
type EbitenHost struct {
	Loop *Loop
	// CancelKey deactivates an active canvas. Defaults to Escape.
	CancelKey ebiten.Key
	// Console reports whether a console owns the keyboard. Optional.
	Console func() bool
	// WorldControls is told when world input should be enabled. Optional.
	WorldControls func(enabled bool)

	paused bool
}

// NewEbitenHost creates a host reading its resolution from loop.
func NewEbitenHost(loop *Loop) *EbitenHost {
	return &EbitenHost{Loop: loop, CancelKey: ebiten.KeyEscape}
}

// Resolution returns the layout size, or the window size before the first
// layout.
func (h *EbitenHost) Resolution() (int, int) {
	if h.Loop != nil {
		if w, ht := h.Loop.Size(); w > 0 && ht > 0 {
			return w, ht
		}
	}
	return ebiten.WindowSize()
}

func (h *EbitenHost) Paused() bool { return h.paused }

func (h *EbitenHost) SetPaused(paused bool) { h.paused = paused }

func (h *EbitenHost) SetWorldControls(enabled bool) {
	if h.WorldControls != nil {
		h.WorldControls(enabled)
	}
}

func (h *EbitenHost) ConsoleOpen() bool {
	return h.Console != nil && h.Console()
}

func (h *EbitenHost) SetCursorVisible(visible bool) {
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}

func (h *EbitenHost) SetCursorShape(shape CursorShape) {
	switch shape {
	case CursorPointer:
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// WarpCursor is a no-op: Ebitengine cannot move the system cursor.
func (h *EbitenHost) WarpCursor(nx, ny float64) {
	logger.Debug("hud: cursor warp not supported", "x", nx, "y", ny)
}

// Cursor returns the cursor position normalized to [0, 1].
func (h *EbitenHost) Cursor() (float64, float64) {
	x, y := ebiten.CursorPosition()
	w, ht := h.Resolution()
	if w <= 0 || ht <= 0 {
		return 0, 0
	}
	return float64(x) / float64(w), float64(y) / float64(ht)
}

func (h *EbitenHost) PrimaryDown() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (h *EbitenHost) ScrollUp() bool {
	_, dy := ebiten.Wheel()
	return dy > 0
}

func (h *EbitenHost) ScrollDown() bool {
	_, dy := ebiten.Wheel()
	return dy < 0
}

func (h *EbitenHost) CancelPressed() bool {
	return inpututil.IsKeyJustPressed(h.CancelKey)
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	Resizable     bool
	ShowFPS       bool
}

// Run opens a window and runs loop until the window closes.
func Run(loop *Loop, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = int(LogicalWidth/2), int(LogicalHeight/2)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	loop.ShowFPS = loop.ShowFPS || cfg.ShowFPS
	return ebiten.RunGame(loop)
}
