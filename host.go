package hud

// Host is the environment a canvas overlays: the game owning the screen,
// the simulation pause flag, player world controls and the native cursor.
// EbitenHost is the Ebitengine implementation.
type Host interface {
	// Resolution returns the physical render target size.
	Resolution() (width, height int)
	Paused() bool
	SetPaused(paused bool)
	// SetWorldControls enables or disables player world input. The canvas
	// only calls it when the state actually changes.
	SetWorldControls(enabled bool)
	// ConsoleOpen reports whether an in-game console has the keyboard, in
	// which case cancel input is ignored.
	ConsoleOpen() bool
	SetCursorVisible(visible bool)
	SetCursorShape(shape CursorShape)
	// WarpCursor moves the native cursor to normalized coordinates.
	WarpCursor(nx, ny float64)
}

// Input is polled once per frame; the canvas never receives input events.
type Input interface {
	// Cursor returns the cursor position normalized to [0, 1] on each axis.
	Cursor() (nx, ny float64)
	PrimaryDown() bool
	ScrollUp() bool
	ScrollDown() bool
	CancelPressed() bool
}
