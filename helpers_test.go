package hud

import (
	"bytes"
	"log/slog"
	"math"
	"testing"
	"time"
)

// --- Fakes ---

type fakeHost struct {
	w, h          int
	paused        bool
	console       bool
	worldCalls    []bool
	cursorVisible bool
	shapes        []CursorShape
	warps         []Vec2
	pauseCalls    int
}

func (h *fakeHost) Resolution() (int, int) { return h.w, h.h }
func (h *fakeHost) Paused() bool { return h.paused }
func (h *fakeHost) SetPaused(p bool) {
	h.pauseCalls++
	h.paused = p
}
func (h *fakeHost) SetWorldControls(enabled bool) { h.worldCalls = append(h.worldCalls, enabled) }
func (h *fakeHost) ConsoleOpen() bool { return h.console }
func (h *fakeHost) SetCursorVisible(v bool) { h.cursorVisible = v }
func (h *fakeHost) SetCursorShape(s CursorShape) { h.shapes = append(h.shapes, s) }
func (h *fakeHost) WarpCursor(nx, ny float64) { h.warps = append(h.warps, Vec2{nx, ny}) }

type fakeInput struct {
	nx, ny     float64
	down       bool
	scrollUp   bool
	scrollDown bool
	cancel     bool
}

func (in *fakeInput) Cursor() (float64, float64) { return in.nx, in.ny }
func (in *fakeInput) PrimaryDown() bool { return in.down }
func (in *fakeInput) ScrollUp() bool { return in.scrollUp }
func (in *fakeInput) ScrollDown() bool { return in.scrollDown }
func (in *fakeInput) CancelPressed() bool { return in.cancel }

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// --- Canvas fixture ---

type fixture struct {
	c     *Canvas
	host  *fakeHost
	input *fakeInput
	clock *fakeClock
}

func newFixture(t *testing.T, w, h int) *fixture {
	t.Helper()
	f := &fixture{
		host:  &fakeHost{w: w, h: h},
		input: &fakeInput{},
		clock: &fakeClock{t: time.Unix(1_000_000, 0)},
	}
	f.c = NewCanvas(CanvasConfig{ID: "test", Host: f.host, Input: f.input, Clock: f.clock.now})
	return f
}

// sample runs one frame with a synthetic cursor sample at physical (x, y).
func (f *fixture) sample(x, y float64, down bool) {
	if down {
		f.c.InjectPress(x, y)
	} else {
		f.c.InjectRelease(x, y)
	}
	f.c.Update()
}

// click presses and releases at (x, y) over two frames.
func (f *fixture) click(x, y float64) {
	f.sample(x, y, false)
	f.sample(x, y, true)
	f.sample(x, y, false)
}

// --- Log capture ---

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logger
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(prev) })
	return &buf
}

// --- Assertions ---

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func assertRect(t *testing.T, label string, got, want Rect) {
	t.Helper()
	if !approxEqual(got.X, want.X) || !approxEqual(got.Y, want.Y) ||
		!approxEqual(got.Width, want.Width) || !approxEqual(got.Height, want.Height) {
		t.Errorf("%s = %+v, want %+v", label, got, want)
	}
}

func assertPanics(t *testing.T, label string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", label)
		}
	}()
	fn()
}
