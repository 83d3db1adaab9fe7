package hud

import (
	"strings"
	"testing"
)

func TestScaleFor(t *testing.T) {
	tests := []struct {
		res  Vec2
		want float64
	}{
		{Vec2{1920, 1080}, 1},
		{Vec2{3840, 2160}, 2},
		{Vec2{1280, 720}, 720.0 / 1080},
		{Vec2{2560, 1080}, 1}, // ultrawide keeps the height factor
	}
	for _, tt := range tests {
		if got := ScaleFor(tt.res); !approxEqual(got, tt.want) {
			t.Errorf("ScaleFor(%v) = %v, want %v", tt.res, got, tt.want)
		}
	}
}

func TestScaleForNonPositiveHeight(t *testing.T) {
	buf := captureLog(t)
	if got := ScaleFor(Vec2{1920, 0}); got != 1 {
		t.Errorf("ScaleFor(zero height) = %v, want 1", got)
	}
	if !strings.Contains(buf.String(), "non-positive resolution") {
		t.Errorf("expected warning, got %q", buf.String())
	}
}

func TestWidgetBoundsAtNativeResolution(t *testing.T) {
	f := newFixture(t, 1920, 1080)
	w := f.c.NewWidget("w", 100, 50, 200, 100)
	f.c.Add(w)
	assertRect(t, "bounds", w.Bounds(), Rect{100, 50, 200, 100})
}

func TestWidgetBoundsAt4K(t *testing.T) {
	f := newFixture(t, 3840, 2160)
	w := f.c.NewWidget("w", 100, 50, 200, 100)
	f.c.Add(w)
	assertRect(t, "bounds", w.Bounds(), Rect{200, 100, 400, 200})
}

func TestChildBoundsFollowWidgetScale(t *testing.T) {
	f := newFixture(t, 1920, 1080)
	w := f.c.NewWidget("w", 100, 50, 200, 100)
	w.Widget.Scale = 2
	child := f.c.NewRect("r", 10, 10, 20, 20, ColorWhite)
	w.Add(child)
	f.c.Add(w)

	assertRect(t, "widget", w.Bounds(), Rect{100, 50, 400, 200})
	if !approxEqual(w.ChildScale(), 2) {
		t.Errorf("ChildScale = %v, want 2", w.ChildScale())
	}
	assertRect(t, "child", child.Bounds(), Rect{120, 70, 40, 40})
}

func TestNestedWidgetScalesMultiply(t *testing.T) {
	f := newFixture(t, 3840, 2160)
	outer := f.c.NewWidget("outer", 0, 0, 400, 400)
	outer.Widget.Scale = 0.5
	inner := f.c.NewWidget("inner", 100, 100, 100, 100)
	inner.Widget.Scale = 2
	outer.Add(inner)
	f.c.Add(outer)

	// Canvas 2, outer 2*0.5 = 1, inner 1*2 = 2.
	assertRect(t, "outer", outer.Bounds(), Rect{0, 0, 400, 400})
	assertRect(t, "inner", inner.Bounds(), Rect{100, 100, 200, 200})
}

func TestTickRelayoutsOnResolutionChange(t *testing.T) {
	f := newFixture(t, 1920, 1080)
	w := f.c.NewWidget("w", 100, 50, 200, 100)
	f.c.Add(w)

	var resized []float64
	f.c.OnEvent(func(e Event) {
		if e.Type == EventResize {
			resized = append(resized, e.Scale)
		}
	})

	if f.c.Tick() {
		t.Error("Tick reported a change without one")
	}
	f.host.w, f.host.h = 3840, 2160
	if !f.c.Tick() {
		t.Fatal("Tick missed the resolution change")
	}
	assertRect(t, "bounds", w.Bounds(), Rect{200, 100, 400, 200})
	if f.c.Resolution() != (Vec2{3840, 2160}) {
		t.Errorf("Resolution = %v", f.c.Resolution())
	}
	if len(resized) != 1 || resized[0] != 2 {
		t.Errorf("resize events = %v, want [2]", resized)
	}
}

func TestSetPositionUpdatesSubtree(t *testing.T) {
	f := newFixture(t, 1920, 1080)
	w := f.c.NewWidget("w", 0, 0, 200, 100)
	child := f.c.NewRect("r", 10, 10, 20, 20, ColorWhite)
	w.Add(child)
	f.c.Add(w)

	w.SetPosition(300, 400)
	assertRect(t, "child", child.Bounds(), Rect{310, 410, 20, 20})
}

func TestSetWidgetScaleClamps(t *testing.T) {
	f := newFixture(t, 1920, 1080)
	w := f.c.NewWidget("w", 0, 0, 100, 100)
	f.c.Add(w)

	if got := w.SetWidgetScale(5); got != 2 {
		t.Errorf("SetWidgetScale(5) = %v, want 2", got)
	}
	if got := w.SetWidgetScale(0.1); got != 0.5 {
		t.Errorf("SetWidgetScale(0.1) = %v, want 0.5", got)
	}
	if got := w.SetWidgetScale(1.25); got != 1.25 {
		t.Errorf("SetWidgetScale(1.25) = %v, want 1.25", got)
	}
	assertRect(t, "bounds", w.Bounds(), Rect{0, 0, 125, 125})
}

func TestDetachedNodeKeepsZeroBounds(t *testing.T) {
	f := newFixture(t, 1920, 1080)
	w := f.c.NewWidget("w", 100, 50, 200, 100)
	buf := captureLog(t)
	w.UpdateBounds()
	if w.Bounds() != (Rect{}) {
		t.Errorf("detached bounds = %+v, want zero", w.Bounds())
	}
	if !strings.Contains(buf.String(), "without parent") {
		t.Errorf("expected warning, got %q", buf.String())
	}
}

func TestToLogicalAndBack(t *testing.T) {
	f := newFixture(t, 3840, 2160)
	p := f.c.ToLogical(Vec2{400, 200})
	if p != (Vec2{200, 100}) {
		t.Errorf("ToLogical = %v, want (200, 100)", p)
	}
	if back := f.c.ToPhysical(p); back != (Vec2{400, 200}) {
		t.Errorf("ToPhysical = %v, want (400, 200)", back)
	}
}

func TestCenter(t *testing.T) {
	f := newFixture(t, 1920, 1080)
	w := f.c.NewWidget("w", 0, 0, 200, 100)
	f.c.Add(w)
	f.c.Center(w)
	if w.Position() != (Vec2{860, 490}) {
		t.Errorf("Position = %v, want (860, 490)", w.Position())
	}
}
