package hud

import (
	"testing"
	"time"
)

// panel builds an active canvas with a 400×300 widget at (100, 100) holding
// one 100×40 button at (20, 20), physical (120, 120).
func panel(t *testing.T) (*fixture, *Node, *Node, *int) {
	t.Helper()
	f := newFixture(t, 1920, 1080)
	clicks := 0
	w := f.c.NewWidget("panel", 100, 100, 400, 300)
	btn := f.c.NewRectButton("panel/ok", "OK", nil, 20, 20, 100, 40, func(ClickContext) { clicks++ })
	w.Add(btn)
	f.c.Add(w)
	if !f.c.Interact(false) {
		t.Fatal("Interact refused")
	}
	return f, w, btn, &clicks
}

func TestClickInsideControl(t *testing.T) {
	f, _, btn, clicks := panel(t)
	var events []Event
	f.c.OnEvent(func(e Event) {
		if e.Type == EventClick {
			events = append(events, e)
		}
	})

	f.click(150, 140)
	if *clicks != 1 {
		t.Fatalf("clicks = %d, want 1", *clicks)
	}
	if len(events) != 1 || events[0].Node != btn.ID || events[0].Canvas != "test" {
		t.Errorf("click events = %+v", events)
	}
	if f.c.MouseState() != MouseUp {
		t.Errorf("MouseState = %v, want up", f.c.MouseState())
	}
}

func TestReleaseOutsideControlDoesNotClick(t *testing.T) {
	f, w, _, clicks := panel(t)
	f.sample(150, 140, false)
	f.sample(150, 140, true)
	f.sample(300, 300, true)
	f.sample(300, 300, false)
	if *clicks != 0 {
		t.Errorf("clicks = %d, want 0", *clicks)
	}
	if w.Widget.Pressed {
		t.Error("widget still pressed after release")
	}
}

func TestLeavingWidgetCancelsPress(t *testing.T) {
	f, w, _, clicks := panel(t)
	f.sample(150, 140, false)
	f.sample(150, 140, true)
	if f.c.Manager().Pressed() != w {
		t.Fatal("widget not pressed")
	}
	f.sample(900, 900, true)
	if f.c.Manager().Pressed() != nil || w.Widget.Pressed {
		t.Error("press survived leaving the widget")
	}
	f.sample(150, 140, true)
	f.sample(150, 140, false)
	if *clicks != 0 {
		t.Errorf("clicks = %d, want 0", *clicks)
	}
}

func TestClickOnDisabledControlIsIgnored(t *testing.T) {
	f, _, btn, clicks := panel(t)
	btn.SetEnabled(false)
	f.click(150, 140)
	if *clicks != 0 {
		t.Errorf("clicks = %d, want 0", *clicks)
	}
}

func TestClickObserversRunAfterOnClick(t *testing.T) {
	f, _, btn, clicks := panel(t)
	var order []string
	btn.Click.OnClick = func(ClickContext) { order = append(order, "click") }
	h := btn.AddObserver(func(ClickContext) { order = append(order, "observer") })

	f.click(150, 140)
	if len(order) != 2 || order[0] != "click" || order[1] != "observer" {
		t.Errorf("order = %v", order)
	}
	h.Remove()
	f.click(150, 140)
	if len(order) != 3 {
		t.Errorf("removed observer still called: %v", order)
	}
	_ = clicks
}

func TestLongPressStartsDrag(t *testing.T) {
	f, w, _, clicks := panel(t)
	other := f.c.NewWidget("other", 0, 0, 50, 50)
	f.c.Add(other)

	var got []EventType
	f.c.OnEvent(func(e Event) { got = append(got, e.Type) })

	f.sample(110, 110, false)
	f.sample(110, 110, true)
	f.clock.advance(600 * time.Millisecond)
	f.sample(110, 110, true)
	if !w.Widget.Dragging {
		t.Fatal("long press did not start a drag")
	}
	if w.Widget.DragOffset != (Vec2{10, 10}) {
		t.Errorf("DragOffset = %v, want (10, 10)", w.Widget.DragOffset)
	}
	if ws := f.c.Widgets(); ws[len(ws)-1] != w {
		t.Error("dragged widget not brought to front")
	}

	f.sample(510, 610, true)
	if w.Position() != (Vec2{500, 600}) {
		t.Errorf("Position = %v, want (500, 600)", w.Position())
	}

	f.sample(510, 610, false)
	if w.Widget.Dragging {
		t.Error("still dragging after release")
	}
	if *clicks != 0 {
		t.Errorf("drag release clicked %d times", *clicks)
	}
	if w.Position() != (Vec2{500, 600}) {
		t.Errorf("Position after release = %v", w.Position())
	}
	want := []EventType{EventDragStart, EventDragEnd}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestLongPressOverButtonSuppressesClick(t *testing.T) {
	f, w, _, clicks := panel(t)
	var got []EventType
	f.c.OnEvent(func(e Event) { got = append(got, e.Type) })

	f.sample(150, 140, false)
	if f.c.Manager().HoveredControl() == nil {
		t.Fatal("button not hovered")
	}
	f.sample(150, 140, true)
	f.clock.advance(600 * time.Millisecond)
	f.sample(150, 140, true)
	if !w.Widget.Dragging {
		t.Fatal("long press over a button did not start a drag")
	}
	f.sample(150, 140, false)

	if *clicks != 0 {
		t.Errorf("clicks = %d, want 0", *clicks)
	}
	if w.Position() != (Vec2{100, 100}) {
		t.Errorf("Position = %v, want (100, 100)", w.Position())
	}
	want := []EventType{EventDragStart, EventDragEnd}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestDragOffsetAtHigherResolution(t *testing.T) {
	f := newFixture(t, 3840, 2160)
	w := f.c.NewWidget("w", 100, 100, 400, 300)
	f.c.Add(w)
	f.c.Interact(false)

	// Physical (240, 240) is logical (120, 120).
	f.sample(240, 240, false)
	f.sample(240, 240, true)
	f.clock.advance(time.Second)
	f.sample(240, 240, true)
	f.sample(1040, 640, true)
	if w.Position() != (Vec2{500, 300}) {
		t.Errorf("Position = %v, want (500, 300)", w.Position())
	}
}

func TestShortPressDoesNotDrag(t *testing.T) {
	f, w, _, _ := panel(t)
	f.sample(110, 110, false)
	f.sample(110, 110, true)
	f.clock.advance(499 * time.Millisecond)
	f.sample(110, 110, true)
	if w.Widget.Dragging {
		t.Error("drag started before the long-press delay")
	}
}

func TestNonDraggableWidgetStaysPut(t *testing.T) {
	f, w, _, _ := panel(t)
	w.Widget.Draggable = false
	f.sample(110, 110, false)
	f.sample(110, 110, true)
	f.clock.advance(time.Second)
	f.sample(110, 110, true)
	f.sample(300, 300, true)
	if w.Widget.Dragging || w.Position() != (Vec2{100, 100}) {
		t.Errorf("non-draggable widget moved: dragging=%v pos=%v", w.Widget.Dragging, w.Position())
	}
}

func TestScrollWhileDraggingScalesWidget(t *testing.T) {
	f, w, _, _ := panel(t)
	var scales []float64
	f.c.OnEvent(func(e Event) {
		if e.Type == EventWidgetScale {
			scales = append(scales, e.Scale)
		}
	})
	f.sample(110, 110, false)
	f.sample(110, 110, true)
	f.clock.advance(time.Second)
	f.sample(110, 110, true)

	f.c.injectQueue = append(f.c.injectQueue, syntheticSample{x: 110, y: 110, down: true, scroll: 1})
	f.c.Update()
	if !approxEqual(w.WidgetScale(), 1.05) {
		t.Errorf("WidgetScale = %v, want 1.05", w.WidgetScale())
	}
	for i := 0; i < 40; i++ {
		f.c.injectQueue = append(f.c.injectQueue, syntheticSample{x: 110, y: 110, down: true, scroll: 1})
		f.c.Update()
	}
	if w.WidgetScale() != 2 {
		t.Errorf("WidgetScale = %v, want clamp at 2", w.WidgetScale())
	}
	for i := 0; i < 40; i++ {
		f.c.injectQueue = append(f.c.injectQueue, syntheticSample{x: 110, y: 110, down: true, scroll: -1})
		f.c.Update()
	}
	if w.WidgetScale() != 0.5 {
		t.Errorf("WidgetScale = %v, want clamp at 0.5", w.WidgetScale())
	}
	if len(scales) != 81 || !approxEqual(scales[0], 1.05) {
		t.Errorf("scale events = %d, first %v", len(scales), scales[0])
	}
}

func TestHoverSwitchesCursorShape(t *testing.T) {
	f, w, btn, _ := panel(t)
	f.sample(150, 140, false)
	if f.c.Manager().Hovered() != w || f.c.Manager().HoveredControl() != btn {
		t.Fatal("hover not tracked")
	}
	if f.c.Cursor().Shape != CursorPointer {
		t.Errorf("Shape = %v, want pointer", f.c.Cursor().Shape)
	}
	f.sample(300, 300, false)
	if f.c.Manager().HoveredControl() != nil || f.c.Cursor().Shape != CursorDefault {
		t.Error("leaving the control should restore the default cursor")
	}
	f.sample(1000, 1000, false)
	if f.c.Manager().Hovered() != nil || w.Widget.Hovered {
		t.Error("leaving the widget should clear hover")
	}
	if n := len(f.host.shapes); n != 2 {
		t.Errorf("SetCursorShape called %d times, want 2", n)
	}
}

func TestHoverHighlightFades(t *testing.T) {
	f, _, btn, _ := panel(t)
	f.sample(150, 140, false)
	if btn.Click.Highlight() != 0 {
		t.Fatalf("highlight jumped to %v", btn.Click.Highlight())
	}
	f.clock.advance(50 * time.Millisecond)
	f.sample(150, 140, false)
	mid := btn.Click.Highlight()
	if mid <= 0 || mid >= 1 {
		t.Errorf("mid-fade highlight = %v, want in (0, 1)", mid)
	}
	f.clock.advance(200 * time.Millisecond)
	f.sample(150, 140, false)
	if btn.Click.Highlight() != 1 {
		t.Errorf("highlight = %v, want 1", btn.Click.Highlight())
	}
	f.sample(300, 300, false)
	f.clock.advance(time.Second)
	f.sample(300, 300, false)
	if btn.Click.Highlight() != 0 {
		t.Errorf("highlight after leaving = %v, want 0", btn.Click.Highlight())
	}
}

func TestScrollMovesTextArea(t *testing.T) {
	f := newFixture(t, 1920, 1080)
	w := f.c.NewWidget("w", 0, 0, 600, 400)
	area := f.c.NewTextArea("w/log", "0\n1\n2\n3\n4\n5\n6\n7\n8\n9", nil, 10, 10, 500, 3)
	area.SetSize(500, 100)
	w.Add(area)
	f.c.Add(w)
	f.c.Interact(false)

	var deltas []int
	area.Scroll.OnScroll = func(ctx ScrollContext) { deltas = append(deltas, ctx.Delta) }

	f.c.InjectScroll(50, 50, -1)
	f.c.Update()
	if area.Text.FirstLine() != 1 {
		t.Errorf("FirstLine = %d, want 1", area.Text.FirstLine())
	}
	f.c.InjectScroll(50, 50, 1)
	f.c.InjectScroll(50, 50, 1)
	f.c.Update()
	f.c.Update()
	if area.Text.FirstLine() != 0 {
		t.Errorf("FirstLine = %d, want 0", area.Text.FirstLine())
	}
	if len(deltas) != 3 || deltas[0] != -1 {
		t.Errorf("OnScroll deltas = %v", deltas)
	}
}

func TestRemovingPressedWidgetIsSafe(t *testing.T) {
	f, w, _, clicks := panel(t)
	f.sample(150, 140, false)
	f.sample(150, 140, true)
	f.c.Remove(w)
	f.sample(150, 140, true)
	f.sample(150, 140, false)
	if *clicks != 0 {
		t.Errorf("clicks = %d, want 0", *clicks)
	}
	if f.c.Manager().Pressed() != nil || f.c.Manager().Hovered() != nil {
		t.Error("manager still references a removed widget")
	}
}

func TestToggleButtonFlipsOnClick(t *testing.T) {
	f := newFixture(t, 1920, 1080)
	f.c.Textures().Put("test", "on", &Texture{Width: 32, Height: 32})
	f.c.Textures().Put("test", "off", &Texture{Width: 32, Height: 32})
	w := f.c.NewWidget("w", 0, 0, 200, 200)
	var states []bool
	tog := f.c.NewToggleButton("w/sound", "on", "off", 10, 10, false, func(ctx ClickContext) {
		states = append(states, ctx.Toggled)
	})
	w.Add(tog)
	f.c.Add(w)
	f.c.Interact(false)

	f.click(20, 20)
	f.click(20, 20)
	if len(states) != 2 || !states[0] || states[1] {
		t.Errorf("toggle states = %v, want [true false]", states)
	}
	if tog.Texture.Name != "off" {
		t.Errorf("texture = %q, want off", tog.Texture.Name)
	}
}
