package hud

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingScene struct {
	log *[]string
	err error
}

func (s recordingScene) Update() error {
	*s.log = append(*s.log, "scene-update")
	return s.err
}

func (s recordingScene) Draw(*ebiten.Image) {
	*s.log = append(*s.log, "scene-draw")
}

func TestLoopOrder(t *testing.T) {
	var log []string
	l := NewLoop(recordingScene{log: &log})
	l.OnBeforeScene(func() { log = append(log, "before") })
	l.OnAfterScene(func(*ebiten.Image) { log = append(log, "after") })
	l.OnTick(2, func() { log = append(log, "tick") })

	l.Update()
	l.Draw(nil)
	l.Update()

	want := []string{"before", "scene-update", "scene-draw", "after", "tick", "before", "scene-update"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
}

func TestLoopPropagatesSceneError(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	l := NewLoop(recordingScene{log: &log, err: boom})
	if err := l.Update(); !errors.Is(err, boom) {
		t.Errorf("Update = %v, want boom", err)
	}
}

func TestLoopHandleRemove(t *testing.T) {
	l := NewLoop(nil)
	calls := 0
	h := l.OnBeforeScene(func() { calls++ })
	l.Update()
	h.Remove()
	l.Update()
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestLoopLayout(t *testing.T) {
	l := NewLoop(nil)
	if w, h := l.Layout(1280, 720); w != 1280 || h != 720 {
		t.Errorf("Layout = %d, %d", w, h)
	}
	if w, h := l.Size(); w != 1280 || h != 720 {
		t.Errorf("Size = %d, %d", w, h)
	}
}

func TestCanvasStartStop(t *testing.T) {
	f := newFixture(t, 1920, 1080)
	l := NewLoop(nil)
	f.c.Start(l)
	f.c.Start(l) // second start is a no-op
	if l.before.len() != 1 || l.after.len() != 1 || l.ticks.len() != 1 {
		t.Fatalf("subscriptions = %d/%d/%d, want 1/1/1", l.before.len(), l.after.len(), l.ticks.len())
	}

	// The resolution is polled on the tick, every ResolutionPollFrames frames.
	f.host.w, f.host.h = 3840, 2160
	for i := 0; i < 29; i++ {
		l.Update()
	}
	if f.c.Scale() != 1 {
		t.Fatalf("resolution polled early")
	}
	l.Update()
	if f.c.Scale() != 2 {
		t.Errorf("Scale = %v, want 2 after the tick", f.c.Scale())
	}

	f.c.Interact(false)
	f.c.Stop()
	if l.before.len() != 0 || l.after.len() != 0 || l.ticks.len() != 0 {
		t.Error("Stop left subscriptions behind")
	}
	if f.c.State() != CanvasInactive {
		t.Error("Stop left the canvas active")
	}
}
