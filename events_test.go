package hud

import "testing"

type recordingStore struct {
	events []Event
}

func (s *recordingStore) EmitEvent(e Event) { s.events = append(s.events, e) }

func TestRegistryRemoveDuringIteration(t *testing.T) {
	var r registry[func()]
	calls := 0
	var h CallbackHandle
	h = r.add(func() {
		calls++
		h.Remove()
	})
	r.add(func() { calls++ })

	r.each(func(fn func()) { fn() })
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if r.len() != 1 {
		t.Errorf("len = %d, want 1", r.len())
	}
	r.each(func(fn func()) { fn() })
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestZeroHandleRemoveIsNoOp(t *testing.T) {
	var h CallbackHandle
	h.Remove()
}

func TestEventStoreReceivesEvents(t *testing.T) {
	f := newFixture(t, 1920, 1080)
	store := &recordingStore{}
	f.c.SetEventStore(store)
	var handled int
	h := f.c.OnEvent(func(Event) { handled++ })

	f.c.Interact(false)
	h.Remove()
	f.c.Deactivate()

	if handled != 1 {
		t.Errorf("handler calls = %d, want 1", handled)
	}
	if len(store.events) != 2 {
		t.Fatalf("store events = %d, want 2", len(store.events))
	}
	if store.events[0].Type != EventActivated || store.events[1].Type != EventDeactivated {
		t.Errorf("store events = %+v", store.events)
	}
	if store.events[0].Canvas != "test" {
		t.Errorf("Canvas = %q, want test", store.events[0].Canvas)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventDragStart.String() != "drag-start" {
		t.Errorf("String = %q", EventDragStart.String())
	}
	if EventType(200).String() != "unknown" {
		t.Error("out-of-range type should be unknown")
	}
}

func TestAddObserverOnNonClickablePanics(t *testing.T) {
	f := newFixture(t, 1920, 1080)
	r := f.c.NewRect("r", 0, 0, 1, 1, ColorWhite)
	assertPanics(t, "AddObserver", func() { r.AddObserver(func(ClickContext) {}) })
}
