package core

import "testing"

func TestEventBusDispatchOrder(t *testing.T) {
	bus := NewEventBus()
	var got []int
	bus.On(EvtBoxPushed, func(e Event) {
		got = append(got, e.Payload.(int))
	})

	bus.Emit(Event{Type: EvtBoxPushed, Payload: 1})
	bus.Emit(Event{Type: EvtBoxPushed, Payload: 2})
	bus.Emit(Event{Type: EvtLevelWon}) // no listener, must be dropped quietly
	if len(got) != 0 {
		t.Fatal("handlers ran before Dispatch")
	}

	bus.Dispatch()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("dispatch order %v, want [1 2]", got)
	}

	// Queue must be drained: a second dispatch re-delivers nothing.
	bus.Dispatch()
	if len(got) != 2 {
		t.Fatalf("redelivered events: %v", got)
	}
}

func TestEventBusMultipleListeners(t *testing.T) {
	bus := NewEventBus()
	calls := 0
	bus.On(EvtLevelStart, func(Event) { calls++ })
	bus.On(EvtLevelStart, func(Event) { calls++ })

	bus.Emit(Event{Type: EvtLevelStart})
	bus.Dispatch()
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestSessionCompletion(t *testing.T) {
	s := NewSession(3)
	if s.LevelCount() != 3 {
		t.Fatalf("level count %d, want 3", s.LevelCount())
	}
	for i := 0; i < 3; i++ {
		if s.IsCompleted(i) {
			t.Fatalf("level %d completed before play", i)
		}
	}

	s.CurrentLevel = 1
	s.Complete()
	if !s.IsCompleted(1) {
		t.Error("completed level not recorded")
	}
	if s.IsCompleted(0) || s.IsCompleted(2) {
		t.Error("completion leaked to other levels")
	}

	// Out-of-range values must not panic or record anything.
	s.CurrentLevel = 7
	s.Complete()
	s.CurrentLevel = -1
	s.Complete()
	if s.IsCompleted(-1) || s.IsCompleted(7) {
		t.Error("out-of-range completion reported")
	}
}
