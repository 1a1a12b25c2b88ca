package engine

import "testing"

func TestEventInvokesInOrder(t *testing.T) {
	var e Event
	var calls []int
	e.AddListener(func() { calls = append(calls, 1) })
	e.AddListener(func() { calls = append(calls, 2) })
	e.AddListener(nil)

	e.Invoke()

	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Errorf("Expected [1 2], got %v", calls)
	}
	if e.ListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", e.ListenerCount())
	}
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[float64]
	var got float64
	e.AddListener(func(v float64) { got = v })

	e.Invoke(3.5)

	if got != 3.5 {
		t.Errorf("Expected 3.5, got %v", got)
	}

	e.RemoveAllListeners()
	if e.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners, got %d", e.ListenerCount())
	}
}
