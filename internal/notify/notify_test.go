package notify

import (
	"testing"
	"time"
)

func newTestPresenter() (*Presenter, *ManualScheduler, *[]Notification) {
	clock := NewManualScheduler(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	var seen []Notification
	p := New(
		WithScheduler(clock),
		WithOnChange(func(n Notification) { seen = append(seen, n) }),
	)
	return p, clock, &seen
}

func stateOf(p *Presenter, id int64) (State, bool) {
	for _, n := range p.Active() {
		if n.ID == id {
			return n.State, true
		}
	}
	return Removed, false
}

func TestTimeline(t *testing.T) {
	p, clock, seen := newTestPresenter()
	p.Notify("Product added to cart!")

	steps := []struct {
		advance  time.Duration
		expected State
		present  bool
	}{
		{advance: 0, expected: Created, present: true},
		{advance: 9 * time.Millisecond, expected: Created, present: true},
		{advance: 1 * time.Millisecond, expected: Visible, present: true},
		{advance: 2989 * time.Millisecond, expected: Visible, present: true},
		{advance: 1 * time.Millisecond, expected: Fading, present: true},
		{advance: 299 * time.Millisecond, expected: Fading, present: true},
		{advance: 1 * time.Millisecond, expected: Removed, present: false},
	}

	for i, step := range steps {
		clock.Advance(step.advance)
		state, present := stateOf(p, 1)
		if present != step.present || (present && state != step.expected) {
			t.Errorf("step %d: expected %s (present=%v), got %s (present=%v)", i, step.expected, step.present, state, present)
		}
	}

	want := []State{Created, Visible, Fading, Removed}
	if len(*seen) != len(want) {
		t.Fatalf("Expected %d transitions, got %d", len(want), len(*seen))
	}
	for i, n := range *seen {
		if n.State != want[i] {
			t.Errorf("transition %d: expected %s, got %s", i, want[i], n.State)
		}
	}
	if clock.Pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", clock.Pending())
	}
}

func TestConcurrentNotificationsAreIndependent(t *testing.T) {
	p, clock, _ := newTestPresenter()

	p.Notify("first")
	clock.Advance(1000 * time.Millisecond)
	p.Notify("second")
	p.Notify("second")

	if got := len(p.Active()); got != 3 {
		t.Fatalf("Expected 3 in-flight notifications without dedup, got %d", got)
	}

	// first is removed at 3300ms; the others started at 1000ms.
	clock.Advance(2300 * time.Millisecond)
	active := p.Active()
	if len(active) != 2 {
		t.Fatalf("Expected 2 remaining, got %d", len(active))
	}
	for _, n := range active {
		if n.Message != "second" || n.State != Visible {
			t.Errorf("Expected visible second notification, got %+v", n)
		}
	}

	clock.Advance(1000 * time.Millisecond)
	if got := len(p.Active()); got != 0 {
		t.Errorf("Expected all notifications removed, got %d", got)
	}
}

func TestNotifyReturnsImmediately(t *testing.T) {
	p, clock, _ := newTestPresenter()
	p.Notify("hello")
	if clock.Pending() != 2 {
		t.Errorf("Expected two scheduled transitions, got %d", clock.Pending())
	}
	if n := p.Active()[0]; n.CreatedAt != clock.Now() {
		t.Errorf("Expected creation at virtual now, got %v", n.CreatedAt)
	}
}

func TestCustomTiming(t *testing.T) {
	clock := NewManualScheduler(time.Unix(0, 0))
	p := New(WithScheduler(clock), WithTiming(Timing{ShowDelay: time.Second, Lifetime: 2 * time.Second, FadeOut: time.Second}))
	p.Notify("slow")

	clock.Advance(time.Second)
	if s, _ := stateOf(p, 1); s != Visible {
		t.Errorf("Expected visible, got %s", s)
	}
	clock.Advance(2 * time.Second)
	if _, present := stateOf(p, 1); present {
		t.Error("Expected notification removed")
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		Created:  "created",
		Visible:  "visible",
		Fading:   "fading",
		Removed:  "removed",
		State(9): "unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("Expected %s, got %s", want, s.String())
		}
	}
}
