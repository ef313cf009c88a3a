package notify

import (
	"log/slog"
	"sync"
	"time"
)

// State is the lifecycle stage of a notification.
type State int

const (
	Created State = iota
	Visible
	Fading
	Removed
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Visible:
		return "visible"
	case Fading:
		return "fading"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Timing controls the notification timeline. Lifetime is measured from
// creation, FadeOut from the start of fading.
type Timing struct {
	ShowDelay time.Duration
	Lifetime  time.Duration
	FadeOut   time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		ShowDelay: 10 * time.Millisecond,
		Lifetime:  3000 * time.Millisecond,
		FadeOut:   300 * time.Millisecond,
	}
}

// Notification is a snapshot of one in-flight message.
type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	State     State     `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}

// Presenter runs independent, uncancellable notification timelines.
type Presenter struct {
	scheduler Scheduler
	timing    Timing
	onChange  func(Notification)

	mu     sync.Mutex
	nextID int64
	items  []*Notification
}

type Option func(*Presenter)

// WithScheduler replaces wall-clock timers, typically with a ManualScheduler.
func WithScheduler(s Scheduler) Option {
	return func(p *Presenter) { p.scheduler = s }
}

func WithTiming(t Timing) Option {
	return func(p *Presenter) { p.timing = t }
}

// WithOnChange observes every state transition.
func WithOnChange(fn func(Notification)) Option {
	return func(p *Presenter) { p.onChange = fn }
}

func New(opts ...Option) *Presenter {
	p := &Presenter{
		scheduler: SystemScheduler{},
		timing:    DefaultTiming(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Notify schedules message through created → visible → fading → removed
// and returns immediately.
func (p *Presenter) Notify(message string) {
	p.mu.Lock()
	p.nextID++
	n := &Notification{
		ID:        p.nextID,
		Message:   message,
		State:     Created,
		CreatedAt: p.scheduler.Now(),
	}
	p.items = append(p.items, n)
	snapshot := *n
	p.mu.Unlock()

	slog.Debug("Notification created", "id", n.ID, "message", message)
	p.changed(snapshot)

	id := n.ID
	p.scheduler.AfterFunc(p.timing.ShowDelay, func() {
		p.advance(id, Visible)
	})
	p.scheduler.AfterFunc(p.timing.Lifetime, func() {
		p.advance(id, Fading)
		p.scheduler.AfterFunc(p.timing.FadeOut, func() {
			p.advance(id, Removed)
		})
	})
}

// advance moves a notification forward; transitions never go backwards.
func (p *Presenter) advance(id int64, to State) {
	p.mu.Lock()
	idx := -1
	for i, n := range p.items {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 || p.items[idx].State >= to {
		p.mu.Unlock()
		return
	}

	p.items[idx].State = to
	snapshot := *p.items[idx]
	if to == Removed {
		p.items = append(p.items[:idx], p.items[idx+1:]...)
	}
	p.mu.Unlock()

	p.changed(snapshot)
}

func (p *Presenter) changed(n Notification) {
	if p.onChange != nil {
		p.onChange(n)
	}
}

// Active returns every notification not yet removed, oldest first.
func (p *Presenter) Active() []Notification {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Notification, 0, len(p.items))
	for _, n := range p.items {
		out = append(out, *n)
	}
	return out
}
