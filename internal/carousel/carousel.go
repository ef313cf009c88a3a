package carousel

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultInterval is the auto-rotation period.
const DefaultInterval = 5000 * time.Millisecond

// Advancer is a carousel that can move to its next slide.
type Advancer interface {
	AdvanceToNext()
}

// Locator returns the current carousel, or nil when none is present.
type Locator func() Advancer

// Rotator advances the located carousel on a fixed interval.
type Rotator struct {
	locate   Locator
	interval time.Duration
}

func NewRotator(locate Locator, interval time.Duration) *Rotator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Rotator{locate: locate, interval: interval}
}

// Tick advances once. A missing carousel is not an error.
func (r *Rotator) Tick() bool {
	if r.locate == nil {
		return false
	}
	a := r.locate()
	if a == nil {
		return false
	}
	a.AdvanceToNext()
	return true
}

// Run ticks until ctx is done.
func (r *Rotator) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	slog.Debug("Carousel rotation started", "interval", r.interval)
	for {
		select {
		case <-ctx.Done():
			slog.Debug("Carousel rotation stopped")
			return
		case <-ticker.C:
			r.Tick()
		}
	}
}

// Slides is a carousel over a fixed slide list that wraps around.
type Slides struct {
	mu      sync.RWMutex
	slides  []string
	current int
}

func NewSlides(slides []string) *Slides {
	return &Slides{slides: append([]string(nil), slides...)}
}

func (s *Slides) AdvanceToNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.slides) == 0 {
		return
	}
	s.current = (s.current + 1) % len(s.slides)
}

// Current returns the index and name of the shown slide. ok is false for an
// empty carousel.
func (s *Slides) Current() (index int, slide string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.slides) == 0 {
		return 0, "", false
	}
	return s.current, s.slides[s.current], true
}

// Len is the number of slides.
func (s *Slides) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slides)
}
