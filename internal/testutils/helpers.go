package testutils

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/aretw0/countdown/pkg/domain"
	"github.com/aretw0/countdown/pkg/ports"
)

// Clock is a manually advanced ports.Clock.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a clock frozen at now.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type pendingTimer struct {
	id      int
	delay   time.Duration
	fn      func()
	stopped bool
}

// Scheduler records callbacks instead of arming real timers.
// Tests fire them explicitly with FireNext.
type Scheduler struct {
	mu      sync.Mutex
	nextID  int
	pending []*pendingTimer
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) AfterFunc(d time.Duration, f func()) ports.CancelFunc {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	t := &pendingTimer{id: s.nextID, delay: d, fn: f}
	s.pending = append(s.pending, t)

	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if t.stopped {
			return false
		}
		t.stopped = true
		s.remove(t.id)
		return true
	}
}

func (s *Scheduler) remove(id int) {
	for i, t := range s.pending {
		if t.id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of armed, unfired timers.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Delays returns the delays of armed timers, in arming order.
func (s *Scheduler) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Duration, 0, len(s.pending))
	for _, t := range s.pending {
		out = append(out, t.delay)
	}
	return out
}

// FireNext runs the oldest armed timer as if it had elapsed.
// It reports false when nothing is armed.
func (s *Scheduler) FireNext() bool {
	s.mu.Lock()
	if len(s.pending) == 0 {
		s.mu.Unlock()
		return false
	}
	t := s.pending[0]
	s.pending = s.pending[1:]
	t.stopped = true
	s.mu.Unlock()

	t.fn()
	return true
}

// Presenter records every call it receives.
type Presenter struct {
	mu         sync.Mutex
	Calls      []string
	Renders    []domain.Parts
	Errors     []string
	Celebrated int
	visible    map[domain.StateName]bool
}

func NewPresenter() *Presenter {
	return &Presenter{visible: make(map[domain.StateName]bool)}
}

func (p *Presenter) Show(view domain.StateName) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible[view] = true
	p.Calls = append(p.Calls, "show:"+string(view))
}

func (p *Presenter) Hide(view domain.StateName) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.visible, view)
	p.Calls = append(p.Calls, "hide:"+string(view))
}

func (p *Presenter) RenderRemaining(parts domain.Parts) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Renders = append(p.Renders, parts)
	p.Calls = append(p.Calls, fmt.Sprintf("render:%v", parts))
}

func (p *Presenter) ShowError(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Errors = append(p.Errors, message)
	p.Calls = append(p.Calls, "error:"+message)
}

func (p *Presenter) Celebrate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Celebrated++
	p.Calls = append(p.Calls, "celebrate")
}

// Visible returns the currently shown views, sorted.
func (p *Presenter) Visible() []domain.StateName {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.StateName, 0, len(p.visible))
	for v := range p.visible {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
