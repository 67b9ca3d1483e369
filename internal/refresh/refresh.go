// Package refresh debounces re-rendering requests into a single pending
// refresh.
package refresh

import (
	"log/slog"
	"sync"
	"time"
)

// Trigger names the host event that asked for a refresh.
type Trigger string

// Triggers.
const (
	TriggerDocumentSwitch Trigger = "document-switch"
	TriggerLayoutChange   Trigger = "layout-change"
	TriggerModify         Trigger = "modify"
	TriggerTheme          Trigger = "theme"
	TriggerResize         Trigger = "resize"
	TriggerActivation     Trigger = "activation"
	TriggerSettings       Trigger = "settings"
)

// Delays holds the debounce delay per trigger.
type Delays struct {
	DocumentSwitch time.Duration `yaml:"document_switch"`
	LayoutChange   time.Duration `yaml:"layout_change"`
	Modify         time.Duration `yaml:"modify"`
	Theme          time.Duration `yaml:"theme"`
	Resize         time.Duration `yaml:"resize"`
	Activation     time.Duration `yaml:"activation"`
}

// DefaultDelays returns the delays the rendering layer is tuned for.
func DefaultDelays() Delays {
	return Delays{
		DocumentSwitch: 50 * time.Millisecond,
		LayoutChange:   50 * time.Millisecond,
		Modify:         100 * time.Millisecond,
		Theme:          100 * time.Millisecond,
		Resize:         100 * time.Millisecond,
		Activation:     50 * time.Millisecond,
	}
}

// For returns the delay for t. Settings changes refresh immediately.
func (d Delays) For(t Trigger) time.Duration {
	switch t {
	case TriggerDocumentSwitch:
		return d.DocumentSwitch
	case TriggerLayoutChange:
		return d.LayoutChange
	case TriggerModify:
		return d.Modify
	case TriggerTheme:
		return d.Theme
	case TriggerResize:
		return d.Resize
	case TriggerActivation:
		return d.Activation
	default:
		return 0
	}
}

// Scheduler runs fn after a delay. Scheduling again before the pending run
// fires cancels it, so at most one refresh is ever pending. It is safe for
// concurrent use.
type Scheduler struct {
	fn     func(Trigger)
	delays Delays
	logger *slog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// NewScheduler returns a Scheduler calling fn with the trigger of the
// refresh that fired.
func NewScheduler(fn func(Trigger), delays Delays, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{fn: fn, delays: delays, logger: logger}
}

// Request schedules a refresh with the delay configured for t.
func (s *Scheduler) Request(t Trigger) {
	s.Schedule(t, s.delays.For(t))
}

// Schedule cancels any pending refresh and schedules a new one after delay.
func (s *Scheduler) Schedule(t Trigger, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(delay, func() { s.fire(gen, t) })
	s.logger.Debug("refresh: scheduled", slog.String("trigger", string(t)), slog.Duration("delay", delay))
}

// fire runs fn unless the refresh it belongs to was superseded after the
// timer had already expired.
func (s *Scheduler) fire(gen uint64, t Trigger) {
	s.mu.Lock()
	if s.stopped || gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.mu.Unlock()

	s.fn(t)
}

// Pending reports whether a refresh is scheduled and has not fired yet.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// Cancel drops the pending refresh, if any.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

// Stop cancels the pending refresh and ignores later requests.
func (s *Scheduler) Stop() {
	s.Cancel()
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
}
