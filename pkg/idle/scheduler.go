// Package idle runs the break cycle: wait out the idle interval, notify,
// show the overlay, and start waiting again once it has closed.
package idle

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Veraticus/eye-guard/pkg/logging"
	"github.com/Veraticus/eye-guard/pkg/notification"
	"github.com/Veraticus/eye-guard/pkg/overlay"
)

// OverlayRunner shows one break overlay and blocks until it is gone.
type OverlayRunner interface {
	RunOverlay(ctx context.Context, duration time.Duration) error
}

// Phase is where the scheduler is in its cycle.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseNotifying
	PhaseOnBreak
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseNotifying:
		return "notifying"
	case PhaseOnBreak:
		return "on_break"
	case PhaseStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Observer is told about every phase change. until is when the phase is
// expected to end; it is zero for phases without a deadline.
type Observer interface {
	PhaseChanged(phase Phase, until time.Time)
}

// Config holds the scheduler's fixed parameters.
type Config struct {
	IdleInterval    time.Duration
	OverlayDuration time.Duration
	Title           string
	Message         string

	// RunNow skips the wait before the first break.
	RunNow bool
}

// Scheduler alternates between a passive idle wait and a blocking overlay.
// The two never overlap: the next wait starts only after the overlay ends.
type Scheduler struct {
	cfg      Config
	notifier notification.Notifier
	runner   OverlayRunner
	observer Observer
	log      zerolog.Logger
	now      func() time.Time
}

// NewScheduler creates a scheduler. observer may be nil.
func NewScheduler(cfg Config, notifier notification.Notifier, runner OverlayRunner, observer Observer, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cfg:      cfg,
		notifier: notifier,
		runner:   runner,
		observer: observer,
		log:      log,
		now:      time.Now,
	}
}

// cycle is the only state carried from one break to the next.
type cycle struct {
	number   int
	skipWait bool
}

// Run loops until ctx is cancelled or an overlay reports a fatal error.
// It returns ctx.Err() on cancellation.
func (s *Scheduler) Run(ctx context.Context) error {
	defer s.observe(PhaseStopped, time.Time{})

	c := cycle{number: 1, skipWait: s.cfg.RunNow}
	for {
		next, err := s.runCycle(ctx, c)
		if err != nil {
			return err
		}
		c = next
	}
}

func (s *Scheduler) runCycle(ctx context.Context, c cycle) (cycle, error) {
	log := s.log.With().Int(logging.FieldCycle, c.number).Logger()

	if !c.skipWait {
		next := s.now().Add(s.cfg.IdleInterval)
		s.observe(PhaseWaiting, next)
		log.Debug().Time(logging.FieldNextBreak, next).Msg("waiting for next break")
		if err := sleep(ctx, s.cfg.IdleInterval); err != nil {
			return c, err
		}
	}

	s.observe(PhaseNotifying, time.Time{})
	_ = s.notifier.Send(notification.Notification{
		Title:   s.cfg.Title,
		Message: s.cfg.Message,
		Time:    s.now(),
		Kind:    notification.KindBreak,
	})

	s.observe(PhaseOnBreak, s.now().Add(s.cfg.OverlayDuration))
	log.Info().Dur(logging.FieldDuration, s.cfg.OverlayDuration).Msg("break started")
	err := s.runner.RunOverlay(ctx, s.cfg.OverlayDuration)
	switch {
	case err == nil:
		log.Info().Msg("break finished")
	case overlay.IsFatal(err):
		return c, fmt.Errorf("break %d: %w", c.number, err)
	case ctx.Err() != nil:
		return c, ctx.Err()
	default:
		log.Warn().Err(err).Msg("break overlay failed, will retry next interval")
	}

	return cycle{number: c.number + 1}, nil
}

func (s *Scheduler) observe(p Phase, until time.Time) {
	if s.observer != nil {
		s.observer.PhaseChanged(p, until)
	}
}

// sleep waits for d of wall-clock time or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
