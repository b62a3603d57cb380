package notification

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/Veraticus/eye-guard/pkg/config"
)

// Manager applies quiet mode and rate limiting in front of a Notifier.
// Delivery is best effort: failures are logged and reported but callers
// are free to ignore the returned error.
type Manager struct {
	quiet       bool
	notifier    Notifier
	rateLimiter RateLimiter
	reporter    StatusReporter
	log         zerolog.Logger

	mu sync.Mutex
}

// NewManager creates a new notification manager. A zero rate limit
// window or message count disables rate limiting.
func NewManager(cfg *config.Config, notifier Notifier, log zerolog.Logger) *Manager {
	m := &Manager{
		quiet:    cfg.Quiet,
		notifier: notifier,
		log:      log,
	}
	if cfg.RateLimit.MaxMessages > 0 && cfg.RateLimit.Window > 0 {
		m.rateLimiter = NewTokenBucketRateLimiter(cfg.RateLimit.MaxMessages, cfg.RateLimit.Window)
	}
	return m
}

// SetRateLimiter replaces the rate limiter. Nil disables limiting.
func (m *Manager) SetRateLimiter(rl RateLimiter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rateLimiter = rl
}

// SetStatusReporter sets the reporter told about each delivery.
func (m *Manager) SetStatusReporter(r StatusReporter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reporter = r
}

// Send delivers the notification unless quiet or rate limited.
func (m *Manager) Send(notification Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.quiet {
		return nil
	}

	if m.rateLimiter != nil && !m.rateLimiter.Allow() {
		m.log.Debug().Str("kind", notification.Kind).Msg("notification dropped by rate limit")
		return nil
	}

	if m.reporter != nil {
		m.reporter.ReportSending()
	}

	err := m.notifier.Send(notification)
	if err != nil {
		m.log.Debug().Err(err).Str("kind", notification.Kind).Msg("notification not delivered")
		if m.reporter != nil {
			m.reporter.ReportFailure()
		}
		return err
	}

	if m.reporter != nil {
		m.reporter.ReportSuccess()
	}
	return nil
}
