// Package testutil holds thread-safe mocks shared by package tests.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/Veraticus/eye-guard/pkg/idle"
	"github.com/Veraticus/eye-guard/pkg/notification"
)

// MockNotifier is a thread-safe mock implementation of notification.Notifier for testing
type MockNotifier struct {
	mu            sync.Mutex
	notifications []notification.Notification
	attempts      []notification.Notification // Track all send attempts
	sentAt        []time.Time
	sendErr       error
}

// NewMockNotifier creates a new mock notifier
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// Send implements the Notifier interface
func (m *MockNotifier) Send(n notification.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.attempts = append(m.attempts, n)
	m.sentAt = append(m.sentAt, time.Now())
	if m.sendErr != nil {
		return m.sendErr
	}

	m.notifications = append(m.notifications, n)
	return nil
}

// GetNotifications returns a copy of successfully sent notifications
func (m *MockNotifier) GetNotifications() []notification.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]notification.Notification(nil), m.notifications...)
}

// GetAttempts returns a copy of all attempted sends (including failures)
func (m *MockNotifier) GetAttempts() []notification.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]notification.Notification(nil), m.attempts...)
}

// AttemptTimes returns the wall-clock time of every attempt.
func (m *MockNotifier) AttemptTimes() []time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Time(nil), m.sentAt...)
}

// SetError sets the error to return on Send calls
func (m *MockNotifier) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendErr = err
}

// OverlayRun records one call to MockOverlayRunner.RunOverlay.
type OverlayRun struct {
	Duration time.Duration
	Start    time.Time
	End      time.Time
}

// MockOverlayRunner is a mock implementation of idle.OverlayRunner.
// Each call consumes the next scripted result; once the script is
// exhausted calls succeed.
type MockOverlayRunner struct {
	mu      sync.Mutex
	results []error
	runs    []OverlayRun
	hold    time.Duration
	calls   chan struct{}
}

var _ idle.OverlayRunner = (*MockOverlayRunner)(nil)

// NewMockOverlayRunner creates a runner that returns results in order.
func NewMockOverlayRunner(results ...error) *MockOverlayRunner {
	return &MockOverlayRunner{
		results: results,
		calls:   make(chan struct{}, 64),
	}
}

// SetHold makes every run block for d, or until its context is done.
func (m *MockOverlayRunner) SetHold(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hold = d
}

// RunOverlay implements idle.OverlayRunner
func (m *MockOverlayRunner) RunOverlay(ctx context.Context, duration time.Duration) error {
	m.mu.Lock()
	hold := m.hold
	var result error
	if len(m.results) > 0 {
		result, m.results = m.results[0], m.results[1:]
	}
	m.mu.Unlock()

	start := time.Now()
	if hold > 0 {
		t := time.NewTimer(hold)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			result = ctx.Err()
		}
	}

	m.mu.Lock()
	m.runs = append(m.runs, OverlayRun{Duration: duration, Start: start, End: time.Now()})
	m.mu.Unlock()

	select {
	case m.calls <- struct{}{}:
	default:
	}
	return result
}

// Runs returns a copy of the recorded runs.
func (m *MockOverlayRunner) Runs() []OverlayRun {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]OverlayRun(nil), m.runs...)
}

// WaitForRuns blocks until n runs have completed or timeout elapses.
func (m *MockOverlayRunner) WaitForRuns(n int, timeout time.Duration) bool {
	deadline := time.After(timeout)
	for {
		if len(m.Runs()) >= n {
			return true
		}
		select {
		case <-m.calls:
		case <-deadline:
			return len(m.Runs()) >= n
		}
	}
}

// PhaseChange records one observer callback.
type PhaseChange struct {
	Phase idle.Phase
	Until time.Time
}

// MockObserver records scheduler phase changes.
type MockObserver struct {
	mu      sync.Mutex
	changes []PhaseChange
}

// PhaseChanged implements idle.Observer
func (m *MockObserver) PhaseChanged(p idle.Phase, until time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.changes = append(m.changes, PhaseChange{Phase: p, Until: until})
}

// Changes returns a copy of the recorded phase changes.
func (m *MockObserver) Changes() []PhaseChange {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]PhaseChange(nil), m.changes...)
}

var _ notification.RateLimiter = (*MockRateLimiter)(nil)

// MockRateLimiter is a mock implementation of notification.RateLimiter for testing
type MockRateLimiter struct {
	mu          sync.Mutex
	allowResult bool
	allowCount  int
}

// NewMockRateLimiter creates a new mock rate limiter
func NewMockRateLimiter(allowResult bool) *MockRateLimiter {
	return &MockRateLimiter{
		allowResult: allowResult,
	}
}

// Allow implements the RateLimiter interface
func (m *MockRateLimiter) Allow() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.allowCount++
	return m.allowResult
}

// GetAllowCount returns how many times Allow was called
func (m *MockRateLimiter) GetAllowCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.allowCount
}
