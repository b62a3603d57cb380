// Package status draws a one-line status indicator at the bottom of the
// terminal eye-guard was started from.
package status

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/Veraticus/eye-guard/pkg/idle"
)

// Status represents the outcome of the latest notification.
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSuccess
	StatusFailed
)

// Indicator manages the status display in the terminal
type Indicator struct {
	mu      sync.Mutex
	status  Status
	phase   idle.Phase
	until   time.Time
	enabled bool
	writer  io.Writer
	now     func() time.Time
}

// NewIndicator creates a new status indicator. A disabled indicator
// tracks state but never writes.
func NewIndicator(writer io.Writer, enabled bool) *Indicator {
	return &Indicator{
		status:  StatusIdle,
		phase:   idle.PhaseWaiting,
		writer:  writer,
		enabled: enabled,
		now:     time.Now,
	}
}

// SetStatus updates the notification status
func (i *Indicator) SetStatus(status Status) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.status = status

	// Best effort - don't fail if we can't update the display
	_ = i.draw()
}

// SetPhase records the scheduler phase and when it is expected to end.
func (i *Indicator) SetPhase(phase idle.Phase, until time.Time) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.phase = phase
	i.until = until
	_ = i.draw()
}

// draw renders the status indicator. Callers hold i.mu.
func (i *Indicator) draw() error {
	if !i.enabled || i.writer == nil {
		return nil
	}

	statusText := i.getStatusText()
	if statusText == "" {
		return nil
	}

	// \0337 and \0338 (DECSC/DECRC) save and restore the cursor around a
	// write to the last line; \033[r resets the scroll region first so
	// line 999 clamps instead of scrolling.
	sequence := fmt.Sprintf("\0337\033[r\033[999;1H\033[2K%s\0338", statusText)

	if _, err := fmt.Fprint(i.writer, sequence); err != nil {
		return err
	}

	return nil
}

// getStatusText returns the status line with color
func (i *Indicator) getStatusText() string {
	var parts []string

	switch i.phase {
	case idle.PhaseWaiting:
		text := "\033[32m▶\033[0m next break"
		if !i.until.IsZero() {
			text += fmt.Sprintf(" %s (in %s)", i.until.Format("15:04"), remaining(i.until, i.now()))
		}
		parts = append(parts, text)
	case idle.PhaseNotifying:
		parts = append(parts, "\033[33m◔\033[0m break starting")
	case idle.PhaseOnBreak:
		text := "\033[36m◉\033[0m on break"
		if !i.until.IsZero() {
			text += fmt.Sprintf(" (%s left)", remaining(i.until, i.now()))
		}
		parts = append(parts, text)
	case idle.PhaseStopped:
		parts = append(parts, "\033[90m■\033[0m stopped")
	}

	switch i.status {
	case StatusSending:
		parts = append(parts, "\033[33m⟳ notify\033[0m")
	case StatusSuccess:
		parts = append(parts, "\033[32m✓ notify\033[0m")
	case StatusFailed:
		parts = append(parts, "\033[31m✗ notify\033[0m")
	}

	return strings.Join(parts, " ")
}

// remaining formats the time left until t, rounded to whole seconds.
func remaining(t, now time.Time) time.Duration {
	d := t.Sub(now).Round(time.Second)
	if d < 0 {
		return 0
	}
	return d
}

// Clear removes the status indicator
func (i *Indicator) Clear() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.enabled || i.writer == nil {
		return nil
	}

	sequence := "\0337\033[999;1H\033[2K\0338"
	if _, err := fmt.Fprint(i.writer, sequence); err != nil {
		return err
	}

	return nil
}

// StartAutoRefresh redraws every interval so countdowns stay current. The
// returned channel is closed once the loop has cleared the line and
// exited after stopChan closes.
func (i *Indicator) StartAutoRefresh(interval time.Duration, stopChan <-chan struct{}) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				i.mu.Lock()
				_ = i.draw()
				i.mu.Unlock()
			case <-stopChan:
				_ = i.Clear()
				return
			}
		}
	}()
	return done
}
