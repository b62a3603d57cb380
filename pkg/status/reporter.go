package status

import (
	"time"

	"github.com/Veraticus/eye-guard/pkg/idle"
	"github.com/Veraticus/eye-guard/pkg/notification"
)

// Reporter feeds scheduler phases and notification outcomes to an
// Indicator.
type Reporter struct {
	indicator *Indicator
}

// NewReporter creates a new status reporter
func NewReporter(indicator *Indicator) *Reporter {
	return &Reporter{
		indicator: indicator,
	}
}

var (
	_ notification.StatusReporter = (*Reporter)(nil)
	_ idle.Observer               = (*Reporter)(nil)
)

// ReportSending reports that a notification is being sent
func (r *Reporter) ReportSending() {
	if r.indicator != nil {
		r.indicator.SetStatus(StatusSending)
	}
}

// ReportSuccess reports that a notification was sent successfully
func (r *Reporter) ReportSuccess() {
	if r.indicator != nil {
		r.indicator.SetStatus(StatusSuccess)
	}
}

// ReportFailure reports that a notification failed to send
func (r *Reporter) ReportFailure() {
	if r.indicator != nil {
		r.indicator.SetStatus(StatusFailed)
	}
}

// PhaseChanged implements idle.Observer
func (r *Reporter) PhaseChanged(phase idle.Phase, until time.Time) {
	if r.indicator != nil {
		r.indicator.SetPhase(phase, until)
	}
}
