// Package notification provides best-effort desktop notifications.
package notification

import "time"

// Kinds of notification sent by eye-guard.
const (
	KindBreak   = "break"
	KindStartup = "startup"
)

// Notification represents a notification to be sent.
type Notification struct {
	Title   string
	Message string
	Time    time.Time
	Kind    string
}

// Notifier sends notifications.
type Notifier interface {
	Send(notification Notification) error
}

// RateLimiter limits notification frequency.
type RateLimiter interface {
	Allow() bool
}

// StatusReporter is told about the outcome of each delivery attempt.
type StatusReporter interface {
	ReportSending()
	ReportSuccess()
	ReportFailure()
}
