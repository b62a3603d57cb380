package notification_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Veraticus/eye-guard/pkg/config"
	"github.com/Veraticus/eye-guard/pkg/notification"
	"github.com/Veraticus/eye-guard/pkg/testutil"
)

type recordingReporter struct {
	events []string
}

func (r *recordingReporter) ReportSending() { r.events = append(r.events, "sending") }
func (r *recordingReporter) ReportSuccess() { r.events = append(r.events, "success") }
func (r *recordingReporter) ReportFailure() { r.events = append(r.events, "failure") }

func TestManager_Send(t *testing.T) {
	tests := []struct {
		name                  string
		quiet                 bool
		rateLimiterAllows     bool
		notifierError         error
		wantAttempted         bool
		wantErr               bool
		wantRateLimiterCalled bool
		wantReports           []string
	}{
		{
			name:                  "successful send",
			rateLimiterAllows:     true,
			wantAttempted:         true,
			wantRateLimiterCalled: true,
			wantReports:           []string{"sending", "success"},
		},
		{
			name:                  "rate limited",
			rateLimiterAllows:     false,
			wantRateLimiterCalled: true,
		},
		{
			name:                  "notifier error",
			rateLimiterAllows:     true,
			notifierError:         errors.New("send failed"),
			wantAttempted:         true,
			wantErr:               true,
			wantRateLimiterCalled: true,
			wantReports:           []string{"sending", "failure"},
		},
		{
			name:              "quiet drops everything",
			quiet:             true,
			rateLimiterAllows: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Quiet = tt.quiet

			mockNotifier := testutil.NewMockNotifier()
			mockNotifier.SetError(tt.notifierError)
			mockRateLimiter := testutil.NewMockRateLimiter(tt.rateLimiterAllows)
			reporter := &recordingReporter{}

			manager := notification.NewManager(cfg, mockNotifier, zerolog.Nop())
			manager.SetRateLimiter(mockRateLimiter)
			manager.SetStatusReporter(reporter)

			err := manager.Send(notification.Notification{Title: "Eye Guard", Message: "rest", Time: time.Now(), Kind: notification.KindBreak})

			if (err != nil) != tt.wantErr {
				t.Errorf("Send() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := len(mockNotifier.GetAttempts()) > 0; got != tt.wantAttempted {
				t.Errorf("attempted = %v, want %v", got, tt.wantAttempted)
			}
			if got := mockRateLimiter.GetAllowCount() > 0; got != tt.wantRateLimiterCalled {
				t.Errorf("rate limiter called = %v, want %v", got, tt.wantRateLimiterCalled)
			}
			if len(reporter.events) != len(tt.wantReports) {
				t.Fatalf("reports = %v, want %v", reporter.events, tt.wantReports)
			}
			for i := range tt.wantReports {
				if reporter.events[i] != tt.wantReports[i] {
					t.Errorf("report %d = %q, want %q", i, reporter.events[i], tt.wantReports[i])
				}
			}
		})
	}
}

func TestNewManager_RateLimitFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RateLimit = config.RateLimitConfig{Window: time.Hour, MaxMessages: 2}
	mockNotifier := testutil.NewMockNotifier()
	manager := notification.NewManager(cfg, mockNotifier, zerolog.Nop())

	for i := 0; i < 5; i++ {
		_ = manager.Send(notification.Notification{Title: "x"})
	}

	if got := len(mockNotifier.GetNotifications()); got != 2 {
		t.Errorf("expected 2 notifications through the limiter, got %d", got)
	}
}

func TestNewManager_ZeroRateLimitDisablesLimiting(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RateLimit = config.RateLimitConfig{}
	mockNotifier := testutil.NewMockNotifier()
	manager := notification.NewManager(cfg, mockNotifier, zerolog.Nop())

	for i := 0; i < 10; i++ {
		_ = manager.Send(notification.Notification{Title: "x"})
	}

	if got := len(mockNotifier.GetNotifications()); got != 10 {
		t.Errorf("expected 10 notifications without a limiter, got %d", got)
	}
}
