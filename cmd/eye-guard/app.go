package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/Veraticus/eye-guard/pkg/config"
	"github.com/Veraticus/eye-guard/pkg/idle"
	"github.com/Veraticus/eye-guard/pkg/logging"
	"github.com/Veraticus/eye-guard/pkg/notification"
	"github.com/Veraticus/eye-guard/pkg/overlay"
	"github.com/Veraticus/eye-guard/pkg/process"
	"github.com/Veraticus/eye-guard/pkg/status"
)

const appName = "eye-guard"

// statusRefreshInterval keeps the countdown on the status line current.
const statusRefreshInterval = time.Second

// Options are the command-line settings that are not part of Config.
type Options struct {
	Executable string // path re-executed for each overlay
	ConfigPath string // passed through to overlay children
	RunNow     bool
	StatusOut  *os.File // status line destination; nil disables it
}

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config              *config.Config
	Notifier            notification.Notifier
	NotificationManager *notification.Manager
	Launcher            *process.Launcher
	Scheduler           *idle.Scheduler
	StatusIndicator     *status.Indicator
	StatusReporter      *status.Reporter
	stopChan            chan struct{}
	refreshDone         <-chan struct{}
}

// NewDependencies creates all dependencies with the given configuration
func NewDependencies(cfg *config.Config, opts Options) (*Dependencies, error) {
	deps := &Dependencies{
		Config:   cfg,
		stopChan: make(chan struct{}),
	}

	notifier, err := newNotifier(cfg)
	if err != nil {
		return nil, err
	}
	deps.Notifier = notifier

	// The status line only makes sense on an interactive terminal.
	var statusOut io.Writer
	statusEnabled := status.IsTerminal(opts.StatusOut)
	if statusEnabled {
		statusOut = opts.StatusOut
	}
	deps.StatusIndicator = status.NewIndicator(statusOut, statusEnabled)
	deps.StatusReporter = status.NewReporter(deps.StatusIndicator)
	if statusEnabled {
		deps.refreshDone = deps.StatusIndicator.StartAutoRefresh(statusRefreshInterval, deps.stopChan)
	}

	deps.NotificationManager = notification.NewManager(cfg, deps.Notifier, logging.WithComponent("notification"))
	deps.NotificationManager.SetStatusReporter(deps.StatusReporter)

	deps.Launcher = process.NewLauncher(opts.Executable, opts.ConfigPath, logging.WithComponent("launcher"))

	deps.Scheduler = idle.NewScheduler(
		schedulerConfig(cfg, opts.RunNow),
		deps.NotificationManager,
		deps.Launcher,
		deps.StatusReporter,
		logging.WithComponent("scheduler"),
	)

	return deps, nil
}

func newNotifier(cfg *config.Config) (notification.Notifier, error) {
	switch cfg.Notifier {
	case config.NotifierDesktop:
		return notification.NewDesktopNotifier(appName, ""), nil
	case config.NotifierStdout:
		return notification.NewStdoutNotifier(), nil
	default:
		return nil, fmt.Errorf("unknown notifier %q", cfg.Notifier)
	}
}

func schedulerConfig(cfg *config.Config, runNow bool) idle.Config {
	return idle.Config{
		IdleInterval:    cfg.IdleInterval,
		OverlayDuration: cfg.OverlayDuration,
		Title:           cfg.NotifyTitle,
		Message:         cfg.NotifyMessage,
		RunNow:          runNow,
	}
}

// overlayOptions builds the session options for an overlay child.
func overlayOptions(cfg *config.Config, duration time.Duration, log zerolog.Logger) overlay.Options {
	opts := overlay.DefaultOptions()
	opts.Duration = cfg.OverlayDuration
	if duration > 0 {
		opts.Duration = duration
	}
	opts.MarkerRadius = cfg.MarkerRadius
	opts.MarkerColor = cfg.MarkerColor.RGBA()
	opts.BackgroundColor = cfg.BackgroundColor.RGBA()
	opts.FallbackWidth = cfg.FallbackWidth
	opts.FallbackHeight = cfg.FallbackHeight
	opts.Logger = log
	return opts
}

// Close cleans up all dependencies
func (d *Dependencies) Close() {
	if d.stopChan != nil {
		select {
		case <-d.stopChan:
			// Already closed
		default:
			close(d.stopChan)
		}
	}
	if d.refreshDone != nil {
		<-d.refreshDone
		d.refreshDone = nil
	}
}

// Application represents the main application
type Application struct {
	deps *Dependencies
	log  zerolog.Logger
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
		log:  logging.WithComponent("app"),
	}
}

// Run sends the optional startup notification and runs the break cycle
// until ctx is cancelled. Cancellation is a clean exit and returns nil.
func (a *Application) Run(ctx context.Context) error {
	cfg := a.deps.Config
	if cfg.StartupNotify {
		_ = a.deps.NotificationManager.Send(notification.Notification{
			Title:   cfg.NotifyTitle,
			Message: fmt.Sprintf("Watching your eyes: a break every %s", cfg.IdleInterval),
			Time:    time.Now(),
			Kind:    notification.KindStartup,
		})
	}

	a.log.Info().
		Dur("idle_interval", cfg.IdleInterval).
		Dur(logging.FieldDuration, cfg.OverlayDuration).
		Msg("eye-guard started")

	err := a.deps.Scheduler.Run(ctx)
	if ctx.Err() != nil {
		a.log.Info().Msg("eye-guard stopped")
		return nil
	}
	return err
}
