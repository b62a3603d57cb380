package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/Veraticus/eye-guard/pkg/config"
	"github.com/Veraticus/eye-guard/pkg/logging"
	"github.com/Veraticus/eye-guard/pkg/overlay"
	"github.com/Veraticus/eye-guard/pkg/process"
)

func main() {
	var (
		configPath      string
		runNow          bool
		quiet           bool
		help            bool
		overlayMode     bool
		overlayDuration time.Duration
	)

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.BoolVar(&runNow, "now", false, "Start the first break immediately")
	flag.BoolVar(&quiet, "quiet", false, "Disable all notifications")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.BoolVar(&overlayMode, "overlay", false, "Show one break overlay and exit")
	flag.DurationVar(&overlayDuration, "overlay-duration", 0, "Overlay duration in overlay mode")
	_ = flag.CommandLine.MarkHidden("overlay")
	_ = flag.CommandLine.MarkHidden("overlay-duration")
	flag.Usage = printUsage
	flag.Parse()

	if help {
		printUsage()
		os.Exit(0)
	}

	// Must happen before Load so the file is read from the given path.
	if configPath != "" {
		if err := os.Setenv("EYE_GUARD_CONFIG", configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config path: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		if overlayMode {
			os.Exit(overlay.ExitCodeFailure)
		}
		os.Exit(1)
	}
	if quiet {
		cfg.Quiet = true
	}

	logging.Configure(logging.Config{Level: cfg.LogLevel, Console: true})

	if overlayMode {
		os.Exit(runOverlay(cfg, overlayDuration))
	}

	os.Exit(runScheduler(cfg, Options{
		ConfigPath: configPath,
		RunNow:     runNow,
		StatusOut:  os.Stderr,
	}))
}

// runOverlay shows a single break overlay and returns the process exit code
// the launcher in the parent expects.
func runOverlay(cfg *config.Config, duration time.Duration) int {
	log := logging.WithComponent("overlay")
	if os.Getenv(process.OverlayEnv) == "" {
		log.Debug().Msg("overlay started outside the scheduler")
	}

	err := overlay.RunDefault(overlayOptions(cfg, duration, log))
	if err != nil {
		log.Error().Err(err).Msg("overlay failed")
	}
	return overlay.ExitCode(err)
}

func runScheduler(cfg *config.Config, opts Options) int {
	log := logging.WithComponent("main")

	executable, err := os.Executable()
	if err != nil {
		log.Error().Err(err).Msg("cannot locate own executable")
		return 1
	}
	opts.Executable = executable

	deps, err := NewDependencies(cfg, opts)
	if err != nil {
		log.Error().Err(err).Msg("failed to create dependencies")
		return 1
	}
	defer deps.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := NewApplication(deps).Run(ctx); err != nil {
		log.Error().Err(err).Msg("eye-guard stopped")
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Println("eye-guard - periodic eye-rest reminder")
	fmt.Println()
	fmt.Println("Usage: eye-guard [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  EYE_GUARD_IDLE_INTERVAL     Time between breaks (default: 30m)")
	fmt.Println("  EYE_GUARD_OVERLAY_DURATION  Break overlay length (default: 25s)")
	fmt.Println("  EYE_GUARD_MARKER_RADIUS     Marker radius in pixels (default: 30)")
	fmt.Println("  EYE_GUARD_MARKER_COLOR      Marker color #RRGGBB[AA] (default: #FFFFFFFF)")
	fmt.Println("  EYE_GUARD_BACKGROUND_COLOR  Background color #RRGGBB[AA] (default: #000000FF)")
	fmt.Println("  EYE_GUARD_NOTIFIER          desktop or stdout (default: desktop)")
	fmt.Println("  EYE_GUARD_QUIET             Disable notifications (true/false)")
	fmt.Println("  EYE_GUARD_STARTUP_NOTIFY    Send a notification on start (true/false)")
	fmt.Println("  EYE_GUARD_LOG_LEVEL         Log level (default: info)")
	fmt.Println("  EYE_GUARD_CONFIG            Path to config file")
	fmt.Println()
	fmt.Println("Configuration file: ~/.config/eye-guard/config.yaml")
}
