package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Veraticus/eye-guard/pkg/logging"
	"github.com/Veraticus/eye-guard/pkg/overlay"
)

// OverlayEnv is set in the child's environment so a stray --overlay
// invocation can be told apart from one started by the launcher.
const OverlayEnv = "EYE_GUARD_OVERLAY_CHILD"

// Launcher starts one overlay child process per break and blocks until it
// exits.
type Launcher struct {
	executable string
	configPath string
	newCommand CommandFactory
	log        zerolog.Logger
}

// NewLauncher creates a launcher that re-executes executable in overlay
// mode. configPath is passed through to the child when non-empty.
func NewLauncher(executable, configPath string, log zerolog.Logger) *Launcher {
	return &Launcher{
		executable: executable,
		configPath: configPath,
		newCommand: NewExecCommand,
		log:        log,
	}
}

// SetCommandFactory replaces how child processes are created.
func (l *Launcher) SetCommandFactory(f CommandFactory) {
	l.newCommand = f
}

// Args returns the child's command-line arguments for a session of the
// given duration.
func (l *Launcher) Args(duration time.Duration) []string {
	args := []string{"--overlay", "--overlay-duration=" + duration.String()}
	if l.configPath != "" {
		args = append(args, "--config="+l.configPath)
	}
	return args
}

// RunOverlay implements idle.OverlayRunner. A child that cannot be started
// counts as a window creation failure since no overlay can ever appear.
func (l *Launcher) RunOverlay(ctx context.Context, duration time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := append(os.Environ(), OverlayEnv+"=1")
	cmd := l.newCommand(l.executable, l.Args(duration), env)
	if err := cmd.Start(); err != nil {
		return &overlay.DisplayError{
			Op:   "start overlay process",
			Kind: overlay.ErrWindowCreation,
			Err:  err,
		}
	}

	done := make(chan struct{})
	forwarded := make(chan struct{})
	go func() {
		defer close(forwarded)
		l.supervise(ctx, cmd, done)
	}()

	waitErr := cmd.Wait()
	close(done)
	<-forwarded

	if err := ctx.Err(); err != nil {
		return err
	}
	if waitErr != nil {
		return fmt.Errorf("wait for overlay process: %w", waitErr)
	}

	code := cmd.ExitCode()
	l.log.Debug().Int(logging.FieldExitCode, code).Msg("overlay process exited")
	return overlay.ErrorForExitCode(code)
}

// supervise forwards termination signals to the child and kills it when
// ctx is cancelled. It returns once done is closed.
func (l *Launcher) supervise(ctx context.Context, cmd Command, done <-chan struct{}) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	for {
		select {
		case sig := <-sigChan:
			if err := cmd.Signal(sig); err != nil && !errors.Is(err, os.ErrProcessDone) {
				l.log.Debug().Err(err).Str("signal", sig.String()).Msg("signal forward failed")
			}
		case <-ctx.Done():
			if err := cmd.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
				l.log.Warn().Err(err).Msg("failed to kill overlay process")
			}
			<-done
			return
		case <-done:
			return
		}
	}
}
