package overlay

import (
	"errors"
	"fmt"
)

// Process exit codes for a session run in its own process.
const (
	ExitCodeOK             = 0
	ExitCodeFailure        = 1
	ExitCodePresentation   = 3
	ExitCodeWindowCreation = 4
)

// ExitCode maps a Run error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeOK
	case errors.Is(err, ErrWindowCreation):
		return ExitCodeWindowCreation
	case errors.Is(err, ErrPresentation):
		return ExitCodePresentation
	default:
		return ExitCodeFailure
	}
}

// ErrorForExitCode is the inverse of ExitCode, used by the parent process.
func ErrorForExitCode(code int) error {
	switch code {
	case ExitCodeOK:
		return nil
	case ExitCodeWindowCreation:
		return &DisplayError{Op: "create window", Kind: ErrWindowCreation}
	case ExitCodePresentation:
		return &DisplayError{Op: "present", Kind: ErrPresentation}
	default:
		return fmt.Errorf("overlay exited with status %d", code)
	}
}
