package overlay

import (
	"errors"
	"testing"
)

func TestExitCode_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "completed", err: nil, code: ExitCodeOK},
		{name: "window", err: &DisplayError{Op: "create window", Kind: ErrWindowCreation}, code: ExitCodeWindowCreation},
		{name: "present", err: &DisplayError{Op: "present", Kind: ErrPresentation}, code: ExitCodePresentation},
		{name: "other", err: errors.New("boom"), code: ExitCodeFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := ExitCode(tt.err)
			if code != tt.code {
				t.Fatalf("ExitCode = %d, want %d", code, tt.code)
			}
			back := ErrorForExitCode(code)
			if (back == nil) != (tt.err == nil) {
				t.Fatalf("ErrorForExitCode(%d) = %v", code, back)
			}
			if IsFatal(back) != IsFatal(tt.err) {
				t.Fatalf("fatality changed across round trip: %v -> %v", tt.err, back)
			}
		})
	}
}

func TestErrorForExitCode_Unknown(t *testing.T) {
	err := ErrorForExitCode(137)
	if err == nil || IsFatal(err) {
		t.Fatalf("expected non-fatal error for signal exit, got %v", err)
	}
}
