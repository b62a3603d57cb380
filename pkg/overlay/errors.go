package overlay

import (
	"errors"
	"fmt"
)

// Error kinds reported by an overlay session. Match them with errors.Is.
var (
	// ErrNoSurface means no monitor size was available. Sessions degrade
	// to the fallback size instead of returning it.
	ErrNoSurface = errors.New("no display surface")
	// ErrWindowCreation is fatal: without a window no overlay is possible.
	ErrWindowCreation = errors.New("window creation failed")
	// ErrPresentation ends the current session only.
	ErrPresentation = errors.New("presentation failed")
)

// DisplayError provides context for a failed display operation.
type DisplayError struct {
	Op   string // what was being attempted
	Kind error  // one of the Err* kinds above
	Err  error  // underlying error, if any
}

func (e *DisplayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("overlay %s: %v: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("overlay %s: %v", e.Op, e.Kind)
}

// Is reports whether target is the kind of this error.
func (e *DisplayError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func (e *DisplayError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err must stop the whole process rather than just
// the current break.
func IsFatal(err error) bool {
	return errors.Is(err, ErrWindowCreation)
}
