package overlay

import (
	"image/color"
	"time"
)

// ExitReason records why a session stopped.
type ExitReason int

const (
	ExitNone ExitReason = iota
	ExitDeadline
	ExitClosed
	ExitPresentFailed
)

func (r ExitReason) String() string {
	switch r {
	case ExitNone:
		return "running"
	case ExitDeadline:
		return "deadline"
	case ExitClosed:
		return "closed"
	case ExitPresentFailed:
		return "present_failed"
	default:
		return "unknown"
	}
}

// Session is one timed overlay. It is driven one step per refresh
// opportunity and is not safe for concurrent use.
type Session struct {
	duration     time.Duration
	start        time.Time
	now          func() time.Time
	frame        *Frame
	markerRadius int
	markerColor  color.RGBA
	background   color.RGBA

	reason     ExitReason
	presentErr error
	frames     uint64
}

// NewSession starts a session on a width x height surface. The start time
// is captured now.
func NewSession(opts Options, width, height int) *Session {
	opts = opts.withDefaults()
	return &Session{
		duration:     opts.Duration,
		start:        opts.Now(),
		now:          opts.Now,
		frame:        NewFrame(width, height),
		markerRadius: opts.MarkerRadius,
		markerColor:  opts.MarkerColor,
		background:   opts.BackgroundColor,
	}
}

// Handle applies one window system event.
func (s *Session) Handle(ev Event) {
	switch e := ev.(type) {
	case CloseRequested:
		s.requestExit(ExitClosed)
	case Resized:
		// Minimized windows report 0x0; keep the last real size.
		if e.Width > 0 && e.Height > 0 {
			s.frame.Resize(e.Width, e.Height)
		}
	case RedrawOpportunity, Other:
	}
}

// CheckDeadline requests exit once the duration has elapsed and reports
// whether the session is still running.
func (s *Session) CheckDeadline() bool {
	if s.Done() {
		return false
	}
	if s.Elapsed() >= s.duration {
		s.requestExit(ExitDeadline)
		return false
	}
	return true
}

// Render composes the next frame: background, then the marker at its
// position for the current elapsed time. It draws nothing and returns
// false once the session has exited or the deadline has passed.
func (s *Session) Render() bool {
	if !s.CheckDeadline() {
		return false
	}
	s.frame.Clear(s.background)
	x, y := MarkerPosition(s.Elapsed(), s.frame.Width, s.frame.Height)
	s.frame.FillDisk(x, y, s.markerRadius, s.markerColor)
	return true
}

// Step runs one loop iteration: apply events, render, present. It returns
// false when the session has exited and the window should be torn down.
func (s *Session) Step(events []Event, present func(*Frame) error) bool {
	for _, ev := range events {
		s.Handle(ev)
	}
	if !s.Render() {
		return false
	}
	if err := present(s.frame); err != nil {
		s.presentErr = err
		s.requestExit(ExitPresentFailed)
		return false
	}
	s.frames++
	return true
}

func (s *Session) requestExit(reason ExitReason) {
	if s.reason == ExitNone {
		s.reason = reason
	}
}

// Done reports whether exit has been requested.
func (s *Session) Done() bool { return s.reason != ExitNone }

// Reason returns why the session exited, or ExitNone while running.
func (s *Session) Reason() ExitReason { return s.reason }

// Elapsed returns the time since the session started.
func (s *Session) Elapsed() time.Duration { return s.now().Sub(s.start) }

// Frame returns the session's pixel buffer.
func (s *Session) Frame() *Frame { return s.frame }

// Frames returns how many frames were presented.
func (s *Session) Frames() uint64 { return s.frames }

// Err returns the session outcome as an error. Deadline and close are
// normal endings and return nil.
func (s *Session) Err() error {
	if s.reason != ExitPresentFailed {
		return nil
	}
	return &DisplayError{Op: "present", Kind: ErrPresentation, Err: s.presentErr}
}
