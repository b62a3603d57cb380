package overlay

import (
	"github.com/Veraticus/eye-guard/pkg/logging"
)

type sizer interface {
	PrimarySize() (width, height int, ok bool)
}

// surfaceSize picks the primary display size, or the fallback when the
// display cannot be enumerated.
func surfaceSize(d sizer, opts Options) (int, int) {
	width, height, ok := d.PrimarySize()
	if ok && width > 0 && height > 0 {
		return width, height
	}
	opts.Logger.Warn().
		Err(ErrNoSurface).
		Int(logging.FieldWidth, opts.FallbackWidth).
		Int(logging.FieldHeight, opts.FallbackHeight).
		Msg("primary display size unavailable, using fallback")
	return opts.FallbackWidth, opts.FallbackHeight
}

// Run shows one overlay on d and blocks until it ends. The window is
// destroyed before Run returns whatever ended the session. A nil error
// means the deadline passed or the user closed the window.
func Run(d Display, opts Options) error {
	opts = opts.withDefaults()
	log := opts.Logger

	width, height := surfaceSize(d, opts)
	win, err := d.CreateWindow(opts.Title, width, height)
	if err != nil {
		return &DisplayError{Op: "create window", Kind: ErrWindowCreation, Err: err}
	}
	defer win.Destroy()

	if w, h := win.Size(); w > 0 && h > 0 {
		width, height = w, h
	}
	log.Debug().
		Int(logging.FieldWidth, width).
		Int(logging.FieldHeight, height).
		Dur(logging.FieldDuration, opts.Duration).
		Msg("overlay started")

	s := NewSession(opts, width, height)
	present := func(f *Frame) error {
		return win.Present(f.Pix, f.Width, f.Height)
	}
	for s.Step(win.PollEvents(), present) {
	}

	logEnd(opts, s)
	return s.Err()
}

func logEnd(opts Options, s *Session) {
	ev := opts.Logger.Debug()
	if s.Reason() == ExitPresentFailed {
		ev = opts.Logger.Warn().Err(s.presentErr)
	}
	ev.Stringer(logging.FieldReason, s.Reason()).
		Uint64(logging.FieldFrames, s.Frames()).
		Dur(logging.FieldDuration, s.Elapsed()).
		Msg("overlay ended")
}
