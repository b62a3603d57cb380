// Package overlay implements the timed fullscreen break overlay: a frame
// driven render loop that owns an RGBA pixel buffer, draws a moving marker
// derived from elapsed time, and ends on deadline, close request or
// presentation failure.
package overlay

import (
	"image/color"
	"time"

	"github.com/rs/zerolog"
)

// Default parameters for a break overlay.
const (
	DefaultDuration       = 25 * time.Second
	DefaultMarkerRadius   = 30
	DefaultFallbackWidth  = 800
	DefaultFallbackHeight = 600
	DefaultTitle          = "Eye Break"
)

var (
	// DefaultMarkerColor is opaque white.
	DefaultMarkerColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// DefaultBackgroundColor is opaque black.
	DefaultBackgroundColor = color.RGBA{A: 255}
)

// Options configures one overlay session.
type Options struct {
	Duration        time.Duration
	MarkerRadius    int
	MarkerColor     color.RGBA
	BackgroundColor color.RGBA
	FallbackWidth   int
	FallbackHeight  int
	Title           string
	Logger          zerolog.Logger

	// Now is the session clock. Nil means time.Now.
	Now func() time.Time
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Duration:        DefaultDuration,
		MarkerRadius:    DefaultMarkerRadius,
		MarkerColor:     DefaultMarkerColor,
		BackgroundColor: DefaultBackgroundColor,
		FallbackWidth:   DefaultFallbackWidth,
		FallbackHeight:  DefaultFallbackHeight,
		Title:           DefaultTitle,
		Logger:          zerolog.Nop(),
	}
}

func (o Options) withDefaults() Options {
	if o.FallbackWidth <= 0 || o.FallbackHeight <= 0 {
		o.FallbackWidth, o.FallbackHeight = DefaultFallbackWidth, DefaultFallbackHeight
	}
	if o.MarkerRadius < 0 {
		o.MarkerRadius = 0
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Display is the host window system as seen by the poll-driven loop.
type Display interface {
	// PrimarySize reports the primary monitor resolution. ok is false when
	// no monitor could be enumerated.
	PrimarySize() (width, height int, ok bool)

	// CreateWindow opens a borderless, undecorated, always-on-top
	// fullscreen window.
	CreateWindow(title string, width, height int) (Window, error)
}

// Window is an open overlay window and its presentation surface.
type Window interface {
	// Size returns the surface size the window actually got.
	Size() (width, height int)

	// PollEvents blocks until the next refresh opportunity and returns the
	// events that arrived since the previous call. The slice may be empty.
	PollEvents() []Event

	// Present hands a completed RGBA buffer to the surface.
	Present(pix []byte, width, height int) error

	// Destroy closes the window. It is called exactly once per window.
	Destroy()
}
