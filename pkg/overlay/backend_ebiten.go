//go:build !headless

package overlay

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/Veraticus/eye-guard/pkg/logging"
)

type ebitenDisplay struct{}

func (ebitenDisplay) PrimarySize() (int, int, bool) {
	m := ebiten.Monitor()
	if m == nil {
		return 0, 0, false
	}
	w, h := m.Size()
	return w, h, w > 0 && h > 0
}

// surface is the part of *ebiten.Image a frame is presented to.
type surface interface {
	Bounds() image.Rectangle
	WritePixels(pixels []byte)
}

// game drives a Session from ebiten's Update/Draw callbacks. Layout and
// window-close polling are turned into Resized and CloseRequested events
// that are applied before the next draw.
type game struct {
	session *Session
	width   int
	height  int
	pending []Event
	closing func() bool
	log     zerolog.Logger
}

func newGame(s *Session, log zerolog.Logger) *game {
	f := s.Frame()
	return &game{
		session: s,
		width:   f.Width,
		height:  f.Height,
		closing: ebiten.IsWindowBeingClosed,
		log:     log,
	}
}

func (g *game) drain() []Event {
	evs := g.pending
	g.pending = nil
	return evs
}

func (g *game) Update() error {
	if g.closing() {
		g.pending = append(g.pending, CloseRequested{})
	}
	for _, ev := range g.drain() {
		g.session.Handle(ev)
	}
	if !g.session.CheckDeadline() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.present(screen)
}

func (g *game) present(screen surface) {
	g.session.Step(g.drain(), func(f *Frame) error {
		b := screen.Bounds()
		if b.Dx() != f.Width || b.Dy() != f.Height {
			return fmt.Errorf("surface is %dx%d, frame is %dx%d", b.Dx(), b.Dy(), f.Width, f.Height)
		}
		screen.WritePixels(f.Pix)
		return nil
	})
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.pending = append(g.pending, Resized{Width: outsideWidth, Height: outsideHeight})
		g.log.Debug().
			Int(logging.FieldWidth, outsideWidth).
			Int(logging.FieldHeight, outsideHeight).
			Msg("surface resized")
	}
	return g.width, g.height
}

func runGame(g *game) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ebiten panic: %v", r)
		}
	}()
	return ebiten.RunGame(g)
}

// RunDefault shows one overlay with the ebiten window system. ebiten owns
// the calling goroutine's OS thread for the lifetime of the window and runs
// at most one game per process, so this is called from main in a process
// dedicated to the session.
func RunDefault(opts Options) error {
	opts = opts.withDefaults()
	width, height := surfaceSize(ebitenDisplay{}, opts)

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowSize(width, height)
	ebiten.SetFullscreen(true)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)

	s := NewSession(opts, width, height)
	g := newGame(s, opts.Logger)
	err := runGame(g)
	logEnd(opts, s)
	return runError(err, s)
}

// runError maps what RunGame returned to the session outcome. An ebiten
// error before any frame was presented means the window never came up.
func runError(err error, s *Session) error {
	switch {
	case err == nil || errors.Is(err, ebiten.Termination):
		return s.Err()
	case s.Frames() == 0:
		return &DisplayError{Op: "create window", Kind: ErrWindowCreation, Err: err}
	default:
		return &DisplayError{Op: "present", Kind: ErrPresentation, Err: err}
	}
}
