//go:build headless

package overlay

import (
	"fmt"
	"time"
)

const headlessRefresh = time.Second / 60

// headlessDisplay has no monitor, so sessions always use the fallback size.
type headlessDisplay struct{}

func (headlessDisplay) PrimarySize() (int, int, bool) { return 0, 0, false }

func (headlessDisplay) CreateWindow(_ string, width, height int) (Window, error) {
	return &headlessWindow{
		width:  width,
		height: height,
		ticker: time.NewTicker(headlessRefresh),
	}, nil
}

type headlessWindow struct {
	width  int
	height int
	ticker *time.Ticker
}

func (w *headlessWindow) Size() (int, int) { return w.width, w.height }

func (w *headlessWindow) PollEvents() []Event {
	<-w.ticker.C
	return []Event{RedrawOpportunity{}}
}

func (w *headlessWindow) Present(pix []byte, width, height int) error {
	if len(pix) != width*height*BytesPerPixel {
		return fmt.Errorf("buffer is %d bytes, want %d", len(pix), width*height*BytesPerPixel)
	}
	return nil
}

func (w *headlessWindow) Destroy() {
	w.ticker.Stop()
}

// RunDefault shows one overlay on a simulated display.
func RunDefault(opts Options) error {
	return Run(headlessDisplay{}, opts)
}
