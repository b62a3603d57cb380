package overlay

import (
	"errors"
	"time"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type presentCall struct {
	length int
	width  int
	height int
	at     time.Time
}

// fakeWindow advances the clock by one refresh interval per poll and
// replays scripted events keyed by poll index.
type fakeWindow struct {
	width   int
	height  int
	clock   *fakeClock
	refresh time.Duration
	script  map[int][]Event
	failAt  int // present index that fails, -1 for never

	polls     int
	presents  []presentCall
	first     []byte
	destroyed int
}

func newFakeWindow(clock *fakeClock, width, height int) *fakeWindow {
	return &fakeWindow{
		width:   width,
		height:  height,
		clock:   clock,
		refresh: 100 * time.Millisecond,
		script:  map[int][]Event{},
		failAt:  -1,
	}
}

func (w *fakeWindow) Size() (int, int) { return w.width, w.height }

func (w *fakeWindow) PollEvents() []Event {
	if w.polls > 0 {
		w.clock.Advance(w.refresh)
	}
	evs := w.script[w.polls]
	w.polls++
	return evs
}

func (w *fakeWindow) Present(pix []byte, width, height int) error {
	if len(w.presents) == w.failAt {
		return errors.New("surface lost")
	}
	if w.first == nil {
		w.first = append([]byte(nil), pix...)
	}
	w.presents = append(w.presents, presentCall{length: len(pix), width: width, height: height, at: w.clock.Now()})
	return nil
}

func (w *fakeWindow) Destroy() { w.destroyed++ }

type fakeDisplay struct {
	width     int
	height    int
	ok        bool
	win       *fakeWindow
	createErr error

	requestedW int
	requestedH int
}

func (d *fakeDisplay) PrimarySize() (int, int, bool) { return d.width, d.height, d.ok }

func (d *fakeDisplay) CreateWindow(_ string, width, height int) (Window, error) {
	d.requestedW, d.requestedH = width, height
	if d.createErr != nil {
		return nil, d.createErr
	}
	return d.win, nil
}

func testOptions(clock *fakeClock) Options {
	opts := DefaultOptions()
	opts.Now = clock.Now
	return opts
}
