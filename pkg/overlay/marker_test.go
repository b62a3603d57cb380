package overlay

import (
	"testing"
	"time"
)

func TestMarkerPosition_StaysOnSurface(t *testing.T) {
	sizes := [][2]int{
		{1, 1}, {1, 1000}, {1000, 1}, {2, 3}, {800, 600}, {1024, 768}, {3840, 2160},
	}
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		for ms := 0; ms <= 60_000; ms += 7 {
			x, y := MarkerPosition(time.Duration(ms)*time.Millisecond, w, h)
			if x < 0 || x >= w || y < 0 || y >= h {
				t.Fatalf("size %dx%d t=%dms: position (%d,%d) off surface", w, h, ms, x, y)
			}
		}
	}
}

func TestMarkerPosition_LongSessions(t *testing.T) {
	for _, d := range []time.Duration{time.Hour, 24 * time.Hour, 365 * 24 * time.Hour} {
		x, y := MarkerPosition(d, 800, 600)
		if x < 0 || x >= 800 || y < 0 || y >= 600 {
			t.Fatalf("t=%v: position (%d,%d) off surface", d, x, y)
		}
	}
}

func TestMarkerPosition_StartsAtCentre(t *testing.T) {
	x, y := MarkerPosition(0, 800, 600)
	if x != 400 || y != 300 {
		t.Fatalf("expected (400,300) at t=0, got (%d,%d)", x, y)
	}
}

func TestMarkerPosition_Moves(t *testing.T) {
	x0, y0 := MarkerPosition(0, 800, 600)
	x1, y1 := MarkerPosition(time.Second, 800, 600)
	if x0 == x1 && y0 == y1 {
		t.Fatal("marker did not move after one second")
	}
}

func TestMarkerPosition_DegenerateSurface(t *testing.T) {
	x, y := MarkerPosition(time.Second, 0, 600)
	if x != 0 || y != 0 {
		t.Fatalf("expected (0,0) for empty surface, got (%d,%d)", x, y)
	}
}
