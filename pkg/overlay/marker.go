package overlay

import (
	"math"
	"time"
)

// MarkerPosition returns where the marker sits after elapsed time on a
// width x height surface. The path is a figure eight around the centre
// with an amplitude of a quarter of the shorter side; the result is always
// inside the surface.
func MarkerPosition(elapsed time.Duration, width, height int) (x, y int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	t := elapsed.Seconds()
	amp := float64(min(width, height)) / 4
	fx := float64(width)/2 + amp*math.Sin(t)
	fy := float64(height)/2 + amp*math.Sin(t/2)*math.Cos(t/2)

	return clamp(int(fx), 0, width-1), clamp(int(fy), 0, height-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
