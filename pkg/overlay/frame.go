package overlay

import "image/color"

// BytesPerPixel is the size of one RGBA quad.
const BytesPerPixel = 4

// Frame is the RGBA pixel buffer for one surface. len(Pix) is always
// Width*Height*BytesPerPixel.
type Frame struct {
	Pix    []byte
	Width  int
	Height int
}

// NewFrame allocates a frame for a width x height surface. Negative sizes
// are treated as zero.
func NewFrame(width, height int) *Frame {
	width, height = max(width, 0), max(height, 0)
	return &Frame{
		Pix:    make([]byte, width*height*BytesPerPixel),
		Width:  width,
		Height: height,
	}
}

// Resize makes the buffer match a new surface size. Content is not
// preserved. It reports whether the size changed.
func (f *Frame) Resize(width, height int) bool {
	width, height = max(width, 0), max(height, 0)
	if width == f.Width && height == f.Height {
		return false
	}
	n := width * height * BytesPerPixel
	if cap(f.Pix) >= n {
		f.Pix = f.Pix[:n]
	} else {
		f.Pix = make([]byte, n)
	}
	f.Width, f.Height = width, height
	return true
}

// Clear fills every pixel with c.
func (f *Frame) Clear(c color.RGBA) {
	if len(f.Pix) < BytesPerPixel {
		return
	}
	f.Pix[0], f.Pix[1], f.Pix[2], f.Pix[3] = c.R, c.G, c.B, c.A
	for i := BytesPerPixel; i < len(f.Pix); i *= 2 {
		copy(f.Pix[i:], f.Pix[:i])
	}
}

// At returns the color of the pixel at x, y. Out of range coordinates
// return the zero color.
func (f *Frame) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return color.RGBA{}
	}
	i := (y*f.Width + x) * BytesPerPixel
	return color.RGBA{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2], A: f.Pix[i+3]}
}

// FillDisk draws a filled disk of radius r centred on cx, cy. Pixels that
// fall outside the frame are skipped. A radius of zero draws one pixel.
func (f *Frame) FillDisk(cx, cy, r int, c color.RGBA) {
	r = max(r, 0)
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		y := cy + dy
		if y < 0 || y >= f.Height {
			continue
		}
		for dx := -r; dx <= r; dx++ {
			x := cx + dx
			if x < 0 || x >= f.Width || dx*dx+dy*dy > rr {
				continue
			}
			i := (y*f.Width + x) * BytesPerPixel
			if i < 0 || i+BytesPerPixel > len(f.Pix) {
				continue
			}
			f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
}
