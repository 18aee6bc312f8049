package raster

import "math"

// EdgeMap is a binary per-pixel map of detected edges, row-major.
type EdgeMap struct {
	Width  int
	Height int
	Bits   []bool
}

// In reports whether (x, y) lies inside the map.
func (e *EdgeMap) In(x, y int) bool {
	return x >= 0 && x < e.Width && y >= 0 && y < e.Height
}

// At reports whether (x, y) is an edge pixel. Out-of-range reads are false.
func (e *EdgeMap) At(x, y int) bool {
	if !e.In(x, y) {
		return false
	}
	return e.Bits[y*e.Width+x]
}

// set marks (x, y) as an edge pixel.
func (e *EdgeMap) set(x, y int) {
	e.Bits[y*e.Width+x] = true
}

// Sobel computes a binary edge map from a grayscale buffer.
//
// A 3×3 Sobel kernel pair estimates the horizontal and vertical intensity
// gradients at each pixel; pixels whose gradient magnitude exceeds threshold
// become edges. Border pixels are never edges.
//
// The threshold is applied to the raw magnitude over 8-bit intensities, so a
// single clean black/white transition (step of 255) produces magnitudes of
// ~1000 and easily clears the default of 150. The default is tuned high on
// purpose: faint furniture, dimension lines, and hatching should not survive,
// only wall strokes.
func Sobel(g *Gray, threshold float64) *EdgeMap {
	e := &EdgeMap{
		Width:  g.Width,
		Height: g.Height,
		Bits:   make([]bool, g.Width*g.Height),
	}

	if g.Width < 3 || g.Height < 3 {
		return e
	}

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			// Unrolled 3×3 Sobel kernels:
			//   Gx = [-1 0 1; -2 0 2; -1 0 1]
			//   Gy = [-1 -2 -1; 0 0 0; 1 2 1]
			tl := float64(g.Pix[(y-1)*g.Width+x-1])
			tc := float64(g.Pix[(y-1)*g.Width+x])
			tr := float64(g.Pix[(y-1)*g.Width+x+1])
			ml := float64(g.Pix[y*g.Width+x-1])
			mr := float64(g.Pix[y*g.Width+x+1])
			bl := float64(g.Pix[(y+1)*g.Width+x-1])
			bc := float64(g.Pix[(y+1)*g.Width+x])
			br := float64(g.Pix[(y+1)*g.Width+x+1])

			gx := -tl + tr - 2*ml + 2*mr - bl + br
			gy := -tl - 2*tc - tr + bl + 2*bc + br

			if math.Sqrt(gx*gx+gy*gy) > threshold {
				e.set(x, y)
			}
		}
	}

	return e
}
