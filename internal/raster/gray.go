package raster

import (
	"image"

	"github.com/disintegration/imaging"
)

// Gray is a single-channel intensity buffer derived from a color raster.
//
// Intensities are 8-bit luminance values (0 = black, 255 = white) computed
// with ITU-R BT.601 weights. The buffer is row-major and contiguous.
type Gray struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGray allocates a Gray buffer of the given size filled with white.
func NewGray(width, height int) *Gray {
	pix := make([]uint8, width*height)
	for i := range pix {
		pix[i] = 255
	}
	return &Gray{Width: width, Height: height, Pix: pix}
}

// FromImage converts a decoded image to a grayscale intensity buffer using
// luminance weights (0.299*R + 0.587*G + 0.114*B).
//
// The image is first cloned to NRGBA so the conversion can walk a contiguous
// pixel slice instead of going through the color.Color interface per pixel;
// for large floor plans this is the difference between milliseconds and
// seconds.
func FromImage(img image.Image) *Gray {
	nrgba := imaging.Clone(img)
	width := nrgba.Bounds().Dx()
	height := nrgba.Bounds().Dy()

	g := &Gray{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}

	for y := 0; y < height; y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		dst := g.Pix[y*width : (y+1)*width]
		for x := 0; x < width; x++ {
			r := float64(src[x*4])
			gr := float64(src[x*4+1])
			b := float64(src[x*4+2])
			dst[x] = uint8(0.299*r + 0.587*gr + 0.114*b)
		}
	}

	return g
}

// In reports whether (x, y) lies inside the buffer.
func (g *Gray) In(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the intensity at (x, y). Out-of-range coordinates read as
// white (255), the floor-plan background.
func (g *Gray) At(x, y int) uint8 {
	if !g.In(x, y) {
		return 255
	}
	return g.Pix[y*g.Width+x]
}

// Set writes the intensity at (x, y). Out-of-range writes are ignored.
// Used by tests to build synthetic rasters.
func (g *Gray) Set(x, y int, v uint8) {
	if !g.In(x, y) {
		return
	}
	g.Pix[y*g.Width+x] = v
}
