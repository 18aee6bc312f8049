// Package overlay renders detected floor-plan geometry back onto the source
// raster for visual inspection and tuning.
package overlay

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/homequest/planscan/internal/detection"
	"github.com/homequest/planscan/internal/geometry"
)

// Result contains the annotated image encoded as base64 PNG.
type Result struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// HSV hues in degrees for each entity kind; saturation and value are chosen
// per entity so exterior and interior walls remain distinguishable.
const (
	wallHue   = 10.0  // red-orange
	doorHue   = 210.0 // blue
	windowHue = 130.0 // green
)

// Render draws the detection result onto a copy of the source image and
// returns the annotated raster. Walls are drawn along their centerline
// (exterior walls in a deeper shade), doors as position markers with their
// swing radius, windows as framed boxes.
func Render(img image.Image, result *detection.Result) *image.NRGBA {
	out := imaging.Clone(img)

	for _, w := range result.Walls {
		value := 0.95
		if w.Type == detection.WallExterior {
			value = 0.65
		}
		c := toRGBA(colorful.Hsv(wallHue, 0.9, value))
		drawSegment(out, w.Segment(), c)
		// Hint at thickness with parallel strokes at the wall faces.
		nx, ny := w.Segment().Normal()
		half := w.Thickness / 2
		drawSegment(out, offsetSegment(w.Segment(), nx*half, ny*half), c)
		drawSegment(out, offsetSegment(w.Segment(), -nx*half, -ny*half), c)
	}

	for _, d := range result.Doors {
		c := toRGBA(colorful.Hsv(doorHue, 0.9, 0.95))
		drawCross(out, d.Position, 6, c)
		drawCircle(out, d.Position, d.Width/2, c)
	}

	for _, w := range result.Windows {
		c := toRGBA(colorful.Hsv(windowHue, 0.9, 0.85))
		drawBox(out, w.Position, w.Width, w.Height, c)
	}

	return out
}

// Encode renders the result and packages it as a base64 PNG in the manner
// callers can embed directly in JSON payloads.
func Encode(img image.Image, result *detection.Result) (*Result, error) {
	annotated := Render(img, result)

	var buf bytes.Buffer
	if err := png.Encode(&buf, annotated); err != nil {
		return nil, fmt.Errorf("failed to encode overlay image: %w", err)
	}

	return &Result{
		Width:       annotated.Bounds().Dx(),
		Height:      annotated.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

func toRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func setPixel(img *image.NRGBA, x, y int, c color.NRGBA) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	img.SetNRGBA(x, y, c)
}

func offsetSegment(s geometry.Segment, dx, dy float64) geometry.Segment {
	return geometry.Segment{
		Start: geometry.Point{X: s.Start.X + dx, Y: s.Start.Y + dy},
		End:   geometry.Point{X: s.End.X + dx, Y: s.End.Y + dy},
	}
}

func drawSegment(img *image.NRGBA, s geometry.Segment, c color.NRGBA) {
	length := s.Length()
	steps := int(length) + 1
	for i := 0; i <= steps; i++ {
		p := s.PointAt(float64(i) / float64(steps))
		setPixel(img, int(p.X), int(p.Y), c)
	}
}

func drawCross(img *image.NRGBA, p geometry.Point, size int, c color.NRGBA) {
	x, y := int(p.X), int(p.Y)
	for d := -size; d <= size; d++ {
		setPixel(img, x+d, y, c)
		setPixel(img, x, y+d, c)
	}
}

func drawCircle(img *image.NRGBA, center geometry.Point, radius float64, c color.NRGBA) {
	if radius <= 0 {
		return
	}
	steps := int(2*math.Pi*radius) + 8
	for i := 0; i < steps; i++ {
		theta := float64(i) / float64(steps) * 2 * math.Pi
		x := int(center.X + radius*math.Cos(theta))
		y := int(center.Y + radius*math.Sin(theta))
		setPixel(img, x, y, c)
	}
}

func drawBox(img *image.NRGBA, center geometry.Point, width, height float64, c color.NRGBA) {
	x1 := int(center.X - width/2)
	x2 := int(center.X + width/2)
	y1 := int(center.Y - height/2)
	y2 := int(center.Y + height/2)
	for x := x1; x <= x2; x++ {
		setPixel(img, x, y1, c)
		setPixel(img, x, y2, c)
	}
	for y := y1; y <= y2; y++ {
		setPixel(img, x1, y, c)
		setPixel(img, x2, y, c)
	}
}
