package detection

import (
	"github.com/homequest/planscan/internal/geometry"
)

// WallType classifies a wall by its role in the floor plan.
type WallType string

const (
	// WallInterior is a partition wall between rooms.
	WallInterior WallType = "interior"

	// WallExterior is a perimeter or load-bearing wall; these are drawn
	// thicker than partitions.
	WallExterior WallType = "exterior"
)

// Orientation is the axis a door opening runs along.
type Orientation string

const (
	// OrientationHorizontal means the opening runs left-right.
	OrientationHorizontal Orientation = "horizontal"

	// OrientationVertical means the opening runs top-bottom.
	OrientationVertical Orientation = "vertical"
)

// Wall is a detected wall segment in pixel coordinates.
type Wall struct {
	ID         string         `json:"id"`
	Start      geometry.Point `json:"start"`
	End        geometry.Point `json:"end"`
	Thickness  float64        `json:"thickness"`
	Type       WallType       `json:"type"`
	Confidence float64        `json:"confidence"`
}

// Segment returns the wall's centerline.
func (w Wall) Segment() geometry.Segment {
	return geometry.Segment{Start: w.Start, End: w.End}
}

// Length returns the wall's centerline length in pixels.
func (w Wall) Length() float64 {
	return w.Start.Distance(w.End)
}

// Angle returns the wall's direction in radians.
func (w Wall) Angle() float64 {
	return w.Segment().Angle()
}

// Door is a detected door opening.
type Door struct {
	ID          string         `json:"id"`
	Position    geometry.Point `json:"position"`
	Width       float64        `json:"width"`
	Orientation Orientation    `json:"orientation"`
	Confidence  float64        `json:"confidence"`
}

// Window is a detected window opening. Height is derived from width, not
// independently measured.
type Window struct {
	ID         string         `json:"id"`
	Position   geometry.Point `json:"position"`
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	Confidence float64        `json:"confidence"`
}

// Result is the structured geometry extracted from one floor-plan raster.
//
// The slices are never nil, so the result serializes to JSON arrays even
// when nothing was detected. An empty result means "no geometry found", not
// an error.
type Result struct {
	Walls   []Wall   `json:"walls"`
	Doors   []Door   `json:"doors"`
	Windows []Window `json:"windows"`
}

// emptyResult returns a Result with allocated, empty slices.
func emptyResult() *Result {
	return &Result{
		Walls:   []Wall{},
		Doors:   []Door{},
		Windows: []Window{},
	}
}

// GapInterval is a short break inside an otherwise continuous line, a
// candidate marker for a door or window opening.
type GapInterval struct {
	Start float64
	End   float64
}

// Width returns the gap's extent in pixels.
func (g GapInterval) Width() float64 {
	return g.End - g.Start
}

// line is an intermediate line candidate accumulated from the edge map.
// Lines are not part of the result; they exist only between the accumulator
// and the wall synthesizer.
type line struct {
	start    geometry.Point
	end      geometry.Point
	angle    float64
	strength float64
	gaps     []GapInterval
}

// segment returns the line as a geometry segment.
func (l line) segment() geometry.Segment {
	return geometry.Segment{Start: l.start, End: l.end}
}
