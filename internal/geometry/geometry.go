// Package geometry provides the 2D primitives shared by the detection
// pipeline: points, line segments, and the angle/distance/projection math
// used to compare candidate walls.
//
// All coordinates are float64 pixel positions with the standard image
// convention: origin at the top-left, X increasing rightward, Y increasing
// downward. Angles are in radians as returned by math.Atan2, so a horizontal
// segment has angle 0 and a vertical one ±π/2.
package geometry

import "math"

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Midpoint returns the point halfway between p and other.
func (p Point) Midpoint(other Point) Point {
	return Point{X: (p.X + other.X) / 2, Y: (p.Y + other.Y) / 2}
}

// Segment is a directed line segment between two points.
type Segment struct {
	Start Point
	End   Point
}

// Length returns the segment's Euclidean length.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Angle returns the segment's direction in radians, in (-π, π].
func (s Segment) Angle() float64 {
	return math.Atan2(s.End.Y-s.Start.Y, s.End.X-s.Start.X)
}

// Midpoint returns the segment's center point.
func (s Segment) Midpoint() Point {
	return s.Start.Midpoint(s.End)
}

// PointAt returns the point at parameter t along the segment, where t=0 is
// Start and t=1 is End. Values outside [0, 1] extrapolate along the line.
func (s Segment) PointAt(t float64) Point {
	return Point{
		X: s.Start.X + t*(s.End.X-s.Start.X),
		Y: s.Start.Y + t*(s.End.Y-s.Start.Y),
	}
}

// Direction returns the segment's unit direction vector. A zero-length
// segment yields the zero vector.
func (s Segment) Direction() (dx, dy float64) {
	length := s.Length()
	if length == 0 {
		return 0, 0
	}
	return (s.End.X - s.Start.X) / length, (s.End.Y - s.Start.Y) / length
}

// Normal returns the unit vector perpendicular to the segment (direction
// rotated 90° clockwise in image coordinates).
func (s Segment) Normal() (nx, ny float64) {
	dx, dy := s.Direction()
	return -dy, dx
}

// PerpendicularDistance returns the distance from p to the infinite line
// through the segment. A zero-length segment degenerates to point distance.
func (s Segment) PerpendicularDistance(p Point) float64 {
	length := s.Length()
	if length == 0 {
		return s.Start.Distance(p)
	}
	// Cross product magnitude of (End-Start) x (p-Start), over length.
	cross := (s.End.X-s.Start.X)*(p.Y-s.Start.Y) - (s.End.Y-s.Start.Y)*(p.X-s.Start.X)
	return math.Abs(cross) / length
}

// Project returns the parameter t of p's orthogonal projection onto the
// segment's line, where t=0 maps to Start and t=1 to End.
func (s Segment) Project(p Point) float64 {
	length := s.Length()
	if length == 0 {
		return 0
	}
	dot := (p.X-s.Start.X)*(s.End.X-s.Start.X) + (p.Y-s.Start.Y)*(s.End.Y-s.Start.Y)
	return dot / (length * length)
}

// SpansOverlap reports whether the projections of the two segments onto a's
// line overlap. Used to distinguish genuinely coincident walls from distant
// collinear ones.
func SpansOverlap(a, b Segment) bool {
	t1 := a.Project(b.Start)
	t2 := a.Project(b.End)
	lo, hi := math.Min(t1, t2), math.Max(t1, t2)
	return hi >= 0 && lo <= 1
}

// AngleDiff returns the absolute difference between two angles, normalized
// to [0, π].
func AngleDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	for d > 2*math.Pi {
		d -= 2 * math.Pi
	}
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// AnglesAligned reports whether two angles are parallel or anti-parallel
// within tolerance radians. Wall candidates found by scans running in
// opposite directions must still compare equal.
func AnglesAligned(a, b, tolerance float64) bool {
	d := AngleDiff(a, b)
	return d < tolerance || math.Abs(d-math.Pi) < tolerance
}
