package detection

import (
	"math"

	"github.com/homequest/planscan/internal/geometry"
	"github.com/homequest/planscan/internal/raster"
)

// detectDoors finds door openings as gaps between aligned wall endpoints.
//
// For every pair of walls with matching angles, the distance between their
// nearest endpoints is computed; a gap strictly between DoorMinWidth and
// DoorMaxWidth whose perpendicular misalignment stays within
// DoorAlignmentTolerance becomes a door at the gap midpoint. The opening is
// then checked for a swing-arc pattern in the grayscale raster: finding one
// raises the confidence from DoorBaseConfidence to DoorArcConfidence.
//
// Duplicate detections (the same opening seen from different wall pairs) are
// suppressed when positions match within DoorDedupDistance on both axes.
func detectDoors(walls []Wall, g *raster.Gray, cfg Config) []Door {
	var doors []Door

	for i := 0; i < len(walls); i++ {
		for j := i + 1; j < len(walls); j++ {
			door, ok := doorBetween(walls[i], walls[j], g, cfg)
			if !ok {
				continue
			}
			if hasNearbyDoor(doors, door.Position, cfg.DoorDedupDistance) {
				continue
			}
			doors = append(doors, door)
		}
	}

	// Extension point: a full-image arc scan could recover doors whose
	// flanking walls were missed entirely. It currently yields nothing.
	for _, door := range scanStandaloneArcs(g, cfg) {
		if !hasNearbyDoor(doors, door.Position, cfg.DoorDedupDistance) {
			doors = append(doors, door)
		}
	}

	if doors == nil {
		doors = []Door{}
	}
	return doors
}

// doorBetween checks one wall pair for a door-sized gap between their
// facing endpoints.
func doorBetween(a, b Wall, g *raster.Gray, cfg Config) (Door, bool) {
	if !geometry.AnglesAligned(a.Angle(), b.Angle(), cfg.DoorAngleTolerance) {
		return Door{}, false
	}

	pa, pb := nearestEndpoints(a, b)
	gap := pa.Distance(pb)
	if gap <= cfg.DoorMinWidth || gap >= cfg.DoorMaxWidth {
		return Door{}, false
	}

	// Parallel-but-offset walls (opposite sides of a corridor) also have
	// endpoint gaps in the door range; require the gap to run along the
	// walls, not across them.
	if a.Segment().PerpendicularDistance(pb) > cfg.DoorAlignmentTolerance {
		return Door{}, false
	}

	orientation := OrientationVertical
	if math.Abs(a.Angle()) < math.Pi/4 || math.Abs(a.Angle()) > 3*math.Pi/4 {
		orientation = OrientationHorizontal
	}

	door := Door{
		Position:    pa.Midpoint(pb),
		Width:       gap,
		Orientation: orientation,
		Confidence:  cfg.DoorBaseConfidence,
	}
	if hasArcSweep(g, door.Position, gap, cfg) {
		door.Confidence = cfg.DoorArcConfidence
	}
	return door, true
}

// nearestEndpoints returns the closest pair of endpoints between two walls.
func nearestEndpoints(a, b Wall) (geometry.Point, geometry.Point) {
	bestA, bestB := a.Start, b.Start
	best := math.MaxFloat64
	for _, pa := range []geometry.Point{a.Start, a.End} {
		for _, pb := range []geometry.Point{b.Start, b.End} {
			if d := pa.Distance(pb); d < best {
				best = d
				bestA, bestB = pa, pb
			}
		}
	}
	return bestA, bestB
}

// hasArcSweep samples quarter-circle arcs of radius ArcRadiusRatio × width
// around the door position and reports whether any quadrant shows enough ink
// to be a drawn swing arc. The drawing convention does not fix which way the
// door swings, so all four quadrant orientations are tried.
func hasArcSweep(g *raster.Gray, center geometry.Point, width float64, cfg Config) bool {
	radius := cfg.ArcRadiusRatio * width
	const steps = 12

	for quadrant := 0; quadrant < 4; quadrant++ {
		base := float64(quadrant) * math.Pi / 2
		dark := 0
		total := 0
		for i := 0; i <= steps; i++ {
			theta := base + float64(i)/float64(steps)*math.Pi/2
			x := int(center.X + radius*math.Cos(theta))
			y := int(center.Y + radius*math.Sin(theta))
			if !g.In(x, y) {
				continue
			}
			total++
			if g.At(x, y) < cfg.ArcDarkMax {
				dark++
			}
		}
		if total > 0 && float64(dark) >= cfg.ArcMinDarkRatio*float64(total) {
			return true
		}
	}
	return false
}

// hasNearbyDoor reports whether an accepted door already sits within dist of
// p on both axes.
func hasNearbyDoor(doors []Door, p geometry.Point, dist float64) bool {
	for _, d := range doors {
		if math.Abs(d.Position.X-p.X) < dist && math.Abs(d.Position.Y-p.Y) < dist {
			return true
		}
	}
	return false
}

// scanStandaloneArcs would detect door swing arcs independently of wall
// gaps, recovering doors in walls the scanners missed. Not implemented:
// a quarter-arc Hough accumulator over the edge map is the intended
// approach.
//
// TODO: implement the full-image arc scan with a radius-bounded Hough
// accumulator once representative drawings with orphan arcs are collected.
func scanStandaloneArcs(*raster.Gray, Config) []Door {
	return nil
}
