package detection

import (
	"math"

	"github.com/homequest/planscan/internal/geometry"
	"github.com/homequest/planscan/internal/raster"
)

// accumulateLines performs scanline-based line detection over the edge map.
//
// Unlike a full polar-parameter Hough transform, evidence is accumulated
// directly along sampled rows and columns: floor-plan walls are overwhelmingly
// axis-aligned, so the two scan orientations cover the useful parameter space
// at a fraction of the cost.
//
// A line stays open across internal breaks in the edge run. Breaks between
// GapMin and GapMax wide are recorded as gap intervals (candidate door or
// window markers), while breaks wider than GapBreak close the line and start
// a new one. Only lines with strength (run length) above MinLineStrength are
// kept.
func accumulateLines(edges *raster.EdgeMap, cfg Config) []line {
	lines := accumulateAxis(edges, cfg, true)
	return append(lines, accumulateAxis(edges, cfg, false)...)
}

// accumulateAxis scans one orientation. With rowScan true, scanlines are
// rows and the resulting lines are horizontal (angle 0); otherwise they are
// vertical (angle π/2).
func accumulateAxis(edges *raster.EdgeMap, cfg Config, rowScan bool) []line {
	scanLimit, walkLimit := edges.Height, edges.Width
	if !rowScan {
		scanLimit, walkLimit = edges.Width, edges.Height
	}

	angle := 0.0
	if !rowScan {
		angle = math.Pi / 2
	}

	at := func(scan, walk int) bool {
		if rowScan {
			return edges.At(walk, scan)
		}
		return edges.At(scan, walk)
	}

	point := func(scan, walk int) geometry.Point {
		if rowScan {
			return geometry.Point{X: float64(walk), Y: float64(scan)}
		}
		return geometry.Point{X: float64(scan), Y: float64(walk)}
	}

	var lines []line

	for scan := 0; scan < scanLimit; scan += cfg.ScanStep {
		segStart := -1 // first edge pixel of the open segment
		lastEdge := -1 // most recent edge pixel

		var gaps []GapInterval

		closeSeg := func() {
			if segStart < 0 {
				return
			}
			strength := float64(lastEdge - segStart)
			if strength > cfg.MinLineStrength {
				lines = append(lines, line{
					start:    point(scan, segStart),
					end:      point(scan, lastEdge),
					angle:    angle,
					strength: strength,
					gaps:     gaps,
				})
			}
			segStart = -1
			lastEdge = -1
			gaps = nil
		}

		for walk := 0; walk < walkLimit; walk++ {
			if !at(scan, walk) {
				continue
			}
			if segStart < 0 {
				segStart = walk
				lastEdge = walk
				continue
			}

			gap := float64(walk - lastEdge - 1)
			switch {
			case gap > cfg.GapBreak:
				closeSeg()
				segStart = walk
			case gap >= cfg.GapMin && gap <= cfg.GapMax:
				gaps = append(gaps, GapInterval{
					Start: float64(lastEdge + 1),
					End:   float64(walk - 1),
				})
			}
			lastEdge = walk
		}
		closeSeg()
	}

	return lines
}
