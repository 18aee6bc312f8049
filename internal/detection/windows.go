package detection

import (
	"math"

	"github.com/homequest/planscan/internal/geometry"
	"github.com/homequest/planscan/internal/raster"
)

// detectWindows finds window openings along thick walls.
//
// Windows are drawn as a framing pattern: the wall line continues (or a sill
// line sits on it) with a second, separated line offset along the wall's
// normal. Only walls thicker than WindowMinWallThickness are searched:
// windows sit in exterior walls, and thin partitions produce false
// positives.
//
// Probe points are walked every WindowStep pixels along the wall. At each
// point a perpendicular intensity profile of ±WindowProfileRange pixels is
// examined for two separated dark bands; on a match the window width is
// measured by walking outward along the wall direction until wall ink is
// found on each side. Widths strictly between WindowMinWidth and
// WindowMaxWidth are accepted; height is estimated as WindowHeightRatio ×
// width rather than measured. After a detection the walk skips ahead by the
// measured width so one window is not reported from every probe inside it.
func detectWindows(walls []Wall, g *raster.Gray, cfg Config) []Window {
	windows := []Window{}

	for _, wall := range walls {
		if wall.Thickness <= cfg.WindowMinWallThickness {
			continue
		}

		seg := wall.Segment()
		length := seg.Length()
		if length == 0 {
			continue
		}
		dx, dy := seg.Direction()
		nx, ny := seg.Normal()

		for dist := 0.0; dist <= length; dist += cfg.WindowStep {
			p := seg.PointAt(dist / length)

			if !hasFramingProfile(g, p, nx, ny, cfg) {
				continue
			}

			width, ok := measureOpening(g, p, dx, dy, cfg)
			if !ok {
				continue
			}

			if !hasNearbyWindow(windows, p, cfg.WindowDedupDistance) {
				windows = append(windows, Window{
					Position:   p,
					Width:      width,
					Height:     cfg.WindowHeightRatio * width,
					Confidence: cfg.WindowConfidence,
				})
			}

			// Jump past the detected opening.
			dist += width
		}
	}

	return windows
}

// hasFramingProfile samples the perpendicular intensity profile at p and
// looks for the double-line framing pattern: a dark pixel near the wall
// line, another dark pixel farther out along the normal, and a non-dark gap
// between them. Both normal directions are checked.
func hasFramingProfile(g *raster.Gray, p geometry.Point, nx, ny float64, cfg Config) bool {
	dark := make(map[int]bool, 2*cfg.WindowProfileRange+1)
	for off := -cfg.WindowProfileRange; off <= cfg.WindowProfileRange; off++ {
		x := int(p.X + float64(off)*nx)
		y := int(p.Y + float64(off)*ny)
		if !g.In(x, y) {
			continue
		}
		if g.At(x, y) < cfg.WindowDarkMax {
			dark[off] = true
		}
	}

	near := false
	for off := -cfg.WindowNearRange; off <= cfg.WindowNearRange; off++ {
		if dark[off] {
			near = true
			break
		}
	}
	if !near {
		return false
	}

	for _, sign := range []int{1, -1} {
		sawGap := false
		for off := cfg.WindowNearRange + 1; off <= cfg.WindowProfileRange; off++ {
			if !dark[sign*off] {
				sawGap = true
			} else if sawGap {
				return true
			}
		}
	}
	return false
}

// measureOpening walks outward from p along the wall direction, up to
// WindowMaxHalfWidth on each side, until wall ink is found; the sum of the
// two walks is the opening width. Fails when either side runs out of range
// without hitting ink or the total falls outside the accepted width band.
func measureOpening(g *raster.Gray, p geometry.Point, dx, dy float64, cfg Config) (float64, bool) {
	half := func(sign float64) (float64, bool) {
		for step := 1.0; step <= cfg.WindowMaxHalfWidth; step++ {
			x := int(p.X + sign*step*dx)
			y := int(p.Y + sign*step*dy)
			if !g.In(x, y) {
				return 0, false
			}
			if g.At(x, y) < cfg.WindowDarkMax {
				return step, true
			}
		}
		return 0, false
	}

	left, ok := half(-1)
	if !ok {
		return 0, false
	}
	right, ok := half(1)
	if !ok {
		return 0, false
	}

	width := left + right
	if width <= cfg.WindowMinWidth || width >= cfg.WindowMaxWidth {
		return 0, false
	}
	return width, true
}

// hasNearbyWindow reports whether an accepted window already sits within
// dist of p on both axes.
func hasNearbyWindow(windows []Window, p geometry.Point, dist float64) bool {
	for _, w := range windows {
		if math.Abs(w.Position.X-p.X) < dist && math.Abs(w.Position.Y-p.Y) < dist {
			return true
		}
	}
	return false
}
