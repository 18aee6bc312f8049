package detection

import (
	"math"

	"github.com/homequest/planscan/internal/geometry"
	"github.com/homequest/planscan/internal/raster"
)

// groupLines clusters near-parallel, spatially close lines into wall
// candidates.
//
// Lines that are too gappy (more than GroupMaxGaps tracked gaps) or too weak
// (strength below GroupMinLineStrength) are discarded first. The remainder
// are grouped greedily: a line joins a group when its angle matches the
// group's seed within GroupAngleTolerance (parallel or anti-parallel), its
// perpendicular distance from the seed lies strictly between GroupMinSpacing
// and GroupMaxSpacing (plausible wall thickness spacing),
// and the two spans overlap along their primary axis. Groups whose average
// strength does not exceed GroupMinStrength are dropped.
func groupLines(lines []line, cfg Config) [][]line {
	var candidates []line
	for _, l := range lines {
		if len(l.gaps) > cfg.GroupMaxGaps {
			continue
		}
		if l.strength < cfg.GroupMinLineStrength {
			continue
		}
		candidates = append(candidates, l)
	}

	used := make([]bool, len(candidates))
	var groups [][]line

	for i, seed := range candidates {
		if used[i] {
			continue
		}
		used[i] = true
		group := []line{seed}

		for j := i + 1; j < len(candidates); j++ {
			if used[j] {
				continue
			}
			if linesPair(seed, candidates[j], cfg) {
				used[j] = true
				group = append(group, candidates[j])
			}
		}

		var total float64
		for _, l := range group {
			total += l.strength
		}
		if total/float64(len(group)) > cfg.GroupMinStrength {
			groups = append(groups, group)
		}
	}

	return groups
}

// linesPair reports whether b belongs in a group seeded by a.
func linesPair(a, b line, cfg Config) bool {
	if !geometry.AnglesAligned(a.angle, b.angle, cfg.GroupAngleTolerance) {
		return false
	}

	dist := a.segment().PerpendicularDistance(b.segment().Midpoint())
	if dist <= cfg.GroupMinSpacing || dist >= cfg.GroupMaxSpacing {
		return false
	}

	return geometry.SpansOverlap(a.segment(), b.segment())
}

// synthesizeWall builds a wall record from a line group, or returns false
// when the group does not hold up as real wall geometry.
//
// The group's strongest line becomes the wall centerline; thickness is the
// largest perpendicular separation between the group's lines, or the default
// when the group has a single line. The candidate is then validated against
// the grayscale raster (isRealWall) before being accepted.
func synthesizeWall(group []line, g *raster.Gray, cfg Config) (Wall, bool) {
	strongest := group[0]
	for _, l := range group[1:] {
		if l.strength > strongest.strength {
			strongest = l
		}
	}

	thickness := cfg.WallDefaultThickness
	if len(group) > 1 {
		var maxSpread float64
		for _, a := range group {
			for _, b := range group {
				d := a.segment().PerpendicularDistance(b.segment().Midpoint())
				if d > maxSpread {
					maxSpread = d
				}
			}
		}
		if maxSpread > 0 {
			thickness = maxSpread
		}
	}

	wall := Wall{
		Start:      strongest.start,
		End:        strongest.end,
		Thickness:  thickness,
		Type:       WallInterior,
		Confidence: math.Min(strongest.strength/100, cfg.WallMaxConfidence),
	}
	if thickness > cfg.WallExteriorThickness {
		wall.Type = WallExterior
	}

	if !isRealWall(wall, g, cfg) {
		return Wall{}, false
	}
	return wall, true
}

// isRealWall checks a candidate against the grayscale raster: a genuine wall
// stroke is consistently dark along its centerline. WallSampleCount points
// are sampled along the segment; at least WallMinDarkRatio of them must be
// dark, the dark samples must average below WallMaxAvgDarkness, and the
// thickness must fall inside the valid wall range.
func isRealWall(w Wall, g *raster.Gray, cfg Config) bool {
	if w.Thickness < cfg.WallMinThickness || w.Thickness > cfg.WallMaxThickness {
		return false
	}
	if w.Length() < cfg.WallMinLength {
		return false
	}

	seg := w.Segment()
	dark := 0
	var darkSum float64
	for i := 0; i < cfg.WallSampleCount; i++ {
		t := float64(i) / float64(cfg.WallSampleCount-1)
		p := seg.PointAt(t)
		x, y := int(p.X), int(p.Y)
		if !g.In(x, y) {
			continue
		}
		v := g.At(x, y)
		if v < cfg.WallDarkMax {
			dark++
			darkSum += float64(v)
		}
	}

	if float64(dark) < cfg.WallMinDarkRatio*float64(cfg.WallSampleCount) {
		return false
	}
	return darkSum/float64(dark) < cfg.WallMaxAvgDarkness
}

// synthesizeWalls runs grouping and synthesis over the accumulated lines.
func synthesizeWalls(lines []line, g *raster.Gray, cfg Config) []Wall {
	var walls []Wall
	for _, group := range groupLines(lines, cfg) {
		if w, ok := synthesizeWall(group, g, cfg); ok {
			walls = append(walls, w)
		}
	}
	return walls
}
