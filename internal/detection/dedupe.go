package detection

import (
	"math"
	"sort"

	"github.com/homequest/planscan/internal/geometry"
)

// wallsOverlap reports whether two walls describe the same physical wall.
//
// The walls must be parallel or anti-parallel within DedupAngleTolerance,
// one wall's endpoints must both lie within DedupDistance (perpendicular
// distance) of the other's line, and their projected spans must overlap
// along the shared direction. Without the span condition any two collinear
// segments would compare as duplicates, including the two flanking walls of
// a doorway, which are distinct geometry separated by a gap.
//
// The check is symmetric: wallsOverlap(a, b) == wallsOverlap(b, a).
func wallsOverlap(a, b Wall, cfg Config) bool {
	if !geometry.AnglesAligned(a.Angle(), b.Angle(), cfg.DedupAngleTolerance) {
		return false
	}
	if !geometry.SpansOverlap(a.Segment(), b.Segment()) &&
		!geometry.SpansOverlap(b.Segment(), a.Segment()) {
		return false
	}
	return endpointsNearLine(a, b, cfg.DedupDistance) ||
		endpointsNearLine(b, a, cfg.DedupDistance)
}

// endpointsNearLine reports whether both endpoints of a lie within dist of
// b's line.
func endpointsNearLine(a, b Wall, dist float64) bool {
	seg := b.Segment()
	return seg.PerpendicularDistance(a.Start) <= dist &&
		seg.PerpendicularDistance(a.End) <= dist
}

// wallGrid is a spatial index over accepted walls, bucketed by midpoint
// cell, so deduplication only compares candidates against nearby walls
// instead of the full O(n²) pairwise sweep.
type wallGrid struct {
	cell  float64
	cells map[[2]int][]int
	walls []Wall
}

func newWallGrid(cellSize float64) *wallGrid {
	return &wallGrid{
		cell:  cellSize,
		cells: make(map[[2]int][]int),
	}
}

// cellRange returns the grid cell range covered by a wall's bounding box
// expanded by margin.
func (g *wallGrid) cellRange(w Wall, margin float64) (x1, y1, x2, y2 int) {
	minX := math.Min(w.Start.X, w.End.X) - margin
	maxX := math.Max(w.Start.X, w.End.X) + margin
	minY := math.Min(w.Start.Y, w.End.Y) - margin
	maxY := math.Max(w.Start.Y, w.End.Y) + margin
	return int(math.Floor(minX / g.cell)), int(math.Floor(minY / g.cell)),
		int(math.Floor(maxX / g.cell)), int(math.Floor(maxY / g.cell))
}

// insert adds a wall to every cell its bounding box touches.
func (g *wallGrid) insert(w Wall) {
	idx := len(g.walls)
	g.walls = append(g.walls, w)
	x1, y1, x2, y2 := g.cellRange(w, 0)
	for cy := y1; cy <= y2; cy++ {
		for cx := x1; cx <= x2; cx++ {
			key := [2]int{cx, cy}
			g.cells[key] = append(g.cells[key], idx)
		}
	}
}

// hasDuplicate reports whether an already-accepted wall overlaps w.
func (g *wallGrid) hasDuplicate(w Wall, cfg Config) bool {
	x1, y1, x2, y2 := g.cellRange(w, cfg.DedupDistance)
	seen := make(map[int]bool)
	for cy := y1; cy <= y2; cy++ {
		for cx := x1; cx <= x2; cx++ {
			for _, idx := range g.cells[[2]int{cx, cy}] {
				if seen[idx] {
					continue
				}
				seen[idx] = true
				if wallsOverlap(w, g.walls[idx], cfg) {
					return true
				}
			}
		}
	}
	return false
}

// mergeWalls reconciles the candidates proposed by the filled-wall, bold-wall
// and line-grouping detectors into a single deduplicated list.
//
// Candidates are ordered by confidence, then thickness, so that when several
// detections describe the same wall the best-supported one wins; later
// duplicates are dropped outright, never merged numerically.
func mergeWalls(candidates []Wall, cfg Config) []Wall {
	ordered := make([]Wall, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Confidence != ordered[j].Confidence {
			return ordered[i].Confidence > ordered[j].Confidence
		}
		return ordered[i].Thickness > ordered[j].Thickness
	})

	grid := newWallGrid(cfg.DedupCellSize)
	merged := make([]Wall, 0, len(ordered))
	for _, w := range ordered {
		if grid.hasDuplicate(w, cfg) {
			continue
		}
		grid.insert(w)
		merged = append(merged, w)
	}
	return merged
}
