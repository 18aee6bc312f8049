package detection

import (
	"github.com/homequest/planscan/internal/geometry"
	"github.com/homequest/planscan/internal/raster"
)

// The two scanline scanners handle the two ways plans render walls: a pair
// of dark boundary strokes with a gray fill between them (filled walls,
// typical of CAD exports), and a single solid thick stroke (bold walls,
// typical of marketing plans). Both sample every ScanStep-th row and column;
// walls shorter than a scan step can be missed, which is acceptable since
// anything under the minimum wall length is noise anyway.

// filledHit is one dark/fill/dark triplet found on a single scanline: the
// cross-section of a filled wall at that scan position.
type filledHit struct {
	center float64 // position along the scanline
	span   float64 // boundary-to-boundary width
}

// filledBand accumulates triplet hits with matching centers across
// consecutive scanlines. The band's extent perpendicular to the scan
// direction becomes the wall's length.
type filledBand struct {
	centerSum float64
	spanSum   float64
	hits      int
	first     int // scan position of the first contributing scanline
	last      int // scan position of the most recent one
}

func (b *filledBand) center() float64 { return b.centerSum / float64(b.hits) }
func (b *filledBand) span() float64   { return b.spanSum / float64(b.hits) }

// scanFilledWalls finds walls drawn as dark-boundary/gray-fill/dark-boundary
// bands, scanning both axes.
func scanFilledWalls(g *raster.Gray, cfg Config) []Wall {
	walls := scanFilledAxis(g, cfg, true)
	return append(walls, scanFilledAxis(g, cfg, false)...)
}

// scanFilledAxis runs filled-wall scanlines along one axis. With rowScan
// true, scanlines are image rows and the detected walls run vertically;
// with rowScan false the roles swap.
func scanFilledAxis(g *raster.Gray, cfg Config, rowScan bool) []Wall {
	scanLimit, walkLimit := g.Height, g.Width
	if !rowScan {
		scanLimit, walkLimit = g.Width, g.Height
	}

	at := func(scan, walk int) uint8 {
		if rowScan {
			return g.At(walk, scan)
		}
		return g.At(scan, walk)
	}

	var walls []Wall
	var open []*filledBand

	flush := func(b *filledBand) {
		length := float64(b.last - b.first)
		if length < cfg.WallMinLength-float64(cfg.ScanStep) {
			return
		}
		thickness := b.span()
		wallType := WallInterior
		if thickness > cfg.FilledExteriorThickness {
			wallType = WallExterior
		}
		start := geometry.Point{X: b.center(), Y: float64(b.first)}
		end := geometry.Point{X: b.center(), Y: float64(b.last)}
		if !rowScan {
			start = geometry.Point{X: float64(b.first), Y: b.center()}
			end = geometry.Point{X: float64(b.last), Y: b.center()}
		}
		walls = append(walls, Wall{
			Start:      start,
			End:        end,
			Thickness:  thickness,
			Type:       wallType,
			Confidence: cfg.FilledConfidence,
		})
	}

	matchTol := float64(cfg.FilledMaxSpan) / 2

	for scan := 0; scan < scanLimit; scan += cfg.ScanStep {
		hits := scanFilledLine(at, scan, walkLimit, cfg)

		// Extend matching bands, open new ones, and retire bands that
		// missed more than one consecutive scanline.
		for _, h := range hits {
			var best *filledBand
			bestD := matchTol
			for _, b := range open {
				if b.last == scan {
					continue // already extended this scanline
				}
				d := h.center - b.center()
				if d < 0 {
					d = -d
				}
				if d <= bestD {
					best = b
					bestD = d
				}
			}
			if best != nil {
				best.centerSum += h.center
				best.spanSum += h.span
				best.hits++
				best.last = scan
			} else {
				open = append(open, &filledBand{
					centerSum: h.center,
					spanSum:   h.span,
					hits:      1,
					first:     scan,
					last:      scan,
				})
			}
		}

		kept := open[:0]
		for _, b := range open {
			if scan-b.last > 2*cfg.ScanStep {
				flush(b)
			} else {
				kept = append(kept, b)
			}
		}
		open = kept
	}

	for _, b := range open {
		flush(b)
	}

	return walls
}

// scanFilledLine walks a single scanline looking for dark/fill/dark
// triplets. A pixel brighter than the white cutoff resets the state; span
// and fill-coverage limits are applied when the closing boundary is reached.
func scanFilledLine(at func(scan, walk int) uint8, scan, walkLimit int, cfg Config) []filledHit {
	var hits []filledHit

	start := -1 // first dark pixel of the opening boundary
	fill := 0
	seenFill := false

	reset := func(to int) {
		start = to
		fill = 0
		seenFill = false
	}

	for i := 0; i < walkLimit; i++ {
		v := at(scan, i)
		switch {
		case v > cfg.FilledWhiteMin:
			reset(-1)
		case v < cfg.FilledDarkMax:
			if start < 0 {
				start = i
			} else if seenFill {
				span := i - start + 1
				if span >= cfg.FilledMinSpan && span < cfg.FilledMaxSpan &&
					float64(fill) >= cfg.FilledMinFillRatio*float64(span) {
					hits = append(hits, filledHit{
						center: float64(start+i) / 2,
						span:   float64(span),
					})
				}
				// The closing boundary can open the next triplet.
				reset(i)
			}
		case v >= cfg.FilledFillMin && v < cfg.FilledFillMax:
			if start >= 0 {
				seenFill = true
				fill++
			}
		default:
			// Mid-tone pixel: counts toward the span but is neither
			// boundary nor fill.
		}
	}

	return hits
}

// scanBoldWalls finds walls drawn as single solid thick strokes, scanning
// both axes.
func scanBoldWalls(g *raster.Gray, cfg Config) []Wall {
	walls := scanBoldAxis(g, cfg, true)
	return append(walls, scanBoldAxis(g, cfg, false)...)
}

// scanBoldAxis runs bold-wall scanlines along one axis. At each position the
// local cross-sectional thickness is the count of dark pixels within a
// ±BoldWindow perpendicular window; positions at or above the minimum
// thickness form runs, and runs longer than the minimum length become walls
// running along the scan direction.
func scanBoldAxis(g *raster.Gray, cfg Config, rowScan bool) []Wall {
	scanLimit, walkLimit := g.Height, g.Width
	if !rowScan {
		scanLimit, walkLimit = g.Width, g.Height
	}

	crossThickness := func(scan, walk int) int {
		count := 0
		for d := -cfg.BoldWindow; d <= cfg.BoldWindow; d++ {
			var v uint8
			if rowScan {
				v = g.At(walk, scan+d)
			} else {
				v = g.At(scan+d, walk)
			}
			if v < cfg.BoldDarkMax {
				count++
			}
		}
		return count
	}

	var walls []Wall

	for scan := 0; scan < scanLimit; scan += cfg.ScanStep {
		runStart := -1
		runEnd := -1
		thicknessSum := 0

		emit := func() {
			if runStart < 0 {
				return
			}
			length := float64(runEnd - runStart)
			if length <= cfg.BoldMinRun {
				return
			}
			thickness := float64(thicknessSum) / float64(runEnd-runStart+1)
			wallType := WallInterior
			if thickness > cfg.BoldExteriorThickness {
				wallType = WallExterior
			}
			start := geometry.Point{X: float64(runStart), Y: float64(scan)}
			end := geometry.Point{X: float64(runEnd), Y: float64(scan)}
			if !rowScan {
				start = geometry.Point{X: float64(scan), Y: float64(runStart)}
				end = geometry.Point{X: float64(scan), Y: float64(runEnd)}
			}
			walls = append(walls, Wall{
				Start:      start,
				End:        end,
				Thickness:  thickness,
				Type:       wallType,
				Confidence: cfg.BoldConfidence,
			})
		}

		for walk := 0; walk < walkLimit; walk++ {
			t := crossThickness(scan, walk)
			if t >= cfg.BoldMinThickness {
				if runStart < 0 {
					runStart = walk
					thicknessSum = 0
				}
				runEnd = walk
				thicknessSum += t
			} else if runStart >= 0 {
				emit()
				runStart = -1
			}
		}
		emit()
	}

	return walls
}
