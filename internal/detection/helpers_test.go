package detection

import (
	"math"

	"github.com/homequest/planscan/internal/geometry"
	"github.com/homequest/planscan/internal/raster"
)

// Test rasters are built directly as grayscale buffers: every detector reads
// intensities, so synthesizing at that level keeps the fixtures exact.

// fillRect paints the inclusive rectangle with one intensity.
func fillRect(g *raster.Gray, x1, y1, x2, y2 int, v uint8) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			g.Set(x, y, v)
		}
	}
}

// drawBoldWall paints a solid near-black horizontal wall band.
func drawBoldWall(g *raster.Gray, x1, x2, yTop, thickness int) {
	fillRect(g, x1, yTop, x2, yTop+thickness-1, 0)
}

// drawFilledWall paints a horizontal filled wall: two dark boundary strokes
// with a gray fill between them. yTop is the first boundary row; gap is the
// fill height.
func drawFilledWall(g *raster.Gray, x1, x2, yTop, gap int) {
	fillRect(g, x1, yTop, x2, yTop+1, 0)            // top boundary, 2px
	fillRect(g, x1, yTop+2, x2, yTop+1+gap, 150)    // gray fill
	fillRect(g, x1, yTop+2+gap, x2, yTop+3+gap, 0)  // bottom boundary, 2px
}

// drawQuarterArc paints a door swing arc: a quarter circle starting at
// angle base, drawn thick enough that integer sampling cannot miss it.
func drawQuarterArc(g *raster.Gray, center geometry.Point, radius, base float64) {
	steps := int(radius*math.Pi/2) * 4
	for i := 0; i <= steps; i++ {
		theta := base + float64(i)/float64(steps)*math.Pi/2
		x := int(center.X + radius*math.Cos(theta))
		y := int(center.Y + radius*math.Sin(theta))
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				g.Set(x+dx, y+dy, 0)
			}
		}
	}
}

// horizontalWall builds a wall record without running any detector.
func horizontalWall(x1, x2, y, thickness float64) Wall {
	return Wall{
		Start:      geometry.Point{X: x1, Y: y},
		End:        geometry.Point{X: x2, Y: y},
		Thickness:  thickness,
		Type:       WallInterior,
		Confidence: 0.9,
	}
}
