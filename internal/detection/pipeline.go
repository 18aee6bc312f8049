package detection

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"

	"github.com/homequest/planscan/internal/raster"
)

// Analyze runs the full detection pipeline over a decoded floor-plan raster
// and returns the structured geometry it finds.
//
// The pipeline is pure computation: it performs no I/O, retains no state
// between calls, and owns its intermediate buffers exclusively, so Analyze
// is safe to call concurrently from independent goroutines.
//
// Stages, in dependency order:
//
//  1. Grayscale conversion (optionally preceded by a Gaussian blur)
//  2. Filled-wall and bold-wall scanline scans
//  3. Sobel edge map → gap-tolerant line accumulation → parallel-line
//     grouping → wall synthesis and validation
//  4. Candidate merging with duplicate suppression
//  5. Door detection from wall-endpoint gaps, with arc-sweep confirmation
//  6. Removal of walls split by detected doors
//  7. Window detection along thick walls
//
// Analyze never fails: a nil image, a raster larger than MaxPixels, or a
// drawing in which nothing is recognizable all degrade to an empty result.
// Callers should treat an empty result as "no geometry found", not as an
// error.
func Analyze(img image.Image, cfg Config) *Result {
	cfg = cfg.withDefaults()

	if img == nil {
		return emptyResult()
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 || width*height > cfg.MaxPixels {
		return emptyResult()
	}

	if cfg.BlurRadius > 0 {
		img = blur.Gaussian(img, cfg.BlurRadius)
	}

	return AnalyzeGray(raster.FromImage(img), cfg)
}

// AnalyzeGray runs the pipeline from an existing grayscale buffer, skipping
// decoding and conversion. Used by tests and by callers that already hold an
// intensity raster.
func AnalyzeGray(gray *raster.Gray, cfg Config) *Result {
	cfg = cfg.withDefaults()

	if gray == nil || gray.Width <= 0 || gray.Height <= 0 ||
		gray.Width*gray.Height > cfg.MaxPixels {
		return emptyResult()
	}

	candidates := scanFilledWalls(gray, cfg)
	candidates = append(candidates, scanBoldWalls(gray, cfg)...)

	edges := raster.Sobel(gray, cfg.EdgeThreshold)
	lines := accumulateLines(edges, cfg)
	candidates = append(candidates, synthesizeWalls(lines, gray, cfg)...)

	walls := mergeWalls(candidates, cfg)

	doors := detectDoors(walls, gray, cfg)
	walls = filterWalls(walls, doors)
	windows := detectWindows(walls, gray, cfg)

	result := &Result{Walls: walls, Doors: doors, Windows: windows}
	assignIDs(result)
	return result
}

// assignIDs gives every detected entity a deterministic sequential
// identifier in result order.
func assignIDs(r *Result) {
	if r.Walls == nil {
		r.Walls = []Wall{}
	}
	if r.Doors == nil {
		r.Doors = []Door{}
	}
	if r.Windows == nil {
		r.Windows = []Window{}
	}
	for i := range r.Walls {
		r.Walls[i].ID = fmt.Sprintf("wall-%d", i+1)
	}
	for i := range r.Doors {
		r.Doors[i].ID = fmt.Sprintf("door-%d", i+1)
	}
	for i := range r.Windows {
		r.Windows[i].ID = fmt.Sprintf("window-%d", i+1)
	}
}
