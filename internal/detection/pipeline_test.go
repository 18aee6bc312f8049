package detection

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"reflect"
	"testing"

	"github.com/homequest/planscan/internal/geometry"
	"github.com/homequest/planscan/internal/raster"
)

// planImage builds a white NRGBA canvas for end-to-end Analyze tests.
func planImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func blackRect(img *image.NRGBA, x1, y1, x2, y2 int) {
	draw.Draw(img, image.Rect(x1, y1, x2+1, y2+1),
		image.NewUniform(color.Black), image.Point{}, draw.Src)
}

func TestAnalyze_BlankImage(t *testing.T) {
	result := Analyze(planImage(400, 300), DefaultConfig())

	if result.Walls == nil || result.Doors == nil || result.Windows == nil {
		t.Fatal("result slices must be non-nil even when empty")
	}
	if len(result.Walls)+len(result.Doors)+len(result.Windows) != 0 {
		t.Errorf("blank image produced %d walls, %d doors, %d windows",
			len(result.Walls), len(result.Doors), len(result.Windows))
	}
}

func TestAnalyze_NilImage(t *testing.T) {
	result := Analyze(nil, DefaultConfig())
	if len(result.Walls) != 0 || result.Walls == nil {
		t.Error("nil image must produce an empty, non-nil result")
	}
}

func TestAnalyze_SingleWall(t *testing.T) {
	img := planImage(800, 600)
	blackRect(img, 300, 296, 499, 305) // one 10px interior wall

	result := Analyze(img, DefaultConfig())
	if len(result.Walls) != 1 {
		t.Fatalf("detected %d walls, want 1", len(result.Walls))
	}

	w := result.Walls[0]
	if w.ID != "wall-1" {
		t.Errorf("ID = %q, want wall-1", w.ID)
	}
	if math.Abs(w.Thickness-10) > 2 {
		t.Errorf("thickness = %.1f, want ≈10", w.Thickness)
	}
	if w.Type != WallInterior {
		t.Errorf("type = %s, want interior", w.Type)
	}
	if w.Confidence < 0.7 {
		t.Errorf("confidence = %v, want ≥ 0.7", w.Confidence)
	}
	if len(result.Doors) != 0 || len(result.Windows) != 0 {
		t.Errorf("spurious detections: %d doors, %d windows",
			len(result.Doors), len(result.Windows))
	}
}

func TestAnalyze_ThickWallIsExterior(t *testing.T) {
	img := planImage(800, 600)
	blackRect(img, 300, 292, 499, 309) // 18px

	result := Analyze(img, DefaultConfig())
	if len(result.Walls) != 1 {
		t.Fatalf("detected %d walls, want 1", len(result.Walls))
	}
	if result.Walls[0].Type != WallExterior {
		t.Errorf("type = %s (thickness %.1f), want exterior",
			result.Walls[0].Type, result.Walls[0].Thickness)
	}
}

func doorScenario() *raster.Gray {
	g := raster.NewGray(700, 600)
	fillRect(g, 100, 296, 299, 305, 0)
	fillRect(g, 330, 296, 529, 305, 0)
	return g
}

func TestAnalyzeGray_DoorBetweenWalls(t *testing.T) {
	result := AnalyzeGray(doorScenario(), DefaultConfig())

	if len(result.Walls) != 2 {
		t.Fatalf("detected %d walls, want the 2 flanks", len(result.Walls))
	}
	if len(result.Doors) != 1 {
		t.Fatalf("detected %d doors, want 1", len(result.Doors))
	}

	d := result.Doors[0]
	if d.ID != "door-1" {
		t.Errorf("ID = %q, want door-1", d.ID)
	}
	if d.Width < 29 || d.Width > 33 {
		t.Errorf("door width = %.1f, want ≈31", d.Width)
	}
	if math.Abs(d.Position.Y-300) > 3 {
		t.Errorf("door y = %.1f, want ≈300", d.Position.Y)
	}
	if d.Orientation != OrientationHorizontal {
		t.Errorf("orientation = %s, want horizontal", d.Orientation)
	}
	if d.Confidence != 0.7 {
		t.Errorf("confidence = %v, want 0.7 without a swing arc", d.Confidence)
	}
}

func TestAnalyzeGray_DoorWithSwingArc(t *testing.T) {
	g := doorScenario()
	drawQuarterArc(g, geometry.Point{X: 314, Y: 300}, 25, math.Pi/2)

	result := AnalyzeGray(g, DefaultConfig())
	if len(result.Doors) != 1 {
		t.Fatalf("detected %d doors, want 1", len(result.Doors))
	}
	if result.Doors[0].Confidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9 with the swing arc", result.Doors[0].Confidence)
	}
}

func TestAnalyzeGray_Deterministic(t *testing.T) {
	g := doorScenario()

	first := AnalyzeGray(g, DefaultConfig())
	second := AnalyzeGray(g, DefaultConfig())
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated analysis of the same raster produced different results")
	}
}

func TestAnalyzeGray_OversizedRaster(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPixels = 1000

	g := raster.NewGray(100, 100)
	drawBoldWall(g, 10, 90, 45, 10)

	result := AnalyzeGray(g, cfg)
	if len(result.Walls) != 0 {
		t.Errorf("oversized raster produced %d walls, want fail-closed empty", len(result.Walls))
	}
	if result.Walls == nil {
		t.Error("fail-closed result must still carry non-nil slices")
	}
}

func TestAnalyzeGray_SequentialIDs(t *testing.T) {
	result := AnalyzeGray(doorScenario(), DefaultConfig())

	for i, w := range result.Walls {
		if want := fmt.Sprintf("wall-%d", i+1); w.ID != want {
			t.Errorf("wall %d ID = %q, want %q", i, w.ID, want)
		}
	}
}
