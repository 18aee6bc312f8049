package detection

import (
	"math"
	"testing"

	"github.com/homequest/planscan/internal/raster"
)

// edgeMap builds an empty edge map.
func edgeMap(width, height int) *raster.EdgeMap {
	return &raster.EdgeMap{Width: width, Height: height, Bits: make([]bool, width*height)}
}

// markRow sets edge pixels along a row for x in [x1, x2].
func markRow(e *raster.EdgeMap, y, x1, x2 int) {
	for x := x1; x <= x2; x++ {
		e.Bits[y*e.Width+x] = true
	}
}

// markCol sets edge pixels along a column for y in [y1, y2].
func markCol(e *raster.EdgeMap, x, y1, y2 int) {
	for y := y1; y <= y2; y++ {
		e.Bits[y*e.Width+x] = true
	}
}

func TestAccumulateLines_ContinuousRun(t *testing.T) {
	e := edgeMap(300, 100)
	markRow(e, 50, 20, 220)

	lines := accumulateLines(e, DefaultConfig())
	if len(lines) != 1 {
		t.Fatalf("accumulated %d lines, want 1", len(lines))
	}

	l := lines[0]
	if l.start.X != 20 || l.end.X != 220 || l.start.Y != 50 {
		t.Errorf("line = %+v -> %+v, want (20,50) -> (220,50)", l.start, l.end)
	}
	if l.strength != 200 {
		t.Errorf("strength = %v, want 200", l.strength)
	}
	if l.angle != 0 {
		t.Errorf("angle = %v, want 0", l.angle)
	}
	if len(l.gaps) != 0 {
		t.Errorf("gaps = %v, want none", l.gaps)
	}
}

func TestAccumulateLines_TrackedGap(t *testing.T) {
	// A 29px break inside the run: door/window marker territory.
	e := edgeMap(400, 100)
	markRow(e, 50, 20, 150)
	markRow(e, 50, 180, 320)

	lines := accumulateLines(e, DefaultConfig())
	if len(lines) != 1 {
		t.Fatalf("accumulated %d lines, want 1 spanning the gap", len(lines))
	}

	l := lines[0]
	if l.start.X != 20 || l.end.X != 320 {
		t.Errorf("span = %v..%v, want 20..320", l.start.X, l.end.X)
	}
	if len(l.gaps) != 1 {
		t.Fatalf("gaps = %d, want 1", len(l.gaps))
	}
	gap := l.gaps[0]
	if gap.Start != 151 || gap.End != 179 {
		t.Errorf("gap = [%v, %v], want [151, 179]", gap.Start, gap.End)
	}
	if gap.Width() != 28 {
		t.Errorf("gap width = %v, want 28", gap.Width())
	}
}

func TestAccumulateLines_WideBreakSplits(t *testing.T) {
	// A 109px break exceeds the tolerated maximum and closes the segment.
	e := edgeMap(500, 100)
	markRow(e, 50, 20, 100)
	markRow(e, 50, 210, 300)

	lines := accumulateLines(e, DefaultConfig())
	if len(lines) != 2 {
		t.Fatalf("accumulated %d lines, want 2 after the wide break", len(lines))
	}
	for _, l := range lines {
		if len(l.gaps) != 0 {
			t.Errorf("split segment should carry no gap metadata, got %v", l.gaps)
		}
	}
}

func TestAccumulateLines_SilentMidGap(t *testing.T) {
	// Gaps between the tracked maximum and the break point keep the line
	// open without being recorded.
	e := edgeMap(500, 100)
	markRow(e, 50, 20, 150)
	markRow(e, 50, 241, 380) // 90px break

	lines := accumulateLines(e, DefaultConfig())
	if len(lines) != 1 {
		t.Fatalf("accumulated %d lines, want 1", len(lines))
	}
	if len(lines[0].gaps) != 0 {
		t.Errorf("90px gap should not be recorded, got %v", lines[0].gaps)
	}
}

func TestAccumulateLines_WeakRunDropped(t *testing.T) {
	e := edgeMap(200, 100)
	markRow(e, 50, 20, 70) // 50px < minimum strength

	if lines := accumulateLines(e, DefaultConfig()); len(lines) != 0 {
		t.Errorf("kept %d weak lines, want 0", len(lines))
	}
}

func TestAccumulateLines_VerticalRun(t *testing.T) {
	e := edgeMap(100, 300)
	markCol(e, 50, 30, 230)

	lines := accumulateLines(e, DefaultConfig())
	if len(lines) != 1 {
		t.Fatalf("accumulated %d lines, want 1", len(lines))
	}
	if math.Abs(lines[0].angle-math.Pi/2) > 1e-9 {
		t.Errorf("angle = %v, want π/2", lines[0].angle)
	}
	if lines[0].strength != 200 {
		t.Errorf("strength = %v, want 200", lines[0].strength)
	}
}

func TestAccumulateLines_UnsampledRowIgnored(t *testing.T) {
	// Edge evidence on a row the scan step skips contributes nothing.
	e := edgeMap(300, 100)
	markRow(e, 55, 20, 220)

	if lines := accumulateLines(e, DefaultConfig()); len(lines) != 0 {
		t.Errorf("accumulated %d lines from an unsampled row", len(lines))
	}
}
