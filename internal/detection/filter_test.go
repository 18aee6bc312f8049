package detection

import (
	"testing"

	"github.com/homequest/planscan/internal/geometry"
)

func TestFilterWalls_DoorInsideSpan(t *testing.T) {
	// One long wall bridging the opening plus the two real flanks; only the
	// bridge crosses the door and only it goes.
	bridge := horizontalWall(100, 330, 300, 6)
	left := horizontalWall(100, 200, 300, 10)
	right := horizontalWall(230, 330, 300, 10)
	door := Door{
		Position:    geometry.Point{X: 215, Y: 300},
		Width:       30,
		Orientation: OrientationHorizontal,
		Confidence:  0.7,
	}

	kept := filterWalls([]Wall{bridge, left, right}, []Door{door})
	if len(kept) != 2 {
		t.Fatalf("kept %d walls, want the 2 flanks", len(kept))
	}
	for _, w := range kept {
		if w.Length() > 110 {
			t.Errorf("the bridging wall survived: %+v", w)
		}
	}
}

func TestFilterWalls_DoorBeyondEndpoint(t *testing.T) {
	wall := horizontalWall(100, 200, 300, 10)
	door := Door{
		Position: geometry.Point{X: 215, Y: 300}, // collinear but past the end
		Width:    30,
	}

	if kept := filterWalls([]Wall{wall}, []Door{door}); len(kept) != 1 {
		t.Errorf("kept %d walls, want 1: the door sits beyond the endpoint", len(kept))
	}
}

func TestFilterWalls_DoorAtEndpoint(t *testing.T) {
	// Projection exactly at an endpoint is not strictly inside the span.
	wall := horizontalWall(100, 200, 300, 10)
	door := Door{
		Position: geometry.Point{X: 200, Y: 300},
		Width:    30,
	}

	if kept := filterWalls([]Wall{wall}, []Door{door}); len(kept) != 1 {
		t.Errorf("kept %d walls, want 1 for an endpoint door", len(kept))
	}
}

func TestFilterWalls_DoorOffAxis(t *testing.T) {
	wall := horizontalWall(100, 200, 300, 10)
	door := Door{
		Position: geometry.Point{X: 150, Y: 330}, // a parallel wall's opening
		Width:    30,
	}

	if kept := filterWalls([]Wall{wall}, []Door{door}); len(kept) != 1 {
		t.Errorf("kept %d walls, want 1: the door belongs to another wall", len(kept))
	}
}

func TestFilterWalls_NoDoors(t *testing.T) {
	walls := []Wall{
		horizontalWall(100, 200, 300, 10),
		horizontalWall(230, 330, 300, 10),
	}

	if kept := filterWalls(walls, nil); len(kept) != 2 {
		t.Errorf("kept %d walls, want all without doors", len(kept))
	}
}
