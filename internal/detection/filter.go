package detection

// filterWalls removes wall segments that are actually door openings.
//
// A scanline that bridges a doorway (the edge accumulator tolerates gaps up
// to GapBreak) can synthesize one long wall straight through the opening.
// When a detected door sits strictly inside a wall's span, meaning its
// perpendicular distance to the wall's line is under half the door width and
// its projection falls between, not at, the endpoints, that wall is
// discarded entirely: the two flanking segments found by the independent
// scans already describe the real geometry.
//
// Windows never remove walls; they annotate, they do not split.
func filterWalls(walls []Wall, doors []Door) []Wall {
	kept := make([]Wall, 0, len(walls))
	for _, w := range walls {
		if wallSplitByDoor(w, doors) {
			continue
		}
		kept = append(kept, w)
	}
	return kept
}

// wallSplitByDoor reports whether any door opening lies strictly inside the
// wall's span.
func wallSplitByDoor(w Wall, doors []Door) bool {
	seg := w.Segment()
	for _, d := range doors {
		if seg.PerpendicularDistance(d.Position) >= d.Width/2 {
			continue
		}
		t := seg.Project(d.Position)
		if t > 0 && t < 1 {
			return true
		}
	}
	return false
}
