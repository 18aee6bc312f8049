// Package detection converts a raster floor-plan image into structured
// architectural geometry: wall segments, door openings, and window openings,
// in pixel coordinates with confidence scores.
//
// The pipeline is classical and deterministic: multi-pass scanline
// analysis, Sobel edge detection, scanline-based line accumulation,
// parallel-line grouping, and geometric consistency checks. No trained
// models, no OCR, no randomness; the same raster always produces the same
// result.
//
// # Detection Methods
//
// Walls are proposed by three independent detectors whose redundancy covers
// different drawing conventions:
//
//   - Filled-wall scanning: dark-boundary/gray-fill/dark-boundary triplets,
//     the way CAD exports render wall bands
//   - Bold-wall scanning: contiguous thick dark strokes, the way marketing
//     plans render walls
//   - Line grouping: near-parallel edge lines at wall-thickness spacing,
//     synthesized into walls and validated against the raster
//
// Candidates from the three paths are reconciled by a spatial-grid
// deduplicator. Doors are then found as gaps between aligned wall endpoints
// (confirmed by swing-arc sampling), walls bridged by a door opening are
// removed, and windows are found as double-line framing patterns along
// thick walls.
//
// # Coordinate System
//
// All coordinates use the standard image convention: origin (0, 0) at the
// top-left corner, X increasing rightward, Y increasing downward. Angles are
// radians from math.Atan2.
//
// # Confidence Scores
//
// Confidence values in (0, 1] are heuristic reliability estimates, not
// calibrated probabilities. Filled-wall detections carry 0.95, bold-wall
// 0.9; synthesized walls scale with accumulated line strength; doors carry
// 0.7, raised to 0.9 when a swing arc is visible.
//
// # Error Handling
//
// Analyze never returns an error. Unreadable input, oversized rasters, and
// drawings with no recognizable structure all degrade to an empty result;
// out-of-bounds samples are skipped, and degenerate geometry is filtered by
// the validity checks. An empty result means "no geometry found".
//
// # Limitations
//
// The thresholds are tuned for computer-drawn plans with dark walls on a
// light background. Hand-drawn or low-contrast drawings may produce partial
// or empty results; Config exposes every threshold for retuning per drawing
// convention.
package detection
