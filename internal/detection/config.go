package detection

// Config holds every tunable threshold of the detection pipeline.
//
// Floor plans come from many drawing conventions (CAD exports, scanned
// blueprints, builder marketing plans) and the darkness cutoffs and distance
// tolerances that work for one convention are wrong for another. Everything
// numeric the pipeline decides with lives here so it can be retuned without
// touching algorithm code.
//
// The zero value is not usable directly; use DefaultConfig, or override
// individual fields on a DefaultConfig value. Analyze back-fills zero fields
// from the defaults so partial overrides are safe.
type Config struct {
	// ScanStep is the spacing in pixels between sampled scanline rows and
	// columns. Smaller values find shorter walls at a linear cost increase.
	ScanStep int

	// MaxPixels is the largest raster (width × height) the pipeline will
	// analyze. Larger inputs fail closed with an empty result.
	MaxPixels int

	// BlurRadius, when positive, applies a Gaussian blur of that radius
	// before edge detection. Useful for scanned or JPEG-artifacted plans;
	// leave zero for clean CAD exports.
	BlurRadius float64

	// Filled-wall scanner: walls drawn as two dark boundary strokes with a
	// gray fill between them.

	// FilledDarkMax is the maximum intensity of a boundary stroke pixel.
	FilledDarkMax uint8
	// FilledFillMin and FilledFillMax bound the gray-fill intensity band.
	// The band is inclusive of FilledFillMin and exclusive of FilledFillMax.
	FilledFillMin uint8
	FilledFillMax uint8
	// FilledWhiteMin is the intensity above which a pixel counts as
	// background and resets the scan state.
	FilledWhiteMin uint8
	// FilledMinSpan and FilledMaxSpan bound the boundary-to-boundary width
	// of a filled wall cross-section. The span is inclusive of the minimum
	// and exclusive of the maximum.
	FilledMinSpan int
	FilledMaxSpan int
	// FilledMinFillRatio is the minimum fraction of the span that must be
	// gray fill.
	FilledMinFillRatio float64
	// FilledExteriorThickness is the thickness above which a filled wall is
	// classified exterior.
	FilledExteriorThickness float64
	// FilledConfidence is assigned to filled-wall detections.
	FilledConfidence float64

	// Bold-wall scanner: walls drawn as one solid thick stroke.

	// BoldDarkMax is the maximum intensity of a pixel counted as wall ink.
	BoldDarkMax uint8
	// BoldWindow is the half-width in pixels of the perpendicular window
	// used to measure local cross-sectional thickness.
	BoldWindow int
	// BoldMinThickness is the cross-sectional thickness that starts or
	// continues a run.
	BoldMinThickness int
	// BoldMinRun is the minimum run length in pixels for a wall.
	BoldMinRun float64
	// BoldExteriorThickness is the thickness above which a bold wall is
	// classified exterior.
	BoldExteriorThickness float64
	// BoldConfidence is assigned to bold-wall detections.
	BoldConfidence float64

	// Edge detection.

	// EdgeThreshold is the Sobel gradient magnitude above which a pixel is
	// an edge. Tuned high to suppress non-wall linework.
	EdgeThreshold float64

	// Line accumulation over the edge map.

	// GapMin and GapMax bound (inclusive) the width of an internal gap
	// recorded as a candidate door/window marker.
	GapMin float64
	GapMax float64
	// GapBreak is the gap width beyond which a segment is closed and a new
	// one started. Gaps between GapMax and GapBreak are tolerated silently.
	GapBreak float64
	// MinLineStrength is the minimum run length for an accumulated line to
	// be kept at all.
	MinLineStrength float64

	// Line grouping.

	// GroupMinLineStrength is the minimum strength for a line to enter
	// grouping; weaker lines are discarded first.
	GroupMinLineStrength float64
	// GroupMaxGaps is the most tracked gaps a line may carry and still be
	// considered wall-like.
	GroupMaxGaps int
	// GroupAngleTolerance is the angular tolerance in radians for two lines
	// to group, applied to both parallel and anti-parallel pairs.
	GroupAngleTolerance float64
	// GroupMinSpacing and GroupMaxSpacing bound (exclusive) the
	// perpendicular distance between grouped lines, i.e. plausible wall
	// thickness as seen by the edge detector.
	GroupMinSpacing float64
	GroupMaxSpacing float64
	// GroupMinStrength is the minimum average strength for a group to
	// survive.
	GroupMinStrength float64

	// Wall synthesis and validation.

	// WallDarkMax is the maximum intensity for a sample along a candidate
	// centerline to count as dark.
	WallDarkMax uint8
	// WallSampleCount is how many points are sampled along a candidate.
	WallSampleCount int
	// WallMinDarkRatio is the minimum fraction of dark samples.
	WallMinDarkRatio float64
	// WallMaxAvgDarkness is the maximum mean intensity of the dark samples.
	WallMaxAvgDarkness float64
	// WallDefaultThickness is assumed when a group contains a single line.
	WallDefaultThickness float64
	// WallMinThickness and WallMaxThickness bound valid wall thickness.
	WallMinThickness float64
	WallMaxThickness float64
	// WallExteriorThickness is the exterior cutoff for synthesized walls.
	WallExteriorThickness float64
	// WallMinLength is the minimum wall segment length; shorter candidates
	// are noise.
	WallMinLength float64
	// WallMaxConfidence caps the strength-derived confidence.
	WallMaxConfidence float64

	// Deduplication of candidates from the three detection methods.

	// DedupAngleTolerance is the angular tolerance in radians for two walls
	// to be considered the same, parallel or anti-parallel.
	DedupAngleTolerance float64
	// DedupDistance is the maximum perpendicular distance from one wall's
	// endpoints to the other's line.
	DedupDistance float64
	// DedupCellSize is the spatial-grid bucket size used to limit overlap
	// checks to nearby walls.
	DedupCellSize float64

	// Door detection.

	// DoorMinWidth and DoorMaxWidth bound (exclusive) a door gap.
	DoorMinWidth float64
	DoorMaxWidth float64
	// DoorAngleTolerance is the angular tolerance for two walls to flank the
	// same opening.
	DoorAngleTolerance float64
	// DoorAlignmentTolerance is the maximum perpendicular offset between the
	// flanking walls' facing endpoints; larger offsets mean the walls are
	// parallel but not collinear.
	DoorAlignmentTolerance float64
	// DoorDedupDistance suppresses a door whose position matches an already
	// accepted one within this distance on both axes.
	DoorDedupDistance float64
	// DoorBaseConfidence is assigned to a gap-only door.
	DoorBaseConfidence float64
	// DoorArcConfidence replaces the base confidence when an arc sweep is
	// found at the opening.
	DoorArcConfidence float64
	// ArcRadiusRatio scales the door width into the swing arc radius.
	ArcRadiusRatio float64
	// ArcDarkMax is the maximum intensity for an arc sample to count as ink.
	ArcDarkMax uint8
	// ArcMinDarkRatio is the fraction of arc samples that must be ink.
	ArcMinDarkRatio float64

	// Window detection.

	// WindowMinWallThickness restricts window search to walls at least this
	// thick; windows sit in exterior walls.
	WindowMinWallThickness float64
	// WindowStep is the spacing of probe points along a wall.
	WindowStep float64
	// WindowProfileRange is the perpendicular probe range in pixels on each
	// side of the wall line.
	WindowProfileRange int
	// WindowNearRange is how far from the wall line a dark pixel still
	// counts as the inner frame line.
	WindowNearRange int
	// WindowDarkMax is the maximum intensity for a profile sample to count
	// as frame ink.
	WindowDarkMax uint8
	// WindowMaxHalfWidth limits the outward walk when measuring width.
	WindowMaxHalfWidth float64
	// WindowMinWidth and WindowMaxWidth bound (exclusive) accepted widths.
	WindowMinWidth float64
	WindowMaxWidth float64
	// WindowHeightRatio derives height from measured width.
	WindowHeightRatio float64
	// WindowDedupDistance suppresses duplicate windows within this distance
	// on both axes.
	WindowDedupDistance float64
	// WindowConfidence is assigned to window detections.
	WindowConfidence float64
}

// DefaultConfig returns the thresholds tuned for computer-drawn plans with
// dark walls on a light background.
func DefaultConfig() Config {
	return Config{
		ScanStep:   10,
		MaxPixels:  64 << 20,
		BlurRadius: 0,

		FilledDarkMax:           80,
		FilledFillMin:           120,
		FilledFillMax:           200,
		FilledWhiteMin:          200,
		FilledMinSpan:           8,
		FilledMaxSpan:           40,
		FilledMinFillRatio:      0.6,
		FilledExteriorThickness: 15,
		FilledConfidence:        0.95,

		BoldDarkMax:           60,
		BoldWindow:            10,
		BoldMinThickness:      6,
		BoldMinRun:            50,
		BoldExteriorThickness: 10,
		BoldConfidence:        0.9,

		EdgeThreshold: 150,

		GapMin:          15,
		GapMax:          80,
		GapBreak:        100,
		MinLineStrength: 60,

		GroupMinLineStrength: 80,
		GroupMaxGaps:         2,
		GroupAngleTolerance:  0.1,
		GroupMinSpacing:      3,
		GroupMaxSpacing:      30,
		GroupMinStrength:     100,

		WallDarkMax:           100,
		WallSampleCount:       20,
		WallMinDarkRatio:      0.7,
		WallMaxAvgDarkness:    80,
		WallDefaultThickness:  6,
		WallMinThickness:      5,
		WallMaxThickness:      50,
		WallExteriorThickness: 12,
		WallMinLength:         50,
		WallMaxConfidence:     0.95,

		DedupAngleTolerance: 0.2,
		DedupDistance:       20,
		DedupCellSize:       64,

		DoorMinWidth:           20,
		DoorMaxWidth:           60,
		DoorAngleTolerance:     0.1,
		DoorAlignmentTolerance: 10,
		DoorDedupDistance:      30,
		DoorBaseConfidence:     0.7,
		DoorArcConfidence:      0.9,
		ArcRadiusRatio:         0.8,
		ArcDarkMax:             100,
		ArcMinDarkRatio:        0.3,

		WindowMinWallThickness: 8,
		WindowStep:             20,
		WindowProfileRange:     15,
		WindowNearRange:        2,
		WindowDarkMax:          100,
		WindowMaxHalfWidth:     50,
		WindowMinWidth:         20,
		WindowMaxWidth:         60,
		WindowHeightRatio:      1.2,
		WindowDedupDistance:    30,
		WindowConfidence:       0.8,
	}
}

// withDefaults returns cfg with zero-valued fields replaced by the
// corresponding DefaultConfig values, so callers can override selectively.
func (cfg Config) withDefaults() Config {
	def := DefaultConfig()
	if cfg.ScanStep == 0 {
		cfg.ScanStep = def.ScanStep
	}
	if cfg.MaxPixels == 0 {
		cfg.MaxPixels = def.MaxPixels
	}
	if cfg.FilledDarkMax == 0 {
		cfg.FilledDarkMax = def.FilledDarkMax
	}
	if cfg.FilledFillMin == 0 {
		cfg.FilledFillMin = def.FilledFillMin
	}
	if cfg.FilledFillMax == 0 {
		cfg.FilledFillMax = def.FilledFillMax
	}
	if cfg.FilledWhiteMin == 0 {
		cfg.FilledWhiteMin = def.FilledWhiteMin
	}
	if cfg.FilledMinSpan == 0 {
		cfg.FilledMinSpan = def.FilledMinSpan
	}
	if cfg.FilledMaxSpan == 0 {
		cfg.FilledMaxSpan = def.FilledMaxSpan
	}
	if cfg.FilledMinFillRatio == 0 {
		cfg.FilledMinFillRatio = def.FilledMinFillRatio
	}
	if cfg.FilledExteriorThickness == 0 {
		cfg.FilledExteriorThickness = def.FilledExteriorThickness
	}
	if cfg.FilledConfidence == 0 {
		cfg.FilledConfidence = def.FilledConfidence
	}
	if cfg.BoldDarkMax == 0 {
		cfg.BoldDarkMax = def.BoldDarkMax
	}
	if cfg.BoldWindow == 0 {
		cfg.BoldWindow = def.BoldWindow
	}
	if cfg.BoldMinThickness == 0 {
		cfg.BoldMinThickness = def.BoldMinThickness
	}
	if cfg.BoldMinRun == 0 {
		cfg.BoldMinRun = def.BoldMinRun
	}
	if cfg.BoldExteriorThickness == 0 {
		cfg.BoldExteriorThickness = def.BoldExteriorThickness
	}
	if cfg.BoldConfidence == 0 {
		cfg.BoldConfidence = def.BoldConfidence
	}
	if cfg.EdgeThreshold == 0 {
		cfg.EdgeThreshold = def.EdgeThreshold
	}
	if cfg.GapMin == 0 {
		cfg.GapMin = def.GapMin
	}
	if cfg.GapMax == 0 {
		cfg.GapMax = def.GapMax
	}
	if cfg.GapBreak == 0 {
		cfg.GapBreak = def.GapBreak
	}
	if cfg.MinLineStrength == 0 {
		cfg.MinLineStrength = def.MinLineStrength
	}
	if cfg.GroupMinLineStrength == 0 {
		cfg.GroupMinLineStrength = def.GroupMinLineStrength
	}
	if cfg.GroupMaxGaps == 0 {
		cfg.GroupMaxGaps = def.GroupMaxGaps
	}
	if cfg.GroupAngleTolerance == 0 {
		cfg.GroupAngleTolerance = def.GroupAngleTolerance
	}
	if cfg.GroupMinSpacing == 0 {
		cfg.GroupMinSpacing = def.GroupMinSpacing
	}
	if cfg.GroupMaxSpacing == 0 {
		cfg.GroupMaxSpacing = def.GroupMaxSpacing
	}
	if cfg.GroupMinStrength == 0 {
		cfg.GroupMinStrength = def.GroupMinStrength
	}
	if cfg.WallDarkMax == 0 {
		cfg.WallDarkMax = def.WallDarkMax
	}
	if cfg.WallSampleCount == 0 {
		cfg.WallSampleCount = def.WallSampleCount
	}
	if cfg.WallMinDarkRatio == 0 {
		cfg.WallMinDarkRatio = def.WallMinDarkRatio
	}
	if cfg.WallMaxAvgDarkness == 0 {
		cfg.WallMaxAvgDarkness = def.WallMaxAvgDarkness
	}
	if cfg.WallDefaultThickness == 0 {
		cfg.WallDefaultThickness = def.WallDefaultThickness
	}
	if cfg.WallMinThickness == 0 {
		cfg.WallMinThickness = def.WallMinThickness
	}
	if cfg.WallMaxThickness == 0 {
		cfg.WallMaxThickness = def.WallMaxThickness
	}
	if cfg.WallExteriorThickness == 0 {
		cfg.WallExteriorThickness = def.WallExteriorThickness
	}
	if cfg.WallMinLength == 0 {
		cfg.WallMinLength = def.WallMinLength
	}
	if cfg.WallMaxConfidence == 0 {
		cfg.WallMaxConfidence = def.WallMaxConfidence
	}
	if cfg.DedupAngleTolerance == 0 {
		cfg.DedupAngleTolerance = def.DedupAngleTolerance
	}
	if cfg.DedupDistance == 0 {
		cfg.DedupDistance = def.DedupDistance
	}
	if cfg.DedupCellSize == 0 {
		cfg.DedupCellSize = def.DedupCellSize
	}
	if cfg.DoorMinWidth == 0 {
		cfg.DoorMinWidth = def.DoorMinWidth
	}
	if cfg.DoorMaxWidth == 0 {
		cfg.DoorMaxWidth = def.DoorMaxWidth
	}
	if cfg.DoorAngleTolerance == 0 {
		cfg.DoorAngleTolerance = def.DoorAngleTolerance
	}
	if cfg.DoorAlignmentTolerance == 0 {
		cfg.DoorAlignmentTolerance = def.DoorAlignmentTolerance
	}
	if cfg.DoorDedupDistance == 0 {
		cfg.DoorDedupDistance = def.DoorDedupDistance
	}
	if cfg.DoorBaseConfidence == 0 {
		cfg.DoorBaseConfidence = def.DoorBaseConfidence
	}
	if cfg.DoorArcConfidence == 0 {
		cfg.DoorArcConfidence = def.DoorArcConfidence
	}
	if cfg.ArcRadiusRatio == 0 {
		cfg.ArcRadiusRatio = def.ArcRadiusRatio
	}
	if cfg.ArcDarkMax == 0 {
		cfg.ArcDarkMax = def.ArcDarkMax
	}
	if cfg.ArcMinDarkRatio == 0 {
		cfg.ArcMinDarkRatio = def.ArcMinDarkRatio
	}
	if cfg.WindowMinWallThickness == 0 {
		cfg.WindowMinWallThickness = def.WindowMinWallThickness
	}
	if cfg.WindowStep == 0 {
		cfg.WindowStep = def.WindowStep
	}
	if cfg.WindowProfileRange == 0 {
		cfg.WindowProfileRange = def.WindowProfileRange
	}
	if cfg.WindowNearRange == 0 {
		cfg.WindowNearRange = def.WindowNearRange
	}
	if cfg.WindowDarkMax == 0 {
		cfg.WindowDarkMax = def.WindowDarkMax
	}
	if cfg.WindowMaxHalfWidth == 0 {
		cfg.WindowMaxHalfWidth = def.WindowMaxHalfWidth
	}
	if cfg.WindowMinWidth == 0 {
		cfg.WindowMinWidth = def.WindowMinWidth
	}
	if cfg.WindowMaxWidth == 0 {
		cfg.WindowMaxWidth = def.WindowMaxWidth
	}
	if cfg.WindowHeightRatio == 0 {
		cfg.WindowHeightRatio = def.WindowHeightRatio
	}
	if cfg.WindowDedupDistance == 0 {
		cfg.WindowDedupDistance = def.WindowDedupDistance
	}
	if cfg.WindowConfidence == 0 {
		cfg.WindowConfidence = def.WindowConfidence
	}
	return cfg
}
