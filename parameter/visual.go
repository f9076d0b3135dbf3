package parameter

// ===== Dial geometry =====

const (
	// CellAspect is the assumed visual width:height ratio of one terminal
	// cell. Cells on typical terminal fonts are about twice as tall as
	// wide, so a visually round dial needs rx = 2*ry in cell coordinates.
	// 1.0 disables the correction
	CellAspect = 0.5

	// Calibration range accepted from the CLI
	MinCellAspect = 0.1
	MaxCellAspect = 2.0

	// DialMargin keeps the outline off the window edge, in cells
	DialMargin = 1

	// Windows smaller than this render background only
	MinRenderWidth  = 4
	MinRenderHeight = 4
)

// ===== Hands and labels =====

// Lengths are fractions of the dial radius
const (
	HourHandLength   = 0.5
	MinuteHandLength = 0.9
	SecondHandLength = 0.9

	HourTickLength   = 0.15
	MinuteTickLength = 0.05
)

// ===== Runtime dial scale =====

const (
	MinDialScale  = 0.3
	MaxDialScale  = 1.0
	DialScaleStep = 0.1
)

// ===== Glyphs =====

const (
	DialRune  = '█'
	TickRune  = '█'
	HandRune  = '█'
	PivotRune = '●'
)
