package render

import (
	"time"

	"github.com/lixenwraith/clockface/clock"
	"github.com/lixenwraith/clockface/parameter"
	"github.com/lixenwraith/clockface/theme"
	"github.com/lixenwraith/clockface/vmath"
)

// Context provides frame state for renderers, passed by value. Equal
// contexts render equal frames
type Context struct {
	// Time state
	Time clock.Snapshot

	// Screen dimensions (terminal size)
	Width  int
	Height int

	// Dial geometry fitted to this frame
	Dial vmath.Dial

	Theme theme.Theme

	// Hand lengths as fractions of the dial radius
	HourLength   float64
	MinuteLength float64
	SecondLength float64

	// View toggles
	ShowSecondHand   bool
	ShowHourLabels   bool
	ShowMinuteLabels bool
	ShowStatusBar    bool
	ShowHelp         bool

	// Status indicators
	Frozen       bool
	ChimeReady   bool
	ChimeMuted   bool
	TwelveHour   bool
	TickInterval time.Duration
}

// Degenerate reports a window too small to hold the dial scene. The
// frame is still fully assigned, background only
func (c Context) Degenerate() bool {
	return c.Width < parameter.MinRenderWidth || c.Height < parameter.MinRenderHeight
}
