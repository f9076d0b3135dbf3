package engine

import (
	"time"

	"github.com/lixenwraith/clockface/parameter"
	"github.com/lixenwraith/clockface/theme"
)

// Options is the runtime view state of the clock, set from CLI flags
// and mutated by key bindings while running
type Options struct {
	TickInterval time.Duration
	Theme        theme.Theme

	// Hand lengths as fractions of the dial radius
	HourLength   float64
	MinuteLength float64
	SecondLength float64

	// Aspect is the cell width:height ratio used for roundness
	// correction, Scale the dial size relative to the window
	Aspect float64
	Scale  float64

	ShowSecondHand   bool
	ShowHourLabels   bool
	ShowMinuteLabels bool
	ShowStatusBar    bool
	TwelveHour       bool
}

// normalized clamps the options into working ranges. CLI validation
// rejects bad values up front, this guards direct construction
func (o Options) normalized() Options {
	if o.TickInterval < parameter.MinTickInterval {
		o.TickInterval = parameter.MinTickInterval
	}
	if o.TickInterval > parameter.MaxTickInterval {
		o.TickInterval = parameter.MaxTickInterval
	}

	o.HourLength = clampLength(o.HourLength, parameter.HourHandLength)
	o.MinuteLength = clampLength(o.MinuteLength, parameter.MinuteHandLength)
	o.SecondLength = clampLength(o.SecondLength, parameter.SecondHandLength)

	if o.Aspect <= 0 {
		o.Aspect = parameter.CellAspect
	}
	if o.Scale < parameter.MinDialScale {
		o.Scale = parameter.MinDialScale
	}
	if o.Scale > parameter.MaxDialScale {
		o.Scale = parameter.MaxDialScale
	}

	if o.Theme.Name == "" {
		o.Theme = theme.Default()
	}
	return o
}

func clampLength(v, fallback float64) float64 {
	if v <= 0 {
		return fallback
	}
	if v > 1 {
		return 1
	}
	return v
}
