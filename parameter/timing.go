package parameter

import "time"

const (
	// DefaultTickInterval matches the slowest moving part of the scene,
	// the second hand
	DefaultTickInterval = time.Second

	// MinTickInterval bounds how fast the loop may redraw
	MinTickInterval = 100 * time.Millisecond

	// MaxTickInterval bounds how slow the loop may redraw
	MaxTickInterval = time.Second

	// EventChanSize buffers terminal events ahead of the tick loop
	EventChanSize = 64
)
