package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for status bar badges and the help overlay,
// fixed across themes so indicators stay recognizable
var (
	RgbFrozenBg  = tcell.NewRGBColor(135, 206, 250) // Light sky blue for freeze badge
	RgbChimeBg   = tcell.NewRGBColor(144, 238, 144) // Light grass green for chime badge
	RgbMutedBg   = tcell.NewRGBColor(255, 165, 0)   // Orange for mute badge
	RgbBadgeText = tcell.NewRGBColor(0, 0, 0)       // Dark text for badges

	// Help overlay
	RgbOverlayBg     = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbOverlayBorder = tcell.NewRGBColor(122, 162, 247) // Tokyo Night blue
	RgbOverlayText   = tcell.NewRGBColor(192, 202, 245) // Tokyo Night foreground
	RgbOverlayKey    = tcell.NewRGBColor(224, 175, 104) // Tokyo Night yellow for key names
)
