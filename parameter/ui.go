package parameter

// Status Bar
const (
	// Badge text (padded)
	FrozenBadge = " FROZEN "

	// UI Symbols
	ChimeStr = "♫ "

	// HelpHint names the help overlay key
	HelpHint = " ?:help "

	// Layouts for the digital readout
	TimeLayout24 = "15:04:05"
	TimeLayout12 = "3:04:05 PM"
	DateLayout   = "Mon Jan 2"
)

// Help Overlay
const (
	// OverlayPaddingX is the horizontal padding inside the overlay
	OverlayPaddingX = 2

	// OverlayTitle is shown centered in the overlay top border
	OverlayTitle = " clockface "
)
