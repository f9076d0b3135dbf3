package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityDial
	PriorityLabels
	PriorityHands
	PriorityPivot
	PriorityUI
	PriorityOverlay
)
