package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutUpdatedWidth is the minimum width to show the last reload time.
	LayoutUpdatedWidth = 120
)

// Fixed chrome heights around the main content.
const (
	headerLines  = 2 // status line plus command bar
	tabLines     = 1
	flashLines   = 1
	minBodyLines = 3
)
