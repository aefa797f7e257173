package tui

// Color constants for the devlog TUI theme
const (
	// Text Colors
	ColorPrimaryText   = "#E8EDE9" // Primary text (description, clock)
	ColorSecondaryText = "#A7B5AC" // Secondary text - muted green-grey
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Green theme)
	ColorAccentMain   = "#10B981" // Accent elements, active borders
	ColorAccentBright = "#6EE7B7" // Highlights, running timer

	// State Colors
	ColorError   = "#EF4444" // Errors
	ColorSuccess = "#22C55E" // Success, confirmations
)
