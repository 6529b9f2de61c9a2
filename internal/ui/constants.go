// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidth is the outer width of the expanded sidebar panel
	SidebarWidth = 32

	// RailWidth is the outer width of the collapsed icon rail
	RailWidth = 5

	// MinTerminalWidth and MinTerminalHeight clamp layout math on tiny terminals
	MinTerminalWidth  = 60
	MinTerminalHeight = 16

	// ProgressBarMinWidth is the narrowest progress bar worth drawing
	ProgressBarMinWidth = 8

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50
)

// Flash timing
const (
	// DefaultFlashDuration is how long a flash message stays in the footer
	DefaultFlashDuration = 3 * time.Second

	// FlashTickInterval is how often expiry is checked
	FlashTickInterval = 500 * time.Millisecond
)
