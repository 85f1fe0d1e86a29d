package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100
)

// Overlay and list limits.
const (
	// LogTailLines is how much of the app log the diagnostics overlay shows.
	LogTailLines = 200

	// MaxSuggestionRows caps the typeahead dropdown height.
	MaxSuggestionRows = 9
)

// Timing constants.
const (
	// DefaultUIInterval is how often the UI re-reads the store.
	DefaultUIInterval = 500 * time.Millisecond

	// StatusMessageTTL is how long transient status messages stay visible.
	StatusMessageTTL = 4 * time.Second
)
