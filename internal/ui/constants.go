package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Layout sizing
const (
	DownloadDialogWidth  float32 = 360
	DownloadDialogHeight float32 = 200
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 320
)

// Delays
const (
	// ProgressRefreshInterval caps how often the progress bar is redrawn
	ProgressRefreshInterval = 100 * time.Millisecond
)
