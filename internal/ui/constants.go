package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window
const (
	WindowWidth  float32 = 700
	WindowHeight float32 = 500
)

// Image display box, matches imaging.DisplayWidth x imaging.DisplayHeight
const (
	ImageBoxWidth  float32 = 600
	ImageBoxHeight float32 = 400
)

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconCamera   = "📷"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 340
)
