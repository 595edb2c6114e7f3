package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconStarLit   = "★"
	IconStarUnlit = "☆"
	IconBook      = "📚"
	IconLanguage  = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	ProgressLabelFormat = "%d%%"
)

// Layout sizing (EntryRow / lists)
const (
	RowMinWidth  float32 = 280
	RowMinHeight float32 = 64

	StarSize    float32 = 18
	StarSpacing float32 = 2

	EmptyStateIconSize float32 = 48

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)

// Dialog sizing
const (
	EntryDialogWidth     float32 = 380
	EntryDialogHeight    float32 = 520
	SettingsDialogWidth  float32 = 360
	SettingsDialogHeight float32 = 320

	// Fraction of the window a dialog may take on mobile
	MobileDialogFraction float32 = 0.95
)

// Toast notification behavior
const (
	ToastAutoHide = 2 * time.Second
)
