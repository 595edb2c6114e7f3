package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "book-tracker.png"
)

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// AppIconResource returns the app icon, falling back to a theme icon when the
// png is not next to the binary
func AppIconResource() fyne.Resource {
	if res, err := LoadLogoResource(); err == nil {
		return res
	}
	return theme.DocumentIcon()
}
