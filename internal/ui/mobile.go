package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CreateMobileButton creates a button optimized for mobile touch
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)

	// For mobile devices, set minimum size for touch targets
	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(MinTouchTargetSize, MobileButtonHeight))
	}

	return btn
}

// DialogSize returns the size for a dialog that prefers size on desktop.
// On mobile the dialog takes most of the canvas instead.
func (m *MobileUI) DialogSize(canvas fyne.Canvas, preferred fyne.Size) fyne.Size {
	if !m.IsMobileDevice() || canvas == nil {
		return preferred
	}
	full := canvas.Size()
	return fyne.NewSize(full.Width*MobileDialogFraction, full.Height*MobileDialogFraction)
}
