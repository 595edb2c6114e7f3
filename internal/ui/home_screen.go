package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/book-tracker/internal/navigation"
)

// HomeScreen is the start destination with one button per reading list
type HomeScreen struct {
	localization *Localization

	titleLabel   *widget.Label
	taglineLabel *widget.Label
	buttons      map[navigation.Destination]*widget.Button
	content      *fyne.Container
}

// NewHomeScreen creates the home screen. onSelect is called with the list
// destination of a tapped button.
func NewHomeScreen(localization *Localization, mobileUI *MobileUI, onSelect func(navigation.Destination)) *HomeScreen {
	hs := &HomeScreen{
		localization: localization,
		buttons:      make(map[navigation.Destination]*widget.Button),
	}

	hs.titleLabel = widget.NewLabel("")
	hs.titleLabel.Alignment = fyne.TextAlignCenter
	hs.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	hs.titleLabel.SizeName = theme.SizeNameHeadingText

	hs.taglineLabel = widget.NewLabel("")
	hs.taglineLabel.Alignment = fyne.TextAlignCenter
	hs.taglineLabel.Importance = widget.LowImportance

	menu := container.NewVBox()
	for _, dest := range navigation.Lists() {
		btn := mobileUI.CreateMobileButton("", func() {
			if onSelect != nil {
				onSelect(dest)
			}
		})
		btn.Alignment = widget.ButtonAlignLeading
		hs.buttons[dest] = btn
		menu.Add(btn)
	}

	hs.content = container.NewBorder(
		container.NewVBox(hs.titleLabel, hs.taglineLabel, widget.NewSeparator()),
		nil, nil, nil,
		container.NewVScroll(menu),
	)

	hs.refreshTexts()
	return hs
}

// Content returns the screen's root object
func (hs *HomeScreen) Content() fyne.CanvasObject {
	return hs.content
}

// Button returns the menu button of a list destination
func (hs *HomeScreen) Button(dest navigation.Destination) *widget.Button {
	return hs.buttons[dest]
}

// refreshTexts updates all texts with the current language
func (hs *HomeScreen) refreshTexts() {
	loc := hs.localization
	hs.titleLabel.SetText(IconBook + " " + loc.GetText(KeyAppTitle))
	hs.taglineLabel.SetText(loc.GetText(KeyTagline))
	for dest, btn := range hs.buttons {
		if kind, ok := dest.Kind(); ok {
			btn.SetText(loc.GetText(KeyListTitle(kind)))
		}
	}
}
