package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/book-tracker/internal/catalog"
)

// NumericEntry is a single-line entry that only accepts the digits 0-9.
// Other keystrokes and pasted characters are dropped.
type NumericEntry struct {
	widget.Entry
}

// NewNumericEntry creates a digits-only entry
func NewNumericEntry() *NumericEntry {
	e := &NumericEntry{}
	e.ExtendBaseWidget(e)
	return e
}

// TypedRune forwards digits to the entry
func (e *NumericEntry) TypedRune(r rune) {
	if r >= '0' && r <= '9' {
		e.Entry.TypedRune(r)
	}
}

// TypedShortcut filters pasted text down to its digits
func (e *NumericEntry) TypedShortcut(shortcut fyne.Shortcut) {
	paste, ok := shortcut.(*fyne.ShortcutPaste)
	if !ok {
		e.Entry.TypedShortcut(shortcut)
		return
	}
	if paste.Clipboard == nil {
		return
	}
	for _, r := range catalog.FilterDigits(paste.Clipboard.Content()) {
		e.Entry.TypedRune(r)
	}
}

// Keyboard asks mobile platforms for the number pad
func (e *NumericEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
