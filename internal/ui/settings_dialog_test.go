package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/book-tracker/internal/config"
)

func TestSettingsDialog_Save(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	w := test.NewWindow(widget.NewLabel(""))
	w.Resize(fyne.NewSize(420, 760))
	defer w.Close()

	settings := config.NewSettings(a)
	saved := 0
	sd := NewSettingsDialog(w, settings, NewLocalization(), NewMobileUI(a), zaptest.NewLogger(t), func() { saved++ })
	sd.Show()

	// Defaults are loaded into the controls
	assert.Equal(t, "System Default", sd.languageSelect.Selected)
	assert.Equal(t, "Mar 07, 2025", sd.dateLayoutSelect.Selected)
	assert.Equal(t, "Whole stars", sd.ratingStepRadio.Selected)
	assert.True(t, sd.compactCheck.Checked)

	sd.languageSelect.SetSelected("Русский")
	sd.dateLayoutSelect.SetSelected("2025-03-07")
	sd.ratingStepRadio.SetSelected("Half stars")
	sd.compactCheck.SetChecked(false)
	sd.onSave(true)

	assert.Equal(t, 1, saved)
	assert.Equal(t, "ru", settings.GetLanguage())
	assert.Equal(t, "2006-01-02", settings.GetDateLayout())
	assert.Equal(t, 0.5, settings.GetRatingStep())
	assert.False(t, settings.GetCompactTheme())
}

func TestSettingsDialog_Cancel(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	w := test.NewWindow(widget.NewLabel(""))
	defer w.Close()

	settings := config.NewSettings(a)
	saved := false
	sd := NewSettingsDialog(w, settings, NewLocalization(), NewMobileUI(a), zaptest.NewLogger(t), func() { saved = true })
	sd.Show()

	sd.languageSelect.SetSelected("Português")
	sd.onSave(false)

	assert.False(t, saved)
	assert.Equal(t, config.DefaultLanguage, settings.GetLanguage())
}
