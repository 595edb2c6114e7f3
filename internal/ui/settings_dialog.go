package ui

import (
	"slices"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/book-tracker/internal/config"
)

// sampleDate previews date layouts in the settings dialog
var sampleDate = time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect   *widget.Select
	dateLayoutSelect *widget.Select
	ratingStepRadio  *widget.RadioGroup
	compactCheck     *widget.Check

	// display label -> stored value
	languageCodes map[string]string
	dateLayouts   map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// preferences were written.
func NewSettingsDialog(
	window fyne.Window,
	settings *config.Settings,
	localization *Localization,
	mobileUI *MobileUI,
	logger *zap.Logger,
	onSaved func(),
) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		logger:        logger,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
		dateLayouts:   make(map[string]string),
	}

	sd.createUI()
	sd.dialog.Resize(mobileUI.DialogSize(window.Canvas(), fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight)))
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	// Language selection, sorted by display name
	languageOptions := []string{}
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		languageOptions = append(languageOptions, label)
	}
	slices.Sort(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Date layouts are shown as a formatted sample date
	dateOptions := []string{}
	for _, layout := range sd.settings.GetDateLayoutOptions() {
		label := sampleDate.Format(layout)
		sd.dateLayouts[label] = layout
		dateOptions = append(dateOptions, label)
	}
	sd.dateLayoutSelect = widget.NewSelect(dateOptions, nil)

	sd.ratingStepRadio = widget.NewRadioGroup([]string{loc.GetText(KeyWholeStars), loc.GetText(KeyHalfStars)}, nil)
	sd.ratingStepRadio.Horizontal = true
	sd.ratingStepRadio.Required = true

	sd.compactCheck = widget.NewCheck(loc.GetText(KeyCompactTheme), nil)

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(loc.GetText(KeyDateLayout)+":"),
		sd.dateLayoutSelect,

		widget.NewLabel(loc.GetText(KeyRatingStep)+":"),
		sd.ratingStepRadio,

		widget.NewSeparator(),
		sd.compactCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.dateLayoutSelect.SetSelected(sampleDate.Format(sd.settings.GetDateLayout()))
	if sd.settings.GetRatingStep() < config.MaxRatingStep {
		sd.ratingStepRadio.SetSelected(sd.localization.GetText(KeyHalfStars))
	} else {
		sd.ratingStepRadio.SetSelected(sd.localization.GetText(KeyWholeStars))
	}
	sd.compactCheck.SetChecked(sd.settings.GetCompactTheme())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if layout, ok := sd.dateLayouts[sd.dateLayoutSelect.Selected]; ok {
		sd.settings.SetDateLayout(layout)
	}

	switch sd.ratingStepRadio.Selected {
	case sd.localization.GetText(KeyHalfStars):
		sd.settings.SetRatingStep(config.MinRatingStep)
	case sd.localization.GetText(KeyWholeStars):
		sd.settings.SetRatingStep(config.MaxRatingStep)
	}

	sd.settings.SetCompactTheme(sd.compactCheck.Checked)

	sd.logger.Info("Settings saved",
		zap.String("language", sd.settings.GetLanguage()),
		zap.String("date_layout", sd.settings.GetDateLayout()),
		zap.Float64("rating_step", sd.settings.GetRatingStep()),
		zap.Bool("compact_theme", sd.settings.GetCompactTheme()),
	)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
