package ui

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/book-tracker/internal/catalog"
	"github.com/ytget/book-tracker/internal/model"
)

// EntryDialog is the add form of one reading list. Its inputs are built from
// the list's field schema and every edit goes through a catalog.Form.
type EntryDialog struct {
	kind         model.Kind
	form         *catalog.Form
	localization *Localization
	logger       *zap.Logger
	window       fyne.Window
	dialog       *dialog.CustomDialog
	onAdd        func(model.Entry)

	// UI components
	textInputs   map[catalog.Field]*widget.Entry
	numberInputs map[catalog.Field]*NumericEntry
	genreSelect  *widget.Select
	ratingSlider *widget.Slider
	ratingLabel  *widget.Label
	errorLabel   *widget.Label
	submitBtn    *widget.Button
	cancelBtn    *widget.Button
}

// NewEntryDialog creates the add dialog for form. onAdd receives the validated
// entry; the dialog hides itself afterwards.
func NewEntryDialog(
	window fyne.Window,
	form *catalog.Form,
	localization *Localization,
	mobileUI *MobileUI,
	logger *zap.Logger,
	onAdd func(model.Entry),
) *EntryDialog {
	d := &EntryDialog{
		kind:         form.Schema().Kind,
		form:         form,
		localization: localization,
		logger:       logger,
		window:       window,
		onAdd:        onAdd,
		textInputs:   make(map[catalog.Field]*widget.Entry),
		numberInputs: make(map[catalog.Field]*NumericEntry),
	}

	d.createUI()
	d.dialog.Resize(mobileUI.DialogSize(window.Canvas(), fyne.NewSize(EntryDialogWidth, EntryDialogHeight)))
	d.sync()
	return d
}

// Show displays the dialog
func (d *EntryDialog) Show() {
	d.dialog.Show()
}

// Hide closes the dialog
func (d *EntryDialog) Hide() {
	d.dialog.Hide()
}

// createUI creates the dialog UI from the form schema
func (d *EntryDialog) createUI() {
	loc := d.localization
	fields := container.NewVBox()

	for _, spec := range d.form.Schema().Fields {
		field := spec.Field
		var input fyne.CanvasObject

		switch spec.Input {
		case catalog.InputText:
			entry := widget.NewEntry()
			entry.SetText(d.form.Value(field))
			entry.OnChanged = func(text string) { d.onFieldChanged(field, text) }
			d.textInputs[field] = entry
			input = entry
		case catalog.InputLongText:
			entry := widget.NewMultiLineEntry()
			entry.Wrapping = fyne.TextWrapWord
			entry.SetMinRowsVisible(3)
			entry.SetText(d.form.Value(field))
			entry.OnChanged = func(text string) { d.onFieldChanged(field, text) }
			d.textInputs[field] = entry
			input = entry
		case catalog.InputNumber:
			entry := NewNumericEntry()
			entry.SetText(d.form.Value(field))
			entry.OnChanged = func(text string) { d.onFieldChanged(field, text) }
			d.numberInputs[field] = entry
			input = entry
		case catalog.InputChoice:
			d.genreSelect = widget.NewSelect(spec.Options, func(option string) {
				d.onFieldChanged(field, option)
			})
			d.genreSelect.SetSelected(d.form.Value(field))
			input = d.genreSelect
		case catalog.InputRating:
			d.ratingLabel = widget.NewLabel("")
			d.ratingSlider = widget.NewSlider(model.MinRating, model.MaxRating)
			d.ratingSlider.Step = d.form.RatingStep()
			d.ratingSlider.SetValue(d.form.Rating())
			d.ratingSlider.OnChanged = d.onRatingChanged
			d.updateRatingLabel()
			input = container.NewVBox(d.ratingLabel, d.ratingSlider)
		}

		fields.Add(widget.NewLabel(loc.FieldLabel(d.kind, spec)))
		fields.Add(input)
	}

	d.errorLabel = widget.NewLabel("")
	d.errorLabel.Importance = widget.DangerImportance
	d.errorLabel.Wrapping = fyne.TextWrapWord
	d.errorLabel.Hide()

	hint := widget.NewLabel(loc.GetText(KeyRequiredHint))
	hint.Importance = widget.LowImportance

	content := container.NewVScroll(container.NewVBox(fields, d.errorLabel, hint))

	d.cancelBtn = widget.NewButton(loc.GetText(KeyCancel), d.Hide)
	d.submitBtn = widget.NewButton(loc.GetText(KeyConfirm(d.kind)), d.submit)
	d.submitBtn.Importance = widget.HighImportance

	d.dialog = dialog.NewCustomWithoutButtons(loc.GetText(KeyDialogTitle(d.kind)), content, d.window)
	d.dialog.SetButtons([]fyne.CanvasObject{d.cancelBtn, d.submitBtn})
}

// onFieldChanged stores the raw input and re-evaluates the submit button
func (d *EntryDialog) onFieldChanged(field catalog.Field, text string) {
	d.form.Set(field, text)
	d.sync()
}

// onRatingChanged snaps the slider value to the form's rating step
func (d *EntryDialog) onRatingChanged(value float64) {
	d.form.SetRating(value)
	d.updateRatingLabel()
}

func (d *EntryDialog) updateRatingLabel() {
	if d.ratingLabel == nil {
		return
	}
	d.ratingLabel.SetText(d.localization.Format(KeyRatingFormat, d.form.Rating()))
}

// sync enables the submit button only while every required field has text
func (d *EntryDialog) sync() {
	if d.submitBtn == nil {
		return
	}
	if d.form.Ready() {
		d.submitBtn.Enable()
	} else {
		d.submitBtn.Disable()
	}
}

// submit validates the form. Valid entries are handed to onAdd and the dialog
// closes; otherwise the reasons are shown inline and the dialog stays open.
func (d *EntryDialog) submit() {
	entry, err := d.form.Validate()
	if err != nil {
		d.showErrors(err)
		d.logger.Info("Entry rejected",
			zap.String("kind", d.kind.String()),
			zap.Error(err),
		)
		return
	}

	d.errorLabel.Hide()
	if d.onAdd != nil {
		d.onAdd(entry)
	}
	d.Hide()
}

// showErrors renders a validation error as localized lines under the fields
func (d *EntryDialog) showErrors(err error) {
	var verr *catalog.ValidationError
	if !errors.As(err, &verr) {
		d.errorLabel.SetText(err.Error())
		d.errorLabel.Show()
		return
	}

	lines := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		lines = append(lines, d.localization.FieldErrorText(d.kind, fe))
	}
	d.errorLabel.SetText(strings.Join(lines, "\n"))
	d.errorLabel.Show()
}
