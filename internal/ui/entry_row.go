package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/book-tracker/internal/model"
)

// EntryRow renders one catalog entry inside a list. Rows are recycled by
// widget.List, so every optional part is shown or hidden on SetEntry.
type EntryRow struct {
	widget.BaseWidget

	entry      model.Entry
	dateLayout string

	titleLabel    *widget.Label
	authorLabel   *widget.Label
	pageLabel     *widget.Label
	progressBar   *widget.ProgressBar
	progressLabel *widget.Label
	genreLabel    *widget.Label
	starBar       *StarBar
	ratingLabel   *widget.Label
	reviewLabel   *widget.Label
	captionLabel  *widget.Label

	progressRow *fyne.Container
	ratingRow   *fyne.Container
}

// NewEntryRow creates an empty row using dateLayout for the caption
func NewEntryRow(dateLayout string) *EntryRow {
	row := &EntryRow{dateLayout: dateLayout}
	row.ExtendBaseWidget(row)
	row.createUI()
	return row
}

// createUI creates the UI components
func (row *EntryRow) createUI() {
	row.titleLabel = widget.NewLabel("")
	row.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	row.titleLabel.Wrapping = fyne.TextWrapWord

	row.authorLabel = widget.NewLabel("")
	row.authorLabel.TextStyle = fyne.TextStyle{Italic: true}

	row.pageLabel = widget.NewLabel("")

	row.progressBar = widget.NewProgressBar()
	row.progressBar.TextFormatter = func() string { return "" }
	row.progressLabel = widget.NewLabel("")
	row.progressLabel.Importance = widget.SuccessImportance
	row.progressRow = container.NewBorder(nil, nil, nil, row.progressLabel, row.progressBar)

	row.genreLabel = widget.NewLabel("")
	row.genreLabel.Importance = widget.HighImportance

	row.starBar = NewStarBar(0)
	row.ratingLabel = widget.NewLabel("")
	row.ratingRow = container.NewHBox(row.starBar, row.ratingLabel)

	row.reviewLabel = widget.NewLabel("")
	row.reviewLabel.Wrapping = fyne.TextWrapWord

	row.captionLabel = widget.NewLabel("")
	row.captionLabel.SizeName = theme.SizeNameCaptionText
	row.captionLabel.Importance = widget.LowImportance
}

// SetDateLayout changes the layout of the caption date
func (row *EntryRow) SetDateLayout(layout string) {
	row.dateLayout = layout
	row.SetEntry(row.entry)
}

// SetEntry shows entry in the row
func (row *EntryRow) SetEntry(entry model.Entry) {
	row.entry = entry

	row.titleLabel.SetText(singleLine(entry.Title))
	setOptionalText(row.authorLabel, entry.AuthorLabel())
	setOptionalText(row.pageLabel, entry.PageLabel())

	if percent, ok := entry.ProgressPercent(); ok {
		row.progressBar.SetValue(float64(min(max(percent, 0), 100)) / 100)
		row.progressLabel.SetText(fmt.Sprintf(ProgressLabelFormat, percent))
		row.progressRow.Show()
	} else {
		row.progressRow.Hide()
	}

	if entry.Genre != nil {
		setOptionalText(row.genreLabel, entry.Genre.String())
	} else {
		row.genreLabel.Hide()
	}

	if entry.Rating != nil {
		row.starBar.SetRating(*entry.Rating)
		row.ratingLabel.SetText(entry.RatingLabel())
		row.ratingRow.Show()
	} else {
		row.ratingRow.Hide()
	}

	setOptionalText(row.reviewLabel, entry.ReviewText())
	row.captionLabel.SetText(entry.Caption(row.dateLayout))
}

// Entry returns the shown entry
func (row *EntryRow) Entry() model.Entry {
	return row.entry
}

// CreateRenderer creates the widget renderer
func (row *EntryRow) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewVBox(
		row.titleLabel,
		row.authorLabel,
		row.pageLabel,
		row.progressRow,
		row.genreLabel,
		row.ratingRow,
		row.reviewLabel,
		row.captionLabel,
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps rows from collapsing before their first entry is set
func (row *EntryRow) MinSize() fyne.Size {
	size := row.BaseWidget.MinSize()
	return size.Max(fyne.NewSize(RowMinWidth, RowMinHeight))
}

// setOptionalText shows label with text, or hides it when text is blank
func setOptionalText(label *widget.Label, text string) {
	if strings.TrimSpace(text) == "" {
		label.SetText("")
		label.Hide()
		return
	}
	label.SetText(text)
	label.Show()
}

// singleLine flattens control whitespace so titles render on one line
func singleLine(s string) string {
	s = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(s)
	return strings.TrimSpace(s)
}
