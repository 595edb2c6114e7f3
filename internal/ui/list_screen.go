package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/book-tracker/internal/catalog"
	"github.com/ytget/book-tracker/internal/config"
	"github.com/ytget/book-tracker/internal/model"
)

// ListScreen shows one reading list: a header, the entries or an empty-state
// placeholder, and an add button. The screen owns its store; nothing survives
// Dispose.
type ListScreen struct {
	kind         model.Kind
	store        catalog.Store
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	mobileUI     *MobileUI
	logger       *zap.Logger
	disposed     bool

	// UI components
	headerLabel     *widget.Label
	emptyTitleLabel *widget.Label
	emptyHintLabel  *widget.Label
	emptyState      fyne.CanvasObject
	list            *widget.List
	addBtn          *widget.Button
	content         *fyne.Container

	// snapshot rendered by the list; replaced on every append
	entries []model.Entry
}

// NewListScreen mounts a list screen with a fresh, empty store
func NewListScreen(
	kind model.Kind,
	window fyne.Window,
	settings *config.Settings,
	localization *Localization,
	mobileUI *MobileUI,
	logger *zap.Logger,
) *ListScreen {
	ls := &ListScreen{
		kind:         kind,
		store:        catalog.NewStore(),
		window:       window,
		settings:     settings,
		localization: localization,
		mobileUI:     mobileUI,
		logger:       logger.With(zap.String("kind", kind.String())),
	}

	ls.setupUI()
	ls.render()
	ls.logger.Debug("List screen mounted")
	return ls
}

// setupUI creates and arranges all UI components
func (ls *ListScreen) setupUI() {
	ls.headerLabel = widget.NewLabel("")
	ls.headerLabel.TextStyle = fyne.TextStyle{Bold: true}
	ls.headerLabel.SizeName = theme.SizeNameSubHeadingText

	icon := widget.NewIcon(theme.DocumentIcon())
	iconBox := container.NewGridWrap(fyne.NewSquareSize(EmptyStateIconSize), icon)

	ls.emptyTitleLabel = widget.NewLabel("")
	ls.emptyTitleLabel.Alignment = fyne.TextAlignCenter
	ls.emptyTitleLabel.TextStyle = fyne.TextStyle{Bold: true}

	ls.emptyHintLabel = widget.NewLabel("")
	ls.emptyHintLabel.Alignment = fyne.TextAlignCenter
	ls.emptyHintLabel.Importance = widget.LowImportance
	ls.emptyHintLabel.Wrapping = fyne.TextWrapWord

	ls.emptyState = container.NewCenter(container.NewVBox(
		container.NewCenter(iconBox),
		ls.emptyTitleLabel,
		ls.emptyHintLabel,
	))

	ls.list = widget.NewList(
		func() int {
			return len(ls.entries)
		},
		func() fyne.CanvasObject { return NewEntryRow(ls.settings.GetDateLayout()) },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ls.updateEntryItem(id, obj) },
	)

	ls.addBtn = ls.mobileUI.CreateMobileButton("", ls.ShowAddDialog)
	ls.addBtn.Icon = theme.ContentAddIcon()
	ls.addBtn.Importance = widget.HighImportance

	body := container.NewStack(ls.emptyState, ls.list)
	ls.content = container.NewBorder(
		ls.headerLabel, // top
		ls.addBtn,      // bottom
		nil,            // left
		nil,            // right
		body,           // center
	)

	ls.refreshTexts()
}

// updateEntryItem binds a recycled row to the entry at id
func (ls *ListScreen) updateEntryItem(id widget.ListItemID, obj fyne.CanvasObject) {
	row, ok := obj.(*EntryRow)
	if !ok || id < 0 || id >= len(ls.entries) {
		return
	}
	row.dateLayout = ls.settings.GetDateLayout()
	row.SetEntry(ls.entries[id])
}

// Content returns the screen's root object
func (ls *ListScreen) Content() fyne.CanvasObject {
	return ls.content
}

// Kind returns the list kind the screen shows
func (ls *ListScreen) Kind() model.Kind {
	return ls.kind
}

// Store returns the current store snapshot
func (ls *ListScreen) Store() catalog.Store {
	return ls.store
}

// State returns whether the placeholder or the entries are shown
func (ls *ListScreen) State() catalog.ViewState {
	return catalog.StateOf(ls.store)
}

// Add appends entry to the list and re-renders
func (ls *ListScreen) Add(entry model.Entry) {
	if ls.disposed {
		ls.logger.Warn("Entry added to a disposed list", zap.String("entry_id", entry.ID))
		return
	}

	ls.store = ls.store.Append(entry)
	ls.render()
	ls.list.ScrollToBottom()

	ls.logger.Info("Entry added",
		zap.String("entry_id", entry.ID),
		zap.Int("count", ls.store.Len()),
	)
}

// ShowAddDialog opens the add form of this list
func (ls *ListScreen) ShowAddDialog() {
	ls.NewAddDialog().Show()
}

// NewAddDialog builds a fresh add dialog bound to this list
func (ls *ListScreen) NewAddDialog() *EntryDialog {
	form := catalog.NewForm(
		catalog.MustSchemaFor(ls.kind),
		catalog.WithRatingStep(ls.settings.GetRatingStep()),
	)
	return NewEntryDialog(ls.window, form, ls.localization, ls.mobileUI, ls.logger, ls.Add)
}

// Dispose drops the store. The screen must not be shown again.
func (ls *ListScreen) Dispose() {
	if ls.disposed {
		return
	}
	ls.disposed = true
	ls.logger.Debug("List screen disposed", zap.Int("discarded", ls.store.Len()))
	ls.store = catalog.Store{}
	ls.entries = nil
}

// Refresh re-renders rows, e.g. after the date layout changed
func (ls *ListScreen) Refresh() {
	ls.refreshTexts()
	ls.render()
}

// render switches between placeholder and entries
func (ls *ListScreen) render() {
	ls.entries = ls.store.All()

	switch ls.State() {
	case catalog.ViewEmpty:
		ls.list.Hide()
		ls.emptyState.Show()
	case catalog.ViewPopulated:
		ls.emptyState.Hide()
		ls.list.Show()
	}
	ls.list.Refresh()
}

// refreshTexts updates all texts with the current language
func (ls *ListScreen) refreshTexts() {
	loc := ls.localization
	ls.headerLabel.SetText(loc.GetText(KeyListTitle(ls.kind)))
	ls.emptyTitleLabel.SetText(loc.GetText(KeyEmptyTitle(ls.kind)))
	ls.emptyHintLabel.SetText(loc.GetText(KeyEmptyHint(ls.kind)))
	ls.addBtn.SetText(loc.GetText(KeyAdd))
}
