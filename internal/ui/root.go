package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/book-tracker/internal/config"
	"github.com/ytget/book-tracker/internal/logger"
	"github.com/ytget/book-tracker/internal/navigation"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	mobileUI     *MobileUI
	logger       *zap.Logger
	navigator    *navigation.Navigator

	// UI components
	homeBtn     *widget.Button
	settingsBtn *widget.Button
	titleLabel  *widget.Label
	content     *fyne.Container

	home    *HomeScreen
	current *ListScreen // nil while Home is shown
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, log *zap.Logger) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobileUI:     NewMobileUI(app),
		logger:       logger.OrNop(log).Named("ui"),
		navigator:    navigation.NewNavigator(),
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetIcon(AppIconResource())

	ui.navigator.OnChange(ui.onDestinationChanged)
	ui.setupUI()

	ui.logger.Info("RootUI initialized", zap.String("language", localization.GetCurrentLanguage()))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.homeBtn = widget.NewButtonWithIcon("", theme.HomeIcon(), ui.navigator.Back)
	ui.homeBtn.Importance = widget.LowImportance

	ui.settingsBtn = widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.Alignment = fyne.TextAlignCenter
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Truncation = fyne.TextTruncateEllipsis

	topBar := container.NewVBox(
		container.NewBorder(nil, nil, ui.homeBtn, ui.settingsBtn, ui.titleLabel),
		widget.NewSeparator(),
	)

	ui.home = NewHomeScreen(ui.localization, ui.mobileUI, func(dest navigation.Destination) {
		ui.Navigate(dest)
	})
	ui.content = container.NewStack()
	ui.showScreen(navigation.Home)

	ui.window.SetContent(container.NewBorder(topBar, nil, nil, nil, ui.content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for _, code := range []string{"en", "ru", "pt"} {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// Navigator returns the navigator driving the screens
func (ui *RootUI) Navigator() *navigation.Navigator {
	return ui.navigator
}

// CurrentList returns the mounted list screen, or nil on Home
func (ui *RootUI) CurrentList() *ListScreen {
	return ui.current
}

// Navigate moves to dest, logging rejected destinations
func (ui *RootUI) Navigate(dest navigation.Destination) {
	if err := ui.navigator.Navigate(dest); err != nil {
		ui.logger.Warn("Navigation rejected", zap.Error(err))
	}
}

// onDestinationChanged swaps the mounted screen
func (ui *RootUI) onDestinationChanged(from, to navigation.Destination) {
	ui.logger.Info("Navigated",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
	)
	ui.showScreen(to)
}

// showScreen disposes the current list and mounts the screen of dest.
// Every visit to a list starts from an empty store.
func (ui *RootUI) showScreen(dest navigation.Destination) {
	if ui.current != nil {
		ui.current.Dispose()
		ui.current = nil
	}

	var screen fyne.CanvasObject
	if kind, ok := dest.Kind(); ok {
		ui.current = NewListScreen(kind, ui.window, ui.settings, ui.localization, ui.mobileUI, ui.logger)
		screen = ui.current.Content()
		ui.homeBtn.Enable()
	} else {
		screen = ui.home.Content()
		ui.homeBtn.Disable()
	}

	ui.content.Objects = []fyne.CanvasObject{screen}
	ui.content.Refresh()
	ui.updateTitle()
}

// updateTitle shows the current list name, or the app name on Home
func (ui *RootUI) updateTitle() {
	if ui.current != nil {
		ui.titleLabel.SetText(ui.localization.GetText(KeyListTitle(ui.current.Kind())))
		return
	}
	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	ui.logger.Info("Language changed", zap.String("language", langCode))

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.updateTitle()
	ui.home.refreshTexts()
	if ui.current != nil {
		ui.current.Refresh()
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.window, ui.settings, ui.localization, ui.mobileUI, ui.logger, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies saved preferences to the running UI
func (ui *RootUI) onSettingsSaved() {
	ApplyTheme(ui.app, ui.settings)

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	ui.showToast(ui.localization.GetText(KeySettingsSaved))
}

// showToast shows a short message that hides itself
func (ui *RootUI) showToast(message string) {
	popup := widget.NewPopUp(widget.NewLabel(message), ui.window.Canvas())
	canvasSize := ui.window.Canvas().Size()
	popup.Move(fyne.NewPos((canvasSize.Width-popup.MinSize().Width)/2, canvasSize.Height/2))
	popup.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(popup.Hide)
	})
}

// ApplyTheme sets the compact or default theme according to settings
func ApplyTheme(app fyne.App, settings *config.Settings) {
	if settings.GetCompactTheme() {
		app.Settings().SetTheme(NewCompactTheme())
		return
	}
	app.Settings().SetTheme(theme.DefaultTheme())
}
