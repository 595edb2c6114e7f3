package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/book-tracker/internal/model"
	"github.com/ytget/book-tracker/internal/navigation"
)

func newTestRootUI(t *testing.T) *RootUI {
	t.Helper()

	a := test.NewApp()
	t.Cleanup(a.Quit)
	w := test.NewWindow(widget.NewLabel(""))
	w.Resize(fyne.NewSize(420, 760))
	t.Cleanup(w.Close)

	return NewRootUI(w, a, zaptest.NewLogger(t))
}

func TestRootUI_StartsAtHome(t *testing.T) {
	ui := newTestRootUI(t)

	assert.Equal(t, navigation.Home, ui.Navigator().Current())
	assert.Nil(t, ui.CurrentList())
	assert.True(t, ui.homeBtn.Disabled())
	assert.Equal(t, "Book Tracker", ui.titleLabel.Text)
	assert.Equal(t, "Track your reading journey", ui.home.taglineLabel.Text)

	for _, dest := range navigation.Lists() {
		assert.NotNil(t, ui.home.Button(dest), "home has no button for %s", dest)
	}
}

func TestRootUI_HomeButtonOpensList(t *testing.T) {
	ui := newTestRootUI(t)

	test.Tap(ui.home.Button(navigation.WantToRead))

	assert.Equal(t, navigation.WantToRead, ui.Navigator().Current())
	require.NotNil(t, ui.CurrentList())
	assert.Equal(t, model.KindWantToRead, ui.CurrentList().Kind())
	assert.False(t, ui.homeBtn.Disabled())
	assert.Equal(t, "Want to Read", ui.titleLabel.Text)
}

func TestRootUI_ListStateDoesNotSurviveNavigation(t *testing.T) {
	ui := newTestRootUI(t)

	ui.Navigate(navigation.FinishedBooks)
	first := ui.CurrentList()
	require.NotNil(t, first)
	first.Add(model.Entry{ID: "a", Kind: model.KindFinished, Title: "Emma"})
	assert.Equal(t, 1, first.Store().Len())

	test.Tap(ui.homeBtn)
	assert.Equal(t, navigation.Home, ui.Navigator().Current())
	assert.Nil(t, ui.CurrentList())
	assert.Equal(t, 0, first.Store().Len(), "leaving the screen disposes its store")

	ui.Navigate(navigation.FinishedBooks)
	second := ui.CurrentList()
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
	assert.Equal(t, 0, second.Store().Len())
}

func TestRootUI_SameDestinationKeepsScreen(t *testing.T) {
	ui := newTestRootUI(t)

	ui.Navigate(navigation.Reviews)
	screen := ui.CurrentList()
	screen.Add(model.Entry{ID: "a", Kind: model.KindReviews, Title: "Beloved"})

	ui.Navigate(navigation.Reviews)
	assert.Same(t, screen, ui.CurrentList())
	assert.Equal(t, 1, ui.CurrentList().Store().Len())
}

func TestRootUI_UnknownDestinationIgnored(t *testing.T) {
	ui := newTestRootUI(t)

	ui.Navigate(navigation.Destination(99))
	assert.Equal(t, navigation.Home, ui.Navigator().Current())
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui := newTestRootUI(t)
	ui.Navigate(navigation.CurrentlyReading)

	ui.onLanguageChange("pt")

	assert.Equal(t, "pt", ui.settings.GetLanguage())
	assert.Equal(t, "Lendo Agora", ui.titleLabel.Text)
	assert.Equal(t, "Nenhum livro em andamento", ui.CurrentList().emptyTitleLabel.Text)
	assert.Equal(t, "Lendo Agora", ui.home.Button(navigation.CurrentlyReading).Text)
}
