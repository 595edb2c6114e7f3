package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/book-tracker/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage     = "app_language"
	KeyDateLayout   = "date_layout"
	KeyRatingStep   = "rating_step"
	KeyCompactTheme = "compact_theme"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultDateLayout   = model.DefaultDateLayout
	DefaultRatingStep   = 1.0
	DefaultCompactTheme = true
)

// Rating step bounds
const (
	MinRatingStep = 0.5
	MaxRatingStep = 1.0
)

// dateLayoutProbe is formatted to check that a layout actually renders a date
var dateLayoutProbe = time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)

// Settings manages user preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language. Unknown codes fall back to the system language.
func (s *Settings) SetLanguage(lang string) {
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetDateLayout returns the Go time layout used for entry dates
func (s *Settings) GetDateLayout() string {
	layout := s.app.Preferences().String(KeyDateLayout)
	if layout == "" {
		s.SetDateLayout(DefaultDateLayout)
		return DefaultDateLayout
	}
	return layout
}

// SetDateLayout sets the date layout. Layouts that format nothing are replaced
// by the default.
func (s *Settings) SetDateLayout(layout string) {
	if !IsDateLayout(layout) {
		layout = DefaultDateLayout
	}
	s.app.Preferences().SetString(KeyDateLayout, layout)
}

// GetDateLayoutOptions returns the date layouts offered in the settings dialog
func (s *Settings) GetDateLayoutOptions() []string {
	return []string{DefaultDateLayout, "02 Jan 2006", "2006-01-02", "01/02/2006", "02.01.2006"}
}

// GetRatingStep returns the granularity of the rating slider
func (s *Settings) GetRatingStep() float64 {
	step := s.app.Preferences().FloatWithFallback(KeyRatingStep, DefaultRatingStep)
	if step < MinRatingStep || step > MaxRatingStep {
		s.SetRatingStep(DefaultRatingStep)
		return DefaultRatingStep
	}
	return step
}

// SetRatingStep sets the rating slider granularity, snapping to half or whole stars
func (s *Settings) SetRatingStep(step float64) {
	if step < 1 {
		step = MinRatingStep
	} else {
		step = MaxRatingStep
	}
	s.app.Preferences().SetFloat(KeyRatingStep, step)
}

// GetCompactTheme returns whether the compact theme is applied
func (s *Settings) GetCompactTheme() bool {
	return s.app.Preferences().BoolWithFallback(KeyCompactTheme, DefaultCompactTheme)
}

// SetCompactTheme sets whether the compact theme is applied
func (s *Settings) SetCompactTheme(compact bool) {
	s.app.Preferences().SetBool(KeyCompactTheme, compact)
}

// IsDateLayout reports whether layout contains at least one time layout element
func IsDateLayout(layout string) bool {
	if strings.TrimSpace(layout) == "" {
		return false
	}
	return dateLayoutProbe.Format(layout) != layout
}
