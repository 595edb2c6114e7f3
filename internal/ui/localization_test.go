package ui

import (
	"testing"

	"github.com/ytget/book-tracker/internal/catalog"
	"github.com/ytget/book-tracker/internal/model"
)

func TestLocalization_AllLanguagesHaveEnglishKeys(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Fatalf("Language %q has no texts", lang)
		}
		for key := range l.texts["en"] {
			if _, found := texts[key]; !found {
				t.Errorf("Language %q is missing key %q", lang, key)
			}
		}
	}
}

func TestLocalization_ListTexts(t *testing.T) {
	l := NewLocalization()

	for _, kind := range model.Kinds() {
		for _, key := range []string{KeyListTitle(kind), KeyEmptyTitle(kind), KeyEmptyHint(kind), KeyDialogTitle(kind), KeyConfirm(kind)} {
			if got := l.GetText(key); got == key {
				t.Errorf("No English text for %q", key)
			}
		}
	}

	if got := l.GetText(KeyEmptyTitle(model.KindWantToRead)); got != "Your wishlist is empty" {
		t.Errorf("Expected wishlist empty title, got %q", got)
	}
	if got := l.GetText(KeyDialogTitle(model.KindRecommendations)); got != "Add Book Recommendation" {
		t.Errorf("Expected recommendation dialog title, got %q", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected ru, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeySave); got != "Сохранить" {
		t.Errorf("Expected Russian save text, got %q", got)
	}

	// Unknown languages keep the current one
	l.SetLanguage("de")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected ru after unknown language, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected system to resolve to en, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key fallback, got %q", got)
	}
}

func TestLocalization_FieldLabels(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		kind     model.Kind
		field    catalog.Field
		expected string
	}{
		{model.KindCurrentlyReading, catalog.FieldTitle, "Book Title*"},
		{model.KindCurrentlyReading, catalog.FieldCurrentPage, "Current Page*"},
		{model.KindCurrentlyReading, catalog.FieldTotalPages, "Total Pages"},
		{model.KindReviews, catalog.FieldReview, "Your review*"},
		{model.KindRecommendations, catalog.FieldReview, "Why do you recommend this book?"},
	}

	for _, tt := range tests {
		spec, ok := catalog.MustSchemaFor(tt.kind).Spec(tt.field)
		if !ok {
			t.Fatalf("Schema %s has no field %s", tt.kind, tt.field)
		}
		if got := l.FieldLabel(tt.kind, spec); got != tt.expected {
			t.Errorf("FieldLabel(%s, %s) = %q, expected %q", tt.kind, tt.field, got, tt.expected)
		}
	}
}

func TestLocalization_FieldErrorText(t *testing.T) {
	l := NewLocalization()

	fe := catalog.FieldError{Field: catalog.FieldCurrentPage, Reason: catalog.ReasonExceedsTotal}
	expected := "Current Page: cannot be greater than the total pages"
	if got := l.FieldErrorText(model.KindCurrentlyReading, fe); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}
