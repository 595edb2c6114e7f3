package ui

import (
	"fmt"

	"github.com/ytget/book-tracker/internal/catalog"
	"github.com/ytget/book-tracker/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle      = "app_title"
	KeyTagline       = "tagline"
	KeyHome          = "home"
	KeySettings      = "settings"
	KeyFile          = "file"
	KeyLanguage      = "language"
	KeyDateLayout    = "date_layout"
	KeyRatingStep    = "rating_step"
	KeyHalfStars     = "half_stars"
	KeyWholeStars    = "whole_stars"
	KeyCompactTheme  = "compact_theme"
	KeySave          = "save"
	KeyCancel        = "cancel"
	KeyAdd           = "add"
	KeySettingsSaved = "settings_saved"
	KeyEntryAdded    = "entry_added"
	KeyRatingFormat  = "rating_format"
	KeyRequiredHint  = "required_hint"
)

// Prefixes of keys that are derived from list kinds, form fields and validation reasons
const (
	keyPrefixListTitle   = "list_title_"
	keyPrefixEmptyTitle  = "empty_title_"
	keyPrefixEmptyHint   = "empty_hint_"
	keyPrefixDialogTitle = "dialog_title_"
	keyPrefixConfirm     = "confirm_"
	keyPrefixField       = "field_"
	keyPrefixReason      = "reason_"
)

// KeyListTitle returns the key of a list screen title
func KeyListTitle(kind model.Kind) string { return keyPrefixListTitle + string(kind) }

// KeyEmptyTitle returns the key of a list's empty-state headline
func KeyEmptyTitle(kind model.Kind) string { return keyPrefixEmptyTitle + string(kind) }

// KeyEmptyHint returns the key of a list's empty-state hint
func KeyEmptyHint(kind model.Kind) string { return keyPrefixEmptyHint + string(kind) }

// KeyDialogTitle returns the key of a list's add dialog title
func KeyDialogTitle(kind model.Kind) string { return keyPrefixDialogTitle + string(kind) }

// KeyConfirm returns the key of a list's add dialog confirm button
func KeyConfirm(kind model.Kind) string { return keyPrefixConfirm + string(kind) }

// KeyField returns the key of a form field label
func KeyField(kind model.Kind, field catalog.Field) string {
	if kind == model.KindRecommendations && field == catalog.FieldReview {
		return keyPrefixField + "recommendation_review"
	}
	return keyPrefixField + string(field)
}

// KeyReason returns the key of a validation reason message
func KeyReason(reason catalog.Reason) string { return keyPrefixReason + string(reason) }

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns localized text for key used as a format string
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// FieldLabel returns the label of a form field, marking required ones with "*"
func (l *Localization) FieldLabel(kind model.Kind, spec catalog.FieldSpec) string {
	label := l.GetText(KeyField(kind, spec.Field))
	if spec.Required {
		label += "*"
	}
	return label
}

// FieldErrorText returns the localized message for a rejected field
func (l *Localization) FieldErrorText(kind model.Kind, fe catalog.FieldError) string {
	return l.GetText(KeyField(kind, fe.Field)) + ": " + l.GetText(KeyReason(fe.Reason))
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:      "Book Tracker",
		KeyTagline:       "Track your reading journey",
		KeyHome:          "Home",
		KeySettings:      "Settings",
		KeyFile:          "File",
		KeyLanguage:      "Language",
		KeyDateLayout:    "Date Format",
		KeyRatingStep:    "Rating Step",
		KeyHalfStars:     "Half stars",
		KeyWholeStars:    "Whole stars",
		KeyCompactTheme:  "Compact layout",
		KeySave:          "Save",
		KeyCancel:        "Cancel",
		KeyAdd:           "Add",
		KeySettingsSaved: "Settings saved successfully!",
		KeyEntryAdded:    "Book added",
		KeyRatingFormat:  "Rating: %.1f/5",
		KeyRequiredHint:  "* required",

		KeyListTitle(model.KindCurrentlyReading): "Currently Reading",
		KeyListTitle(model.KindWantToRead):       "Want to Read",
		KeyListTitle(model.KindFinished):         "Finished Books",
		KeyListTitle(model.KindReviews):          "Your Reviews",
		KeyListTitle(model.KindRecommendations):  "Recommendations",

		KeyEmptyTitle(model.KindCurrentlyReading): "No books in progress",
		KeyEmptyTitle(model.KindWantToRead):       "Your wishlist is empty",
		KeyEmptyTitle(model.KindFinished):         "No finished books yet",
		KeyEmptyTitle(model.KindReviews):          "No reviews yet",
		KeyEmptyTitle(model.KindRecommendations):  "No recommendations yet",

		KeyEmptyHint(model.KindCurrentlyReading): "Add books you're currently reading",
		KeyEmptyHint(model.KindWantToRead):       "Add books you'd like to read",
		KeyEmptyHint(model.KindFinished):         "Add books you've completed reading",
		KeyEmptyHint(model.KindReviews):          "Write about the books you've read",
		KeyEmptyHint(model.KindRecommendations):  "Add books you'd recommend to others",

		KeyDialogTitle(model.KindCurrentlyReading): "Add Current Book",
		KeyDialogTitle(model.KindWantToRead):       "Add Want-to-Read Book",
		KeyDialogTitle(model.KindFinished):         "Add Finished Book",
		KeyDialogTitle(model.KindReviews):          "Add Review",
		KeyDialogTitle(model.KindRecommendations):  "Add Book Recommendation",

		KeyConfirm(model.KindCurrentlyReading): "Add Book",
		KeyConfirm(model.KindWantToRead):       "Add to List",
		KeyConfirm(model.KindFinished):         "Add Book",
		KeyConfirm(model.KindReviews):          "Add Review",
		KeyConfirm(model.KindRecommendations):  "Add Recommendation",

		keyPrefixField + string(catalog.FieldTitle):       "Book Title",
		keyPrefixField + string(catalog.FieldAuthor):      "Author",
		keyPrefixField + string(catalog.FieldCurrentPage): "Current Page",
		keyPrefixField + string(catalog.FieldTotalPages):  "Total Pages",
		keyPrefixField + string(catalog.FieldGenre):       "Genre",
		keyPrefixField + string(catalog.FieldRating):      "Your Rating",
		keyPrefixField + string(catalog.FieldReview):      "Your review",
		keyPrefixField + "recommendation_review":          "Why do you recommend this book?",

		KeyReason(catalog.ReasonRequired):      "is required",
		KeyReason(catalog.ReasonNotNumber):     "must be a whole number",
		KeyReason(catalog.ReasonOutOfRange):    "is out of range",
		KeyReason(catalog.ReasonExceedsTotal):  "cannot be greater than the total pages",
		KeyReason(catalog.ReasonUnknownOption): "is not in the list",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:      "Трекер книг",
		KeyTagline:       "Следите за своим чтением",
		KeyHome:          "Главная",
		KeySettings:      "Настройки",
		KeyFile:          "Файл",
		KeyLanguage:      "Язык",
		KeyDateLayout:    "Формат даты",
		KeyRatingStep:    "Шаг оценки",
		KeyHalfStars:     "Половина звезды",
		KeyWholeStars:    "Целая звезда",
		KeyCompactTheme:  "Компактный вид",
		KeySave:          "Сохранить",
		KeyCancel:        "Отмена",
		KeyAdd:           "Добавить",
		KeySettingsSaved: "Настройки успешно сохранены!",
		KeyEntryAdded:    "Книга добавлена",
		KeyRatingFormat:  "Оценка: %.1f/5",
		KeyRequiredHint:  "* обязательно",

		KeyListTitle(model.KindCurrentlyReading): "Читаю сейчас",
		KeyListTitle(model.KindWantToRead):       "Хочу прочитать",
		KeyListTitle(model.KindFinished):         "Прочитанные книги",
		KeyListTitle(model.KindReviews):          "Ваши отзывы",
		KeyListTitle(model.KindRecommendations):  "Рекомендации",

		KeyEmptyTitle(model.KindCurrentlyReading): "Нет книг в процессе",
		KeyEmptyTitle(model.KindWantToRead):       "Список желаний пуст",
		KeyEmptyTitle(model.KindFinished):         "Пока нет прочитанных книг",
		KeyEmptyTitle(model.KindReviews):          "Пока нет отзывов",
		KeyEmptyTitle(model.KindRecommendations):  "Пока нет рекомендаций",

		KeyEmptyHint(model.KindCurrentlyReading): "Добавьте книги, которые читаете сейчас",
		KeyEmptyHint(model.KindWantToRead):       "Добавьте книги, которые хотите прочитать",
		KeyEmptyHint(model.KindFinished):         "Добавьте книги, которые вы дочитали",
		KeyEmptyHint(model.KindReviews):          "Напишите о прочитанных книгах",
		KeyEmptyHint(model.KindRecommendations):  "Добавьте книги, которые посоветуете другим",

		KeyDialogTitle(model.KindCurrentlyReading): "Добавить текущую книгу",
		KeyDialogTitle(model.KindWantToRead):       "Добавить в список желаний",
		KeyDialogTitle(model.KindFinished):         "Добавить прочитанную книгу",
		KeyDialogTitle(model.KindReviews):          "Добавить отзыв",
		KeyDialogTitle(model.KindRecommendations):  "Добавить рекомендацию",

		KeyConfirm(model.KindCurrentlyReading): "Добавить книгу",
		KeyConfirm(model.KindWantToRead):       "Добавить в список",
		KeyConfirm(model.KindFinished):         "Добавить книгу",
		KeyConfirm(model.KindReviews):          "Добавить отзыв",
		KeyConfirm(model.KindRecommendations):  "Добавить рекомендацию",

		keyPrefixField + string(catalog.FieldTitle):       "Название книги",
		keyPrefixField + string(catalog.FieldAuthor):      "Автор",
		keyPrefixField + string(catalog.FieldCurrentPage): "Текущая страница",
		keyPrefixField + string(catalog.FieldTotalPages):  "Всего страниц",
		keyPrefixField + string(catalog.FieldGenre):       "Жанр",
		keyPrefixField + string(catalog.FieldRating):      "Ваша оценка",
		keyPrefixField + string(catalog.FieldReview):      "Ваш отзыв",
		keyPrefixField + "recommendation_review":          "Почему вы рекомендуете эту книгу?",

		KeyReason(catalog.ReasonRequired):      "обязательное поле",
		KeyReason(catalog.ReasonNotNumber):     "должно быть целым числом",
		KeyReason(catalog.ReasonOutOfRange):    "вне допустимого диапазона",
		KeyReason(catalog.ReasonExceedsTotal):  "не может быть больше общего числа страниц",
		KeyReason(catalog.ReasonUnknownOption): "нет в списке",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:      "Book Tracker",
		KeyTagline:       "Acompanhe sua jornada de leitura",
		KeyHome:          "Início",
		KeySettings:      "Configurações",
		KeyFile:          "Arquivo",
		KeyLanguage:      "Idioma",
		KeyDateLayout:    "Formato de Data",
		KeyRatingStep:    "Passo da Avaliação",
		KeyHalfStars:     "Meia estrela",
		KeyWholeStars:    "Estrela inteira",
		KeyCompactTheme:  "Layout compacto",
		KeySave:          "Salvar",
		KeyCancel:        "Cancelar",
		KeyAdd:           "Adicionar",
		KeySettingsSaved: "Configurações salvas com sucesso!",
		KeyEntryAdded:    "Livro adicionado",
		KeyRatingFormat:  "Avaliação: %.1f/5",
		KeyRequiredHint:  "* obrigatório",

		KeyListTitle(model.KindCurrentlyReading): "Lendo Agora",
		KeyListTitle(model.KindWantToRead):       "Quero Ler",
		KeyListTitle(model.KindFinished):         "Livros Lidos",
		KeyListTitle(model.KindReviews):          "Suas Resenhas",
		KeyListTitle(model.KindRecommendations):  "Recomendações",

		KeyEmptyTitle(model.KindCurrentlyReading): "Nenhum livro em andamento",
		KeyEmptyTitle(model.KindWantToRead):       "Sua lista de desejos está vazia",
		KeyEmptyTitle(model.KindFinished):         "Nenhum livro lido ainda",
		KeyEmptyTitle(model.KindReviews):          "Nenhuma resenha ainda",
		KeyEmptyTitle(model.KindRecommendations):  "Nenhuma recomendação ainda",

		KeyEmptyHint(model.KindCurrentlyReading): "Adicione os livros que você está lendo",
		KeyEmptyHint(model.KindWantToRead):       "Adicione os livros que você gostaria de ler",
		KeyEmptyHint(model.KindFinished):         "Adicione os livros que você terminou",
		KeyEmptyHint(model.KindReviews):          "Escreva sobre os livros que você leu",
		KeyEmptyHint(model.KindRecommendations):  "Adicione livros que você recomendaria",

		KeyDialogTitle(model.KindCurrentlyReading): "Adicionar Livro Atual",
		KeyDialogTitle(model.KindWantToRead):       "Adicionar à Lista de Desejos",
		KeyDialogTitle(model.KindFinished):         "Adicionar Livro Lido",
		KeyDialogTitle(model.KindReviews):          "Adicionar Resenha",
		KeyDialogTitle(model.KindRecommendations):  "Adicionar Recomendação",

		KeyConfirm(model.KindCurrentlyReading): "Adicionar Livro",
		KeyConfirm(model.KindWantToRead):       "Adicionar à Lista",
		KeyConfirm(model.KindFinished):         "Adicionar Livro",
		KeyConfirm(model.KindReviews):          "Adicionar Resenha",
		KeyConfirm(model.KindRecommendations):  "Adicionar Recomendação",

		keyPrefixField + string(catalog.FieldTitle):       "Título do Livro",
		keyPrefixField + string(catalog.FieldAuthor):      "Autor",
		keyPrefixField + string(catalog.FieldCurrentPage): "Página Atual",
		keyPrefixField + string(catalog.FieldTotalPages):  "Total de Páginas",
		keyPrefixField + string(catalog.FieldGenre):       "Gênero",
		keyPrefixField + string(catalog.FieldRating):      "Sua Avaliação",
		keyPrefixField + string(catalog.FieldReview):      "Sua resenha",
		keyPrefixField + "recommendation_review":          "Por que você recomenda este livro?",

		KeyReason(catalog.ReasonRequired):      "é obrigatório",
		KeyReason(catalog.ReasonNotNumber):     "deve ser um número inteiro",
		KeyReason(catalog.ReasonOutOfRange):    "está fora do intervalo",
		KeyReason(catalog.ReasonExceedsTotal):  "não pode ser maior que o total de páginas",
		KeyReason(catalog.ReasonUnknownOption): "não está na lista",
	}
}
