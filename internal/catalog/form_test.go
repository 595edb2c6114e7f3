package catalog

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/book-tracker/internal/model"
)

var fixedNow = time.Date(2025, time.March, 7, 9, 30, 0, 0, time.UTC)

func newTestForm(kind model.Kind, opts ...FormOption) *Form {
	seq := 0
	opts = append([]FormOption{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	}, opts...)
	return NewForm(MustSchemaFor(kind), opts...)
}

func requireValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	return verr
}

func TestForm_CurrentlyReadingSuccess(t *testing.T) {
	f := newTestForm(model.KindCurrentlyReading)
	f.Set(FieldTitle, "  Dune ")
	f.Set(FieldAuthor, "Frank Herbert")
	f.Set(FieldCurrentPage, "10")

	require.True(t, f.Ready())
	entry, err := f.Validate()
	require.NoError(t, err)

	assert.Equal(t, "id-1", entry.ID)
	assert.Equal(t, model.KindCurrentlyReading, entry.Kind)
	assert.Equal(t, "Dune", entry.Title)
	assert.Equal(t, "Frank Herbert", entry.Author)
	assert.Equal(t, fixedNow, entry.CreatedAt)
	require.NotNil(t, entry.CurrentPage)
	assert.Equal(t, 10, *entry.CurrentPage)
	assert.Nil(t, entry.TotalPages)
	assert.Nil(t, entry.Rating)
	assert.Nil(t, entry.Genre)
	assert.Nil(t, entry.Review)
}

func TestForm_BlankTitleFails(t *testing.T) {
	f := newTestForm(model.KindCurrentlyReading)
	f.Set(FieldTitle, "   ")
	f.Set(FieldAuthor, "Somebody")
	f.Set(FieldCurrentPage, "10")
	f.Set(FieldTotalPages, "100")

	assert.False(t, f.Ready())
	assert.Equal(t, []Field{FieldTitle}, f.Missing())

	_, err := f.Validate()
	verr := requireValidationError(t, err)
	assert.True(t, verr.Has(FieldTitle, ReasonRequired))
	assert.Equal(t, []Field{FieldTitle}, verr.Fields())
}

func TestForm_ReadyTracksRequiredFields(t *testing.T) {
	f := newTestForm(model.KindCurrentlyReading)
	assert.False(t, f.Ready())

	f.Set(FieldTitle, "Dune")
	assert.False(t, f.Ready())
	assert.Equal(t, []Field{FieldCurrentPage}, f.Missing())

	f.Set(FieldCurrentPage, "1")
	assert.True(t, f.Ready())

	f.Set(FieldTitle, "")
	assert.False(t, f.Ready())
}

func TestForm_NumericFailures(t *testing.T) {
	tests := []struct {
		name    string
		current string
		total   string
		field   Field
		reason  Reason
	}{
		{"letters in current page", "12a", "", FieldCurrentPage, ReasonNotNumber},
		{"overflowing current page", "99999999999999999999999", "", FieldCurrentPage, ReasonNotNumber},
		{"letters in total pages", "12", "x", FieldTotalPages, ReasonNotNumber},
		{"zero current page", "0", "", FieldCurrentPage, ReasonOutOfRange},
		{"negative current page", "-3", "", FieldCurrentPage, ReasonOutOfRange},
		{"zero total pages", "1", "0", FieldTotalPages, ReasonOutOfRange},
		{"current beyond total", "250", "200", FieldCurrentPage, ReasonExceedsTotal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newTestForm(model.KindCurrentlyReading)
			f.Set(FieldTitle, "Dune")
			f.Set(FieldCurrentPage, test.current)
			f.Set(FieldTotalPages, test.total)

			_, err := f.Validate()
			verr := requireValidationError(t, err)
			assert.True(t, verr.Has(test.field, test.reason), "errors: %v", verr.Errors)
		})
	}
}

func TestForm_CurrentEqualToTotalIsValid(t *testing.T) {
	f := newTestForm(model.KindCurrentlyReading)
	f.Set(FieldTitle, "Dune")
	f.Set(FieldCurrentPage, "200")
	f.Set(FieldTotalPages, "200")

	entry, err := f.Validate()
	require.NoError(t, err)
	percent, ok := entry.ProgressPercent()
	assert.True(t, ok)
	assert.Equal(t, 100, percent)
}

func TestForm_WantToReadGenre(t *testing.T) {
	f := newTestForm(model.KindWantToRead)
	f.Set(FieldTitle, "Neuromancer")

	entry, err := f.Validate()
	require.NoError(t, err)
	require.NotNil(t, entry.Genre)
	assert.Equal(t, model.GenreFiction, *entry.Genre)

	f.Set(FieldGenre, "Science Fiction")
	entry, err = f.Validate()
	require.NoError(t, err)
	assert.Equal(t, model.GenreScienceFiction, *entry.Genre)

	f.Set(FieldGenre, "Cookbook")
	_, err = f.Validate()
	verr := requireValidationError(t, err)
	assert.True(t, verr.Has(FieldGenre, ReasonUnknownOption))
}

func TestForm_RatingDefaultsAndSnapping(t *testing.T) {
	f := newTestForm(model.KindFinished)
	f.Set(FieldTitle, "Emma")

	entry, err := f.Validate()
	require.NoError(t, err)
	require.NotNil(t, entry.Rating)
	assert.Equal(t, 0.0, *entry.Rating)

	assert.Equal(t, 3.0, f.SetRating(3.4))
	assert.Equal(t, 5.0, f.SetRating(7))
	assert.Equal(t, 0.0, f.SetRating(-2))

	half := newTestForm(model.KindFinished, WithRatingStep(0.5))
	assert.Equal(t, 3.5, half.SetRating(3.4))

	f.Set(FieldRating, "4")
	assert.Equal(t, 4.0, f.Rating())
	f.Set(FieldRating, "not a number")
	assert.Equal(t, 4.0, f.Rating())
}

func TestForm_ReviewsRequireReviewText(t *testing.T) {
	f := newTestForm(model.KindReviews)
	f.Set(FieldTitle, "Middlemarch")
	assert.False(t, f.Ready())

	_, err := f.Validate()
	verr := requireValidationError(t, err)
	assert.True(t, verr.Has(FieldReview, ReasonRequired))

	f.Set(FieldReview, "A slow, rewarding read.")
	f.SetRating(4)
	entry, err := f.Validate()
	require.NoError(t, err)
	require.NotNil(t, entry.Review)
	assert.Equal(t, "A slow, rewarding read.", *entry.Review)
	assert.Equal(t, 4.0, *entry.Rating)
}

func TestForm_RecommendationIgnoresAuthor(t *testing.T) {
	f := newTestForm(model.KindRecommendations)
	f.Set(FieldTitle, "Piranesi")
	f.Set(FieldAuthor, "Susanna Clarke")
	f.Set(FieldReview, "   ")

	entry, err := f.Validate()
	require.NoError(t, err)
	assert.Empty(t, entry.Author)
	assert.Nil(t, entry.Review)
	assert.Empty(t, f.Value(FieldAuthor))
}

func TestForm_ResetRestoresDefaults(t *testing.T) {
	f := newTestForm(model.KindWantToRead)
	f.Set(FieldTitle, "Dune")
	f.Set(FieldGenre, "History")

	f.Reset()
	assert.Empty(t, f.Value(FieldTitle))
	assert.Equal(t, string(model.DefaultGenre()), f.Value(FieldGenre))
}

func TestForm_GeneratesUniqueIDs(t *testing.T) {
	f := NewForm(MustSchemaFor(model.KindWantToRead))
	f.Set(FieldTitle, "Dune")

	store := NewStore()
	for i := 0; i < 50; i++ {
		entry, err := f.Validate()
		require.NoError(t, err)
		store = store.Append(entry)
	}

	seen := make(map[string]bool)
	for e := range store.Entries() {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
	assert.Len(t, seen, 50)
}

func TestFilterDigits(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"123", "123"},
		{"1a2b3", "123"},
		{"-42", "42"},
		{" 7 ", "7"},
		{"abc", ""},
		{"١٢", ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, FilterDigits(test.input), "input %q", test.input)
	}
}

func TestValidationError_Message(t *testing.T) {
	verr := &ValidationError{Errors: []FieldError{
		newFieldError(FieldTitle, ReasonRequired),
		newFieldError(FieldCurrentPage, ReasonExceedsTotal),
	}}
	assert.Equal(t, "validation failed: title is required; current_page must not exceed total_pages", verr.Error())
}
