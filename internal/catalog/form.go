package catalog

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/book-tracker/internal/model"
)

// DefaultRatingStep matches a five-step 0..5 slider
const DefaultRatingStep = 1.0

// Form collects raw input for one new entry of a reading list. A Form is
// owned by a single add dialog and is not safe for concurrent use.
type Form struct {
	schema     Schema
	values     map[Field]string
	rating     float64
	ratingStep float64

	newID func() string
	now   func() time.Time
}

// FormOption configures a Form
type FormOption func(*Form)

// WithIDGenerator replaces the uuid based ID generator
func WithIDGenerator(fn func() string) FormOption {
	return func(f *Form) {
		f.newID = fn
	}
}

// WithClock replaces time.Now for creation timestamps
func WithClock(fn func() time.Time) FormOption {
	return func(f *Form) {
		f.now = fn
	}
}

// WithRatingStep sets the slider granularity; non-positive values keep the default
func WithRatingStep(step float64) FormOption {
	return func(f *Form) {
		if step > 0 {
			f.ratingStep = step
		}
	}
}

// NewForm creates a form for schema with every field at its default
func NewForm(schema Schema, opts ...FormOption) *Form {
	f := &Form{
		schema:     schema,
		ratingStep: DefaultRatingStep,
		newID:      uuid.NewString,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.Reset()
	return f
}

// Schema returns the schema the form was built for
func (f *Form) Schema() Schema {
	return f.schema
}

// Reset restores every field to its default value
func (f *Form) Reset() {
	f.values = make(map[Field]string, len(f.schema.Fields))
	f.rating = model.MinRating
	for _, spec := range f.schema.Fields {
		if spec.Input == InputRating {
			if v, err := strconv.ParseFloat(spec.Default, 64); err == nil {
				f.SetRating(v)
			}
			continue
		}
		f.values[spec.Field] = spec.Default
	}
}

// Set stores the raw text of a field. Fields the schema does not collect are ignored.
func (f *Form) Set(field Field, raw string) {
	spec, ok := f.schema.Spec(field)
	if !ok {
		return
	}
	if spec.Input == InputRating {
		if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			f.SetRating(v)
		}
		return
	}
	f.values[field] = raw
}

// Value returns the raw text of a field
func (f *Form) Value(field Field) string {
	return f.values[field]
}

// SetRating clamps v to the rating range, snaps it to the rating step and
// returns the stored value
func (f *Form) SetRating(v float64) float64 {
	if math.IsNaN(v) {
		v = model.MinRating
	}
	v = math.Round(v/f.ratingStep) * f.ratingStep
	f.rating = math.Max(model.MinRating, math.Min(model.MaxRating, v))
	return f.rating
}

// RatingStep returns the granularity ratings are snapped to
func (f *Form) RatingStep() float64 {
	return f.ratingStep
}

// Rating returns the current rating value
func (f *Form) Rating() float64 {
	return f.rating
}

// Missing returns the required fields that are blank after trimming
func (f *Form) Missing() []Field {
	var missing []Field
	for _, spec := range f.schema.Fields {
		if !spec.Required || spec.Input == InputRating {
			continue
		}
		if strings.TrimSpace(f.values[spec.Field]) == "" {
			missing = append(missing, spec.Field)
		}
	}
	return missing
}

// Ready reports whether all required fields are filled in, which is when the
// submit action is enabled
func (f *Form) Ready() bool {
	return len(f.Missing()) == 0
}

// Validate builds a new entry from the form input. It returns a
// *ValidationError when a required field is blank, a number does not parse or
// a value is out of range.
func (f *Form) Validate() (model.Entry, error) {
	var errs []FieldError
	for _, field := range f.Missing() {
		errs = append(errs, newFieldError(field, ReasonRequired))
	}

	in := entryInput{Title: strings.TrimSpace(f.values[FieldTitle])}
	for _, target := range []struct {
		field Field
		dst   **int
	}{
		{FieldCurrentPage, &in.CurrentPage},
		{FieldTotalPages, &in.TotalPages},
	} {
		if !f.schema.Has(target.field) {
			continue
		}
		n, present, err := parsePageCount(f.values[target.field])
		if err != nil {
			errs = append(errs, newFieldError(target.field, ReasonNotNumber))
			continue
		}
		if present {
			*target.dst = &n
		}
	}
	if f.schema.Has(FieldRating) {
		rating := f.rating
		in.Rating = &rating
	}
	if f.schema.Has(FieldGenre) {
		genre := strings.TrimSpace(f.values[FieldGenre])
		if genre == "" {
			genre = string(model.DefaultGenre())
		}
		in.Genre = &genre
	}

	for _, fe := range checkInput(in) {
		if !reported(errs, fe.Field) {
			errs = append(errs, fe)
		}
	}
	if len(errs) > 0 {
		return model.Entry{}, &ValidationError{Errors: errs}
	}

	entry := model.Entry{
		ID:          f.newID(),
		Kind:        f.schema.Kind,
		Title:       in.Title,
		CreatedAt:   f.now(),
		CurrentPage: in.CurrentPage,
		TotalPages:  in.TotalPages,
		Rating:      in.Rating,
	}
	if f.schema.Has(FieldAuthor) {
		entry.Author = strings.TrimSpace(f.values[FieldAuthor])
	}
	if in.Genre != nil {
		genre := model.Genre(*in.Genre)
		entry.Genre = &genre
	}
	if f.schema.Has(FieldReview) {
		if review := strings.TrimSpace(f.values[FieldReview]); review != "" {
			entry.Review = &review
		}
	}
	return entry, nil
}

// FilterDigits drops every rune of s that is not an ASCII digit
func FilterDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// parsePageCount parses a page number. Blank input is reported as absent.
func parsePageCount(raw string) (int, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

func reported(errs []FieldError, field Field) bool {
	for _, fe := range errs {
		if fe.Field == field {
			return true
		}
	}
	return false
}
