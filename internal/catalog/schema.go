package catalog

import (
	"fmt"

	"github.com/ytget/book-tracker/internal/model"
)

// Field names a single input of the add form
type Field string

const (
	FieldTitle       Field = "title"
	FieldAuthor      Field = "author"
	FieldCurrentPage Field = "current_page"
	FieldTotalPages  Field = "total_pages"
	FieldGenre       Field = "genre"
	FieldRating      Field = "rating"
	FieldReview      Field = "review"
)

// String returns the string representation of Field
func (f Field) String() string {
	return string(f)
}

// InputType tells the UI which widget collects a field
type InputType int

const (
	InputText InputType = iota
	InputLongText
	InputNumber
	InputChoice
	InputRating
)

// FieldSpec describes one form field
type FieldSpec struct {
	Field    Field
	Input    InputType
	Required bool
	Options  []string // for InputChoice
	Default  string   // initial raw value
}

// Schema is the ordered field list of one reading list
type Schema struct {
	Kind   model.Kind
	Fields []FieldSpec
}

// Spec returns the spec of field f, if the schema has it
func (s Schema) Spec(f Field) (FieldSpec, bool) {
	for _, spec := range s.Fields {
		if spec.Field == f {
			return spec, true
		}
	}
	return FieldSpec{}, false
}

// Has reports whether the schema collects field f
func (s Schema) Has(f Field) bool {
	_, ok := s.Spec(f)
	return ok
}

// Required returns the required fields in display order
func (s Schema) Required() []Field {
	var required []Field
	for _, spec := range s.Fields {
		if spec.Required {
			required = append(required, spec.Field)
		}
	}
	return required
}

var (
	titleSpec  = FieldSpec{Field: FieldTitle, Input: InputText, Required: true}
	authorSpec = FieldSpec{Field: FieldAuthor, Input: InputText}
	ratingSpec = FieldSpec{Field: FieldRating, Input: InputRating, Default: "0"}
)

// SchemaFor returns the field schema of a reading list
func SchemaFor(kind model.Kind) (Schema, error) {
	switch kind {
	case model.KindCurrentlyReading:
		return Schema{Kind: kind, Fields: []FieldSpec{
			titleSpec,
			authorSpec,
			{Field: FieldCurrentPage, Input: InputNumber, Required: true},
			{Field: FieldTotalPages, Input: InputNumber},
		}}, nil
	case model.KindWantToRead:
		return Schema{Kind: kind, Fields: []FieldSpec{
			titleSpec,
			authorSpec,
			{Field: FieldGenre, Input: InputChoice, Options: model.GenreNames(), Default: string(model.DefaultGenre())},
		}}, nil
	case model.KindFinished:
		return Schema{Kind: kind, Fields: []FieldSpec{
			titleSpec,
			authorSpec,
			ratingSpec,
		}}, nil
	case model.KindReviews:
		return Schema{Kind: kind, Fields: []FieldSpec{
			titleSpec,
			authorSpec,
			ratingSpec,
			{Field: FieldReview, Input: InputLongText, Required: true},
		}}, nil
	case model.KindRecommendations:
		return Schema{Kind: kind, Fields: []FieldSpec{
			titleSpec,
			ratingSpec,
			{Field: FieldReview, Input: InputLongText},
		}}, nil
	default:
		return Schema{}, fmt.Errorf("no schema for list kind %q", kind)
	}
}

// MustSchemaFor is like SchemaFor but panics on unknown kinds
func MustSchemaFor(kind model.Kind) Schema {
	schema, err := SchemaFor(kind)
	if err != nil {
		panic(err)
	}
	return schema
}

// Schemas returns the schema of every reading list in display order
func Schemas() []Schema {
	kinds := model.Kinds()
	schemas := make([]Schema, 0, len(kinds))
	for _, kind := range kinds {
		schemas = append(schemas, MustSchemaFor(kind))
	}
	return schemas
}
