package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/book-tracker/internal/model"
)

func TestSchemaFor_RequiredFields(t *testing.T) {
	tests := []struct {
		kind     model.Kind
		required []Field
		optional []Field
	}{
		{model.KindCurrentlyReading, []Field{FieldTitle, FieldCurrentPage}, []Field{FieldAuthor, FieldTotalPages}},
		{model.KindWantToRead, []Field{FieldTitle}, []Field{FieldAuthor, FieldGenre}},
		{model.KindFinished, []Field{FieldTitle}, []Field{FieldAuthor, FieldRating}},
		{model.KindReviews, []Field{FieldTitle, FieldReview}, []Field{FieldAuthor, FieldRating}},
		{model.KindRecommendations, []Field{FieldTitle}, []Field{FieldRating, FieldReview}},
	}

	for _, test := range tests {
		t.Run(test.kind.String(), func(t *testing.T) {
			schema, err := SchemaFor(test.kind)
			require.NoError(t, err)

			assert.Equal(t, test.kind, schema.Kind)
			assert.Equal(t, test.required, schema.Required())
			for _, f := range test.optional {
				spec, ok := schema.Spec(f)
				require.True(t, ok, "missing optional field %s", f)
				assert.False(t, spec.Required, "field %s should be optional", f)
			}
			assert.Len(t, schema.Fields, len(test.required)+len(test.optional))
		})
	}
}

func TestSchemaFor_GenreDefaultsToFirstOption(t *testing.T) {
	schema := MustSchemaFor(model.KindWantToRead)

	spec, ok := schema.Spec(FieldGenre)
	require.True(t, ok)
	assert.Equal(t, InputChoice, spec.Input)
	assert.Equal(t, spec.Options[0], spec.Default)
}

func TestSchemaFor_UnknownKind(t *testing.T) {
	_, err := SchemaFor(model.Kind("home"))
	assert.Error(t, err)
	assert.Panics(t, func() { MustSchemaFor(model.Kind("home")) })
}

func TestSchemas_CoverEveryKind(t *testing.T) {
	schemas := Schemas()
	require.Len(t, schemas, len(model.Kinds()))
	for i, kind := range model.Kinds() {
		assert.Equal(t, kind, schemas[i].Kind)
	}
}
