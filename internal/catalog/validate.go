package catalog

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/ytget/book-tracker/internal/model"
)

// Validation tags
const (
	tagGenre        = "genre"
	tagExceedsTotal = "ltetotal"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation(tagGenre, validateGenre)
	validate.RegisterStructValidation(validatePageOrder, entryInput{})
}

// entryInput is the parsed form input checked by the validator before an
// entry is built. Presence of required fields is checked against the schema.
type entryInput struct {
	Title       string   `validate:"required"`
	CurrentPage *int     `validate:"omitnil,gte=1"`
	TotalPages  *int     `validate:"omitnil,gte=1"`
	Rating      *float64 `validate:"omitnil,gte=0,lte=5"`
	Genre       *string  `validate:"omitnil,genre"`
}

var inputFields = map[string]Field{
	"Title":       FieldTitle,
	"CurrentPage": FieldCurrentPage,
	"TotalPages":  FieldTotalPages,
	"Rating":      FieldRating,
	"Genre":       FieldGenre,
}

func validateGenre(fl validator.FieldLevel) bool {
	_, err := model.ParseGenre(fl.Field().String())
	return err == nil
}

func validatePageOrder(sl validator.StructLevel) {
	in := sl.Current().Interface().(entryInput)
	if in.CurrentPage == nil || in.TotalPages == nil {
		return
	}
	if *in.CurrentPage > *in.TotalPages {
		sl.ReportError(in.CurrentPage, "currentPage", "CurrentPage", tagExceedsTotal, "TotalPages")
	}
}

// checkInput runs the validator and maps its errors to field errors
func checkInput(in entryInput) []FieldError {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: FieldTitle, Reason: "invalid", Message: err.Error()}}
	}

	var out []FieldError
	for _, verr := range verrs {
		field, ok := inputFields[verr.StructField()]
		if !ok {
			continue
		}

		var reason Reason
		switch verr.Tag() {
		case "required":
			reason = ReasonRequired
		case "gte", "lte":
			reason = ReasonOutOfRange
		case tagGenre:
			reason = ReasonUnknownOption
		case tagExceedsTotal:
			reason = ReasonExceedsTotal
		default:
			reason = Reason(verr.Tag())
		}
		out = append(out, newFieldError(field, reason))
	}
	return out
}
