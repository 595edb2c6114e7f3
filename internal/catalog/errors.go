package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation matches every *ValidationError via errors.Is
var ErrValidation = errors.New("validation")

// Reason classifies why a field was rejected
type Reason string

const (
	ReasonRequired      Reason = "required"
	ReasonNotNumber     Reason = "not_a_number"
	ReasonOutOfRange    Reason = "out_of_range"
	ReasonExceedsTotal  Reason = "exceeds_total"
	ReasonUnknownOption Reason = "unknown_option"
)

// FieldError describes one rejected field
type FieldError struct {
	Field   Field
	Reason  Reason
	Message string
}

// ValidationError is returned by Form.Validate when the input cannot become an entry
type ValidationError struct {
	Errors []FieldError
}

// Error implements error
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Message)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// Is makes errors.Is(err, ErrValidation) true
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Has reports whether field f was rejected for reason r
func (e *ValidationError) Has(f Field, r Reason) bool {
	for _, fe := range e.Errors {
		if fe.Field == f && fe.Reason == r {
			return true
		}
	}
	return false
}

// Fields returns the rejected fields in report order
func (e *ValidationError) Fields() []Field {
	fields := make([]Field, 0, len(e.Errors))
	for _, fe := range e.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

func newFieldError(f Field, r Reason) FieldError {
	var msg string
	switch r {
	case ReasonRequired:
		msg = fmt.Sprintf("%s is required", f)
	case ReasonNotNumber:
		msg = fmt.Sprintf("%s must be a whole number", f)
	case ReasonOutOfRange:
		msg = fmt.Sprintf("%s is out of range", f)
	case ReasonExceedsTotal:
		msg = fmt.Sprintf("%s must not exceed %s", FieldCurrentPage, FieldTotalPages)
	case ReasonUnknownOption:
		msg = fmt.Sprintf("%s is not a known option", f)
	default:
		msg = fmt.Sprintf("%s is invalid", f)
	}
	return FieldError{Field: f, Reason: r, Message: msg}
}
