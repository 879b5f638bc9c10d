package validators

import (
	"errors"
	"strings"

	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrValidation         = errors.New("validation failed")
	ErrDuplicateFieldName = errors.New("duplicate field name")
)

// ValidationError carries every violation found in one validation call, in
// the order they were produced.
type ValidationError struct {
	Violations []models.Violation
}

// NewValidationError returns nil when violations is empty.
func NewValidationError(violations []models.Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Field+": "+v.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(messages, "; ")
}

// Is makes errors.Is(err, ErrValidation) hold for any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ViolationsOf extracts the violation list from err, if err wraps a
// *ValidationError.
func ViolationsOf(err error) []models.Violation {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Violations
	}
	return nil
}
