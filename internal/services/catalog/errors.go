package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog flags a catalog value that does not satisfy the schema.
var ErrInvalidCatalog = errors.New("invalid catalog")

// ValidationError describes where a catalog value broke the schema.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error on %s: %s", e.Field, e.Message)
}

func (e ValidationError) Is(target error) bool {
	return target == ErrInvalidCatalog
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) error {
	return ValidationError{
		Field:   field,
		Message: message,
	}
}
