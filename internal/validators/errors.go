package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType  = errors.New("unsupported type for validation")
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError describes one failed field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ValidationErrors is returned by [StructValidator.Validate] when at least
// one field fails. It matches [ErrValidationFailed] with errors.Is.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fieldErr := range e {
		parts = append(parts, fieldErr.Field+": "+fieldErr.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Fields maps each failed field to its message. When a field fails more
// than one rule the first message wins.
func (e ValidationErrors) Fields() map[string]string {
	fields := make(map[string]string, len(e))
	for _, fieldErr := range e {
		if _, ok := fields[fieldErr.Field]; !ok {
			fields[fieldErr.Field] = fieldErr.Message
		}
	}
	return fields
}

// AsValidationErrors returns the ValidationErrors in err's chain.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs, true
	}
	return nil, false
}
