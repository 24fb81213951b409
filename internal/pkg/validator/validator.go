// Package validator wraps the go-playground/validator library, enabling
// declarative struct validation with standardized error formatting. It is
// initialized automatically on import and safe to use directly.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain
// when validation fails, so callers can detect validation failures with
// errors.Is even when several field errors are reported.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is the singleton go-playground validator instance.
var validator *gvalidator.Validate

// errStringFormat describes a single failed field.
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// formatError converts a raw validator error into a combined error rooted at
// ErrValidationFailed with one formatted message per failed field. Errors of
// other kinds pass through unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks whether the given struct satisfies its validation tags.
// It returns nil on success, or a combined error including
// ErrValidationFailed and one message per failing field.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
