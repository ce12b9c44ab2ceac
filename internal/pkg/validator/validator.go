// Package validator wraps go-playground/validator with escrowctl's error
// formatting and a small registry of domain rules (see RegisterRule).
package validator

import (
	"errors"
	"fmt"
	"sync"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of every chain returned by Validate
// and Var.
var ErrValidationFailed = errors.New("validation failed")

var (
	validator *gvalidator.Validate
	initOnce  sync.Once
)

const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// Init prepares the singleton. It is safe to call many times; RegisterRule,
// Validate and Var call it themselves.
func Init() {
	initOnce.Do(func() {
		validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	})
}

// RegisterRule adds a string rule usable as a tag, e.g. `validate:"ledger_address"`.
func RegisterRule(tag string, rule func(string) bool) error {
	Init()

	return validator.RegisterValidation(tag, func(fl gvalidator.FieldLevel) bool {
		return rule(fl.Field().String())
	})
}

func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		field := validationErr.Field()
		if field == "" {
			field = "value"
		}

		errs = append(errs, fmt.Errorf(errStringFormat, field, validationErr.Value(), validationErr.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks v against its struct tags.
func Validate(v any) error {
	Init()

	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against a tag expression such as "required,ledger_address".
func Var(v any, tag string) error {
	Init()

	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
