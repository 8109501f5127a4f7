// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	validatorlib "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type requestValidator struct {
	validate *validatorlib.Validate
}

// New creates an echo.Validator backed by go-playground/validator struct tags.
func New() echo.Validator {
	return &requestValidator{
		validate: validatorlib.New(validatorlib.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
