// Package validation adapts go-playground/validator to the domain's syntax checks.
package validation

import (
	"signup/internal/domain/service"
	"signup/internal/errors"

	"github.com/go-playground/validator/v10"
)

const emailTag = "required,email"

type emailValidator struct {
	validate *validator.Validate
}

// NewEmailValidator returns an EmailValidator backed by the validator "email" rule.
func NewEmailValidator() service.EmailValidator {
	return &emailValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// IsValid reports whether email is a syntactically valid address.
// Validation failures are a false result; only a misconfigured rule is an error.
func (v *emailValidator) IsValid(email string) (bool, error) {
	err := v.validate.Var(email, emailTag)
	if err == nil {
		return true, nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return false, nil
	}

	return false, errors.Wrap(err, "validate email")
}
