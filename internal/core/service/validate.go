package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fyp-portal/directory-service/internal/core/domain"
)

// accountFields mirrors the declared column constraints of an account record.
type accountFields struct {
	Username string `validate:"required,max=255"`
	Email    string `validate:"omitempty,email,max=255"`
	Role     string `validate:"required,max=20,oneof=student supervisor admin public"`
}

// supervisorFields mirrors the declared column constraints of a roster entry.
type supervisorFields struct {
	Name       string `validate:"required,max=255"`
	Email      string `validate:"required,email,max=255"`
	Department string `validate:"max=255"`
}

// checkStruct runs the declared constraints against s and converts the first
// failure into a domain.ValidationError, so the caller gets the violating
// field and a reason it can re-prompt with. Constraint checks happen before
// any write is attempted.
func checkStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		return domain.NewValidationError(strings.ToLower(fe.Field()), fieldReason(fe))
	}
	return err
}

// fieldReason converts a single validator.FieldError into a human-readable reason.
func fieldReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}
