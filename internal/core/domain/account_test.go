package domain

import (
	"errors"
	"testing"
)

func TestRole_Valid(t *testing.T) {
	for _, r := range Roles {
		if !r.Valid() {
			t.Errorf("role %q should be valid", r)
		}
	}

	for _, r := range []Role{"", "teacher", "Student", "ADMIN", "superuser"} {
		if r.Valid() {
			t.Errorf("role %q should be invalid", r)
		}
	}
}

func TestDefaultRole_IsEnumerated(t *testing.T) {
	if !DefaultRole.Valid() {
		t.Fatalf("default role %q is not an enumerated role", DefaultRole)
	}
}

func TestUniqueViolationSentinels(t *testing.T) {
	if !errors.Is(ErrUsernameTaken, ErrUniqueViolation) {
		t.Errorf("ErrUsernameTaken should wrap ErrUniqueViolation")
	}
	if !errors.Is(ErrEmailTaken, ErrUniqueViolation) {
		t.Errorf("ErrEmailTaken should wrap ErrUniqueViolation")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("email", "must be a valid email")
	if got := err.Error(); got != "email: must be a valid email" {
		t.Errorf("unexpected message: %q", got)
	}
	if !IsValidation(err) {
		t.Errorf("IsValidation should report true for a ValidationError")
	}
	if IsValidation(ErrAccountNotFound) {
		t.Errorf("IsValidation should report false for a sentinel")
	}
}
