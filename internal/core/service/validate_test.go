package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/fyp-portal/directory-service/internal/core/domain"
)

func TestCheckStruct_LengthLimits(t *testing.T) {
	v := validator.New()

	long := strings.Repeat("x", 256)
	err := checkStruct(v, accountFields{Username: long, Role: "student"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "username" {
		t.Errorf("unexpected field: %q", ve.Field)
	}
	if !strings.Contains(ve.Reason, "255") {
		t.Errorf("reason should state the limit, got %q", ve.Reason)
	}

	err = checkStruct(v, supervisorFields{Name: "ok", Email: "ok@univ.edu", Department: long})
	if !errors.As(err, &ve) || ve.Field != "department" {
		t.Fatalf("expected department ValidationError, got %v", err)
	}
}

func TestCheckStruct_Valid(t *testing.T) {
	v := validator.New()

	if err := checkStruct(v, accountFields{Username: "ok", Email: "ok@univ.edu", Role: "public"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := checkStruct(v, supervisorFields{Name: "Dr. Lee", Email: "lee@univ.edu"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
