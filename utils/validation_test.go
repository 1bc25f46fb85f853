package utils

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"ClaimTrack/models"
)

func TestValidateClaim(t *testing.T) {
	valid := &models.Claim{
		ClaimID:    "C100",
		Amount:     decimal.RequireFromString("250"),
		PaidAmount: decimal.RequireFromString("200"),
	}
	if err := ValidateClaim(valid); err != nil {
		t.Errorf("valid claim rejected: %v", err)
	}

	if err := ValidateClaim(&models.Claim{}); err == nil {
		t.Error("claim without an identifier must be rejected")
	}

	negative := &models.Claim{
		ClaimID: "C101",
		Amount:  decimal.RequireFromString("-1"),
	}
	if err := ValidateClaim(negative); err == nil {
		t.Error("negative amount must be rejected")
	}
}

func TestValidateNoteBody(t *testing.T) {
	if err := ValidateNoteBody("looks underpaid"); err != nil {
		t.Errorf("valid note rejected: %v", err)
	}
	if err := ValidateNoteBody(""); err == nil {
		t.Error("blank note must be rejected")
	}
}

func TestValidatePasswordComplexity(t *testing.T) {
	cases := []struct {
		password string
		want     error
	}{
		{"Aa1@strong", nil},
		{"short", ErrPasswordTooShort},
		{"alllowercase1@", ErrPasswordNotComplex},
		{"NoDigitsHere@", ErrPasswordNotComplex},
	}
	for _, c := range cases {
		err := validatePassword(c.password)
		if c.want == nil && err != nil {
			t.Errorf("validatePassword(%q) = %v, want nil", c.password, err)
		}
		if c.want != nil && !errors.Is(err, c.want) {
			t.Errorf("validatePassword(%q) = %v, want %v", c.password, err, c.want)
		}
	}
}

func TestValidateUserData(t *testing.T) {
	user := models.User{Username: "adjuster1", Email: "a@example.com", Password: "Aa1@strong"}
	if err := ValidateUserData(user); err != nil {
		t.Errorf("valid user rejected: %v", err)
	}
	user.Email = "not-an-email"
	if err := ValidateUserData(user); err == nil {
		t.Error("invalid email must be rejected")
	}
}
