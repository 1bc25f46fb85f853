package utils

import (
	"ClaimTrack/models"
	"errors"
	"log"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNotComplex = errors.New("password must include at least one uppercase letter, one lowercase letter, one digit, and one special character")
	ErrNegativeAmount     = errors.New("amount must not be negative")
)

// ValidateClaim validates a claim before it is written from the web
// layer. The importers do not run this; they absorb messy data by design.
func ValidateClaim(claim *models.Claim) error {
	err := validation.ValidateStruct(claim,
		validation.Field(&claim.ClaimID, validation.Required, validation.Length(1, 32)),
		validation.Field(&claim.PatientName, validation.Length(0, 128)),
		validation.Field(&claim.Payer, validation.Length(0, 128)),
		validation.Field(&claim.Status, validation.Length(0, 32)),
		validation.Field(&claim.Amount, validation.By(nonNegativeAmount)),
		validation.Field(&claim.PaidAmount, validation.By(nonNegativeAmount)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

func nonNegativeAmount(value interface{}) error {
	amount, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("not a decimal amount")
	}
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// ValidateNoteBody ensures a note has content; blank notes are never
// persisted.
func ValidateNoteBody(body string) error {
	return validation.Validate(body,
		validation.Required.Error("note body cannot be blank"),
		validation.Length(1, 10000),
	)
}

// ValidateUserData validates user data using ozzo-validation.
func ValidateUserData(user models.User) error {
	err := validation.ValidateStruct(&user,
		validation.Field(&user.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&user.Email, validation.Required, is.Email),
		validation.Field(&user.Password, validation.Required.Error("password cannot be blank"), validation.By(validatePassword)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// validatePassword checks the password for length and complexity.
func validatePassword(value interface{}) error {
	password, _ := value.(string)

	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var (
		lowercaseRegex = regexp.MustCompile(`[a-z]`)
		uppercaseRegex = regexp.MustCompile(`[A-Z]`)
		digitRegex     = regexp.MustCompile(`\d`)
		specialRegex   = regexp.MustCompile(`[@$!%*?&]`)
	)

	if !lowercaseRegex.MatchString(password) ||
		!uppercaseRegex.MatchString(password) ||
		!digitRegex.MatchString(password) ||
		!specialRegex.MatchString(password) {
		return ErrPasswordNotComplex
	}
	return nil
}
