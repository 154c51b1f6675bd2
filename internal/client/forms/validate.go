package forms

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	tagUsernameFormat   = "username_format"
	tagPasswordStrength = "password_strength"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// RegisterValidation only fails for an empty tag.
	_ = v.RegisterValidation(tagUsernameFormat, func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation(tagPasswordStrength, func(fl validator.FieldLevel) bool {
		return isStrongPassword(fl.Field().String())
	})
	return v
}

// isStrongPassword requires at least one lower-case letter, one upper-case
// letter and one digit. Length is checked separately by the min rule.
func isStrongPassword(s string) bool {
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}
