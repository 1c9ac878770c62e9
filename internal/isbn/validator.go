// Package isbn checks that a string is shaped like an ISBN-10 or ISBN-13.
//
// Only the format is checked. Check digits are not verified, so any string of
// the right length and grouping is accepted.
package isbn

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validator reports whether a candidate string is a well-formed ISBN.
type Validator interface {
	IsValid(candidate string) bool
}

// pattern accepts an optional "ISBN", "ISBN-10" or "ISBN-13" prefix followed
// by 13 digits, or 9 digits and a digit/X check character. Single hyphens or
// spaces may separate the groups.
var pattern = regexp.MustCompile(`^(?:ISBN(?:-1[03])?:? ?)?(?:(?:\d[- ]?){12}\d|(?:\d[- ]?){9}[\dXx])$`)

// RegexValidator is the default Validator.
type RegexValidator struct{}

// NewValidator returns the default Validator.
func NewValidator() RegexValidator {
	return RegexValidator{}
}

func (RegexValidator) IsValid(candidate string) bool {
	return pattern.MatchString(candidate)
}

// IsValid checks candidate with the default rules.
func IsValid(candidate string) bool {
	return pattern.MatchString(candidate)
}

// RegisterValidation adds the "isbn" struct tag to v.
func RegisterValidation(v *validator.Validate) error {
	return v.RegisterValidation("isbn", func(fl validator.FieldLevel) bool {
		return IsValid(fl.Field().String())
	})
}
