package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	regexSpecialChar = regexp.MustCompile(`[!@#\$%\^&\*\(\)_\+\-=\[\]\{\};:'",\.<>\/\?\\\|]`)
	regexUppercase   = regexp.MustCompile(`[A-Z]`)
	regexSlug        = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("slug", validateSlug)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexSpecialChar.MatchString(password)
	hasUppercase := regexUppercase.MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateSlug(fl validator.FieldLevel) bool {
	return IsValidSlug(fl.Field().String())
}

// IsValidSlug reports whether s is URL-safe: lowercase alphanumerics
// separated by single hyphens, no leading or trailing hyphen.
func IsValidSlug(s string) bool {
	if s == "" || len(s) > 63 {
		return false
	}
	return regexSlug.MatchString(s)
}
