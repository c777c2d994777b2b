package handlers

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator with the "slug" and "timezone"
// tags registered.
func NewValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("slug", validateSlug)
	_ = v.RegisterValidation("timezone", validateTimezone)
	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// IsSlug reports whether s is lowercase words joined by single dashes.
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

func validateSlug(fl validator.FieldLevel) bool {
	return IsSlug(fl.Field().String())
}

func validateTimezone(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" || name == "Local" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}
