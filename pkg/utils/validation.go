package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// decimal2Pattern matches a decimal string with exactly two fractional
// digits, e.g. "250000000.00".
var decimal2Pattern = regexp.MustCompile(`^-?\d+\.\d{2}$`)

var knownGenres = map[string]struct{}{
	"action": {}, "adventure": {}, "animation": {}, "comedy": {},
	"crime": {}, "documentary": {}, "drama": {}, "fantasy": {},
	"horror": {}, "romance": {}, "sci_fi": {}, "thriller": {},
}

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterValidation("decimal2", func(fl validator.FieldLevel) bool {
		return decimal2Pattern.MatchString(fl.Field().String())
	})

	v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		_, ok := knownGenres[fl.Field().String()]
		return ok
	})

	return v
}

func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
	}

	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "url":
		return "Must be a valid URL"
	case "min":
		return fmt.Sprintf("Minimum is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum is %s", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "datetime":
		return "Must be a date in YYYY-MM-DD format"
	case "decimal2":
		return "Must be a decimal with exactly 2 fractional digits"
	case "genre":
		return "Unknown genre"
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// formats validation errors map into single string
func FormatValidationErrors(errors map[string]string) string {
	var msgs []string
	for field, msg := range errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}
