package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct checks DTO validation tags.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors flattens validator errors into field-level detail
// suitable for the error response envelope.
func GetValidationErrors(err error) map[string]string {
	details := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		details["error"] = err.Error()
		return details
	}

	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field()[:1]) + fieldErr.Field()[1:]
		switch fieldErr.Tag() {
		case "required":
			details[field] = "is required"
		case "email":
			details[field] = "must be a valid email address"
		case "min":
			details[field] = "must be at least " + fieldErr.Param() + " characters"
		case "max":
			details[field] = "must be at most " + fieldErr.Param() + " characters"
		case "oneof":
			details[field] = "must be one of: " + fieldErr.Param()
		default:
			details[field] = "is invalid"
		}
	}

	return details
}
