package validator

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Namespace()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "numeric":
				errors[field] = field + " must be numeric"
			case "oneof":
				errors[field] = field + " must be one of [" + e.Param() + "]"
			case "len":
				errors[field] = field + " must have length " + e.Param()
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

// Describe flattens a validation error into one stable, sorted line
func (cv *CustomValidator) Describe(err error) string {
	messages := cv.FormatValidationErrors(err)
	if len(messages) == 0 {
		return err.Error()
	}
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		lines = append(lines, msg)
	}
	sort.Strings(lines)
	return strings.Join(lines, "; ")
}
