package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// registerExclusive adds a custom validator ensuring two fields are mutually exclusive.
// It registers both the validation logic and a human-readable error message,
// and reports fields by their "label" tag so messages name the flag.
func registerExclusive(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"exclusive",
		validateExclusive,
		"{0} is mutually exclusive with {1}",
	); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	validator.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return nil
}

// registerExtension adds a validator for file extensions such as ".txt".
func registerExtension(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"extension",
		validateExtension,
		"{0} must be a file extension starting with '.'",
	); err != nil {
		return fmt.Errorf("registering extension validation: %w", err)
	}

	return nil
}

// validateExtension checks that a string is a dot followed by at least one
// character, with no further separators.
func validateExtension(fl validator.FieldLevel) bool {
	ext := fl.Field().String()

	return len(ext) > 1 && ext[0] == '.' && !strings.ContainsAny(ext[1:], "./\\")
}

// validateExclusive checks if two fields are mutually exclusive.
// Returns false if both fields have non-empty values.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	otherField := fl.Parent().FieldByName(fl.Param())

	if !field.IsValid() || !otherField.IsValid() {
		return true
	}

	if field.Kind() == reflect.String && otherField.Kind() == reflect.String {
		return field.String() == "" || otherField.String() == ""
	}

	return true
}
