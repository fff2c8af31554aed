// Package validator checks request DTOs against their `validate` tags and
// reports failures as a field-to-tag map, which handlers pass through
// response.ErrorWithDetails.
package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate returns nil when v passes, otherwise one entry per failing field.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}
