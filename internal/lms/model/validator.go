package model

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// FirstValidationError flattens a validator error into a single message
// suitable for the response envelope.
func FirstValidationError(err error) string {
	if err == nil {
		return ""
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]
		return "Field validation for '" + e.Field() + "' failed on the '" + e.Tag() + "' tag"
	}
	return err.Error()
}
