package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/saga-books/saga/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// notblank rejects empty and whitespace-only strings. Plain
	// "required" would accept a string of spaces.
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}

	return v
}

// checkStruct validates v and translates the first field failure into an
// InvalidInput error using the per-field message table. Fields are
// reported in struct declaration order, so the message for a payload with
// several problems is deterministic.
func checkStruct(op string, v any, messages map[string]string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		field := fieldErrs[0].Field()
		if msg, ok := messages[field]; ok {
			return domain.Invalid(op, msg)
		}
		return domain.Invalid(op, fmt.Sprintf("Field %s is invalid.", field))
	}

	return domain.Internal(err, op, "validation failed")
}
