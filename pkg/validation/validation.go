// Package validation wraps go-playground/validator so handlers can turn
// struct tag violations into field→message maps for JSON error responses.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the json field name, not the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate runs struct-level validation using validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// Errors converts validator.ValidationErrors into a map of field name to a
// human-readable message. Returns an empty map for non-validation errors.
func Errors(err error) map[string]string {
	msgs := make(map[string]string)

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return msgs
	}

	for _, e := range ve {
		msgs[e.Field()] = fieldMessage(e)
	}
	return msgs
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "este campo es obligatorio"
	case "email":
		return "debe ser un correo válido"
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual a %s", e.Param())
	case "gt":
		return fmt.Sprintf("debe ser mayor a %s", e.Param())
	case "oneof":
		return "valor fuera del conjunto permitido"
	default:
		return fmt.Sprintf("no cumple la regla %s", e.Tag())
	}
}
