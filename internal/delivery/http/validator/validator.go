// Package validator plugs go-playground/validator into echo and renders its
// failures as user-facing French messages.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"market/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON (or query) name.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	return &CustomValidator{validate: v}
}

// Validate runs the struct rules. The returned error wraps validator.ValidationErrors.
func (cv *CustomValidator) Validate(i any) error {
	return errors.WithStack(cv.validate.Struct(i))
}

// Messages renders one message per failed field, in field order.
func Messages(errs validator.ValidationErrors) []string {
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, message(fe))
	}

	return messages
}

// Join renders every failed field as a single comma separated message.
func Join(errs validator.ValidationErrors) string {
	return strings.Join(Messages(errs), ", ")
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s est requis", field)
	case "email":
		return fmt.Sprintf("%s doit être un email valide", field)
	case "uuid", "uuid4":
		return fmt.Sprintf("%s doit être un identifiant valide", field)
	case "oneof":
		return fmt.Sprintf("%s doit être l'une des valeurs: %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s doit être supérieur ou égal à %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s doit être inférieur ou égal à %s", field, fe.Param())
	case "min":
		if isCollection(fe.Kind()) {
			return fmt.Sprintf("%s doit contenir au moins %s élément(s)", field, fe.Param())
		}

		return fmt.Sprintf("%s doit être au moins %s", field, fe.Param())
	case "max":
		if isCollection(fe.Kind()) {
			return fmt.Sprintf("%s ne doit pas dépasser %s élément(s)", field, fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s ne doit pas dépasser %s caractères", field, fe.Param())
		}

		return fmt.Sprintf("%s ne doit pas dépasser %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s est invalide", field)
	}
}

func isCollection(kind reflect.Kind) bool {
	return kind == reflect.Slice || kind == reflect.Array || kind == reflect.Map
}
