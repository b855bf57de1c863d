// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"bikeroute/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator validates bound request bodies
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports JSON field names and knows the
// cycling profiles
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// Registration only fails for an empty tag or a nil function
	_ = v.RegisterValidation("profile", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()

		return value == "" || entity.Profile(value).IsValid()
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, describe(fieldErr))
	}

	return errors.New(strings.Join(messages, "; "))
}

func describe(fieldErr validator.FieldError) string {
	field := strings.TrimPrefix(fieldErr.Namespace(), namespaceRoot(fieldErr))

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min", "max", "gte", "lte":
		return fmt.Sprintf("%s must satisfy %s=%s", field, fieldErr.Tag(), fieldErr.Param())
	case "latitude", "longitude", "hexcolor", "profile":
		return fmt.Sprintf("%s is not a valid %s", field, fieldErr.Tag())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fieldErr.Tag())
	}
}

// namespaceRoot is the struct name prefix of a field namespace, e.g. "OptimizeRequest."
func namespaceRoot(fieldErr validator.FieldError) string {
	root, _, found := strings.Cut(fieldErr.Namespace(), ".")
	if !found {
		return ""
	}

	return root + "."
}
