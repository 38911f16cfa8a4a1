// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// ValidationError lists the failed fields by their JSON name.
type ValidationError struct {
	Fields map[string]string
}

// Error joins the failures as "field: message" pairs in field order.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}

	return strings.Join(parts, "; ")
}

// New builds a validator that reports JSON field names and knows the notblank and rol tags.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return field.Name
	})

	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("rol", validRole)

	return &CustomValidator{validate: v}
}

// Validate runs the struct tags of i.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		name := fieldPath(fe)
		if _, seen := out.Fields[name]; !seen {
			out.Fields[name] = message(fe)
		}
	}

	return out
}

// fieldPath drops the root struct name, e.g. "ProductRequest.variantes[0].color" becomes "variantes[0].color".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}

	return fe.Field()
}

// decimalValue lets numeric tags such as gt=0 compare money amounts.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}

	return nil
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}

	return strings.TrimSpace(field.String()) != ""
}

func validRole(fl validator.FieldLevel) bool {
	switch strings.ToUpper(strings.TrimSpace(fl.Field().String())) {
	case "ADMIN", "USER", "ROLE_ADMIN", "ROLE_USER":
		return true
	default:
		return false
	}
}

func message(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	isCollection := fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map

	switch fe.Tag() {
	case "required", "notblank":
		return "es obligatorio"
	case "email":
		return "formato de email inválido"
	case "rol":
		return "el rol debe ser ADMIN o USER"
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	case "min":
		if isString {
			return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
		}
		if isCollection {
			return fmt.Sprintf("debe tener al menos %s elemento(s)", fe.Param())
		}

		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("debe tener como máximo %s caracteres", fe.Param())
		}

		return fmt.Sprintf("debe ser menor o igual a %s", fe.Param())
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", fe.Param())
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	case "lte":
		return fmt.Sprintf("debe ser menor o igual a %s", fe.Param())
	default:
		return fmt.Sprintf("no cumple la regla %s", fe.Tag())
	}
}
