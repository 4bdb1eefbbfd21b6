// Package validation runs go-playground/validator rules for the services and
// the gin binding layer, reporting fields by their JSON name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/errs"
	"github.com/go-playground/validator/v10"
)

var validate = New()

// New returns a validator reading `validate` tags.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	Register(v)
	return v
}

// Register makes v name fields after their json tag, so gin's binding engine
// and the services report the same field names.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonName)
}

func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return Translate(validate.Struct(s), "")
}

// Var validates a single value reported as field.
func Var(field string, value any, tag string) error {
	return Translate(validate.Var(value, tag), field)
}

// Translate turns the first validator failure in err into an
// errs.ValidationError. field overrides the reported name, which is empty
// for Var. Other errors are returned unchanged.
func Translate(err error, field string) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	if field == "" {
		field = fe.Field()
	}
	return errs.NewValidationError(field, message(fe))
}

func message(fe validator.FieldError) string {
	// or-groups such as "email|eq=" are reported by their first rule
	rule := strings.SplitN(fe.Tag(), "|", 2)[0]
	text := fe.Kind() == reflect.String

	switch rule {
	case "required":
		if text {
			return "This field may not be blank."
		}
		return "This field is required."
	case "max":
		if text {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min":
		if text {
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "oneof":
		return fmt.Sprintf("\"%v\" is not a valid choice.", fe.Value())
	}
	return fmt.Sprintf("Failed on the '%s' rule.", rule)
}
