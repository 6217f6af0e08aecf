package intake

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports every field that failed validation together with a
// human readable reason. It is produced before any storage call, so a request
// carrying one never leaves a partial write behind.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

// validate mirrors gin's binding validator so the same tags drive both the
// handler bind and direct service calls. Field names in errors come from the
// json tag, matching what the form posted.
var validate = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// Validate runs the binding rules on req and translates failures into a
// ValidationError. Returns nil when the request is valid.
func Validate(req interface{}) *ValidationError {
	if err := validate.Struct(req); err != nil {
		if verr, ok := AsValidationError(err); ok {
			return verr
		}
		return &ValidationError{Fields: map[string]string{"request": err.Error()}}
	}
	return nil
}

// AsValidationError converts a validator error (from gin's ShouldBindJSON or
// from Validate) into the intake taxonomy. The boolean reports whether the
// error was a field-level validation failure at all.
func AsValidationError(err error) (*ValidationError, bool) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, false
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = reason(fe)
	}
	return &ValidationError{Fields: fields}, true
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be an absolute URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	default:
		return fmt.Sprintf("failed the %s rule", fe.Tag())
	}
}
