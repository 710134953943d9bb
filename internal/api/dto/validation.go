package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks request struct tags. Absent required fields become a
// MissingRequiredField error listing every one of them; any other failed rule
// becomes InvalidValue with a message per field.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewInvalidPayload("invalid payload", map[string]any{"reason": err.Error()})
	}

	var missing []string
	invalid := map[string]any{}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		invalid[fe.Field()] = formatFieldError(fe)
	}
	if len(missing) > 0 {
		return apperrors.NewMissingRequiredField(missing...)
	}
	return apperrors.NewInvalidValue("request validation failed", invalid)
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "email":
		return "must be a valid email"
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + param + " characters long"
		}
		return "must be at most " + param
	case "gt":
		return "must be greater than " + param
	case "gte":
		return "must be greater than or equal to " + param
	default:
		if param != "" {
			return "failed '" + fe.Tag() + "' with parameter '" + param + "'"
		}
		return "failed '" + fe.Tag() + "'"
	}
}
