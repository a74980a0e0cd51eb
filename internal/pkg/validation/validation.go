package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(useJSONTagNames)
	return v
}

func useJSONTagNames(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// Struct проверяет теги validate. Ошибки полей возвращаются как validator.ValidationErrors.
func Struct(value any) error {
	return validate.Struct(value)
}

// FieldMessages переводит ошибки валидатора в сообщения по json-именам полей.
// Для ошибок другого типа возвращает nil.
func FieldMessages(err error) map[string]string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}

	messages := make(map[string]string, len(errs))
	for _, fieldError := range errs {
		var message string
		switch fieldError.Tag() {
		case "required":
			message = "This field is required"
		case "gt":
			message = fmt.Sprintf("Value must be greater than %s", fieldError.Param())
		default:
			message = "Invalid value"
		}
		messages[fieldError.Field()] = message
	}
	return messages
}
