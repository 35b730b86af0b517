package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var templates = map[string]string{
	"required": "{field} is required",
	"gt":       "{field} must be greater than {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"max":      "{field} must be at most {param}",
	"min":      "{field} must be at least {param}",
	"oneof":    "{field} must be one of {param}",
	"email":    "{field} must be a valid email address",
	"enum":     "{field} has an unsupported value",
	"empty":    "{field} must be empty",
}

// jsonFieldName reports fields by their wire name so messages match the request body.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// message renders every failed rule, in field order, as one sentence per field.
// name replaces the field for ValidateVar, which has none.
func message(err error, name string) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	sentences := make([]string, 0, len(fieldErrors))

	for _, fieldErr := range fieldErrors {
		field := fieldErr.Field()
		if field == "" {
			field = name
		}

		template, ok := templates[fieldErr.Tag()]
		if !ok {
			template = "{field} failed the {tag} rule"
		}

		sentences = append(sentences, strings.NewReplacer(
			"{field}", field,
			"{param}", fieldErr.Param(),
			"{tag}", fieldErr.Tag(),
		).Replace(template))
	}

	return strings.Join(sentences, "; ")
}
