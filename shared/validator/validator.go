package validator

import (
	"encoding/json"
	"fmt"
	"io"

	"frontdesk/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// enumerated is implemented by the domain status and kind types.
type enumerated interface {
	IsValid() bool
}

func registerEnumValidation(field val.FieldLevel) bool {
	if !field.Field().CanInterface() {
		return false
	}

	if e, ok := field.Field().Interface().(enumerated); ok {
		return e.IsValid()
	}

	return false
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	err := validate.RegisterValidation("enum", registerEnumValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		return failure.Validation(message(err, "")) //nolint:wrapcheck
	}

	return nil
}

// ValidateVar checks a single value, typically a query parameter, reported under name.
func ValidateVar(name string, field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		return failure.Validation(message(err, name)) //nolint:wrapcheck
	}

	return nil
}
