package validator

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"scaffold/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	err := validate.RegisterValidation("notblank", func(fl val.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() == reflect.Ptr {
			if field.IsNil() {
				return true
			}

			field = field.Elem()
		}

		return strings.TrimSpace(field.String()) != ""
	})
	if err != nil {
		panic(err)
	}
}

// Validate reads JSON from the given io.Reader into the given struct and then
// validates it with the validator package. Decoding and validation problems are
// both reported as unprocessable entity failures, before the caller touches any state.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if r == nil {
		return failure.UnprocessableEntity("request body is required") //nolint:wrapcheck
	}

	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		if errors.Is(err, io.EOF) {
			return failure.UnprocessableEntity("request body is required") //nolint:wrapcheck
		}

		return failure.UnprocessableEntity(decodeMessage(err)) //nolint:wrapcheck
	}

	// the body must hold exactly one JSON value
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return failure.UnprocessableEntity(invalidJSON) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.UnprocessableEntity(message(err)) //nolint:wrapcheck
	}

	return nil
}
