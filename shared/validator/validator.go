package validator

import (
	"concierge/shared/failure"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// enumerated is implemented by string-backed enums such as request status or type.
type enumerated interface {
	Valid() bool
}

var enumType = reflect.TypeOf((*enumerated)(nil)).Elem()

func registerEnumValidation(fl val.FieldLevel) bool {
	field := fl.Field()

	if field.Type().Implements(enumType) {
		enum, _ := field.Interface().(enumerated)

		return enum.Valid()
	}

	if field.CanAddr() && field.Addr().Type().Implements(enumType) {
		enum, _ := field.Addr().Interface().(enumerated)

		return enum.Valid()
	}

	return false
}

// validateMoney accepts amounts with at most two decimal places.
func validateMoney(fl val.FieldLevel) bool {
	field := fl.Field()
	if !field.CanFloat() {
		return false
	}

	cents := field.Float() * 100 //nolint:mnd

	return math.Abs(cents-math.Round(cents)) < 1e-6 //nolint:mnd
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0] //nolint:mnd
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	err := validate.RegisterValidation("enum", registerEnumValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("money", validateMoney)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
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
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

// Decode reads the JSON body without validating it, for callers that validate
// in the service layer.
func Decode[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
