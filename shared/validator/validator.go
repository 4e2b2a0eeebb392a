package validator

import (
	"encoding/json"
	"io"
	"reflect"
	"strings"

	"hotelhills/shared/failure"
	"hotelhills/shared/timezone"

	val "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const uuidLength = 36

var validate *val.Validate

func registerDateTimeValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := timezone.ParseFlexible(value)

	return err == nil
}

// registerUUIDOrEmpty lets an optional reference be cleared with "".
func registerUUIDOrEmpty(field val.FieldLevel) bool {
	value := field.Field().String()
	if value == "" {
		return true
	}

	return len(value) == uuidLength && uuid.Validate(value) == nil
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	if err := validate.RegisterValidation("datetime_flex", registerDateTimeValidation); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("uuid_or_empty", registerUUIDOrEmpty); err != nil {
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
		return failure.BadRequestFromString(decodeMessage(err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err, "")

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err, "")

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// ValidateParam validates a path or query parameter and names it in the error message.
func ValidateParam(name string, value any, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		return failure.BadRequestFromString(message(err, name)) //nolint:wrapcheck
	}

	return nil
}

// ValidateID rejects path identifiers that are not UUIDs.
func ValidateID(id string) error {
	return ValidateParam("id", id, "required,uuid")
}
