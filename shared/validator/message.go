package validator

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be at most {param} characters",
		"min":      "{field} must be at least {param} characters",
		"email":    "{field} must be a valid email address",
		"gt":       "{field} must be greater than {param}",
		"uuid":     "{field} must be a valid UUID",
		"dive":     "{field} contains an invalid item",

		"uuid_or_empty": "{field} must be a valid UUID, or empty to clear it",

		"min_items": "{field} must contain at least {param} item(s)",
		"max_items": "{field} must contain at most {param} item(s)",

		"datetime_flex": "{field} must be a date (2006-01-02) or date-time (RFC3339 or 2006-01-02T15:04)",
	}

	jsonKinds = map[reflect.Kind]string{
		reflect.String:  "a string",
		reflect.Bool:    "a boolean",
		reflect.Float32: "a number",
		reflect.Float64: "a number",
		reflect.Int:     "a whole number",
		reflect.Int32:   "a whole number",
		reflect.Int64:   "a whole number",
		reflect.Slice:   "a list",
		reflect.Array:   "a list",
		reflect.Map:     "an object",
		reflect.Struct:  "an object",
	}
)

// message renders the first validation failure. A non-empty field overrides the
// reported field name, which is blank when a bare value is validated.
func message(err error, field string) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		tag := valErr.Tag()
		if (tag == "min" || tag == "max") && valErr.Kind() == reflect.Slice {
			tag += "_items"
		}

		template := messages[tag]
		if template == "" {
			continue
		}

		name := field
		if name == "" {
			name = valErr.Field()
		}

		return strings.NewReplacer("{field}", name, "{param}", valErr.Param()).Replace(template)
	}

	return valErrors.Error()
}

// decodeMessage turns a JSON decoding failure into a client facing message.
func decodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.Is(err, io.EOF):
		return "request body is required"
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return "request body must be valid JSON"
	case errors.As(err, &typeErr) && typeErr.Field != "":
		kind, ok := jsonKinds[typeErr.Type.Kind()]
		if !ok {
			kind = "a " + typeErr.Type.String()
		}

		return typeErr.Field + " must be " + kind
	default:
		return err.Error()
	}
}
