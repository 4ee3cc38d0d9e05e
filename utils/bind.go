package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// BindError turns a JSON decoding failure into a ValidationError that names
// the offending field when it can.
func BindError(err error) *AppError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" && typeErr.Type != nil {
		return NewValidationError(fmt.Sprintf("%q must be a %s", typeErr.Field, jsonKind(typeErr.Type)))
	}
	return &AppError{Kind: KindValidation, Message: "Invalid request payload", Err: err}
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "number"
	case reflect.Bool:
		return "boolean"
	default:
		return t.Kind().String()
	}
}
