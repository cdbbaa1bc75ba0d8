package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch indicates the value's type does not match the field's type
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrInvalidValue indicates the value has the right type but violates the field's constraint
	ErrInvalidValue = errors.New("invalid value")
)

// FieldError describes a rejected assignment to a book field.
// Err is always ErrTypeMismatch or ErrInvalidValue.
type FieldError struct {
	Type  string
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v: got %T(%v)", e.Type, e.Field, e.Err, e.Value, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func typeMismatch(typeName, field string, value any) error {
	return &FieldError{Type: typeName, Field: field, Value: value, Err: ErrTypeMismatch}
}

func invalidValue(typeName, field string, value any) error {
	return &FieldError{Type: typeName, Field: field, Value: value, Err: ErrInvalidValue}
}

