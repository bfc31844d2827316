package errors

import (
	"fmt"
	"strings"
)

const (
	TypeMissing        = "missing"
	TypeStringTooShort = "string_too_short"
	TypeStringTooLong  = "string_too_long"
	TypeStringType     = "string_type"
	TypeBoolType       = "bool_parsing"
	TypeIntParsing     = "int_parsing"
	TypeGreaterEqual   = "greater_than_equal"
	TypeLessEqual      = "less_than_equal"
	TypeExtraForbidden = "extra_forbidden"
	TypeJSONInvalid    = "json_invalid"
)

type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError is returned for input that fails shape or constraint
// checks. It is always reported before the store is touched.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(f.Loc, "."), f.Msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Add(f FieldError) {
	e.Fields = append(e.Fields, f)
}

// HasField reports whether an error was already recorded at loc.
func (e *ValidationError) HasField(loc ...string) bool {
	for _, f := range e.Fields {
		if strings.Join(f.Loc, ".") == strings.Join(loc, ".") {
			return true
		}
	}
	return false
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}
