package lox

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Value is a Lox runtime value. The set of variants is closed: String,
// Number, Boolean and Nil.
type Value interface {
	Type() Type
	// String returns the debug representation of the value
	String() string

	value()
}

type (
	String  string
	Number  float64
	Boolean bool
	Nil     struct{}
)

func (String) Type() Type  { return TypeString }
func (Number) Type() Type  { return TypeNumber }
func (Boolean) Type() Type { return TypeBoolean }
func (Nil) Type() Type     { return TypeNil }

func (String) value()  {}
func (Number) value()  {}
func (Boolean) value() {}
func (Nil) value()     {}

func (v String) String() string {
	return fmt.Sprintf("String(%q)", string(v))
}

func (v Number) String() string {
	return fmt.Sprintf("Number(%s)", formatDebugNumber(float64(v)))
}

func (v Boolean) String() string {
	return fmt.Sprintf("Boolean(%t)", bool(v))
}

func (Nil) String() string {
	return "Nil"
}

// Debug numbers always show a fractional part so they read as floats.
func formatDebugNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Stringify returns the plain, user-facing representation of a value.
func Stringify(v Value) string {
	switch v := v.(type) {
	case String:
		return string(v)
	case Number:
		n := float64(v)
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return formatDebugNumber(n)
		}
		return strconv.FormatFloat(n, 'f', -1, 64)
	case Boolean:
		return strconv.FormatBool(bool(v))
	case Nil:
		return "nil"
	}
	panic("unreachable")
}

// Equal reports whether two values are structurally equal. Values of
// different variants are never equal.
func Equal(a, b Value) bool {
	return a == b
}

// Type is the runtime type tag of a value
type Type uint8

const (
	TypeString Type = iota
	TypeNumber
	TypeBoolean
	TypeNil
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeNumber:
		return "Number"
	case TypeBoolean:
		return "Boolean"
	case TypeNil:
		return "Nil"
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// TypeError is returned when a value cannot be used where one of the
// expected types is required.
type TypeError struct {
	Expected []Type
	Actual   Value
}

func NewTypeError(actual Value, expected ...Type) *TypeError {
	return &TypeError{expected, actual}
}

func (err *TypeError) Error() string {
	expected := lo.Map(err.Expected, func(t Type, _ int) string {
		return t.String()
	})
	return fmt.Sprintf(
		"TypeError: expected %s, got %s",
		strings.Join(expected, " or "),
		err.Actual,
	)
}

// AsString extracts the string held by v.
func AsString(v Value) (string, error) {
	if s, ok := v.(String); ok {
		return string(s), nil
	}
	return "", NewTypeError(v, TypeString)
}

// AsNumber extracts the number held by v.
func AsNumber(v Value) (float64, error) {
	if n, ok := v.(Number); ok {
		return float64(n), nil
	}
	return 0, NewTypeError(v, TypeNumber)
}

// AsBoolean extracts the boolean held by v.
func AsBoolean(v Value) (bool, error) {
	if b, ok := v.(Boolean); ok {
		return bool(b), nil
	}
	return false, NewTypeError(v, TypeBoolean)
}

// IsTruthy follows Lox's rule: false and nil are falsy, everything else,
// including 0 and the empty string, is truthy.
func IsTruthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(v)
	}
	return true
}
