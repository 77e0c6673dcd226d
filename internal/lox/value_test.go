package lox

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueType(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(TypeString, String("a").Type())
	assert.Equal(TypeNumber, Number(1).Type())
	assert.Equal(TypeBoolean, Boolean(true).Type())
	assert.Equal(TypeNil, Nil{}.Type())
	assert.Equal("Boolean", TypeBoolean.String())
}

func TestValueDebugString(t *testing.T) {
	testCases := []struct {
		val Value
		str string
	}{
		{String("ab"), `String("ab")`},
		{String("a\"b\n"), `String("a\"b\n")`},
		{Number(14), "Number(14.0)"},
		{Number(-5), "Number(-5.0)"},
		{Number(3.14), "Number(3.14)"},
		{Number(4294967296), "Number(4294967296.0)"},
		{Number(math.Inf(1)), "Number(inf)"},
		{Number(math.Inf(-1)), "Number(-inf)"},
		{Number(math.NaN()), "Number(NaN)"},
		{Boolean(true), "Boolean(true)"},
		{Nil{}, "Nil"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.str, tc.val.String())
	}
}

func TestStringify(t *testing.T) {
	testCases := []struct {
		val Value
		str string
	}{
		{String("hello\nworld"), "hello\nworld"},
		{Number(1), "1"},
		{Number(3.14000), "3.14"},
		{Number(4294967296), "4294967296"},
		{Number(math.Inf(-1)), "-inf"},
		{Boolean(false), "false"},
		{Nil{}, "nil"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.str, Stringify(tc.val))
	}
}

func TestValueExtraction(t *testing.T) {
	assert := assert.New(t)

	s, err := AsString(String("a"))
	assert.NoError(err)
	assert.Equal("a", s)
	_, err = AsString(Number(1))
	assert.Equal(NewTypeError(Number(1), TypeString), err)

	n, err := AsNumber(Number(2))
	assert.NoError(err)
	assert.Equal(2.0, n)
	_, err = AsNumber(Nil{})
	assert.Equal(NewTypeError(Nil{}, TypeNumber), err)

	b, err := AsBoolean(Boolean(true))
	assert.NoError(err)
	assert.True(b)
	_, err = AsBoolean(String(""))
	assert.Equal(NewTypeError(String(""), TypeBoolean), err)
}

func TestValueEqual(t *testing.T) {
	testCases := []struct {
		a, b  Value
		equal bool
	}{
		{Number(1), Number(1), true},
		{Number(1), String("1"), false},
		{Nil{}, Boolean(false), false},
		{Nil{}, Nil{}, true},
		{String(""), String(""), true},
		{Boolean(true), Number(1), false},
		{Number(math.NaN()), Number(math.NaN()), false},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.equal, Equal(tc.a, tc.b), "%v == %v", tc.a, tc.b)
		assert.Equal(tc.equal, Equal(tc.b, tc.a), "%v == %v", tc.b, tc.a)
	}
}

func TestIsTruthy(t *testing.T) {
	assert := assert.New(t)
	assert.False(IsTruthy(Nil{}))
	assert.False(IsTruthy(Boolean(false)))
	assert.True(IsTruthy(Boolean(true)))
	assert.True(IsTruthy(Number(0)))
	assert.True(IsTruthy(String("")))
}
