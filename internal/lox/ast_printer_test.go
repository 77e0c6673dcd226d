package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAstPrinter(t *testing.T) {
	testCases := []struct {
		src string
		ast string
	}{
		{"1", "1"},
		{"3.14", "3.14"},
		{"\"a b\"", "\"a b\""},
		{"nil", "nil"},
		{"true", "true"},
		{"-123 * (45.67)", "(* (- 123) (group 45.67))"},
		{"2 + 3 * 4", "(+ 2 (* 3 4))"},
		{"!!(1 == 2) != false", "(!= (! (! (group (== 1 2)))) false)"},
		{"1 <= 2 >= 3 < 4 > 5", "(> (< (>= (<= 1 2) 3) 4) 5)"},
	}

	assert := assert.New(t)
	printer := AstPrinter{}
	for _, tc := range testCases {
		assert.Equal(tc.ast, printer.Print(parseOne(t, tc.src)), tc.src)
	}
}
