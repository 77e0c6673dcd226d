package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineIndexRender(t *testing.T) {
	testCases := []struct {
		src  string
		span Span
		out  string
	}{
		// single line
		{"1 + nil", NewSpan(0, 7), "1 + nil\n^^^^^^^\n"},
		{"1 + nil", NewSpan(4, 7), "1 + nil\n    ^^^\n"},
		{"1 + nil", NewSpan(0, 1), "1 + nil\n^\n"},
		// second line only, no text of the first line
		{"1 + 2\n\"a\" + 1", NewSpan(6, 13), "\"a\" + 1\n^^^^^^^\n"},
		{"1 + 2\n  -nil", NewSpan(8, 12), "  -nil\n  ^^^^\n"},
		// first line of many
		{"-nil\n2\n3", NewSpan(0, 4), "-nil\n^^^^\n"},
		// middle line with a trailing newline
		{"1\n2 + \"x\"\n3\n", NewSpan(2, 9), "2 + \"x\"\n^^^^^^^\n"},
		// spanning several lines
		{"(1 +\n 2", NewSpan(0, 7), "(1 +\n^^^^\n 2\n^^\n"},
		{"a\n(1 +\n 2\nb", NewSpan(4, 9), "(1 +\n  ^^\n 2\n^^\n"},
		// tabs are kept for alignment
		{"\t1 + nil", NewSpan(5, 8), "\t1 + nil\n\t    ^^^\n"},
		// multi-byte characters count once
		{"\"é\" + 1", NewSpan(0, 8), "\"é\" + 1\n^^^^^^^\n"},
		{"\"é\" + 1", NewSpan(7, 8), "\"é\" + 1\n      ^\n"},
		// empty spans still get a caret
		{"1 +", NewSpan(3, 3), "1 +\n   ^\n"},
		{"", NewSpan(0, 0), "\n^\n"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.out, NewLineIndex(tc.src).Render(tc.span), "%q %v", tc.src, tc.span)
	}
}

func TestLineIndexLines(t *testing.T) {
	src := "ab\ncd\n\nef"
	index := NewLineIndex(src)

	testCases := []struct {
		span       Span
		start, end int
	}{
		{NewSpan(0, 1), 0, 2},
		{NewSpan(0, 2), 0, 2},
		{NewSpan(3, 5), 3, 5},
		{NewSpan(1, 4), 0, 5},
		{NewSpan(6, 6), 6, 6},
		{NewSpan(7, 9), 7, 9},
		{NewSpan(0, 9), 0, 9},
		{NewSpan(9, 9), 7, 9},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		start, end := index.Lines(tc.span)
		assert.Equal(tc.start, start, "%v", tc.span)
		assert.Equal(tc.end, end, "%v", tc.span)
	}
}

func TestLineIndexPosition(t *testing.T) {
	src := "ab\ncd\n\n\té"
	index := NewLineIndex(src)

	testCases := []struct {
		offset       int
		line, column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 1},
		{6, 3, 1},
		{7, 4, 1},
		{8, 4, 2},
		{10, 4, 3},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		line, column := index.Position(tc.offset)
		assert.Equal(tc.line, line, "offset %d", tc.offset)
		assert.Equal(tc.column, column, "offset %d", tc.offset)
	}
}
