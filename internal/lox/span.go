package lox

import "fmt"

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

// NewSpan creates a span covering [start, end)
func NewSpan(start, end int) Span {
	return Span{start, end}
}

func (span Span) Len() int {
	return span.End - span.Start
}

// Text returns the part of the source covered by the span.
func (span Span) Text(source string) string {
	return source[span.Start:span.End]
}

func (span Span) String() string {
	return fmt.Sprintf("%d..%d", span.Start, span.End)
}
