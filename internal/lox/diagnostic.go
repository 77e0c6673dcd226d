package lox

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// LineIndex maps byte offsets of a source text to its lines.
type LineIndex struct {
	source string
	// offsets of every '\n', surrounded by a synthetic -1 before the first
	// line and len(source) after the last one
	breaks []int
}

// NewLineIndex precomputes the line boundaries of source
func NewLineIndex(source string) *LineIndex {
	breaks := []int{-1}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			breaks = append(breaks, i)
		}
	}
	breaks = append(breaks, len(source))
	return &LineIndex{source, breaks}
}

// line returns the 0-based index of the line containing offset
func (index *LineIndex) line(offset int) int {
	offset = max(0, min(offset, len(index.source)))
	return sort.SearchInts(index.breaks, offset) - 1
}

// Position returns the 1-based line and column of offset
func (index *LineIndex) Position(offset int) (line, column int) {
	i := index.line(offset)
	lineStart := index.breaks[i] + 1
	offset = max(lineStart, min(offset, len(index.source)))
	return i + 1, utf8.RuneCountInString(index.source[lineStart:offset]) + 1
}

// Lines returns the byte range [start, end) of the lines covered by span,
// without the trailing line break.
func (index *LineIndex) Lines(span Span) (start, end int) {
	low := index.line(span.Start)
	high := index.line(max(span.Start, span.End-1))
	return index.breaks[low] + 1, index.breaks[high+1]
}

// Render returns the source lines covered by span, each followed by a line
// of carets underlining the part that belongs to the span.
func (index *LineIndex) Render(span Span) string {
	var b strings.Builder
	low := index.line(span.Start)
	high := index.line(max(span.Start, span.End-1))
	for i := low; i <= high; i++ {
		lineStart, lineEnd := index.breaks[i]+1, index.breaks[i+1]
		text := index.source[lineStart:lineEnd]
		b.WriteString(text)
		b.WriteByte('\n')

		from := max(span.Start, lineStart) - lineStart
		to := min(span.End, lineEnd) - lineStart
		// keep tabs so that the carets line up with the text above
		for _, r := range text[:from] {
			if r == '\t' {
				b.WriteByte('\t')
			} else {
				b.WriteByte(' ')
			}
		}
		carets := max(1, utf8.RuneCountInString(text[from:max(from, to)]))
		b.WriteString(strings.Repeat("^", carets))
		b.WriteByte('\n')
	}
	return b.String()
}
