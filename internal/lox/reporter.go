package lox

import (
	"errors"
	"fmt"
	"io"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code.
type Reporter interface {
	Report(source string, span Span, err error)
	Reset()
	HadError() bool
	HadRuntimeError() bool
}

// DiagnosticReporter writes the source excerpt of the failing span, a caret
// underline and the error to the inner writer
type DiagnosticReporter struct {
	writer        io.Writer
	index         *LineIndex
	hadErr        bool
	hadRuntimeErr bool
}

func NewDiagnosticReporter(writer io.Writer) Reporter {
	return &DiagnosticReporter{writer: writer}
}

func (reporter *DiagnosticReporter) Report(source string, span Span, err error) {
	var runtimeErr *RuntimeError
	if errors.As(err, &runtimeErr) {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}

	if reporter.index == nil || reporter.index.source != source {
		reporter.index = NewLineIndex(source)
	}
	line, column := reporter.index.Position(span.Start)
	fmt.Fprint(reporter.writer, reporter.index.Render(span))
	fmt.Fprintf(reporter.writer, "[line %d:%d] %v\n", line, column, err)
}

func (reporter *DiagnosticReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}

func (reporter *DiagnosticReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *DiagnosticReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}
