package lox

import "fmt"

// ParseErrorKind classifies a ParseError
type ParseErrorKind uint8

const (
	ErrExpectedPrimary ParseErrorKind = iota
	ErrExpected
	ErrMalformedNumber
	ErrMalformedString
)

func (kind ParseErrorKind) String() string {
	switch kind {
	case ErrExpectedPrimary:
		return "ExpectedPrimary"
	case ErrExpected:
		return "Expected"
	case ErrMalformedNumber:
		return "MalformedNumber"
	case ErrMalformedString:
		return "MalformedString"
	}
	return fmt.Sprintf("ParseErrorKind(%d)", uint8(kind))
}

// ParseError is produced by the parser when the tokens do not follow the
// grammar. Found is the offending token, nil when the input ended.
type ParseError struct {
	Kind     ParseErrorKind
	Expected TokenType
	Found    *Token
}

func NewParseError(kind ParseErrorKind, found *Token) *ParseError {
	return &ParseError{Kind: kind, Found: found}
}

// NewExpectedError reports that the token typ was required but not found
func NewExpectedError(typ TokenType, found *Token) *ParseError {
	return &ParseError{Kind: ErrExpected, Expected: typ, Found: found}
}

func (err *ParseError) Error() string {
	var message string
	switch err.Kind {
	case ErrExpectedPrimary:
		message = "Expect expression."
	case ErrExpected:
		message = fmt.Sprintf("Expect '%s'.", err.Expected)
	case ErrMalformedNumber:
		message = "Malformed number."
	case ErrMalformedString:
		message = "Unterminated string."
	}
	if err.Found == nil {
		return fmt.Sprintf("%s: Error at end: %s", err.Kind, message)
	}
	return fmt.Sprintf("%s: Error at %s: %s", err.Kind, err.Found.Typ, message)
}

// RuntimeError is returned when the evaluation of an expression fails.
type RuntimeError struct {
	Err *TypeError
}

func NewRuntimeError(err *TypeError) *RuntimeError {
	return &RuntimeError{err}
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf("RuntimeError: %v", err.Err)
}

func (err *RuntimeError) Unwrap() error {
	return err.Err
}
