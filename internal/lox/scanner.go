package lox

import (
	"iter"
	"unicode/utf8"
)

// TokenSource is a forward-only sequence of tokens. Next reports false once
// the sequence is exhausted, and keeps doing so on every later call.
type TokenSource interface {
	Next() (Token, bool)
}

// Scanner lazily splits the input source into tokens. The scanner never
// fails, characters it does not recognize are classified as UNKNOWN and
// malformed literals are left for the parser to reject.
type Scanner struct {
	start   int
	current int
	source  string
}

// NewScanner creates a new Lox token scanner over the given source
func NewScanner(source string) *Scanner {
	scanner := new(Scanner)
	scanner.source = source
	return scanner
}

// Next scans and returns the next token of the source
func (scanner *Scanner) Next() (Token, bool) {
	scanner.consumeWhile(isWhitespace)
	if !scanner.hasNext() {
		return Token{}, false
	}

	scanner.start = scanner.current
	var typ TokenType
	switch b := scanner.advance(); b {
	// Single character tokens
	case '(':
		typ = LEFT_PAREN
	case ')':
		typ = RIGHT_PAREN
	case '{':
		typ = LEFT_BRACE
	case '}':
		typ = RIGHT_BRACE
	case ',':
		typ = COMMA
	case '.':
		typ = DOT
	case '-':
		typ = MINUS
	case '+':
		typ = PLUS
	case ';':
		typ = SEMICOLON
	case '*':
		typ = STAR
	// Double character tokens
	case '!':
		typ = scanner.ifMatch('=', BANG_EQUAL, BANG)
	case '=':
		typ = scanner.ifMatch('=', EQUAL_EQUAL, EQUAL)
	case '<':
		typ = scanner.ifMatch('=', LESS_EQUAL, LESS)
	case '>':
		typ = scanner.ifMatch('=', GREATER_EQUAL, GREATER)
	// Long lexemes
	case '/':
		if scanner.peek() == '/' {
			// the trailing '\n' is left for the whitespace skipping
			scanner.consumeWhile(func(b byte) bool { return b != '\n' })
			typ = COMMENT
		} else {
			typ = SLASH
		}
	case '"':
		typ = scanner.scanString()
	default:
		if isDigit(b) {
			typ = scanner.scanNumber()
		} else if isBeginIdent(b) {
			typ = scanner.scanIdentifier()
		} else {
			scanner.skipRune()
			typ = UNKNOWN
		}
	}
	return NewToken(typ, NewSpan(scanner.start, scanner.current)), true
}

// All returns the remaining tokens as an iterator. The iterator shares the
// scanner's cursor, so it can only be consumed once.
func (scanner *Scanner) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := scanner.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Read until EOF or a matching '"'. An unterminated string is still a STRING
// token, its span just does not end with a quote.
func (scanner *Scanner) scanString() TokenType {
	scanner.consumeWhile(func(b byte) bool { return b != '"' })
	if scanner.hasNext() {
		// consume '"'
		scanner.advance()
	}
	return STRING
}

// Digits and dots are taken greedily, "1." and "1.2.3" are both accepted
// here and validated when the parser converts the literal.
func (scanner *Scanner) scanNumber() TokenType {
	scanner.consumeWhile(func(b byte) bool { return isDigit(b) || b == '.' })
	return NUMBER
}

func (scanner *Scanner) scanIdentifier() TokenType {
	scanner.consumeWhile(isAlphanumeric)
	lexeme := scanner.source[scanner.start:scanner.current]
	if tokenType, isKeyword := KeywordTokens[lexeme]; isKeyword {
		return tokenType
	}
	return IDENTIFIER
}

// ifMatch consumes the next byte and returns matched if it equals expected,
// otherwise returns unmatched without consuming anything.
func (scanner *Scanner) ifMatch(expected byte, matched, unmatched TokenType) TokenType {
	if scanner.hasNext() && scanner.source[scanner.current] == expected {
		scanner.current++
		return matched
	}
	return unmatched
}

func (scanner *Scanner) consumeWhile(pred func(b byte) bool) {
	for scanner.hasNext() && pred(scanner.source[scanner.current]) {
		scanner.current++
	}
}

// skipRune moves past the rest of a multi-byte character whose first byte
// was already consumed, so UNKNOWN tokens always cover a whole rune.
func (scanner *Scanner) skipRune() {
	_, size := utf8.DecodeRuneInString(scanner.source[scanner.start:])
	scanner.current = scanner.start + size
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the byte at the current position
func (scanner *Scanner) advance() byte {
	b := scanner.source[scanner.current]
	scanner.current++
	return b
}

// peek returns the byte at the current position, but does not consume it
func (scanner *Scanner) peek() byte {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// commentFilter drops COMMENT tokens from the wrapped source
type commentFilter struct {
	tokens TokenSource
}

// SkipComments wraps a token source so that comments never reach the parser
func SkipComments(tokens TokenSource) TokenSource {
	return &commentFilter{tokens}
}

func (filter *commentFilter) Next() (Token, bool) {
	for {
		tok, ok := filter.tokens.Next()
		if !ok || tok.Typ != COMMENT {
			return tok, ok
		}
	}
}
