package lox

import (
	"errors"
	"iter"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ParseResult is the outcome of one top-level parse attempt. Exactly one of
// Expr and Err is set. Span covers every token consumed by the attempt,
// including the ones skipped while recovering from an error.
type ParseResult struct {
	Expr Expr
	Err  error
	Span Span
}

// Parser composes the syntax tree for Lox expressions from a sequence of
// tokens, see the package documentation for the grammar. The parser yields
// one result per top-level expression and recovers from errors so that a
// malformed expression does not hide the ones that follow it.
type Parser struct {
	source string
	tokens TokenSource

	// one token of lookahead
	next    Token
	hasNext bool
	peeked  bool

	// end offset of the last consumed token
	end int
}

// NewParser creates a new parser reading tokens from the given source.
// Filtering out comments is up to the caller, see SkipComments.
func NewParser(source string, tokens TokenSource) *Parser {
	return &Parser{source: source, tokens: tokens}
}

// Next parses the next top-level expression. It returns false once the
// tokens are exhausted.
func (parser *Parser) Next() (ParseResult, bool) {
	first, ok := parser.peek()
	if !ok {
		return ParseResult{}, false
	}
	parser.end = first.Span.Start

	expr, err := parser.expression()
	if err != nil {
		parser.sync()
		return ParseResult{Err: err, Span: NewSpan(first.Span.Start, parser.end)}, true
	}
	return ParseResult{Expr: expr, Span: NewSpan(first.Span.Start, parser.end)}, true
}

// All returns the remaining parse results as an iterator. The iterator
// shares the parser's cursor, so it can only be consumed once.
func (parser *Parser) All() iter.Seq[ParseResult] {
	return func(yield func(ParseResult) bool) {
		for {
			result, ok := parser.Next()
			if !ok || !yield(result) {
				return
			}
		}
	}
}

type binaryRule struct {
	typ TokenType
	op  BinaryOp
}

var (
	equalityRules = []binaryRule{
		{BANG_EQUAL, OpNotEqual},
		{EQUAL_EQUAL, OpEqual},
	}
	comparisonRules = []binaryRule{
		{GREATER, OpGreater},
		{GREATER_EQUAL, OpGreaterEqual},
		{LESS, OpLess},
		{LESS_EQUAL, OpLessEqual},
	}
	termRules = []binaryRule{
		{MINUS, OpSub},
		{PLUS, OpAdd},
	}
	factorRules = []binaryRule{
		{SLASH, OpDiv},
		{STAR, OpMul},
	}
)

// expression --> equality ;
func (parser *Parser) expression() (Expr, error) {
	return parser.equality()
}

// equality --> comparison ( ( "!=" | "==" ) comparison )* ;
func (parser *Parser) equality() (Expr, error) {
	return parser.binary(parser.comparison, equalityRules)
}

// comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
func (parser *Parser) comparison() (Expr, error) {
	return parser.binary(parser.term, comparisonRules)
}

// term --> factor ( ( "-" | "+" ) factor )* ;
func (parser *Parser) term() (Expr, error) {
	return parser.binary(parser.factor, termRules)
}

// factor --> unary ( ( "/" | "*" ) unary )* ;
func (parser *Parser) factor() (Expr, error) {
	return parser.binary(parser.unary, factorRules)
}

// Creates a left-associative nested tree of binary operator nodes. The
// operands are parsed by the higher precedence rule.
func (parser *Parser) binary(
	operand func() (Expr, error),
	rules []binaryRule,
) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := parser.matchBinary(rules)
		if !ok {
			return expr, nil
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
}

// unary --> ( "!" | "-" ) unary
//         | primary ;
func (parser *Parser) unary() (Expr, error) {
	var op UnaryOp
	switch {
	case parser.match(MINUS):
		op = OpNeg
	case parser.match(BANG):
		op = OpNot
	default:
		return parser.primary()
	}
	expr, err := parser.unary()
	if err != nil {
		return nil, err
	}
	return NewUnaryExpr(op, expr), nil
}

// primary --> NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")" ;
func (parser *Parser) primary() (Expr, error) {
	tok, ok := parser.peek()
	if !ok {
		return nil, NewParseError(ErrExpectedPrimary, nil)
	}

	switch tok.Typ {
	case NIL:
		parser.advance()
		return NewLiteralExpr(Nil{}), nil
	case TRUE:
		parser.advance()
		return NewLiteralExpr(Boolean(true)), nil
	case FALSE:
		parser.advance()
		return NewLiteralExpr(Boolean(false)), nil
	case NUMBER:
		parser.advance()
		num, err := parser.parseNumber(tok)
		if err != nil {
			return nil, err
		}
		return NewLiteralExpr(Number(num)), nil
	case STRING:
		parser.advance()
		str, err := parser.parseString(tok)
		if err != nil {
			return nil, err
		}
		return NewLiteralExpr(String(str)), nil
	case LEFT_PAREN:
		parser.advance()
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if err := parser.consume(RIGHT_PAREN); err != nil {
			return nil, err
		}
		return NewGroupingExpr(expr), nil
	}
	return nil, NewParseError(ErrExpectedPrimary, &tok)
}

func (parser *Parser) parseNumber(tok Token) (float64, error) {
	num, err := strconv.ParseFloat(tok.Lexeme(parser.source), 64)
	if err != nil {
		// literals too large for a float64 become infinities
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return num, nil
		}
		return 0, NewParseError(ErrMalformedNumber, &tok)
	}
	return num, nil
}

// The literal is the text between the quotes, no escape sequences are
// processed.
func (parser *Parser) parseString(tok Token) (string, error) {
	lexeme := tok.Lexeme(parser.source)
	if len(lexeme) < 2 || !strings.HasSuffix(lexeme, `"`) {
		return "", NewParseError(ErrMalformedString, &tok)
	}
	return lexeme[1 : len(lexeme)-1], nil
}

// Discards tokens until a statement boundary. Statements are not part of the
// grammar yet, the keywords are only used as resumption points.
func (parser *Parser) sync() {
	for {
		tok, ok := parser.advance()
		if !ok || tok.Typ == SEMICOLON {
			return
		}
		if next, ok := parser.peek(); ok && lo.Contains(statementKeywords, next.Typ) {
			return
		}
	}
}

var statementKeywords = []TokenType{CLASS, IF, VAR, FOR, FUN, WHILE, PRINT, RETURN}

func (parser *Parser) matchBinary(rules []binaryRule) (BinaryOp, bool) {
	tok, ok := parser.peek()
	if !ok {
		return 0, false
	}
	for _, rule := range rules {
		if rule.typ == tok.Typ {
			parser.advance()
			return rule.op, true
		}
	}
	return 0, false
}

func (parser *Parser) match(typ TokenType) bool {
	if parser.check(typ) {
		parser.advance()
		return true
	}
	return false
}

func (parser *Parser) consume(typ TokenType) error {
	tok, ok := parser.peek()
	if !ok {
		return NewExpectedError(typ, nil)
	}
	if tok.Typ != typ {
		return NewExpectedError(typ, &tok)
	}
	parser.advance()
	return nil
}

func (parser *Parser) check(typ TokenType) bool {
	tok, ok := parser.peek()
	return ok && tok.Typ == typ
}

func (parser *Parser) advance() (Token, bool) {
	tok, ok := parser.peek()
	if ok {
		parser.peeked = false
		parser.end = tok.Span.End
	}
	return tok, ok
}

func (parser *Parser) peek() (Token, bool) {
	if !parser.peeked {
		parser.next, parser.hasNext = parser.tokens.Next()
		parser.peeked = true
	}
	return parser.next, parser.hasNext
}
