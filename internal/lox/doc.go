/*
Package lox scans, parses and evaluates Lox expressions.

Grammars

	expression --> equality ;
	equality   --> comparison ( ( "!=" | "==" ) comparison )* ;
	comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
	term       --> factor ( ( "-" | "+" ) factor )* ;
	factor     --> unary ( ( "/" | "*" ) unary )* ;
	unary      --> ( "!" | "-" ) unary
	             | primary ;
	primary    --> NUMBER | STRING
	             | "true" | "false" | "nil"
	             | "(" expression ")" ;

All binary operators are left-associative, unary operators nest to the right
so "!!x" is "!(!x)". There are no logical "and"/"or" operators.

Every stage is a lazy pull sequence: the Scanner hands out one token at a
time, the Parser pulls tokens with a single token of lookahead and hands
out one ParseResult per top-level expression, and the Interpreter evaluates
one tree at a time.
*/
package lox

//go:generate go run ../cmd/ast_codegen .
