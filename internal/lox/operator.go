package lox

import "fmt"

// UnaryOp is the operator of a unary expression
type UnaryOp uint8

const (
	OpNeg UnaryOp = iota
	OpNot
)

func (op UnaryOp) String() string {
	switch op {
	case OpNeg:
		return "-"
	case OpNot:
		return "!"
	}
	return fmt.Sprintf("UnaryOp(%d)", uint8(op))
}

// BinaryOp is the operator of a binary expression
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpDiv
	OpMul
	OpEqual
	OpNotEqual
	OpGreater
	OpGreaterEqual
	OpLess
	OpLessEqual
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpDiv:
		return "/"
	case OpMul:
		return "*"
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	}
	return fmt.Sprintf("BinaryOp(%d)", uint8(op))
}
