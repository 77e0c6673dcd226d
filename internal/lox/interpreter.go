package lox

// Interpreter evaluates Lox syntax trees by walking them. This struct
// implements ExprVisitor.
type Interpreter struct{}

func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Eval evaluates the expression and returns its value, or the first
// runtime error encountered.
func (in *Interpreter) Eval(expr Expr) (Value, error) {
	return expr.Accept(in)
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (Value, error) {
	// both operands are evaluated before either of them is type checked
	lhs, err := in.Eval(expr.Left)
	if err != nil {
		return nil, err
	}
	rhs, err := in.Eval(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case OpAdd:
		return evalAdd(lhs, rhs)
	case OpSub:
		return evalArithmetic(lhs, rhs, func(a, b float64) float64 { return a - b })
	case OpDiv:
		// division by zero yields an infinity or NaN
		return evalArithmetic(lhs, rhs, func(a, b float64) float64 { return a / b })
	case OpMul:
		return evalArithmetic(lhs, rhs, func(a, b float64) float64 { return a * b })
	case OpEqual:
		return Boolean(Equal(lhs, rhs)), nil
	case OpNotEqual:
		return Boolean(!Equal(lhs, rhs)), nil
	case OpGreater:
		return evalComparison(lhs, rhs, func(a, b float64) bool { return a > b })
	case OpGreaterEqual:
		return evalComparison(lhs, rhs, func(a, b float64) bool { return a >= b })
	case OpLess:
		return evalComparison(lhs, rhs, func(a, b float64) bool { return a < b })
	case OpLessEqual:
		return evalComparison(lhs, rhs, func(a, b float64) bool { return a <= b })
	}
	panic("unreachable")
}

func (in *Interpreter) VisitGroupingExpr(expr *GroupingExpr) (Value, error) {
	return in.Eval(expr.Expr)
}

func (in *Interpreter) VisitLiteralExpr(expr *LiteralExpr) (Value, error) {
	return expr.Val, nil
}

func (in *Interpreter) VisitUnaryExpr(expr *UnaryExpr) (Value, error) {
	val, err := in.Eval(expr.Expr)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case OpNeg:
		num, err := AsNumber(val)
		if err != nil {
			return nil, runtimeError(err)
		}
		return Number(-num), nil
	case OpNot:
		return Boolean(!IsTruthy(val)), nil
	}
	panic("unreachable")
}

// "+" is overloaded on the type of the left operand.
func evalAdd(lhs, rhs Value) (Value, error) {
	switch lhs := lhs.(type) {
	case String:
		rightStr, err := AsString(rhs)
		if err != nil {
			return nil, runtimeError(err)
		}
		return lhs + String(rightStr), nil
	case Number:
		rightNum, err := AsNumber(rhs)
		if err != nil {
			return nil, runtimeError(err)
		}
		return lhs + Number(rightNum), nil
	}
	return nil, NewRuntimeError(NewTypeError(lhs, TypeNumber, TypeString))
}

func evalArithmetic(lhs, rhs Value, fn func(a, b float64) float64) (Value, error) {
	a, b, err := numberOperands(lhs, rhs)
	if err != nil {
		return nil, err
	}
	return Number(fn(a, b)), nil
}

func evalComparison(lhs, rhs Value, fn func(a, b float64) bool) (Value, error) {
	a, b, err := numberOperands(lhs, rhs)
	if err != nil {
		return nil, err
	}
	return Boolean(fn(a, b)), nil
}

func numberOperands(lhs, rhs Value) (float64, float64, error) {
	a, err := AsNumber(lhs)
	if err != nil {
		return 0, 0, runtimeError(err)
	}
	b, err := AsNumber(rhs)
	if err != nil {
		return 0, 0, runtimeError(err)
	}
	return a, b, nil
}

// runtimeError wraps an error returned by the value extraction helpers,
// which is always a *TypeError.
func runtimeError(err error) error {
	return NewRuntimeError(err.(*TypeError))
}
