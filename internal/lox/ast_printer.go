package lox

import (
	"fmt"
	"strconv"
)

// AstPrinter renders syntax trees in a parenthesized prefix form, e.g.
// "(+ 2 (* 3 4))".
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	switch expr := expr.(type) {
	case *BinaryExpr:
		return fmt.Sprintf(
			"(%s %s %s)",
			expr.Op,
			printer.Print(expr.Left),
			printer.Print(expr.Right),
		)
	case *GroupingExpr:
		return fmt.Sprintf("(group %s)", printer.Print(expr.Expr))
	case *LiteralExpr:
		if s, ok := expr.Val.(String); ok {
			return strconv.Quote(string(s))
		}
		return Stringify(expr.Val)
	case *UnaryExpr:
		return fmt.Sprintf("(%s %s)", expr.Op, printer.Print(expr.Expr))
	}
	panic("unreachable")
}
