package lox

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// PrintMode selects how evaluated values are written by the Runner
type PrintMode string

const (
	// PrintDebug writes values tagged with their variant, e.g. Number(14.0)
	PrintDebug PrintMode = "debug"
	// PrintPlain writes values the way a Lox program would print them
	PrintPlain PrintMode = "plain"
)

// Runner drives the whole pipeline over a piece of source: scanning,
// parsing, evaluating and reporting. A failing expression never prevents
// the following ones from being evaluated.
type Runner struct {
	output      io.Writer
	reporter    Reporter
	interpreter *Interpreter
	printer     *AstPrinter
	printMode   PrintMode
	showAst     bool
	logger      *slog.Logger
}

type RunnerOption func(runner *Runner)

func WithPrintMode(mode PrintMode) RunnerOption {
	return func(runner *Runner) {
		runner.printMode = mode
	}
}

// WithAst makes the runner echo the syntax tree of every parsed expression
func WithAst(show bool) RunnerOption {
	return func(runner *Runner) {
		runner.showAst = show
	}
}

func WithLogger(logger *slog.Logger) RunnerOption {
	return func(runner *Runner) {
		runner.logger = logger
	}
}

func NewRunner(output io.Writer, reporter Reporter, opts ...RunnerOption) *Runner {
	runner := &Runner{
		output:      output,
		reporter:    reporter,
		interpreter: NewInterpreter(),
		printer:     new(AstPrinter),
		printMode:   PrintDebug,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(runner)
	}
	return runner
}

func (runner *Runner) Reporter() Reporter {
	return runner.reporter
}

// Run parses and evaluates every top-level expression of source in order.
func (runner *Runner) Run(ctx context.Context, source string) {
	parser := NewParser(source, SkipComments(NewScanner(source)))
	for result := range parser.All() {
		if result.Err != nil {
			runner.logger.DebugContext(ctx, "parse error",
				"span", result.Span,
				"error", result.Err,
			)
			runner.reporter.Report(source, result.Span, result.Err)
			continue
		}

		if runner.showAst {
			fmt.Fprintln(runner.output, runner.printer.Print(result.Expr))
		}

		value, err := runner.interpreter.Eval(result.Expr)
		if err != nil {
			runner.logger.DebugContext(ctx, "runtime error",
				"span", result.Span,
				"error", err,
			)
			runner.reporter.Report(source, result.Span, err)
			continue
		}
		runner.logger.DebugContext(ctx, "evaluated",
			"span", result.Span,
			"type", value.Type(),
		)

		switch runner.printMode {
		case PrintPlain:
			fmt.Fprintln(runner.output, Stringify(value))
		default:
			fmt.Fprintln(runner.output, value)
		}
	}
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isAlphanumeric(b byte) bool {
	return isAlpha(b) || isDigit(b) || b == '_'
}

func isBeginIdent(b byte) bool {
	return isAlpha(b) || b == '_'
}
