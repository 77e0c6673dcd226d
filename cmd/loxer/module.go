package main

import (
	"io"
	"os"

	"github.com/ltungv/lox/loxer/internal/configs"
	"github.com/ltungv/lox/loxer/internal/logs"
	"github.com/ltungv/lox/loxer/internal/lox"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs configs.Module
}

// Output receives evaluated values and diagnostics
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

func (Module) Reporter(output Output) lox.Reporter {
	return lox.NewDiagnosticReporter(output)
}

func (Module) Runner(
	output Output,
	reporter lox.Reporter,
	settings configs.Settings,
	logger logs.Logger,
) *lox.Runner {
	return lox.NewRunner(
		output,
		reporter,
		lox.WithPrintMode(lox.PrintMode(settings.PrintMode)),
		lox.WithAst(settings.ShowAst),
		lox.WithLogger(logger),
	)
}
