package main

// This is an interpreter for Lox expressions written in Go.

import (
	"context"
	"fmt"
	"os"

	"github.com/ltungv/lox/loxer/internal/configs"
	"github.com/ltungv/lox/loxer/internal/logs"
	"github.com/ltungv/lox/loxer/internal/lox"
	"github.com/reusee/dscope"
)

func main() {
	args := os.Args[1:]
	if len(args) > 1 {
		fmt.Println("Usage: loxer [script]")
		os.Exit(64)
	}

	scope := dscope.New(new(Module))

	var settings configs.Settings
	var err error
	scope.Call(func(loader configs.Loader) {
		settings, err = configs.LoadSettings(loader)
	})
	exitOnError(err, 78)
	exitOnError(logs.SetLevel(settings.LogLevel), 78)
	scope = scope.Fork(dscope.Provide(settings))

	ctx := context.Background()
	scope.Call(func(
		runner *lox.Runner,
		logger logs.Logger,
	) {
		if len(args) != 1 {
			logger.Debug("interactive mode", "prompt", settings.Prompt)
			exitOnError(runPrompt(ctx, runner, settings), 74)
		} else {
			logger.Debug("script mode", "path", args[0])
			runFile(ctx, args[0], runner)
		}
	})
}

// Run the given file as script
func runFile(ctx context.Context, fpath string, runner *lox.Runner) {
	bytes, err := os.ReadFile(fpath)
	exitOnError(err, 66)

	ctx, _ = logs.NewRun(ctx)
	runner.Run(ctx, string(bytes))
	exitIf(runner.Reporter().HadError(), 65)
	exitIf(runner.Reporter().HadRuntimeError(), 70)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
