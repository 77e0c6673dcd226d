package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/ltungv/lox/loxer/internal/configs"
	"github.com/ltungv/lox/loxer/internal/logs"
	"github.com/ltungv/lox/loxer/internal/lox"
	"github.com/peterh/liner"
	"golang.org/x/term"
)

// LineReader yields one line of input per call, io.EOF ends the session.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// Run the interpreter in REPL mode
func runPrompt(ctx context.Context, runner *lox.Runner, settings configs.Settings) error {
	var reader LineReader
	if term.IsTerminal(int(os.Stdin.Fd())) {
		reader = newLinerReader(settings.Prompt, settings.HistoryFile)
	} else {
		reader = newScannerReader(os.Stdin)
	}
	defer reader.Close()
	return repl(ctx, reader, runner)
}

func repl(ctx context.Context, reader LineReader, runner *lox.Runner) error {
	for {
		line, err := reader.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		lineCtx, _ := logs.NewRun(ctx)
		runner.Run(lineCtx, line)
		runner.Reporter().Reset()
	}
}

type scannerReader struct {
	scanner *bufio.Scanner
}

func newScannerReader(r io.Reader) *scannerReader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanLines)
	return &scannerReader{s}
}

func (reader *scannerReader) ReadLine() (string, error) {
	if !reader.scanner.Scan() {
		if err := reader.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return reader.scanner.Text(), nil
}

func (reader *scannerReader) Close() error {
	return nil
}

// linerReader reads lines from a terminal with editing and history
type linerReader struct {
	line        *liner.State
	prompt      string
	historyPath string
}

func newLinerReader(prompt string, historyPath string) *linerReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}
	return &linerReader{line, prompt, historyPath}
}

func (reader *linerReader) ReadLine() (string, error) {
	for {
		input, err := reader.line.Prompt(reader.prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl-C drops the current line only
			continue
		}
		if err != nil {
			return "", err
		}
		if input != "" {
			reader.line.AppendHistory(input)
		}
		return input, nil
	}
}

func (reader *linerReader) Close() error {
	if reader.historyPath != "" {
		if err := os.MkdirAll(filepath.Dir(reader.historyPath), 0755); err == nil {
			if f, err := os.Create(reader.historyPath); err == nil {
				reader.line.WriteHistory(f)
				f.Close()
			}
		}
	}
	return reader.line.Close()
}
