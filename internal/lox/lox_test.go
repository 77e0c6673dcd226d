package lox

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tok(typ TokenType, start, end int) Token {
	return NewToken(typ, NewSpan(start, end))
}

// scanAll collects every token of the source, comments included
func scanAll(src string) []Token {
	toks := make([]Token, 0)
	for tok := range NewScanner(src).All() {
		toks = append(toks, tok)
	}
	return toks
}

// parseAll collects every parse result of the source, comments excluded
func parseAll(src string) []ParseResult {
	var results []ParseResult
	for result := range NewParser(src, SkipComments(NewScanner(src))).All() {
		results = append(results, result)
	}
	return results
}

// parseOne parses a source holding a single valid expression
func parseOne(t *testing.T, src string) Expr {
	t.Helper()
	results := parseAll(src)
	if assert.Len(t, results, 1, src) && assert.NoError(t, results[0].Err, src) {
		return results[0].Expr
	}
	t.FailNow()
	return nil
}

func run(src string, opts ...RunnerOption) (string, Reporter) {
	var out bytes.Buffer
	reporter := NewDiagnosticReporter(&out)
	runner := NewRunner(&out, reporter, opts...)
	runner.Run(context.Background(), src)
	return out.String(), reporter
}

func TestRunEvaluatesEveryExpression(t *testing.T) {
	testCases := []struct {
		src string
		out string
	}{
		{"2 + 3 * 4", "Number(14.0)\n"},
		{"2 - 3 - 4", "Number(-5.0)\n"},
		{`"a" + "b"`, "String(\"ab\")\n"},
		{"1 == \"1\"", "Boolean(false)\n"},
		{"nil", "Nil\n"},
		{"// only a comment", ""},
		{"", ""},
		{"1 // one\n2", "Number(1.0)\nNumber(2.0)\n"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		out, reporter := run(tc.src)
		assert.False(reporter.HadError(), tc.src)
		assert.False(reporter.HadRuntimeError(), tc.src)
		assert.Equal(tc.out, out, tc.src)
	}
}

func TestRunPlainMode(t *testing.T) {
	out, _ := run(`1 + 2 "a" + "b" nil 1 / 0`, WithPrintMode(PrintPlain))
	assert.Equal(t, "3\nab\nnil\ninf\n", out)
}

func TestRunShowAst(t *testing.T) {
	out, _ := run("-(1 + 2)", WithAst(true))
	assert.Equal(t, "(- (group (+ 1 2)))\nNumber(-3.0)\n", out)
}

func TestRunReportsAndContinues(t *testing.T) {
	src := "1 +\n;\n\"a\" + 1 print 3"
	out, reporter := run(src)

	assert := assert.New(t)
	assert.True(reporter.HadError())
	assert.True(reporter.HadRuntimeError())
	assert.Equal(
		"1 +\n"+
			"^^^\n"+
			";\n"+
			"^\n"+
			"[line 1:1] ExpectedPrimary: Error at ;: Expect expression.\n"+
			"\"a\" + 1 print 3\n"+
			"^^^^^^^\n"+
			"[line 3:1] RuntimeError: TypeError: expected String, got Number(1.0)\n"+
			"print 3\n"+
			"^^^^^^^\n"+
			"[line 3:9] ExpectedPrimary: Error at PRINT: Expect expression.\n",
		out,
	)
}

func TestRunLogs(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	run("1 +", WithLogger(logger))
	run("-nil", WithLogger(logger))
	run("true", WithLogger(logger))

	assert := assert.New(t)
	assert.Contains(logs.String(), `msg="parse error" span=0..3`)
	assert.Contains(logs.String(), `msg="runtime error" span=0..4`)
	assert.Contains(logs.String(), `msg=evaluated span=0..4 type=Boolean`)
}
