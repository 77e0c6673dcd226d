package logs

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/reusee/dscope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleLogger(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		assert.NotNil(t, logger)
		logger.Info("test", "hello", "world!")
	})
}

func TestLoggerTextOutput(t *testing.T) {
	require.NoError(t, SetLevel("info"))
	defer level.Set(slog.LevelWarn)

	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Info("evaluated", "type", "Number")
	logger.Debug("hidden")

	assert := assert.New(t)
	assert.Contains(buf.String(), "msg=evaluated")
	assert.Contains(buf.String(), "type=Number")
	assert.NotContains(buf.String(), "hidden")
}

func TestLoggerRunAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	ctx, id := NewRun(context.Background())
	logger.WarnContext(ctx, "parse error")

	assert := assert.New(t)
	assert.NotEmpty(id)
	assert.Contains(buf.String(), "run="+string(id))
}

func TestLoggerWithAttrsKeepsRun(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false).With("component", "runner")

	ctx, id := NewRun(context.Background())
	logger.WarnContext(ctx, "runtime error")

	assert := assert.New(t)
	assert.Contains(buf.String(), "component=runner")
	assert.Contains(buf.String(), "run="+string(id))
}

func TestSetLevel(t *testing.T) {
	defer level.Set(slog.LevelWarn)

	testCases := []struct {
		name  string
		level slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"", slog.LevelWarn},
		{" error ", slog.LevelError},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.NoError(SetLevel(tc.name))
		assert.Equal(tc.level, level.Level())
	}
	assert.Error(SetLevel("verbose"))
}

func TestToJournalKey(t *testing.T) {
	assert.Equal(t, "RUN_ID", toJournalKey("run.id"))
	assert.Equal(t, "SPAN", toJournalKey("span"))
}
