package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("warn", zapcore.AddSync(&buf))

	logger.Info("hidden")
	logger.Warn("shown", zap.String("page", "cart"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "cart")
}

func TestNewLoggerBadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("chatty", zapcore.AddSync(&buf))

	logger.Debug("debug line")
	logger.Info("info line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}

func TestSetLoggerNilInstallsNop(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, L())

	var buf bytes.Buffer
	SetLogger(NewLogger("debug", zapcore.AddSync(&buf)))
	defer SetLogger(nil)

	L().Debug("global")
	assert.Contains(t, buf.String(), "global")
}
