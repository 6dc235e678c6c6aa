package observability

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger atomic.Pointer[zap.Logger]

func init() {
	globalLogger.Store(zap.NewNop())
}

// NewLogger builds a console logger at the given level ("debug", "info", ...).
// An unparseable level falls back to info.
func NewLogger(level string, out zapcore.WriteSyncer) *zap.Logger {
	atomicLevel := zap.NewAtomicLevel()
	if err := atomicLevel.UnmarshalText([]byte(level)); err != nil {
		atomicLevel.SetLevel(zap.InfoLevel)
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), out, atomicLevel)
	return zap.New(core, zap.AddStacktrace(zap.ErrorLevel))
}

// Initialize installs a stderr logger at level as the global logger
func Initialize(level string) *zap.Logger {
	logger := NewLogger(level, zapcore.Lock(os.Stderr))
	SetLogger(logger)
	return logger
}

// SetLogger replaces the global logger
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	globalLogger.Store(logger)
}

// L returns the global logger. It is a no-op logger until Initialize is called.
func L() *zap.Logger {
	return globalLogger.Load()
}

// Sync flushes the global logger
func Sync() {
	_ = L().Sync()
}
