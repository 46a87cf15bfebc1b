package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	global *zap.Logger = zap.NewNop()
	once   sync.Once
)

// Init builds the process logger once. Level comes from LOG_LEVEL,
// development switches to the console encoder.
func Init(level string, development bool) *zap.Logger {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		if development {
			cfg = zap.NewDevelopmentConfig()
		}
		cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
		l, err := cfg.Build(zap.AddCallerSkip(0))
		if err != nil {
			l = zap.NewNop()
		}
		global = l
	})
	return global
}

func L() *zap.Logger {
	return global
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
