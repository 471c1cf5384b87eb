package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// OrNop returns logger, or a no-op logger when logger is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// NewConsole builds a console-encoded development logger writing to w.
func NewConsole(w zapcore.WriteSyncer, level zapcore.Level) *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(w),
		level,
	)
	return zap.New(consoleCore)
}
