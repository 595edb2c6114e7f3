package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger. Development environments get a
// human-readable console encoder with ISO8601 timestamps.
func New(env string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if env == "development" || env == "dev" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	return cfg.Build()
}

// OrNop returns l, or a no-op logger when l is nil
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
