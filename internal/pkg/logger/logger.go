package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vndocs/authcore/internal/pkg/models"
)

// ZapLogger wraps zap with the application's default configuration.
type ZapLogger struct {
	*zap.Logger
	sugar *zap.SugaredLogger
}

// NewZapLogger creates a structured JSON logger at the configured level.
func NewZapLogger(config models.LoggerConfig) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(config.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return &ZapLogger{
		Logger: zl,
		sugar:  zl.Sugar(),
	}, nil
}

// WithError returns a logger with an error field attached.
func (l *ZapLogger) WithError(err error) *zap.Logger {
	return l.Logger.With(zap.Error(err))
}

// Sugar returns the sugared logger.
func (l *ZapLogger) Sugar() *zap.SugaredLogger {
	return l.sugar
}

// Close flushes any buffered log entries.
func (l *ZapLogger) Close() error {
	return l.Logger.Sync()
}
