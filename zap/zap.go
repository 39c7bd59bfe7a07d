package zap

import (
	"context"

	logpkg "github.com/LerianStudio/lib-cron/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a typed structured logging field (zap alias kept for convenience methods).
type Field = zap.Field

// Logger is a strict structured logger that implements log.Logger.
//
// It intentionally does not expose printf/line/fatal helpers.
type Logger struct {
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
}

// Compile-time assertion: *Logger implements logpkg.Logger.
var _ logpkg.Logger = (*Logger)(nil)

func (logger *Logger) must() *zap.Logger {
	if logger == nil || logger.logger == nil {
		return zap.NewNop()
	}

	return logger.logger
}

// Log implements log.Logger. It dispatches to the appropriate zap level.
// If ctx carries an active OpenTelemetry span, trace_id and span_id are
// automatically appended so logs correlate with distributed traces.
func (logger *Logger) Log(ctx context.Context, level logpkg.Level, msg string, fields ...logpkg.Field) {
	zapFields := logFieldsToZap(fields)

	if ctx != nil {
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			zapFields = append(zapFields,
				zap.String("trace_id", sc.TraceID().String()),
				zap.String("span_id", sc.SpanID().String()),
			)
		}
	}

	switch level {
	case logpkg.LevelDebug:
		logger.must().Debug(msg, zapFields...)
	case logpkg.LevelInfo:
		logger.must().Info(msg, zapFields...)
	case logpkg.LevelWarn:
		logger.must().Warn(msg, zapFields...)
	case logpkg.LevelError:
		logger.must().Error(msg, zapFields...)
	default:
		logger.must().Info(msg, zapFields...)
	}
}

// With returns a child logger with additional structured fields.
//
//nolint:ireturn
func (logger *Logger) With(fields ...logpkg.Field) logpkg.Logger {
	return &Logger{
		logger:      logger.must().With(logFieldsToZap(fields)...),
		atomicLevel: logger.atomicLevel,
	}
}

// Enabled reports whether the logger would emit a log at the given level.
func (logger *Logger) Enabled(level logpkg.Level) bool {
	return logger.must().Core().Enabled(logLevelToZap(level))
}

// Sync flushes buffered logs, respecting context cancellation.
func (logger *Logger) Sync(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)

	go func() {
		done <- logger.must().Sync()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

// WithZapFields returns a child logger with additional zap.Field values.
// Use this when working directly with zap fields for performance.
func (logger *Logger) WithZapFields(fields ...Field) *Logger {
	return &Logger{
		logger:      logger.must().With(fields...),
		atomicLevel: logger.atomicLevel,
	}
}

// Debug logs a message with debug severity.
func (logger *Logger) Debug(message string, fields ...Field) {
	logger.must().Debug(message, fields...)
}

// Info logs a message with info severity.
func (logger *Logger) Info(message string, fields ...Field) {
	logger.must().Info(message, fields...)
}

// Warn logs a message with warn severity.
func (logger *Logger) Warn(message string, fields ...Field) {
	logger.must().Warn(message, fields...)
}

// Error logs a message with error severity.
func (logger *Logger) Error(message string, fields ...Field) {
	logger.must().Error(message, fields...)
}

// Level returns the runtime-adjustable level handle for this logger.
func (logger *Logger) Level() zap.AtomicLevel {
	return logger.atomicLevel
}

// String creates a string field.
func String(key, value string) Field {
	return zap.String(key, value)
}

// Int creates an int field.
func Int(key string, value int) Field {
	return zap.Int(key, value)
}

// Ints creates an int-slice field.
func Ints(key string, value []int) Field {
	return zap.Ints(key, value)
}

// ErrorField creates an error field.
func ErrorField(err error) Field {
	return zap.Error(err)
}

// logLevelToZap converts a log.Level to a zapcore.Level.
func logLevelToZap(level logpkg.Level) zapcore.Level {
	switch level {
	case logpkg.LevelDebug:
		return zapcore.DebugLevel
	case logpkg.LevelInfo:
		return zapcore.InfoLevel
	case logpkg.LevelWarn:
		return zapcore.WarnLevel
	case logpkg.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// logFieldsToZap converts log.Field values to zap.Field values.
func logFieldsToZap(fields []logpkg.Field) []zap.Field {
	zapFields := make([]zap.Field, len(fields))
	for i, field := range fields {
		zapFields[i] = zap.Any(field.Key, field.Value)
	}

	return zapFields
}
