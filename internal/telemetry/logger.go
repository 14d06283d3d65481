// Package telemetry provides the leveled, structured logger the Dataizer
// and the fibonacci command use to trace a run, backed by go.uber.org/zap.
package telemetry

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is a log message's severity. It is zapcore.Level directly so a
// Logger's minimum level composes with the rest of zap's level machinery
// (AtomicLevel, level-based sampling) without a translation layer.
type Level = zapcore.Level

// Levels, low to high.
const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
)

// Field is one key-value pair attached to a log line.
type Field = zap.Field

// String builds a string-valued Field.
func String(key, value string) Field { return zap.String(key, value) }

// Int builds an int-valued Field.
func Int(key string, value int) Field { return zap.Int(key, value) }

// Err builds a Field carrying an error, keyed "error".
func Err(err error) Field { return zap.Error(err) }

// Logger writes leveled, component-tagged lines to an io.Writer. Writes to
// that writer are not serialized, so a Logger is safe for concurrent use
// only when the writer is.
type Logger struct {
	z *zap.Logger
}

// New returns a Logger at level that writes to w, tagged with component.
func New(w io.Writer, level Level, component string) *Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return &Logger{z: zap.New(core).Named(component)}
}

// Debug logs at DebugLevel.
func (l *Logger) Debug(msg string, fields ...Field) { l.z.Debug(msg, fields...) }

// Info logs at InfoLevel.
func (l *Logger) Info(msg string, fields ...Field) { l.z.Info(msg, fields...) }

// Warn logs at WarnLevel.
func (l *Logger) Warn(msg string, fields ...Field) { l.z.Warn(msg, fields...) }

// Sync flushes any buffered log entries, as zap.Logger.Sync does.
func (l *Logger) Sync() error { return l.z.Sync() }
