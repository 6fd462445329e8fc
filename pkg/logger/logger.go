// Package logger provides structured logging utilities.
// It wraps the zap logger with a simplified key-value interface.
//
// Logs are an event stream written to stderr by default, so that a command's
// stdout stays reserved for its result.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// contextKey is a custom type for context keys.
type contextKey string

// RunIDKey is the context key for the per-invocation run ID.
const RunIDKey contextKey = "run_id"

// ContextWithRunID returns a copy of ctx carrying the given run ID.
func ContextWithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// RunID extracts the run ID from ctx, or "" if none is set.
func RunID(ctx context.Context) string {
	if id, ok := ctx.Value(RunIDKey).(string); ok {
		return id
	}
	return ""
}

// Logger is the application logger.
type Logger struct {
	zap    *zap.Logger
	sugar  *zap.SugaredLogger
	fields []any
}

// Config contains logger configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string

	// Format is the output format (json, console).
	Format string

	// Development enables development mode (stack traces on warn, DPanic panics).
	Development bool

	// Output is where entries are written. Defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns the default logger configuration.
//
// Returns:
//   - Config: warn level, console format, stderr output
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
		Output: os.Stderr,
	}
}

// New creates a new Logger with the given configuration.
//
// Parameters:
//   - cfg: Logger configuration
//
// Returns:
//   - *Logger: configured logger instance
//   - error: invalid level or format
func New(cfg Config) (*Logger, error) {
	level := zapcore.WarnLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "console", "":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("invalid log format %q: want json or console", cfg.Format)
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := []zap.Option{
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}

	return fromCore(zapcore.NewCore(encoder, zapcore.AddSync(out), level), opts...), nil
}

// MustNew creates a new Logger and panics on error.
func MustNew(cfg Config) *Logger {
	l, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return l
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return fromCore(zapcore.NewNopCore())
}

func fromCore(core zapcore.Core, opts ...zap.Option) *Logger {
	z := zap.New(core, opts...)
	return &Logger{
		zap:   z,
		sugar: z.Sugar(),
	}
}

// Debug logs a debug message with optional key-value pairs.
func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, l.kv(keysAndValues)...)
}

// Info logs an info message with optional key-value pairs.
func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.sugar.Infow(msg, l.kv(keysAndValues)...)
}

// Warn logs a warning message with optional key-value pairs.
func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.sugar.Warnw(msg, l.kv(keysAndValues)...)
}

// Error logs an error message with optional key-value pairs.
func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.sugar.Errorw(msg, l.kv(keysAndValues)...)
}

// kv prepends the logger's bound fields. It always copies so that
// loggers derived with With never share a backing array.
func (l *Logger) kv(keysAndValues []any) []any {
	out := make([]any, 0, len(l.fields)+len(keysAndValues))
	out = append(out, l.fields...)
	return append(out, keysAndValues...)
}

// With returns a logger with additional context fields.
// These fields will be included in all subsequent log entries.
//
// Parameters:
//   - keysAndValues: key-value pairs to add
//
// Returns:
//   - *Logger: new logger with additional fields
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{
		zap:    l.zap,
		sugar:  l.sugar,
		fields: l.kv(keysAndValues),
	}
}

// WithContext returns a logger carrying the run ID found in ctx, if any.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if runID := RunID(ctx); runID != "" {
		return l.With("run_id", runID)
	}
	return l
}

// Named returns a named logger.
//
// Parameters:
//   - name: The logger name (will be added to log output)
//
// Returns:
//   - *Logger: A named logger
func (l *Logger) Named(name string) *Logger {
	named := l.zap.Named(name)
	return &Logger{
		zap:    named,
		sugar:  named.Sugar(),
		fields: l.fields,
	}
}

// Sync flushes any buffered log entries.
// Should be called before application exit.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}
