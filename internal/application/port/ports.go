// Package port contains the port interfaces (driven ports) for the application layer.
// Ports define what the application layer needs from the outside world; adapters
// in cmd/ and pkg/ provide the implementations.
package port

import "context"

// Logger defines the interface for structured logging.
// The sorter reports each decision through it; the CLI adapts pkg/logger (zap).
//
// Example usage:
//
//	log.Debug("Package classified", "category", category, "volume_cm3", volume)
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...any)

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// With returns a logger with additional context fields.
	With(keysAndValues ...any) Logger

	// WithContext returns a logger carrying values from ctx (e.g., the run ID).
	WithContext(ctx context.Context) Logger
}
