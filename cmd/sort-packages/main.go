// Package main is the command-line entry point for the package sorter.
// It forwards four numeric arguments to the sorter and prints the category.
//
// Usage:
//
//	sort-packages <width> <height> <length> <mass>
//
// Exit codes:
//
//	0 - the category was printed to stdout
//	1 - the package was rejected at construction (e.g., a non-positive value)
//	2 - usage error (wrong argument count, non-numeric argument, bad flag)
//
// Environment Variables:
//
//	SORT_LOG_LEVEL   - Log level: debug, info, warn, error (default: warn)
//	SORT_LOG_FORMAT  - Log format: json, console (default: console)
//	SORT_APP_ENVIRONMENT - Deployment environment (default: production)
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/hapkiduki/package-sorter/internal/application/port"
	"github.com/hapkiduki/package-sorter/internal/application/service"
	"github.com/hapkiduki/package-sorter/internal/domain/entity"
	"github.com/hapkiduki/package-sorter/internal/infrastructure/config"
	"github.com/hapkiduki/package-sorter/pkg/logger"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags
var version = "dev"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// argNames lists the positional arguments in order.
var argNames = []string{"width", "height", "length", "mass"}

// usageError marks a failure caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and maps its outcome to an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}

	cmd := newRootCmd()
	cmd.SetArgs(normalizeArgs(args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return exitOK
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprint(stderr, cmd.UsageString())
		return exitUsage
	}
	return exitError
}

// newRootCmd builds the sort-packages command.
func newRootCmd() *cobra.Command {
	var log *logger.Logger

	cmd := &cobra.Command{
		Use:   "sort-packages <width> <height> <length> <mass>",
		Short: "Sort a package into STANDARD, SPECIAL or REJECTED",
		Long: `Sorts a single package by its dimensions (cm) and mass (kg).

A package is bulky when its volume is at least 1,000,000 cm³ or any side is
at least 150 cm. It is heavy when its mass is over 20 kg.

  STANDARD  neither bulky nor heavy
  SPECIAL   bulky or heavy
  REJECTED  bulky and heavy`,
		Example:       "  sort-packages 10 10 10 5\n  sort-packages 200 200 200 25",
		Version:       version,
		Args:          validateArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			log, err = logger.New(logger.Config{
				Level:       cfg.Log.Level,
				Format:      cfg.Log.Format,
				Development: cfg.IsDevelopment(),
				Output:      cmd.ErrOrStderr(),
			})
			if err != nil {
				return &usageError{err}
			}
			log = log.Named(cfg.App.Name)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				_ = log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logger.ContextWithRunID(cmd.Context(), uuid.NewString())
			sorter := service.NewSorter(&loggerAdapter{log})

			category, err := sorter.Sort(ctx, args[0], args[1], args[2], args[3])
			if err != nil {
				if errors.Is(err, entity.ErrNotNumeric) {
					return &usageError{err}
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), category)
			return nil
		},
	}

	cmd.Flags().String("log-level", "warn", "log level (debug, info, warn, error)")
	cmd.Flags().String("log-format", "console", "log format (json, console)")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	return cmd
}

// validateArgs checks the argument count and that every argument is a number.
func validateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(len(argNames))(cmd, args); err != nil {
		return &usageError{err}
	}
	for i, a := range args {
		if _, err := strconv.ParseFloat(strings.TrimSpace(a), 64); err != nil {
			return &usageError{fmt.Errorf("invalid %s: %q is not a number", argNames[i], a)}
		}
	}
	return nil
}

// normalizeArgs inserts "--" before the first negative number so that
// values such as "-5" reach the value check instead of the flag parser.
func normalizeArgs(args []string) []string {
	for i, a := range args {
		if a == "--" {
			return args
		}
		if isNegativeNumber(a) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

func isNegativeNumber(s string) bool {
	if !strings.HasPrefix(s, "-") {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// ============================================================================
// Adapters to implement port interfaces
// ============================================================================

// loggerAdapter adapts the logger.Logger to the port.Logger interface.
type loggerAdapter struct {
	*logger.Logger
}

// With implements port.Logger.
func (l *loggerAdapter) With(keysAndValues ...any) port.Logger {
	return &loggerAdapter{l.Logger.With(keysAndValues...)}
}

// WithContext implements port.Logger.
func (l *loggerAdapter) WithContext(ctx context.Context) port.Logger {
	return &loggerAdapter{l.Logger.WithContext(ctx)}
}
