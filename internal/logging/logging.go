// Package logging sets up the two loggers the task farm uses: zerolog for
// ambient CLI-facing messages (adapted from the teacher's logsetup.go) and
// zap for structured dispatcher/worker internals (adapted from the
// teacher's thread_pool.go NewProduction() usage).
package logging

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/zap"
)

var levels = map[string]zerolog.Level{
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"fatal":    zerolog.FatalLevel,
	"panic":    zerolog.PanicLevel,
	"disabled": zerolog.Disabled,
	"trace":    zerolog.TraceLevel,
}

// SetupZeroLog configures the global zerolog level from a CLI-supplied
// level name and sets the RFC822 time format the teacher used.
func SetupZeroLog(logLevel string) error {
	zerolog.TimeFieldFormat = time.RFC822

	level, ok := levels[strings.ToLower(logLevel)]
	if !ok {
		return fmt.Errorf("logging: undefined log level %q", logLevel)
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

// NewZapLogger builds the structured logger passed to the dispatcher and
// every worker rank. debug selects zap's development config (human-
// readable, synchronous) over the default production config (JSON).
func NewZapLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
