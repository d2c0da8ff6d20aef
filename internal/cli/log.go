// Package cli implements the automata command-line interface.
//
// This package provides commands for inspecting finite automata stored in
// TOML definition files, simulating words on them, and deriving new automata
// through the operations of the pipeline package. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - info, print: Describe a definition file
//   - match, read, repl: Simulate words
//   - transform, product, compare: Derive and relate automata
//   - cache: Manage the result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so pipeline hooks can report progress.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times a batch of automaton work and logs a one-line summary.
type progress struct {
	logger *log.Logger
	verb   string
	start  time.Time
}

func newProgress(l *log.Logger, verb string) *progress {
	return &progress{logger: l, verb: verb, start: time.Now()}
}

// done logs the verb, the count and the elapsed time, choosing between the
// singular and plural noun: "Matched 1 word (0s)", "Compared 2 automata (1ms)".
func (p *progress) done(n int, singular, plural string) {
	noun := plural
	if n == 1 {
		noun = singular
	}
	p.logger.Infof("%s %d %s (%s)", p.verb, n, noun, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
