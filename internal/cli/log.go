// Package cli implements the vitalchart command-line interface.
//
// This package wires configuration, logging and the render pipeline into
// cobra commands. Running the root command with no arguments writes the
// chart document and prints the text chart; subcommands run a single
// renderer or describe the dataset.
//
// # Commands
//
// The commands are:
//   - (root): interactive chart with static fallback, then the text chart
//   - text: print only the text chart
//   - static: write only the static HTML document
//   - list: show the dataset as a table
//   - completion: shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and render events reach the log through
// observability hooks registered before each command runs.
//
// # Example
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the diagnostics logger. It writes to w, never to the
// chart output, and prefixes every line with the application name.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	})
}

// logLevel maps --verbose onto a level. Command progress is logged at
// debug, so a quiet run prints only the chart lines.
func logLevel(verbose bool) log.Level {
	if verbose {
		return LogDebug
	}
	return LogInfo
}

// progress times one command and reports it at debug level.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with keyvals and the elapsed time, e.g.
// "Rendered interactive chart fallback=false elapsed=3ms".
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Debug(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for the command's RunE.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the command logger, or log.Default() when
// the command was run without PersistentPreRunE.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
