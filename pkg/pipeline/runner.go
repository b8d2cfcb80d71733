package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vitalchart/pkg/artifact"
	"github.com/matzehuels/vitalchart/pkg/errors"
	"github.com/matzehuels/vitalchart/pkg/observability"
	"github.com/matzehuels/vitalchart/pkg/render/image"
	"github.com/matzehuels/vitalchart/pkg/render/interactive"
	"github.com/matzehuels/vitalchart/pkg/render/static"
	"github.com/matzehuels/vitalchart/pkg/render/text"
	"github.com/matzehuels/vitalchart/pkg/vitals"
)

// Runner executes the strategy sequence.
//
// The Runner is stateless apart from its writers and logger; it does not
// store results between runs.
type Runner struct {
	Stdout   io.Writer
	Notifier Notifier
	Logger   *log.Logger
}

// NewRunner creates a runner printing the text chart to stdout.
// A nil notifier prints nothing; a nil logger uses log.Default().
func NewRunner(stdout io.Writer, n Notifier, logger *log.Logger) *Runner {
	if stdout == nil {
		stdout = io.Discard
	}
	if n == nil {
		n = Discard
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Stdout: stdout, Notifier: n, Logger: logger}
}

// Run renders ds with every strategy in order.
//
// The returned error is non-nil when the run failed. A result is still
// returned when the failure happened after an artifact was written: a static
// document or image that could not be written is reported only after the
// text chart has been printed.
func (r *Runner) Run(ctx context.Context, ds vitals.Dataset, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	start := time.Now()
	result := &Result{}

	r.Notifier.Started()

	// Stage 1: HTML document
	deferred, err := r.document(ctx, ds, opts, result)
	if err != nil {
		return nil, err
	}

	// Stage 2: optional image
	if opts.Image.Enabled() {
		if err := r.image(ctx, ds, opts, result); err != nil && deferred == nil {
			deferred = err
		}
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	// Stage 3: text chart, always
	r.Notifier.TextHeader()
	if err := r.text(ctx, ds, opts); err != nil {
		return result, err
	}

	result.Duration = time.Since(start)
	r.Logger.Debug("run complete",
		"strategy", result.Strategy,
		"fallback", result.Fallback,
		"duration", result.Duration)

	return result, deferred
}

// document writes the interactive chart or, when its capability is missing,
// the static document. A deferred error is reported after the text chart;
// err aborts the run.
func (r *Runner) document(ctx context.Context, ds vitals.Dataset, opts Options, result *Result) (deferred, err error) {
	ir := interactive.New(opts.Interactive)

	reason := r.check(ctx, ir.Capability().Name(), ir.Check)
	if reason == nil {
		n, err := r.write(ctx, StrategyInteractive, opts.Output, func() (int, error) {
			return ir.Write(ctx, opts.Output, ds)
		})
		switch {
		case err == nil:
			result.Strategy, result.Path, result.Size = StrategyInteractive, opts.Output, n
			r.Notifier.Saved(StrategyInteractive, opts.Output)
			return nil, nil
		case errors.Is(err, errors.ErrCodeCapabilityUnavailable):
			reason = err
		default:
			return nil, err
		}
	}
	if !errors.Is(reason, errors.ErrCodeCapabilityUnavailable) {
		// Cancellation or an unexpected probe failure.
		return nil, reason
	}

	r.Logger.Debug("interactive chart unavailable", "reason", reason)
	observability.Render().OnFallback(ctx, string(StrategyInteractive), string(StrategyStatic), reason)
	r.Notifier.FallingBack(reason)
	result.Fallback, result.FallbackReason = true, reason

	n, err := r.write(ctx, StrategyStatic, opts.Output, func() (int, error) {
		return static.Write(opts.Output, ds, opts.Static)
	})
	if err != nil {
		if errors.Is(err, errors.ErrCodeIO) {
			return err, nil
		}
		return nil, err
	}
	result.Strategy, result.Path, result.Size = StrategyStatic, opts.Output, n
	r.Notifier.Saved(StrategyStatic, opts.Output)
	return nil, nil
}

// image exports the optional image. A missing capability is a notice only.
func (r *Runner) image(ctx context.Context, ds vitals.Dataset, opts Options, result *Result) error {
	f := image.Format(opts.Image.Format)
	res := &ImageResult{Format: opts.Image.Format, Path: opts.Image.Output}
	result.Image = res

	if reason := r.check(ctx, string(f), func(ctx context.Context) error { return image.Check(ctx, f) }); reason != nil {
		if !errors.Is(reason, errors.ErrCodeCapabilityUnavailable) {
			return reason
		}
		res.Skipped = reason
		r.Notifier.Skipped(StrategyImage, reason)
		return nil
	}

	n, err := r.write(ctx, StrategyImage, opts.Image.Output, func() (int, error) {
		return image.Write(ctx, opts.Image.Output, ds, f, opts.Image.Options)
	})
	if err != nil {
		if errors.Is(err, errors.ErrCodeCapabilityUnavailable) {
			res.Skipped = err
			r.Notifier.Skipped(StrategyImage, err)
			return nil
		}
		return err
	}
	res.Size = n
	r.Notifier.Saved(Strategy(f), opts.Image.Output)
	return nil
}

func (r *Runner) text(ctx context.Context, ds vitals.Dataset, opts Options) error {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, string(StrategyText))
	start := time.Now()

	cw := &countingWriter{w: r.Stdout}
	err := text.Render(cw, ds, opts.Text...)

	hooks.OnRenderComplete(ctx, string(StrategyText), "", cw.n, time.Since(start), err)
	return err
}

// check runs a capability preflight and reports it to the hooks.
func (r *Runner) check(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	observability.Capability().OnCapabilityCheck(ctx, name, time.Since(start), err)
	return err
}

// write runs one file-producing strategy between render hooks.
func (r *Runner) write(ctx context.Context, s Strategy, path string, fn func() (int, error)) (int, error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, string(s))
	start := time.Now()

	n, err := fn()

	duration := time.Since(start)
	hooks.OnRenderComplete(ctx, string(s), path, n, duration, err)
	if err == nil {
		r.Logger.Debug("wrote artifact", "strategy", s, "path", path, "size", artifact.Describe(n), "duration", duration)
	}
	return n, err
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
