// Package pipeline provides the chart orchestration for vitalchart.
//
// This package implements the complete strategy sequence that the CLI runs:
// try the interactive chart, fall back to the static document when the
// plotting capability is missing, optionally export an image, and always
// print the text chart. By centralizing this logic, the root command and the
// tests drive exactly the same state machine.
//
// # Strategies
//
//  1. Interactive: go-echarts HTML page, requires the ECharts runtime
//  2. Static: self-contained HTML/CSS document, always available
//  3. Text: Unicode bar chart on the console, always run
//
// Exactly one of the two HTML documents is written per run, both at
// [Options.Output]. Only CAPABILITY_UNAVAILABLE from the interactive
// renderer triggers the fallback; any other interactive failure aborts the
// run before the text chart is printed.
//
// # Usage
//
//	runner := pipeline.NewRunner(os.Stdout, pipeline.NewPlainNotifier(os.Stdout), logger)
//	result, err := runner.Run(ctx, vitals.Default(), pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Strategy, result.Path)
package pipeline

import (
	"time"

	"github.com/matzehuels/vitalchart/pkg/errors"
	"github.com/matzehuels/vitalchart/pkg/render/image"
	"github.com/matzehuels/vitalchart/pkg/render/interactive"
	"github.com/matzehuels/vitalchart/pkg/render/static"
	"github.com/matzehuels/vitalchart/pkg/render/text"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultOutput is the document path shared by both HTML strategies.
const DefaultOutput = "core_web_vitals_chart.html"

// Strategy names a rendering strategy.
type Strategy string

// Strategies in the order the runner tries them.
const (
	StrategyInteractive Strategy = "interactive"
	StrategyStatic      Strategy = "static"
	StrategyImage       Strategy = "image"
	StrategyText        Strategy = "text"
)

// =============================================================================
// Options
// =============================================================================

// Options configures a run. Zero values take the renderers' defaults.
type Options struct {
	// Output is the HTML document path.
	Output string

	Interactive interactive.Options
	Static      static.Options
	Text        []text.Option

	// Image enables the image export when Format is set.
	Image ImageOptions
}

// ImageOptions configures the optional image export.
type ImageOptions struct {
	Format string // png, svg, pdf; empty disables the export
	Output string // defaults to Output with the format's extension
	image.Options
}

// Enabled reports whether an image is requested.
func (o ImageOptions) Enabled() bool { return o.Format != "" }

// ValidateAndSetDefaults checks paths, colors and formats and fills in
// defaults. It is called by [Runner.Run].
func (o *Options) ValidateAndSetDefaults() error {
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if err := errors.ValidateOutputPath(o.Output); err != nil {
		return err
	}
	if o.Interactive.Color != "" {
		if err := errors.ValidateColor(o.Interactive.Color); err != nil {
			return err
		}
	}
	if o.Static.Color != "" {
		if err := errors.ValidateColor(o.Static.Color); err != nil {
			return err
		}
	}

	if !o.Image.Enabled() {
		return nil
	}
	f, err := image.ParseFormat(o.Image.Format)
	if err != nil {
		return err
	}
	if o.Image.Output == "" {
		o.Image.Output = image.OutputPath(o.Output, f)
	}
	if o.Image.Output == o.Output {
		return errors.New(errors.ErrCodeInvalidPath, "image output %q would overwrite the chart document", o.Image.Output)
	}
	return errors.ValidateOutputPath(o.Image.Output)
}

// =============================================================================
// Result
// =============================================================================

// Result describes what a run produced.
type Result struct {
	// Strategy is the HTML strategy that wrote Path.
	Strategy Strategy
	Path     string
	Size     int

	// Fallback is set when the interactive chart was replaced by the static
	// document; FallbackReason is the CAPABILITY_UNAVAILABLE error.
	Fallback       bool
	FallbackReason error

	// Image is nil unless an image export was requested.
	Image *ImageResult

	Duration time.Duration
}

// ImageResult describes the optional image export.
type ImageResult struct {
	Format  string
	Path    string
	Size    int
	Skipped error // CAPABILITY_UNAVAILABLE when the format could not be produced
}
