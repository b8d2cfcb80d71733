// Package config loads vitalchart settings from an optional TOML file.
//
// Values are layered: built-in defaults, then the file, then command-line
// flags (applied by the CLI). The dataset itself is not configurable.
//
//	output = "core_web_vitals_chart.html"
//
//	[chart]
//	title  = "Google Core Web Vitals Thresholds (2025)"
//	color  = "#1FB8CD"
//
//	[interactive]
//	enabled     = true
//	assets_host = "https://go-echarts.github.io/go-echarts-assets/assets/"
//
//	[image]
//	format = "png"
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/vitalchart/pkg/errors"
	"github.com/matzehuels/vitalchart/pkg/pipeline"
	"github.com/matzehuels/vitalchart/pkg/render/image"
	"github.com/matzehuels/vitalchart/pkg/render/interactive"
	"github.com/matzehuels/vitalchart/pkg/render/static"
	"github.com/matzehuels/vitalchart/pkg/render/text"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "vitalchart.toml"

// maxDimension bounds chart width and height, in pixels.
const maxDimension = 10000

// Config is the complete set of file settings.
type Config struct {
	Output      string            `toml:"output"`
	Chart       ChartConfig       `toml:"chart"`
	Interactive InteractiveConfig `toml:"interactive"`
	Image       ImageConfig       `toml:"image"`
}

// ChartConfig holds presentation settings shared by all renderers.
type ChartConfig struct {
	Title  string `toml:"title"`
	XAxis  string `toml:"x_axis"`
	YAxis  string `toml:"y_axis"`
	Color  string `toml:"color"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// InteractiveConfig controls the go-echarts renderer.
type InteractiveConfig struct {
	Enabled    bool   `toml:"enabled"`
	AssetsHost string `toml:"assets_host"`
}

// ImageConfig controls the optional image export.
type ImageConfig struct {
	Format string `toml:"format"` // png, svg, pdf; empty disables
	Output string `toml:"output"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Output: pipeline.DefaultOutput,
		Chart: ChartConfig{
			Title:  interactive.DefaultTitle,
			XAxis:  interactive.DefaultXAxis,
			YAxis:  interactive.DefaultYAxis,
			Color:  interactive.DefaultColor,
			Width:  interactive.DefaultWidth,
			Height: interactive.DefaultHeight,
		},
		Interactive: InteractiveConfig{
			Enabled:    true,
			AssetsHost: interactive.DefaultAssetsHost,
		},
	}
}

// Load reads path over the defaults. An empty path reads [DefaultFile] if it
// exists and returns the defaults otherwise. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown key %q", path, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if err := errors.ValidateOutputPath(c.Output); err != nil {
		return err
	}
	if err := errors.ValidateColor(c.Chart.Color); err != nil {
		return err
	}
	if c.Chart.Width <= 0 || c.Chart.Width > maxDimension {
		return errors.New(errors.ErrCodeInvalidConfig, "chart width %d out of range (1-%d)", c.Chart.Width, maxDimension)
	}
	if c.Chart.Height <= 0 || c.Chart.Height > maxDimension {
		return errors.New(errors.ErrCodeInvalidConfig, "chart height %d out of range (1-%d)", c.Chart.Height, maxDimension)
	}
	if c.Interactive.Enabled && c.Interactive.AssetsHost == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "interactive.assets_host is empty")
	}
	if err := errors.ValidateImageFormat(c.Image.Format); err != nil {
		return err
	}
	if c.Image.Output != "" {
		if err := errors.ValidateOutputPath(c.Image.Output); err != nil {
			return err
		}
	}
	return nil
}

// PipelineOptions maps the settings onto a pipeline run.
func (c Config) PipelineOptions() pipeline.Options {
	opts := pipeline.Options{
		Output: c.Output,
		Interactive: interactive.Options{
			Title:      c.Chart.Title,
			XAxis:      c.Chart.XAxis,
			YAxis:      c.Chart.YAxis,
			Color:      c.Chart.Color,
			Width:      c.Chart.Width,
			Height:     c.Chart.Height,
			AssetsHost: c.Interactive.AssetsHost,
		},
		Static: static.Options{
			Title: c.Chart.Title,
			Color: c.Chart.Color,
		},
		Text: []text.Option{text.WithTitle(c.Chart.Title)},
		Image: pipeline.ImageOptions{
			Format: c.Image.Format,
			Output: c.Image.Output,
			Options: image.Options{
				Title:  c.Chart.Title,
				Color:  c.Chart.Color,
				Width:  c.Chart.Width,
				Height: c.Chart.Height,
			},
		},
	}
	if !c.Interactive.Enabled {
		opts.Interactive.Disabled = "disabled in configuration"
	}
	return opts
}
