// Package image exports the threshold dataset as a static bar chart image.
//
// PNG and SVG are drawn with go-chart. PDF is the SVG converted by
// rsvg-convert, so it depends on that tool being installed; [Check] reports
// its absence as CAPABILITY_UNAVAILABLE.
package image

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/matzehuels/vitalchart/pkg/artifact"
	"github.com/matzehuels/vitalchart/pkg/errors"
	"github.com/matzehuels/vitalchart/pkg/render"
	"github.com/matzehuels/vitalchart/pkg/vitals"
)

// Format is an image output format.
type Format string

// Supported formats.
const (
	PNG Format = "png"
	SVG Format = "svg"
	PDF Format = "pdf"
)

// Defaults for [Options].
const (
	DefaultTitle  = "Google Core Web Vitals Thresholds (2025)"
	DefaultColor  = "#1FB8CD"
	DefaultWidth  = 800
	DefaultHeight = 400

	barWidth = 80
)

// Options configures the image.
type Options struct {
	Title  string
	Color  string
	Width  int
	Height int
}

func (o *Options) setDefaults() {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Color == "" {
		o.Color = DefaultColor
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "image format is empty")
	}
	if err := errors.ValidateImageFormat(s); err != nil {
		return "", err
	}
	return Format(s), nil
}

// OutputPath replaces the extension of path with the format's.
func OutputPath(path string, f Format) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + string(f)
}

// Check reports whether format can be produced in this environment.
func Check(ctx context.Context, f Format) error {
	if f == PDF {
		return render.PDFCapability().Check(ctx)
	}
	return ctx.Err()
}

// Render draws the dataset as a vertical bar chart in the given format.
func Render(ctx context.Context, w io.Writer, ds vitals.Dataset, f Format, opts Options) error {
	opts.setDefaults()
	if err := errors.ValidateColor(opts.Color); err != nil {
		return err
	}

	graph, err := barChart(ds, opts)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch f {
	case PNG:
		err = graph.Render(chart.PNG, &buf)
	case SVG, PDF:
		err = graph.Render(chart.SVG, &buf)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported image format %q", f)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "draw %s chart", f)
	}

	data := buf.Bytes()
	if f == PDF {
		if data, err = render.ToPDF(ctx, data); err != nil {
			return err
		}
	}

	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s chart", f)
	}
	return nil
}

// Write checks the format's capability, renders and writes the image to path.
func Write(ctx context.Context, path string, ds vitals.Dataset, f Format, opts Options) (int, error) {
	if err := Check(ctx, f); err != nil {
		return 0, err
	}
	return artifact.WriteFunc(path, func(w io.Writer) error {
		return Render(ctx, w, ds, f, opts)
	})
}

func barChart(ds vitals.Dataset, opts Options) (chart.BarChart, error) {
	fill := colorFromHex(opts.Color)
	style := chart.Style{FillColor: fill, StrokeColor: fill, StrokeWidth: 1}

	bars := make([]chart.Value, 0, ds.Len())
	for _, rec := range ds.All() {
		info, err := rec.Info()
		if err != nil {
			return chart.BarChart{}, err
		}
		v, err := rec.Value()
		if err != nil {
			return chart.BarChart{}, err
		}
		bars = append(bars, chart.Value{
			Value: v,
			Label: info.Abbrev + " (" + rec.Label() + ")",
			Style: style,
		})
	}
	if len(bars) == 0 {
		return chart.BarChart{}, errors.New(errors.ErrCodeDataFormat, "dataset is empty")
	}

	return chart.BarChart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		BarWidth:   barWidth,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Bars:       bars,
	}, nil
}

// colorFromHex accepts #rgb and #rrggbb.
func colorFromHex(s string) drawing.Color {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return drawing.ColorFromHex(hex)
}
