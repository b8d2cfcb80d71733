package interactive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"

	"github.com/matzehuels/vitalchart/pkg/artifact"
	"github.com/matzehuels/vitalchart/pkg/errors"
	"github.com/matzehuels/vitalchart/pkg/render"
	"github.com/matzehuels/vitalchart/pkg/vitals"
)

// Defaults for [Options].
const (
	DefaultTitle      = "Google Core Web Vitals Thresholds (2025)"
	DefaultXAxis      = "Time/Score"
	DefaultYAxis      = "Metrics"
	DefaultColor      = "#1FB8CD"
	DefaultWidth      = 800
	DefaultHeight     = 400
	DefaultAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

	seriesName = "Threshold"
)

// Options configures the chart.
type Options struct {
	Title  string
	XAxis  string // Caption of the value axis
	YAxis  string // Caption of the category axis
	Color  string // Bar color as #rgb or #rrggbb
	Width  int    // Pixels
	Height int    // Pixels

	// AssetsHost is the URL or local directory serving echarts.min.js.
	AssetsHost string

	// Disabled marks the plotting capability as unavailable, with the
	// reason reported by Check.
	Disabled string
}

func (o *Options) setDefaults() {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.XAxis == "" {
		o.XAxis = DefaultXAxis
	}
	if o.YAxis == "" {
		o.YAxis = DefaultYAxis
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
	if o.AssetsHost == "" {
		o.AssetsHost = DefaultAssetsHost
	}
	if !strings.HasSuffix(o.AssetsHost, "/") {
		o.AssetsHost += "/"
	}
}

// Renderer builds interactive chart pages.
type Renderer struct {
	opts       Options
	capability render.Capability
}

// New creates a renderer. Zero-valued options take their defaults.
func New(o Options) *Renderer {
	o.setDefaults()
	return &Renderer{opts: o, capability: newAssetsCapability(o)}
}

// Options returns the effective options after defaults.
func (r *Renderer) Options() Options { return r.opts }

// Capability returns the plotting capability this renderer depends on.
func (r *Renderer) Capability() render.Capability { return r.capability }

// Check is the preflight for the plotting capability.
func (r *Renderer) Check(ctx context.Context) error {
	return r.capability.Check(ctx)
}

// Series holds the three parallel sequences the chart is built from.
type Series struct {
	Labels []string  // Abbreviations, one per bar
	Values []float64 // Thresholds
	Texts  []string  // Outside-bar text, threshold plus unit
}

// BuildSeries derives the chart sequences from the dataset.
func BuildSeries(ds vitals.Dataset) (Series, error) {
	values, err := ds.Values()
	if err != nil {
		return Series{}, err
	}
	texts := make([]string, len(values))
	for i, rec := range ds.All() {
		info, err := rec.Info()
		if err != nil {
			return Series{}, err
		}
		texts[i] = FormatValue(values[i]) + info.Unit
	}
	return Series{Labels: ds.Abbrevs(), Values: values, Texts: texts}, nil
}

// FormatValue prints a threshold as a decimal that always has a fractional
// part: 2500 -> "2500.0", 0.1 -> "0.1".
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ChartID derives the element ID for a dataset. Equal inputs give equal IDs.
func (r *Renderer) ChartID(ds vitals.Dataset) string {
	seed := fmt.Sprintf("vitalchart|%s|%s|%dx%d", ds.Fingerprint(), r.opts.Title, r.opts.Width, r.opts.Height)
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed))
	return "vitals" + strings.ReplaceAll(id.String(), "-", "")
}

// Render writes the chart page to w. It does not run the capability check.
func (r *Renderer) Render(w io.Writer, ds vitals.Dataset) error {
	if err := errors.ValidateColor(r.opts.Color); err != nil {
		return err
	}
	s, err := BuildSeries(ds)
	if err != nil {
		return err
	}

	bar := r.build(s, r.ChartID(ds))

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "render chart")
	}
	if _, err := buf.WriteTo(w); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write chart")
	}
	return nil
}

func (r *Renderer) build(s Series, chartID string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  r.opts.Title,
			Width:      fmt.Sprintf("%dpx", r.opts.Width),
			Height:     fmt.Sprintf("%dpx", r.opts.Height),
			ChartID:    chartID,
			AssetsHost: r.opts.AssetsHost,
		}),
		charts.WithTitleOpts(opts.Title{Title: r.opts.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: r.opts.XAxis, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: r.opts.YAxis, Type: "category"}),
		charts.WithGridOpts(opts.Grid{Right: "15%"}),
	)

	items := make([]opts.BarData, len(s.Values))
	for i, v := range s.Values {
		// The item name carries the outside label; "{b}" prints it.
		items[i] = opts.BarData{Name: s.Texts[i], Value: v}
	}

	bar.SetXAxis(s.Labels).
		AddSeries(seriesName, items,
			charts.WithLabelOpts(opts.Label{
				Show:      true,
				Position:  "right",
				Formatter: "{b}",
			}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: r.opts.Color}),
		)
	bar.XYReversal()
	return bar
}

// Write checks the capability, renders the page and writes it to path,
// replacing any existing file. Nothing is written when the check fails.
func (r *Renderer) Write(ctx context.Context, path string, ds vitals.Dataset) (int, error) {
	if err := r.Check(ctx); err != nil {
		return 0, err
	}
	return artifact.WriteFunc(path, func(w io.Writer) error {
		return r.Render(w, ds)
	})
}
