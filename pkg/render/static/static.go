// Package static renders the threshold dataset as a self-contained styled
// HTML document that needs no scripts or external assets.
//
// Each record becomes a labeled bar whose width is the threshold as a
// percentage of the metric's reference value (see [vitals.Info]), capped at
// 100%. For the default dataset this gives LCP 100%, INP 8% and CLS 10%.
package static

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/vitalchart/pkg/artifact"
	"github.com/matzehuels/vitalchart/pkg/errors"
	"github.com/matzehuels/vitalchart/pkg/vitals"
)

//go:embed document.html.tmpl
var documentTemplate string

var tmpl = template.Must(template.New("document").Parse(documentTemplate))

// Defaults for [Options].
const (
	DefaultTitle     = "Google Core Web Vitals Thresholds (2025)"
	DefaultPageTitle = "Core Web Vitals Thresholds"
	DefaultColor     = "#1FB8CD"
)

// Options configures the document.
type Options struct {
	Title     string // Heading shown above the bars
	PageTitle string // Contents of <title>
	Color     string // Bar color as #rgb or #rrggbb
}

func (o *Options) setDefaults() {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.PageTitle == "" {
		o.PageTitle = DefaultPageTitle
	}
	if o.Color == "" {
		o.Color = DefaultColor
	}
}

type bar struct {
	Metric string
	Abbrev string
	Label  string
	Class  template.CSS
	Width  template.CSS
}

type document struct {
	Title     string
	PageTitle string
	Color     template.CSS
	Bars      []bar
}

// Width returns a record's bar width in percent of its reference value,
// rounded to two decimals and capped at 100.
func Width(r vitals.Record) (float64, error) {
	info, err := r.Info()
	if err != nil {
		return 0, err
	}
	v, err := r.Value()
	if err != nil {
		return 0, err
	}
	pct := v * 100 / info.Reference
	return min(100, math.Round(pct*100)/100), nil
}

// Render writes the document to w.
func Render(w io.Writer, ds vitals.Dataset, opts Options) error {
	opts.setDefaults()
	if err := errors.ValidateColor(opts.Color); err != nil {
		return err
	}

	doc := document{
		Title:     opts.Title,
		PageTitle: opts.PageTitle,
		Color:     template.CSS(opts.Color),
		Bars:      make([]bar, 0, ds.Len()),
	}
	for _, r := range ds.All() {
		width, err := Width(r)
		if err != nil {
			return err
		}
		abbrev := r.Abbrev()
		doc.Bars = append(doc.Bars, bar{
			Metric: r.Metric,
			Abbrev: abbrev,
			Label:  r.Label(),
			Class:  template.CSS(strings.ToLower(abbrev) + "-bar"),
			Width:  template.CSS(strconv.FormatFloat(width, 'f', -1, 64) + "%"),
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "execute document template")
	}
	if _, err := buf.WriteTo(w); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write document")
	}
	return nil
}

// Write renders the document and writes it to path, replacing any existing
// file. It returns the number of bytes written.
func Write(path string, ds vitals.Dataset, opts Options) (int, error) {
	return artifact.WriteFunc(path, func(w io.Writer) error {
		return Render(w, ds, opts)
	})
}
