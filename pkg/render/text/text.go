// Package text renders the threshold dataset as proportional bar rows for a
// terminal.
//
// Each record becomes one line: the metric abbreviation, a bar of block
// characters scaled by the metric's lookup entry, and the literal threshold
// with its unit. Bars never exceed [MaxBar] characters.
//
//	LCP: █████████████████████████ 2500ms
//	INP: ████████████████████ 200ms
//	CLS: ██████████ 0.1
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/vitalchart/pkg/errors"
	"github.com/matzehuels/vitalchart/pkg/vitals"
)

const (
	// MaxBar is the longest bar, in characters.
	MaxBar = 50

	// BarChar is the character bars are drawn with.
	BarChar = "█"

	// DefaultTitle heads the chart.
	DefaultTitle = "Google Core Web Vitals Thresholds (2025)"

	// Caption closes the chart.
	Caption = "Thresholds represent 'Good' performance levels"

	ruleWidth = 50
)

// Option configures text rendering.
type Option func(*renderer)

type renderer struct {
	title    string
	barStyle *lipgloss.Style
}

// WithTitle replaces the header line.
func WithTitle(title string) Option {
	return func(r *renderer) { r.title = title }
}

// WithBarStyle colors bars. Without it bars are plain text.
func WithBarStyle(s lipgloss.Style) Option {
	return func(r *renderer) { r.barStyle = &s }
}

// BarLength returns the number of bar characters for a record: the
// threshold scaled by the metric's factor, truncated, clamped to [0, MaxBar].
func BarLength(r vitals.Record) (int, error) {
	info, err := r.Info()
	if err != nil {
		return 0, err
	}
	v, err := r.Value()
	if err != nil {
		return 0, err
	}
	return clamp(info.Scaled(v)), nil
}

func clamp(scaled float64) int {
	if scaled >= MaxBar {
		return MaxBar
	}
	if scaled <= 0 {
		return 0
	}
	return int(scaled)
}

// Render writes the chart to w. Every record is checked before anything is
// written, so a bad threshold produces a DATA_FORMAT error and no output.
func Render(w io.Writer, ds vitals.Dataset, opts ...Option) error {
	r := renderer{title: DefaultTitle}
	for _, opt := range opts {
		opt(&r)
	}

	rows := make([]string, 0, ds.Len())
	for _, rec := range ds.All() {
		n, err := BarLength(rec)
		if err != nil {
			return err
		}
		bar := strings.Repeat(BarChar, n)
		if r.barStyle != nil && n > 0 {
			bar = r.barStyle.Render(bar)
		}
		rows = append(rows, fmt.Sprintf("%s: %s %s", rec.Abbrev(), bar, rec.Label()))
	}

	var b strings.Builder
	b.WriteString(r.title + "\n")
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	for _, row := range rows {
		b.WriteString(row + "\n")
	}
	b.WriteString("\n" + Caption + "\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write text chart")
	}
	return nil
}
