package vitals

import (
	"iter"
	"math"
	"slices"
	"strconv"

	"github.com/matzehuels/vitalchart/pkg/errors"
)

// Metric names as they appear in the dataset.
const (
	LargestContentfulPaint = "Largest Contentful Paint"
	InteractionToNextPaint = "Interaction to Next Paint"
	CumulativeLayoutShift  = "Cumulative Layout Shift"
)

// Info describes how a metric is labeled and scaled.
type Info struct {
	Name   string // Full metric name, the lookup key
	Abbrev string // Short label (LCP, INP, CLS)
	Unit   string // Display unit, empty for unitless scores

	// Scale converts a threshold into text bar characters: the threshold
	// is multiplied by Scale, or divided by it when Divide is set.
	Scale  float64
	Divide bool

	// Reference is the value drawn as a full-width bar in documents.
	Reference float64
}

var metrics = map[string]Info{
	LargestContentfulPaint: {Name: LargestContentfulPaint, Abbrev: "LCP", Unit: "ms", Scale: 100, Divide: true, Reference: 2500},
	InteractionToNextPaint: {Name: InteractionToNextPaint, Abbrev: "INP", Unit: "ms", Scale: 10, Divide: true, Reference: 2500},
	CumulativeLayoutShift:  {Name: CumulativeLayoutShift, Abbrev: "CLS", Unit: "", Scale: 100, Reference: 1},
}

// Scaled applies the metric's bar scale to v.
func (i Info) Scaled(v float64) float64 {
	if i.Divide {
		return v / i.Scale
	}
	return v * i.Scale
}

// Lookup returns the static metadata for a metric name.
func Lookup(metric string) (Info, bool) {
	info, ok := metrics[metric]
	return info, ok
}

// Record is a single metric threshold.
type Record struct {
	Metric    string `json:"metric" toml:"metric"`
	Threshold string `json:"threshold" toml:"threshold"`
}

// Info returns the lookup entry for the record's metric.
func (r Record) Info() (Info, error) {
	info, ok := Lookup(r.Metric)
	if !ok {
		return Info{}, errors.New(errors.ErrCodeDataFormat, "unknown metric %q", r.Metric)
	}
	return info, nil
}

// Value parses the threshold. It fails with DATA_FORMAT unless the
// threshold is a finite, non-negative number.
func (r Record) Value() (float64, error) {
	v, err := strconv.ParseFloat(r.Threshold, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeDataFormat, err, "%s: threshold %q is not numeric", r.Metric, r.Threshold)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New(errors.ErrCodeDataFormat, "%s: threshold %q is not finite", r.Metric, r.Threshold)
	}
	if v < 0 {
		return 0, errors.New(errors.ErrCodeDataFormat, "%s: threshold %q is negative", r.Metric, r.Threshold)
	}
	return v, nil
}

// Abbrev returns the short label, or the metric name if it has no entry.
func (r Record) Abbrev() string {
	if info, ok := Lookup(r.Metric); ok {
		return info.Abbrev
	}
	return r.Metric
}

// Unit returns the display unit, empty for unitless metrics.
func (r Record) Unit() string {
	info, _ := Lookup(r.Metric)
	return info.Unit
}

// Label returns the literal threshold followed by its unit, e.g. "2500ms".
func (r Record) Label() string {
	return r.Threshold + r.Unit()
}

// Validate checks that the record's metric is known and its threshold parses.
func (r Record) Validate() error {
	if _, err := r.Info(); err != nil {
		return err
	}
	_, err := r.Value()
	return err
}

// Dataset is an immutable, ordered sequence of records.
type Dataset struct {
	records []Record
}

// Default returns the Core Web Vitals "good" thresholds in display order.
func Default() Dataset {
	return Dataset{records: []Record{
		{Metric: LargestContentfulPaint, Threshold: "2500"},
		{Metric: InteractionToNextPaint, Threshold: "200"},
		{Metric: CumulativeLayoutShift, Threshold: "0.1"},
	}}
}

// NewDataset builds a dataset and validates every record.
func NewDataset(records ...Record) (Dataset, error) {
	ds := FromRecords(records...)
	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// FromRecords builds a dataset without validating it. Renderers still
// reject bad records when they reach them.
func FromRecords(records ...Record) Dataset {
	return Dataset{records: slices.Clone(records)}
}

// Validate checks every record and rejects empty datasets and repeated metrics.
func (d Dataset) Validate() error {
	if len(d.records) == 0 {
		return errors.New(errors.ErrCodeDataFormat, "dataset is empty")
	}
	seen := make(map[string]bool, len(d.records))
	for _, r := range d.records {
		if err := r.Validate(); err != nil {
			return err
		}
		if seen[r.Metric] {
			return errors.New(errors.ErrCodeDataFormat, "metric %q appears more than once", r.Metric)
		}
		seen[r.Metric] = true
	}
	return nil
}

// Len returns the number of records.
func (d Dataset) Len() int { return len(d.records) }

// At returns the i-th record in display order.
func (d Dataset) At(i int) Record { return d.records[i] }

// Records returns a copy of the records in display order.
func (d Dataset) Records() []Record { return slices.Clone(d.records) }

// All iterates over the records in display order.
func (d Dataset) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range d.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Values parses every threshold, failing on the first bad one.
func (d Dataset) Values() ([]float64, error) {
	out := make([]float64, len(d.records))
	for i, r := range d.records {
		v, err := r.Value()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Abbrevs returns the short labels in display order.
func (d Dataset) Abbrevs() []string {
	out := make([]string, len(d.records))
	for i, r := range d.records {
		out[i] = r.Abbrev()
	}
	return out
}

// Fingerprint returns a stable textual form of the dataset, suitable for
// deriving deterministic identifiers.
func (d Dataset) Fingerprint() string {
	var b []byte
	for _, r := range d.records {
		b = append(b, r.Metric...)
		b = append(b, '=')
		b = append(b, r.Threshold...)
		b = append(b, ';')
	}
	return string(b)
}
