package vitals

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/vitalchart/pkg/errors"
)

func TestDefault(t *testing.T) {
	ds := Default()

	if ds.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ds.Len())
	}
	if err := ds.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	want := []Record{
		{Metric: "Largest Contentful Paint", Threshold: "2500"},
		{Metric: "Interaction to Next Paint", Threshold: "200"},
		{Metric: "Cumulative Layout Shift", Threshold: "0.1"},
	}
	if diff := cmp.Diff(want, ds.Records()); diff != "" {
		t.Errorf("Records() mismatch (-want +got):\n%s", diff)
	}
}

func TestAbbrevMapping(t *testing.T) {
	tests := []struct {
		metric string
		abbrev string
		unit   string
	}{
		{"Largest Contentful Paint", "LCP", "ms"},
		{"Interaction to Next Paint", "INP", "ms"},
		{"Cumulative Layout Shift", "CLS", ""},
	}

	for _, tt := range tests {
		t.Run(tt.abbrev, func(t *testing.T) {
			info, ok := Lookup(tt.metric)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.metric)
			}
			if info.Abbrev != tt.abbrev {
				t.Errorf("Abbrev = %q, want %q", info.Abbrev, tt.abbrev)
			}
			if info.Unit != tt.unit {
				t.Errorf("Unit = %q, want %q", info.Unit, tt.unit)
			}
			// Stable across calls
			again, _ := Lookup(tt.metric)
			if again != info {
				t.Error("Lookup() should be stable")
			}
		})
	}

	if diff := cmp.Diff([]string{"LCP", "INP", "CLS"}, Default().Abbrevs()); diff != "" {
		t.Errorf("Abbrevs() mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordLabel(t *testing.T) {
	tests := []struct {
		rec  Record
		want string
	}{
		{Record{Metric: LargestContentfulPaint, Threshold: "2500"}, "2500ms"},
		{Record{Metric: InteractionToNextPaint, Threshold: "200"}, "200ms"},
		{Record{Metric: CumulativeLayoutShift, Threshold: "0.1"}, "0.1"},
		{Record{Metric: "Time to First Byte", Threshold: "800"}, "800"},
	}

	for _, tt := range tests {
		if got := tt.rec.Label(); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.rec, got, tt.want)
		}
	}
}

func TestRecordValue(t *testing.T) {
	tests := []struct {
		name      string
		threshold string
		want      float64
		wantErr   bool
	}{
		{"integer", "2500", 2500, false},
		{"decimal", "0.1", 0.1, false},
		{"zero", "0", 0, false},
		{"not numeric", "fast", 0, true},
		{"empty", "", 0, true},
		{"negative", "-1", 0, true},
		{"nan", "NaN", 0, true},
		{"inf", "Inf", 0, true},
		{"unit suffix", "2500ms", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{Metric: LargestContentfulPaint, Threshold: tt.threshold}
			got, err := r.Value()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Value() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeDataFormat) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeDataFormat)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInfoScaled(t *testing.T) {
	tests := []struct {
		metric string
		value  float64
		want   int
	}{
		{LargestContentfulPaint, 2500, 25},
		{InteractionToNextPaint, 200, 20},
		{CumulativeLayoutShift, 0.1, 10},
	}

	for _, tt := range tests {
		info, _ := Lookup(tt.metric)
		if got := int(info.Scaled(tt.value)); got != tt.want {
			t.Errorf("%s Scaled(%v) = %d, want %d", info.Abbrev, tt.value, got, tt.want)
		}
	}
}

func TestNewDataset(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		wantErr bool
	}{
		{"valid", Default().Records(), false},
		{"single", []Record{{Metric: CumulativeLayoutShift, Threshold: "0.25"}}, false},
		{"empty", nil, true},
		{"unknown metric", []Record{{Metric: "First Input Delay", Threshold: "100"}}, true},
		{"bad threshold", []Record{{Metric: CumulativeLayoutShift, Threshold: "low"}}, true},
		{"duplicate", []Record{
			{Metric: CumulativeLayoutShift, Threshold: "0.1"},
			{Metric: CumulativeLayoutShift, Threshold: "0.25"},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDataset(tt.records...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewDataset() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeDataFormat) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeDataFormat)
			}
		})
	}
}

func TestDatasetImmutable(t *testing.T) {
	records := []Record{{Metric: LargestContentfulPaint, Threshold: "2500"}}
	ds := FromRecords(records...)

	records[0].Threshold = "9999"
	if ds.At(0).Threshold != "2500" {
		t.Error("dataset should not alias the input slice")
	}

	out := ds.Records()
	out[0].Threshold = "1"
	if ds.At(0).Threshold != "2500" {
		t.Error("Records() should return a copy")
	}
}

func TestDatasetAll(t *testing.T) {
	ds := Default()

	var got []string
	for i, r := range ds.All() {
		if ds.At(i) != r {
			t.Errorf("All() index %d mismatch", i)
		}
		got = append(got, r.Abbrev())
	}
	if diff := cmp.Diff([]string{"LCP", "INP", "CLS"}, got); diff != "" {
		t.Errorf("All() order mismatch (-want +got):\n%s", diff)
	}

	// Early break must not panic
	for range ds.All() {
		break
	}
}

func TestDatasetValues(t *testing.T) {
	got, err := Default().Values()
	if err != nil {
		t.Fatalf("Values() error: %v", err)
	}
	if diff := cmp.Diff([]float64{2500, 200, 0.1}, got); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}

	bad := FromRecords(Record{Metric: LargestContentfulPaint, Threshold: "x"})
	if _, err := bad.Values(); !errors.Is(err, errors.ErrCodeDataFormat) {
		t.Errorf("Values() error = %v, want DATA_FORMAT", err)
	}
}

func TestFingerprint(t *testing.T) {
	a := Default().Fingerprint()
	b := Default().Fingerprint()
	if a != b {
		t.Error("Fingerprint() should be deterministic")
	}

	other := FromRecords(Record{Metric: LargestContentfulPaint, Threshold: "4000"})
	if other.Fingerprint() == a {
		t.Error("different datasets should have different fingerprints")
	}
}
