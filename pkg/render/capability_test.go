package render

import (
	"context"
	"os"
	"testing"

	"github.com/matzehuels/vitalchart/pkg/errors"
)

func TestLookPathMissing(t *testing.T) {
	c := LookPath("vitalchart-definitely-missing-tool")
	if c.Name() != "vitalchart-definitely-missing-tool" {
		t.Errorf("Name() = %q", c.Name())
	}

	err := c.Check(context.Background())
	if !errors.Is(err, errors.ErrCodeCapabilityUnavailable) {
		t.Errorf("Check() error = %v, want CAPABILITY_UNAVAILABLE", err)
	}
}

func TestLookPathPresent(t *testing.T) {
	exe, err := os.Executable()
	if err != nil {
		t.Skipf("os.Executable: %v", err)
	}
	if err := LookPath(exe).Check(context.Background()); err != nil {
		t.Errorf("Check() error = %v, want nil", err)
	}
}

func TestLookPathCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := LookPath("sh").Check(ctx); err != context.Canceled {
		t.Errorf("Check() error = %v, want context.Canceled", err)
	}
}

func TestStatic(t *testing.T) {
	ctx := context.Background()

	if err := (Static{Label: "echarts"}).Check(ctx); err != nil {
		t.Errorf("available Static.Check() = %v", err)
	}

	err := Static{Label: "echarts", Reason: "disabled"}.Check(ctx)
	if !errors.Is(err, errors.ErrCodeCapabilityUnavailable) {
		t.Errorf("unavailable Static.Check() = %v", err)
	}
	if errors.UserMessage(err) != "echarts is not available: disabled" {
		t.Errorf("message = %q", errors.UserMessage(err))
	}
}

func TestAll(t *testing.T) {
	ctx := context.Background()
	ok := Static{Label: "a"}
	bad := Static{Label: "b", Reason: "missing"}

	tests := []struct {
		name    string
		parts   []Capability
		wantErr bool
	}{
		{"none", nil, false},
		{"all available", []Capability{ok, ok}, false},
		{"one missing", []Capability{ok, bad}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := All("combined", tt.parts...)
			if c.Name() != "combined" {
				t.Errorf("Name() = %q", c.Name())
			}
			if err := c.Check(ctx); (err != nil) != tt.wantErr {
				t.Errorf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
