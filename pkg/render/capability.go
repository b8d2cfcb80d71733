package render

import (
	"context"
	"os/exec"

	"github.com/matzehuels/vitalchart/pkg/errors"
)

// Capability is an optional rendering backend that may be missing from the
// running environment.
type Capability interface {
	// Name identifies the capability in messages.
	Name() string

	// Check returns nil when the capability can be used, or a
	// CAPABILITY_UNAVAILABLE error describing why not.
	Check(ctx context.Context) error
}

// toolCapability is satisfied when an executable is on PATH.
type toolCapability struct {
	tool string
	hint string
}

// LookPath returns a capability that requires tool on PATH.
func LookPath(tool string) Capability {
	return toolCapability{tool: tool, hint: installHints[tool]}
}

var installHints = map[string]string{
	"rsvg-convert": "install librsvg:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin",
}

func (c toolCapability) Name() string { return c.tool }

func (c toolCapability) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := exec.LookPath(c.tool); err != nil {
		if c.hint != "" {
			return errors.Wrap(errors.ErrCodeCapabilityUnavailable, err, "%s not found; %s", c.tool, c.hint)
		}
		return errors.Unavailable(c.tool, err)
	}
	return nil
}

// Static is a capability whose availability is fixed, used to force a
// backend on or off.
type Static struct {
	Label  string
	Reason string // empty means available
}

// Name returns the label.
func (s Static) Name() string { return s.Label }

// Check reports the fixed availability.
func (s Static) Check(context.Context) error {
	if s.Reason == "" {
		return nil
	}
	return errors.New(errors.ErrCodeCapabilityUnavailable, "%s is not available: %s", s.Label, s.Reason)
}

// All returns a capability that is available only when every part is.
func All(name string, parts ...Capability) Capability {
	return allCapability{name: name, parts: parts}
}

type allCapability struct {
	name  string
	parts []Capability
}

func (a allCapability) Name() string { return a.name }

func (a allCapability) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, p := range a.parts {
		if err := p.Check(ctx); err != nil {
			return err
		}
	}
	return nil
}
