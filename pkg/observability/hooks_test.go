package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Render hooks
	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "interactive")
	r.OnRenderComplete(ctx, "interactive", "chart.html", 4096, time.Second, nil)
	r.OnFallback(ctx, "interactive", "static", errors.New("no runtime"))

	// Capability hooks
	c := NoopCapabilityHooks{}
	c.OnCapabilityCheck(ctx, "echarts", time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Capability().(NoopCapabilityHooks); !ok {
		t.Error("Capability() should return NoopCapabilityHooks by default")
	}

	// Set custom hooks
	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customCapability := &testCapabilityHooks{}
	SetCapabilityHooks(customCapability)
	if Capability() != customCapability {
		t.Error("SetCapabilityHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
	if _, ok := Capability().(NoopCapabilityHooks); !ok {
		t.Error("Reset() should restore NoopCapabilityHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testRenderHooks{}
	SetRenderHooks(custom)

	// Setting nil should be ignored
	SetRenderHooks(nil)
	SetCapabilityHooks(nil)

	if Render() != custom {
		t.Error("SetRenderHooks(nil) should be ignored")
	}
	if _, ok := Capability().(NoopCapabilityHooks); !ok {
		t.Error("SetCapabilityHooks(nil) should be ignored")
	}

	Reset()
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testRenderHooks{}
	SetRenderHooks(h)

	ctx := context.Background()
	Render().OnFallback(ctx, "interactive", "static", errors.New("disabled"))

	if h.fallbacks != 1 {
		t.Errorf("fallbacks = %d, want 1", h.fallbacks)
	}
}

// Test implementations
type testRenderHooks struct {
	NoopRenderHooks
	fallbacks int
}

func (h *testRenderHooks) OnFallback(context.Context, string, string, error) { h.fallbacks++ }

type testCapabilityHooks struct{ NoopCapabilityHooks }
