// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup
// to receive events about chart rendering and capability probes.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so renderers never import
// a logging or metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    observability.SetCapabilityHooks(&myCapabilityHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnRenderStart(ctx, "interactive")
//	// ... render ...
//	observability.Render().OnRenderComplete(ctx, "interactive", path, n, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the chart renderers.
type RenderHooks interface {
	// OnRenderStart is called before a strategy renders.
	OnRenderStart(ctx context.Context, strategy string)

	// OnRenderComplete is called after a strategy finished. Path is empty for
	// console output; size is the number of bytes written.
	OnRenderComplete(ctx context.Context, strategy, path string, size int, duration time.Duration, err error)

	// OnFallback is called when one strategy is replaced by another.
	OnFallback(ctx context.Context, from, to string, reason error)
}

// =============================================================================
// Capability Hooks
// =============================================================================

// CapabilityHooks receives events from capability preflight checks.
type CapabilityHooks interface {
	// OnCapabilityCheck records the outcome of a check. err is nil when the
	// capability is available.
	OnCapabilityCheck(ctx context.Context, name string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string) {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopRenderHooks) OnFallback(context.Context, string, string, error) {}

// NoopCapabilityHooks is a no-op implementation of CapabilityHooks.
type NoopCapabilityHooks struct{}

func (NoopCapabilityHooks) OnCapabilityCheck(context.Context, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renderHooks     RenderHooks     = NoopRenderHooks{}
	capabilityHooks CapabilityHooks = NoopCapabilityHooks{}
	hooksMu         sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any rendering.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetCapabilityHooks registers custom capability hooks.
func SetCapabilityHooks(h CapabilityHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		capabilityHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Capability returns the registered capability hooks.
func Capability() CapabilityHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return capabilityHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
	capabilityHooks = NoopCapabilityHooks{}
}
