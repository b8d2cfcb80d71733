package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vitalchart/pkg/observability"
)

// logHooks forwards render and capability events to the debug log.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnRenderStart(_ context.Context, strategy string) {
	h.logger.Debug("render start", "strategy", strategy)
}

func (h logHooks) OnRenderComplete(_ context.Context, strategy, path string, size int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "strategy", strategy, "err", err)
		return
	}
	h.logger.Debug("render complete", "strategy", strategy, "path", path, "bytes", size, "duration", duration)
}

func (h logHooks) OnFallback(_ context.Context, from, to string, reason error) {
	h.logger.Debug("fallback", "from", from, "to", to, "reason", reason)
}

func (h logHooks) OnCapabilityCheck(_ context.Context, name string, duration time.Duration, err error) {
	h.logger.Debug("capability", "name", name, "available", err == nil, "duration", duration)
}

// registerHooks installs logHooks for both event categories.
func registerHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetRenderHooks(h)
	observability.SetCapabilityHooks(h)
}
