package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordmark/pkg/observability"
)

// logHooks forwards observability events to the debug log.
type logHooks struct {
	logger *log.Logger
}

// InstallHooks routes pipeline, cache and HTTP events to the CLI logger.
// Call once from main before executing the root command.
func (c *CLI) InstallHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (h *logHooks) OnConfigLoad(_ context.Context, source string, warnings int, err error) {
	h.logger.Debug("config loaded", "source", source, "warnings", warnings, "error", err)
}

func (h *logHooks) OnRenderStart(_ context.Context, variants int) {
	h.logger.Debug("render started", "variants", variants)
}

func (h *logHooks) OnVariantFailed(context.Context, string, error) {
	// Logged at warn level by the runner.
}

func (h *logHooks) OnRenderComplete(_ context.Context, variants, failed int, d time.Duration, err error) {
	h.logger.Debug("render finished", "variants", variants, "failed", failed, "duration", d, "error", err)
}

func (h *logHooks) OnExport(_ context.Context, format string, files int, d time.Duration, err error) {
	h.logger.Debug("export finished", "format", format, "files", files, "duration", d, "error", err)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path, "status", status, "duration", d)
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "error", err)
}

var (
	_ observability.PipelineHooks = (*logHooks)(nil)
	_ observability.CacheHooks    = (*logHooks)(nil)
	_ observability.HTTPHooks     = (*logHooks)(nil)
)
