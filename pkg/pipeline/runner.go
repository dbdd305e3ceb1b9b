package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/wordmark/pkg/brand"
	"github.com/matzehuels/wordmark/pkg/cache"
	"github.com/matzehuels/wordmark/pkg/observability"
	"github.com/matzehuels/wordmark/pkg/render/variants"
)

// Cache key types reported to observability hooks.
const (
	keyTypeCatalog  = "catalog"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
// Both the CLI and the preview server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → render → convert pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{RunID: uuid.NewString()}

	// Stage 1: Load
	loadStart := time.Now()
	cfg, warnings, err := r.LoadConfig(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	result.Config = cfg
	result.Warnings = warnings
	result.Stats.LoadTime = time.Since(loadStart)
	for _, w := range warnings {
		r.Logger.Warn("settings value ignored", "error", w)
	}

	// Stage 2: Render
	renderStart := time.Now()
	outs, catalogKey, hit, err := r.RenderWithCacheInfo(ctx, cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Outputs = outs
	result.Stats.Variants = len(outs)
	result.Stats.Failed = len(result.Failed())
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.CatalogHit = hit

	r.Logger.Info("rendered catalog",
		"run", result.RunID,
		"variants", result.Stats.Variants,
		"failed", result.Stats.Failed,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	// Stage 3: Convert
	convertStart := time.Now()
	artifacts, hits, err := r.ConvertWithCacheInfo(ctx, catalogKey, outs, opts)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.ConvertTime = time.Since(convertStart)
	result.CacheInfo.ArtifactHits = hits

	if !opts.IsSVG() {
		r.Logger.Info("converted outputs",
			"format", opts.Format,
			"artifacts", len(artifacts),
			"cached", hits,
			"duration", result.Stats.ConvertTime)
	}

	return result, nil
}

// LoadConfig assembles the normalized configuration for opts. Precedence,
// lowest first: defaults (or opts.Config), settings file, preset, overrides.
func (r *Runner) LoadConfig(ctx context.Context, opts Options) (brand.Config, []error, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return brand.Config{}, nil, err
	}

	var (
		cfg      = brand.Defaults()
		warnings []error
		err      error
		source   = "defaults"
	)
	switch {
	case opts.Config != nil:
		cfg = *opts.Config
		source = "request"
	case opts.ConfigPath != "":
		cfg, warnings, err = brand.Load(opts.ConfigPath)
		source = opts.ConfigPath
	}
	observability.Pipeline().OnConfigLoad(ctx, source, len(warnings), err)
	if err != nil {
		return brand.Config{}, nil, err
	}

	if opts.Preset != "" {
		p, _ := brand.LookupPreset(opts.Preset)
		cfg = p.Apply(cfg)
		r.Logger.Debug("applied preset", "preset", p.Name, "width", p.Width, "height", p.Height)
	}
	if len(opts.Overrides) > 0 {
		var more []error
		cfg, more = brand.Merge(cfg, opts.Overrides)
		warnings = append(warnings, more...)
	}

	return cfg.Normalize(), warnings, nil
}

// RenderWithCacheInfo renders the selected catalog with caching. It returns
// the outputs, the catalog cache key and whether the outputs came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, cfg brand.Config, opts Options) ([]variants.Output, string, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, "", false, err
	}
	cat, _ := opts.Catalog()
	cacheKey := r.Keyer.CatalogKey(cfg, cat.IDs())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var outs []variants.Output
			if err := json.Unmarshal(data, &outs); err == nil && len(outs) == len(cat) {
				observability.Cache().OnCacheHit(ctx, keyTypeCatalog)
				return outs, cacheKey, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeCatalog)
	}

	outs, err := r.render(ctx, cat, cfg, opts)
	if err != nil {
		return nil, "", false, err
	}

	// Placeholders are not cached so a fixed variant shows up on the next run.
	if !anyFailed(outs) {
		if data, err := json.Marshal(outs); err == nil {
			if err := r.Cache.Set(ctx, cacheKey, data, cache.CatalogTTL); err == nil {
				observability.Cache().OnCacheSet(ctx, keyTypeCatalog, len(data))
			}
		}
	}

	return outs, cacheKey, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache info.
func (r *Runner) Render(ctx context.Context, cfg brand.Config, opts Options) ([]variants.Output, error) {
	outs, _, _, err := r.RenderWithCacheInfo(ctx, cfg, opts)
	return outs, err
}

func (r *Runner) render(ctx context.Context, cat variants.Catalog, cfg brand.Config, opts Options) ([]variants.Output, error) {
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, len(cat))

	var (
		outs []variants.Output
		err  error
	)
	if opts.Parallel {
		outs, err = cat.RenderParallel(ctx, cfg)
	} else {
		outs = cat.Render(cfg)
	}

	failed := 0
	for _, o := range outs {
		if o.Failed() {
			failed++
			r.Logger.Warn("variant failed", "id", o.ID, "number", o.Number, "error", o.Error)
			observability.Pipeline().OnVariantFailed(ctx, o.ID, fmt.Errorf("%s", o.Error))
		}
	}
	observability.Pipeline().OnRenderComplete(ctx, len(cat), failed, time.Since(start), err)
	return outs, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func anyFailed(outs []variants.Output) bool {
	for _, o := range outs {
		if o.Failed() {
			return true
		}
	}
	return false
}
