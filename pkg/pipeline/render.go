package pipeline

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/wordmark/pkg/cache"
	"github.com/matzehuels/wordmark/pkg/observability"
	"github.com/matzehuels/wordmark/pkg/render"
	"github.com/matzehuels/wordmark/pkg/render/variants"
)

// ConvertWithCacheInfo produces one artifact per successful output in
// opts.Format. SVG artifacts are the documents themselves; PNG and PDF
// artifacts are cached under catalogKey. It returns the number of artifacts
// served from cache.
func (r *Runner) ConvertWithCacheInfo(ctx context.Context, catalogKey string, outs []variants.Output, opts Options) (map[string][]byte, int, error) {
	if err := opts.ValidateForConvert(); err != nil {
		return nil, 0, err
	}

	artifacts := make(map[string][]byte, len(outs))
	if opts.IsSVG() {
		for _, o := range outs {
			if !o.Failed() {
				artifacts[o.ID] = []byte(o.SVG)
			}
		}
		return artifacts, 0, nil
	}

	var (
		mu   sync.Mutex
		hits int
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(convertWorkers)
	for _, o := range outs {
		if o.Failed() {
			continue
		}
		g.Go(func() error {
			data, hit, err := r.convertOne(ctx, catalogKey, o, opts)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			artifacts[o.ID] = data
			if hit {
				hits++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return artifacts, hits, nil
}

// Convert is a convenience wrapper that calls ConvertWithCacheInfo and discards the cache info.
func (r *Runner) Convert(ctx context.Context, catalogKey string, outs []variants.Output, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.ConvertWithCacheInfo(ctx, catalogKey, outs, opts)
	return artifacts, err
}

func (r *Runner) convertOne(ctx context.Context, catalogKey string, o variants.Output, opts Options) ([]byte, bool, error) {
	cacheKey := r.Keyer.ArtifactKey(catalogKey, o.ID, opts.ArtifactKeyOpts())
	if catalogKey != "" {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
	}

	data, err := render.Convert(ctx, []byte(o.SVG), opts.Format, opts.Scale)
	if err != nil {
		return nil, false, err
	}
	r.Logger.Debug("converted variant", "id", o.ID, "format", opts.Format, "bytes", len(data))

	if catalogKey != "" {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.CatalogTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, keyTypeArtifact, len(data))
		}
	}
	return data, false, nil
}
