// Package pipeline provides the logo generation pipeline for wordmark.
//
// This package implements the complete load → render → convert pipeline
// shared by the CLI commands and the preview server. Centralizing it keeps
// configuration precedence, caching and failure logging identical across
// entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Build a [brand.Config] from defaults, a settings file, a preset
//     and explicit overrides, then normalize it
//  2. Render: Run the variant catalog (or a selection of it)
//  3. Convert: Produce artifacts in the requested format (SVG, PNG, PDF)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ConfigPath: "logo.toml",
//	    Only:       []string{"basic", "crown"},
//	    Format:     "png",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["crown"]
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordmark/pkg/brand"
	"github.com/matzehuels/wordmark/pkg/cache"
	"github.com/matzehuels/wordmark/pkg/errors"
	"github.com/matzehuels/wordmark/pkg/render"
	"github.com/matzehuels/wordmark/pkg/render/variants"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultFormat is the default artifact format.
	DefaultFormat = render.FormatSVG

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0

	// MaxScale bounds the PNG scale factor.
	MaxScale = 10.0

	// convertWorkers bounds concurrent rsvg-convert processes.
	convertWorkers = 4
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the logo pipeline.
// This struct supports JSON serialization for server requests.
type Options struct {
	// Load options
	Config     *brand.Config  `json:"config,omitempty"`      // Base config; replaces defaults and ConfigPath
	ConfigPath string         `json:"config_path,omitempty"` // Settings file (.toml, .yaml, .json)
	Preset     string         `json:"preset,omitempty"`      // Dimension preset applied after the file
	Overrides  map[string]any `json:"overrides,omitempty"`   // Settings keys applied last

	// Render options
	Only     []string `json:"only,omitempty"` // Variant ids or numbers; empty selects all
	Parallel bool     `json:"parallel,omitempty"`
	Refresh  bool     `json:"refresh,omitempty"` // Skip catalog cache reads

	// Convert options
	Format string  `json:"format,omitempty"`
	Scale  float64 `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in export manifests and logs.
	RunID string

	// Config is the normalized configuration that was rendered.
	Config brand.Config

	// Warnings lists settings values that fell back to defaults.
	Warnings []error

	// Outputs holds one entry per selected variant, in catalog order.
	Outputs []variants.Output

	// Artifacts contains converted outputs keyed by variant id.
	// Failed variants have no artifact.
	Artifacts map[string][]byte

	// Stats contains timing and count information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Variants    int
	Failed      int
	LoadTime    time.Duration
	RenderTime  time.Duration
	ConvertTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	CatalogHit   bool // Whether the rendered catalog came from cache
	ArtifactHits int  // Number of converted artifacts served from cache
}

// Failed returns the outputs that rendered as placeholders.
func (r *Result) Failed() []variants.Output {
	var failed []variants.Output
	for _, o := range r.Outputs {
		if o.Failed() {
			failed = append(failed, o)
		}
	}
	return failed
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !render.ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf)", format)
	}
	return nil
}

// ValidateScale checks that a PNG scale factor is in range.
func ValidateScale(scale float64) error {
	if scale <= 0 || scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "invalid scale: %v (must be in (0, %v])", scale, MaxScale)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	if err := o.ValidateForConvert(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks the preset name.
func (o *Options) ValidateForLoad() error {
	o.setLogger()
	if o.Preset != "" {
		if _, err := brand.LookupPreset(o.Preset); err != nil {
			return err
		}
	}
	return nil
}

// ValidateForRender checks that every selected variant exists.
func (o *Options) ValidateForRender() error {
	o.setLogger()
	_, err := o.Catalog()
	return err
}

// ValidateForConvert validates and sets defaults for conversion.
func (o *Options) ValidateForConvert() error {
	o.SetConvertDefaults()
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	return ValidateScale(o.Scale)
}

// SetConvertDefaults sets default values for conversion.
func (o *Options) SetConvertDefaults() {
	o.Format = strings.ToLower(strings.TrimSpace(o.Format))
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	o.setLogger()
}

// Catalog returns the selected variants in catalog order.
func (o *Options) Catalog() (variants.Catalog, error) {
	return variants.Default().Select(o.Only...)
}

// IsSVG returns true if artifacts are the rendered documents themselves.
func (o *Options) IsSVG() bool {
	return o.Format == "" || o.Format == render.FormatSVG
}

// ArtifactKeyOpts returns cache key options for artifact conversion.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: o.Format}
	if o.Format == render.FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
