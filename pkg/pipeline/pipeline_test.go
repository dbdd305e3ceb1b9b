package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/wordmark/pkg/brand"
	"github.com/matzehuels/wordmark/pkg/cache"
	"github.com/matzehuels/wordmark/pkg/errors"
	"github.com/matzehuels/wordmark/pkg/observability"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want %s", tt.format, errors.GetCode(err), errors.ErrCodeInvalidFormat)
		}
	}
}

func TestValidateScale(t *testing.T) {
	tests := []struct {
		scale   float64
		wantErr bool
	}{
		{1, false},
		{2.5, false},
		{MaxScale, false},
		{0, true},
		{-1, true},
		{MaxScale + 1, true},
	}
	for _, tt := range tests {
		if err := ValidateScale(tt.scale); (err != nil) != tt.wantErr {
			t.Errorf("ValidateScale(%v) error = %v, wantErr %v", tt.scale, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Format: " PNG "}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Format != "png" {
		t.Errorf("Format = %q, want png", opts.Format)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", opts.Scale, DefaultScale)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}

	opts = Options{}
	opts.SetConvertDefaults()
	if opts.Format != DefaultFormat || !opts.IsSVG() {
		t.Errorf("Format = %q, want %q", opts.Format, DefaultFormat)
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"unknown preset", Options{Preset: "poster"}, errors.ErrCodeInvalidPreset},
		{"unknown variant", Options{Only: []string{"basic", "easter-egg"}}, errors.ErrCodeInvalidVariant},
		{"bad format", Options{Format: "gif"}, errors.ErrCodeInvalidFormat},
		{"bad scale", Options{Format: "png", Scale: -2}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Preset: "social", Only: []string{"3"}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}
	format, scale := opts.Format, opts.Scale
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}
	if opts.Format != format || opts.Scale != scale {
		t.Error("defaults changed on second call")
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	png := Options{Format: "png", Scale: 3}
	if got := png.ArtifactKeyOpts(); got.Scale != 3 || got.Format != "png" {
		t.Errorf("png ArtifactKeyOpts = %+v", got)
	}
	pdf := Options{Format: "pdf", Scale: 3}
	if got := pdf.ArtifactKeyOpts(); got.Scale != 0 {
		t.Errorf("pdf ArtifactKeyOpts.Scale = %v, want 0", got.Scale)
	}
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.toml")
	settings := "left = \"acme\"\nright = \"tools\"\nout_width = 900\nicon_scale = \"huge\"\n"
	if err := os.WriteFile(path, []byte(settings), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRunner(nil, nil, nil)
	cfg, warnings, err := r.LoadConfig(context.Background(), Options{
		ConfigPath: path,
		Preset:     "social",
		Overrides:  map[string]any{"fs_main": "120", "tld": ".io"},
	})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Left != "acme" || cfg.Right != "tools" || cfg.TLD != ".io" {
		t.Errorf("text = %q %q %q", cfg.Left, cfg.Right, cfg.TLD)
	}
	// Preset overrides the file, overrides beat the preset.
	if cfg.OutWidth != 1500 || cfg.OutHeight != 200 {
		t.Errorf("size = %dx%d, want 1500x200", cfg.OutWidth, cfg.OutHeight)
	}
	if cfg.FSMain != 120 {
		t.Errorf("FSMain = %d, want 120", cfg.FSMain)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0].Error(), "icon_scale") {
		t.Errorf("warnings = %v, want one icon_scale warning", warnings)
	}
	if cfg.IconScale != 1.0 {
		t.Errorf("IconScale = %v, want default 1", cfg.IconScale)
	}
}

func TestLoadConfigNormalizes(t *testing.T) {
	base := brand.Defaults()
	base.IconScale = 0
	base.OutWidth = 10

	cfg, _, err := NewRunner(nil, nil, nil).LoadConfig(context.Background(), Options{Config: &base})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.IconScale != brand.MinIconScale || cfg.OutWidth != brand.MinWidth {
		t.Errorf("cfg not clamped: scale %v width %d", cfg.IconScale, cfg.OutWidth)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, _, err := NewRunner(nil, nil, nil).LoadConfig(context.Background(), Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
	})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, nil)
	defer r.Close()

	opts := Options{
		Overrides: map[string]any{"left": "WALZLAGER", "right": "KONIG", "tld": ".DE"},
		Only:      []string{"halloween", "1"},
		Parallel:  true,
	}
	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if first.RunID == "" {
		t.Error("RunID is empty")
	}
	if first.CacheInfo.CatalogHit {
		t.Error("first run hit the cache")
	}
	if first.Stats.Variants != 2 || first.Stats.Failed != 0 {
		t.Errorf("stats = %+v", first.Stats)
	}
	if first.Outputs[0].ID != "basic" || first.Outputs[1].ID != "halloween" {
		t.Errorf("outputs not in catalog order: %s, %s", first.Outputs[0].ID, first.Outputs[1].ID)
	}
	if first.Outputs[1].Number != 18 {
		t.Errorf("halloween Number = %d, want 18", first.Outputs[1].Number)
	}
	if string(first.Artifacts["basic"]) != first.Outputs[0].SVG {
		t.Error("svg artifact differs from output")
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.CatalogHit {
		t.Error("second run missed the cache")
	}
	if second.RunID == first.RunID {
		t.Error("RunID reused across runs")
	}
	for i := range first.Outputs {
		if first.Outputs[i] != second.Outputs[i] {
			t.Errorf("cached output %d differs", i)
		}
	}

	opts.Refresh = true
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheInfo.CatalogHit {
		t.Error("refresh run hit the cache")
	}
}

func TestExecuteConvertUnavailable(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{Only: []string{"basic"}, Format: "pdf"})
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("err = %v, want %s", err, errors.ErrCodeUnsupported)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu       sync.Mutex
	started  int
	complete int
	variants int
}

func (h *recordingHooks) OnRenderStart(_ context.Context, variants int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started++
	h.variants = variants
}

func (h *recordingHooks) OnRenderComplete(context.Context, int, int, time.Duration, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.complete++
}

func TestExecuteEmitsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	if _, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{}); err != nil {
		t.Fatal(err)
	}
	if hooks.started != 1 || hooks.complete != 1 {
		t.Errorf("hooks started=%d complete=%d, want 1/1", hooks.started, hooks.complete)
	}
	if hooks.variants != 19 {
		t.Errorf("OnRenderStart variants = %d, want 19", hooks.variants)
	}
}
