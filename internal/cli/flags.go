package cli

import (
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordmark/pkg/brand"
	"github.com/matzehuels/wordmark/pkg/errors"
	"github.com/matzehuels/wordmark/pkg/io"
	"github.com/matzehuels/wordmark/pkg/pipeline"
)

// brandFlags holds the flags that shape the brand configuration. They are
// shared by every command that renders.
type brandFlags struct {
	configPath string   // settings file; defaults to the XDG settings file when present
	from       string   // earlier export (manifest or directory) to take the config from
	preset     string   // dimension preset
	sets       []string // key=value overrides
	only       []string // variant ids or numbers

	left, right, tld, tagline string
	width, height, fontSize   int
	iconScale                 float64

	cacheOpts
	refresh bool
}

// register adds the flags to cmd.
func (f *brandFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "settings file (.toml, .yaml, .json); default "+brand.DefaultPath())
	fs.StringVar(&f.from, "from", "", "reuse the config of an earlier export (manifest.json or its directory)")
	fs.StringVarP(&f.preset, "preset", "p", "", "dimension preset (see 'wordmark presets')")
	fs.StringArrayVar(&f.sets, "set", nil, "override a settings key, e.g. --set color_red=#c00 (repeatable)")
	fs.StringSliceVar(&f.only, "only", nil, "render only these variants (ids or numbers, comma-separated)")

	fs.StringVar(&f.left, "left", "", "left brand word")
	fs.StringVar(&f.right, "right", "", "right brand word")
	fs.StringVar(&f.tld, "tld", "", "domain suffix, e.g. .COM")
	fs.StringVar(&f.tagline, "tagline", "", "tagline text")
	fs.IntVar(&f.width, "width", 0, "canvas width in pixels")
	fs.IntVar(&f.height, "height", 0, "canvas height in pixels")
	fs.IntVar(&f.fontSize, "font-size", 0, "main font size in pixels")
	fs.Float64Var(&f.iconScale, "icon-scale", 0, "icon scale factor")

	fs.BoolVar(&f.noCache, "no-cache", false, "disable the render cache")
	fs.BoolVar(&f.refresh, "refresh", false, "re-render even when cached")
	fs.StringVar(&f.redisURL, "redis-url", os.Getenv(redisURLEnv), "use a Redis cache (redis://host:6379/0)")

	_ = cmd.RegisterFlagCompletionFunc("preset", completePresets)
	_ = cmd.RegisterFlagCompletionFunc("only", completeVariants)
}

// options converts the flags into pipeline options. Only flags the user
// actually set become overrides.
func (f *brandFlags) options(cmd *cobra.Command) (pipeline.Options, error) {
	opts := pipeline.Options{
		Preset:  f.preset,
		Only:    f.only,
		Refresh: f.refresh,
	}

	switch {
	case f.from != "":
		m, err := io.ImportManifest(f.from)
		if err != nil {
			return opts, err
		}
		cfg := m.Config
		opts.Config = &cfg
	case f.configPath != "":
		opts.ConfigPath = f.configPath
	default:
		if _, err := os.Stat(brand.DefaultPath()); err == nil {
			opts.ConfigPath = brand.DefaultPath()
		}
	}

	overrides, err := parseSets(f.sets)
	if err != nil {
		return opts, err
	}
	changed := cmd.Flags().Changed
	for flag, key := range map[string]string{"left": "left", "right": "right", "tld": "tld", "tagline": "tagline"} {
		if changed(flag) {
			v, _ := cmd.Flags().GetString(flag)
			overrides[key] = v
		}
	}
	if changed("width") {
		overrides["out_width"] = f.width
	}
	if changed("height") {
		overrides["out_height"] = f.height
	}
	if changed("font-size") {
		overrides["fs_main"] = f.fontSize
	}
	if changed("icon-scale") {
		overrides["icon_scale"] = f.iconScale
	}
	if len(overrides) > 0 {
		opts.Overrides = overrides
	}
	return opts, nil
}

// parseSets parses key=value pairs. Keys must be settings keys.
func parseSets(sets []string) (map[string]any, error) {
	out := make(map[string]any, len(sets))
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid --set %q (want key=value)", s)
		}
		if !slices.Contains(brand.Keys(), key) {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown settings key %q", key)
		}
		out[key] = value
	}
	return out, nil
}
