package brand

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/matzehuels/wordmark/pkg/errors"
)

type field struct {
	key string
	set func(c *Config, v any) error
}

func stringField(key string, p func(*Config) *string) field {
	return field{key, func(c *Config, v any) error {
		s, err := cast.ToStringE(v)
		if err == nil {
			*p(c) = s
		}
		return err
	}}
}

func intField(key string, p func(*Config) *int) field {
	return field{key, func(c *Config, v any) error {
		n, err := toInt(v)
		if err == nil {
			*p(c) = n
		}
		return err
	}}
}

func floatField(key string, p func(*Config) *float64) field {
	return field{key, func(c *Config, v any) error {
		f, err := toFloat(v)
		if err == nil {
			*p(c) = f
		}
		return err
	}}
}

// toInt parses strings as base-10 so "0800" is 800 rather than an invalid
// octal literal. Other values go through cast.
func toInt(v any) (int, error) {
	switch x := v.(type) {
	case string:
		return strconv.Atoi(strings.TrimSpace(x))
	case float64:
		if !finite(x) {
			return 0, fmt.Errorf("non-finite number %v", x)
		}
	case float32:
		if !finite(float64(x)) {
			return 0, fmt.Errorf("non-finite number %v", x)
		}
	}
	return cast.ToIntE(v)
}

// toFloat rejects NaN and infinities, which cast accepts from strings.
func toFloat(v any) (float64, error) {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, err
	}
	if !finite(f) {
		return 0, fmt.Errorf("non-finite number %v", v)
	}
	return f, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// fields maps settings keys to Config fields. Keys match the legacy JSON
// settings file so old files keep loading.
var fields = []field{
	stringField("left", func(c *Config) *string { return &c.Left }),
	stringField("right", func(c *Config) *string { return &c.Right }),
	stringField("tld", func(c *Config) *string { return &c.TLD }),
	stringField("tagline", func(c *Config) *string { return &c.Tagline }),
	stringField("color_dark", func(c *Config) *string { return &c.Dark }),
	stringField("color_red", func(c *Config) *string { return &c.Red }),
	stringField("color_gold", func(c *Config) *string { return &c.Gold }),
	stringField("color_white", func(c *Config) *string { return &c.White }),
	stringField("color_grey", func(c *Config) *string { return &c.Grey }),
	stringField("bg_dark", func(c *Config) *string { return &c.BgDark }),
	stringField("font_stack", func(c *Config) *string { return &c.FontStack }),
	floatField("tld_scale", func(c *Config) *float64 { return &c.TLDScale }),
	intField("word_gap", func(c *Config) *int { return &c.WordGap }),
	intField("tld_gap", func(c *Config) *int { return &c.TLDGap }),
	floatField("letter_spacing", func(c *Config) *float64 { return &c.LetterSpacing }),
	intField("icon_offset_x", func(c *Config) *int { return &c.IconOffsetX }),
	intField("icon_offset_y", func(c *Config) *int { return &c.IconOffsetY }),
	floatField("icon_scale", func(c *Config) *float64 { return &c.IconScale }),
	intField("out_width", func(c *Config) *int { return &c.OutWidth }),
	intField("out_height", func(c *Config) *int { return &c.OutHeight }),
	intField("fs_main", func(c *Config) *int { return &c.FSMain }),
}

// Keys returns the recognized settings keys in canonical order.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return keys
}

// Merge overlays loosely-typed values onto base. Values that cannot be
// coerced to the field's type leave the base value in place and are
// reported as warnings; unknown keys are ignored.
func Merge(base Config, values map[string]any) (Config, []error) {
	var warnings []error
	for _, f := range fields {
		v, ok := values[f.key]
		if !ok || v == nil {
			continue
		}
		if err := f.set(&base, v); err != nil {
			warnings = append(warnings, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s: cannot use %v", f.key, v))
		}
	}
	return base, warnings
}

// Set applies a single key/value pair, as used by "config set".
func Set(c Config, key string, value any) (Config, error) {
	for _, f := range fields {
		if f.key == key {
			if err := f.set(&c, value); err != nil {
				return c, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s: cannot use %v", key, value)
			}
			return c, nil
		}
	}
	return c, errors.New(errors.ErrCodeInvalidConfig, "unknown setting: %q", key)
}
