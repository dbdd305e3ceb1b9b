package brand

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/wordmark/pkg/errors"
)

func TestMerge(t *testing.T) {
	values := map[string]any{
		"left":       "WALZLAGER",
		"out_width":  "800",
		"tld_scale":  0.5,
		"word_gap":   int64(5),
		"icon_scale": "2.5",
		"unknown":    true,
	}
	c, warnings := Merge(Defaults(), values)
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}
	if c.Left != "WALZLAGER" || c.OutWidth != 800 || c.TLDScale != 0.5 || c.WordGap != 5 || c.IconScale != 2.5 {
		t.Errorf("Merge = %+v", c)
	}
}

func TestMergeFallsBackOnBadValues(t *testing.T) {
	c, warnings := Merge(Defaults(), map[string]any{
		"out_width":  "abc",
		"fs_main":    []int{1},
		"icon_scale": "NaN",
		"out_height": "0x1F",
	})
	if c.OutWidth != 1200 {
		t.Errorf("OutWidth = %d, want 1200", c.OutWidth)
	}
	if c.FSMain != 96 {
		t.Errorf("FSMain = %d, want 96", c.FSMain)
	}
	if c.IconScale != Defaults().IconScale {
		t.Errorf("IconScale = %v, want %v", c.IconScale, Defaults().IconScale)
	}
	if c.OutHeight != Defaults().OutHeight {
		t.Errorf("OutHeight = %d, want %d", c.OutHeight, Defaults().OutHeight)
	}
	if len(warnings) != 4 {
		t.Fatalf("warnings = %v, want 4", warnings)
	}
	for _, w := range warnings {
		if !errors.Is(w, errors.ErrCodeInvalidConfig) {
			t.Errorf("warning code = %v, want %v", errors.GetCode(w), errors.ErrCodeInvalidConfig)
		}
	}
}

func TestMergeRejectsNonFinite(t *testing.T) {
	c, warnings := Merge(Defaults(), map[string]any{
		"icon_scale":     "NaN",
		"tld_scale":      "Inf",
		"letter_spacing": "-Inf",
		"word_gap":       math.Inf(1),
	})
	if len(warnings) != 4 {
		t.Fatalf("warnings = %v, want 4", warnings)
	}
	d := Defaults()
	if c.IconScale != d.IconScale || c.TLDScale != d.TLDScale || c.LetterSpacing != d.LetterSpacing || c.WordGap != d.WordGap {
		t.Errorf("Merge = %+v, want defaults for non-finite values", c)
	}
}

func TestMergeIntsAreDecimal(t *testing.T) {
	tests := []struct {
		in   any
		want int
	}{
		{"0800", 800},
		{"010", 10},
		{" 42 ", 42},
		{int64(7), 7},
		{12.0, 12},
	}
	for _, tt := range tests {
		c, warnings := Merge(Defaults(), map[string]any{"out_width": tt.in})
		if len(warnings) != 0 {
			t.Errorf("Merge(out_width=%v) warnings = %v", tt.in, warnings)
		}
		if c.OutWidth != tt.want {
			t.Errorf("Merge(out_width=%v) = %d, want %d", tt.in, c.OutWidth, tt.want)
		}
	}
}

func TestSet(t *testing.T) {
	c, err := Set(Defaults(), "color_red", "#ff0000")
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if c.Red != "#ff0000" {
		t.Errorf("Red = %q", c.Red)
	}

	if _, err := Set(c, "colour", "x"); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Set(unknown) err = %v", err)
	}
	if _, err := Set(c, "out_height", "tall"); err == nil {
		t.Error("Set(out_height, tall) succeeded, want error")
	}
}

func TestKeys(t *testing.T) {
	keys := Keys()
	if len(keys) != 21 {
		t.Errorf("len(Keys()) = %d, want 21", len(keys))
	}
	if keys[0] != "left" || keys[len(keys)-1] != "fs_main" {
		t.Errorf("Keys() = %v", keys)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	want := Defaults()
	want.Left = "WALZLAGER"
	want.Right = "KONIG"
	want.TLD = ".DE"
	want.WordGap = 5
	want.LetterSpacing = 1.5
	want.IconScale = 0.75

	for _, ext := range []string{".toml", ".yaml", ".json"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "settings"+ext)
			if err := Save(path, want); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, warnings, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(warnings) != 0 {
				t.Errorf("warnings = %v", warnings)
			}
			if got != want {
				t.Errorf("round trip:\n got %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestLoadLegacyJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), LegacyFileName)
	legacy := `{"left": "WALZLAGER", "right": "KONIG", "tld": ".DE", "out_width": "900", "color_red": "#cc0000"}`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatal(err)
	}

	c, warnings, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}
	if c.Left != "WALZLAGER" || c.OutWidth != 900 || c.Red != "#cc0000" {
		t.Errorf("Load = %+v", c)
	}
	if c.FSMain != 96 {
		t.Errorf("FSMain = %d, want default 96", c.FSMain)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file err = %v, want %v", err, errors.ErrCodeFileNotFound)
	}

	ini := filepath.Join(dir, "settings.ini")
	os.WriteFile(ini, []byte("left=A"), 0o644)
	_, _, err = Load(ini)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ini err = %v, want %v", err, errors.ErrCodeInvalidFormat)
	}

	bad := filepath.Join(dir, "settings.json")
	os.WriteFile(bad, []byte("{not json"), 0o644)
	_, _, err = Load(bad)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("bad json err = %v, want %v", err, errors.ErrCodeInvalidConfig)
	}
}

func TestDefaultPath(t *testing.T) {
	p := DefaultPath()
	if !strings.HasSuffix(p, filepath.Join("wordmark", "settings.toml")) {
		t.Errorf("DefaultPath() = %q", p)
	}
}
