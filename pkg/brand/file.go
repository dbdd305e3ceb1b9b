package brand

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/wordmark/pkg/errors"
)

const (
	appName         = "wordmark"
	settingsFile    = "settings.toml"
	LegacyFileName  = "wlk_config.json"
	settingsDirMode = 0o755
)

// DefaultPath returns the settings file location under the XDG config home
// (~/.config/wordmark/settings.toml).
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, settingsFile)
}

// Load reads a settings file and merges it onto [Defaults]. The format is
// chosen by extension: .toml, .yaml/.yml or .json. Coercion problems are
// returned as warnings alongside a usable config.
func Load(path string) (Config, []error, error) {
	values, err := readValues(path)
	if err != nil {
		return Defaults(), nil, err
	}
	cfg, warnings := Merge(Defaults(), values)
	return cfg, warnings, nil
}

func readValues(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "settings file %s", path)
	}
	if err != nil {
		return nil, err
	}

	values := map[string]any{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		_, err = toml.Decode(string(data), &values)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &values)
	case ".json":
		err = json.Unmarshal(data, &values)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported settings extension %q (want .toml, .yaml, .yml or .json)", ext)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return values, nil
}

// Save writes c to path, creating parent directories as needed.
func Save(path string, c Config) error {
	data, err := Marshal(path, c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), settingsDirMode); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Marshal encodes c in the format implied by path's extension.
func Marshal(path string, c Config) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case ".yaml", ".yml":
		return yaml.Marshal(c)
	case ".json":
		return json.MarshalIndent(c, "", "  ")
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported settings extension %q", ext)
	}
}
