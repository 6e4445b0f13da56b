package contextfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/xelA/tagify/value"
)

// ErrUnsupportedFormat is returned for context files whose extension is
// not .yaml, .yml, .toml, or .json.
var ErrUnsupportedFormat = errors.New("unsupported context file format")

// Load reads a context mapping from a YAML, TOML, or JSON file, keyed on
// the file extension.
func Load(path string) (value.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read context file: %w", err)
	}

	m := map[string]any{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse yaml context: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse toml context: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse json context: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return value.FromMap(m), nil
}

// LoadAll loads several context files and merges them in order; keys from
// later files win.
func LoadAll(paths ...string) (value.Mapping, error) {
	ctx := value.Mapping{}
	for _, path := range paths {
		m, err := Load(path)
		if err != nil {
			return nil, err
		}
		ctx.Merge(m)
	}
	return ctx, nil
}
