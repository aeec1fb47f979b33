package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileConfig is the optional configuration file. Every field supplies the
// default for the matching command-line flag; flags given explicitly win.
type FileConfig struct {
	// CenterRule is "midpoint" or "weighted".
	CenterRule string `yaml:"center_rule" toml:"center_rule"`

	// Format is the cluster command's output format.
	Format string `yaml:"format" toml:"format"`

	// Lenient stops reading input at the first non-numeric token instead of
	// failing.
	Lenient bool `yaml:"lenient" toml:"lenient"`

	Bench BenchConfig `yaml:"bench" toml:"bench"`
}

// BenchConfig holds defaults for the bench command.
type BenchConfig struct {
	Exponent int    `yaml:"exponent" toml:"exponent"`
	Mode     string `yaml:"mode" toml:"mode"`
	Seed     uint64 `yaml:"seed" toml:"seed"`
	Repeat   int    `yaml:"repeat" toml:"repeat"`
}

// DefaultFileConfig returns the built-in defaults.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		CenterRule: "midpoint",
		Format:     formatText,
		Bench: BenchConfig{
			Exponent: 20,
			Mode:     "uniform",
			Seed:     42,
			Repeat:   1,
		},
	}
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file on top of the
// defaults. An empty path returns the defaults.
func LoadConfig(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %s", path)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %s", path)
		}
	default:
		return cfg, errors.Errorf("config %s: unsupported extension %q (want .yaml, .yml or .toml)", path, ext)
	}
	return cfg, nil
}
