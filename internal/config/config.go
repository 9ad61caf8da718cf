package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/sampleorg/pkg/sampleorg"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = sampleorg.ErrConfigNotFound

// Config is the category table used by organize and list-categories.
//
//	[patterns]
//	drums = ["kick", "snare"]
//	synth = ["pad", "lead"]
type Config struct {
	// Patterns maps a category name to regular expressions matched against
	// lower-cased sample file names.
	Patterns map[string][]string `toml:"patterns" yaml:"patterns"`

	// Extension overrides the audio extension (default "wav").
	Extension string `toml:"extension" yaml:"extension,omitempty"`
}

// Load reads the category table at path. Files ending in .yaml or .yml are
// decoded as YAML, everything else as TOML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrConfigNotFound)
		}
		return nil, err
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", sampleorg.ErrInvalidConfig, path, err)
	}

	if cfg.Patterns == nil {
		cfg.Patterns = map[string][]string{}
	}
	return &cfg, nil
}
