package carpagent

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	defaultAgentName    = "Basic Agent"
	defaultAgentVersion = "0.1.0"
)

// Config is the config.toml schema. Extra carries free-form key/value
// pairs that the core ignores but custom processing steps may read.
type Config struct {
	Name    string            `toml:"name"`
	Version string            `toml:"version"`
	Extra   map[string]string `toml:"extra"`
}

// LoadConfig reads a TOML configuration file. A missing file is not an
// error: the zero Config is returned and identity defaults apply.
// Content that is not valid TOML wraps ErrConfigMalformed.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}

		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrConfigMalformed, path, err)
	}

	return cfg, nil
}

// Identity resolves the agent identity, applying defaults for fields the
// config leaves empty.
func (c Config) Identity() Identity {
	id := Identity{Name: c.Name, Version: c.Version}
	if id.Name == "" {
		id.Name = defaultAgentName
	}

	if id.Version == "" {
		id.Version = defaultAgentVersion
	}

	return id
}
