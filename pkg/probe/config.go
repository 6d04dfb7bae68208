package probe

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const DefaultSchedule = "@every 1m"

// Config resolves the probe settings from an optional TOML file, then the
// PROBE_ENDPOINT environment variable. With neither present the fixed
// defaults apply.
type Config struct {
	Endpoint string `toml:"endpoint"`
	Schedule string `toml:"schedule"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Endpoint: DefaultEndpoint,
		Schedule: DefaultSchedule,
	}

	if path != "" {
		if _, err := toml.DecodeFile(filepath.Clean(path), cfg); err != nil {
			return nil, fmt.Errorf("unable to read probe config file: %w", err)
		}
	}

	if endpoint := os.Getenv("PROBE_ENDPOINT"); endpoint != "" {
		cfg.Endpoint = endpoint
	}

	return cfg, nil
}
