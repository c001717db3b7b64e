package mimekit

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Path to an alternate magic table; empty selects the bundled table
	MagicPath string `env:"MIMEKIT_MAGIC"`

	// Expected xxhash digest of the magic table source, verified before
	// parsing when set
	MagicChecksum string `env:"MIMEKIT_MAGIC_CHECKSUM"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
