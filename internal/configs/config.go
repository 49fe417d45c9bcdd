package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	kerrors "github.com/PolarWolf314/shush/internal/errors"
)

// DefaultPrefix marks environment variables holding cipher text.
const DefaultPrefix = "KMS_ENCRYPTED_"

// Config is the optional config file. Every field can be overridden by the
// matching command line flag.
type Config struct {
	// Region is the AWS region of the KMS keys.
	Region string `toml:"region,omitempty" json:"region"`

	// Profile is the AWS shared config profile to use.
	Profile string `toml:"profile,omitempty" json:"profile"`

	// EndpointURL overrides the KMS endpoint.
	EndpointURL string `toml:"endpoint_url,omitempty" json:"endpoint_url"`

	// Prefix marks the variables exec decrypts.
	Prefix string `toml:"prefix,omitempty" json:"prefix"`

	// NoPadding selects unpadded cipher text tokens.
	NoPadding bool `toml:"no_padding,omitempty" json:"no_padding"`

	// AuditLog is a JSON Lines file recording operations. Empty disables it.
	AuditLog string `toml:"audit_log,omitempty" json:"audit_log"`
}

// GlobalConfig is the configuration of the running command.
var GlobalConfig = &Config{}

// EffectivePrefix returns the configured prefix or DefaultPrefix.
func (c *Config) EffectivePrefix() string {
	if c.Prefix == "" {
		return DefaultPrefix
	}
	return c.Prefix
}

// LoadConfig loads the config file at path. A missing file, or an empty
// path, yields an empty config.
func LoadConfig(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		return config, nil
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err := LoadTOML(path, config); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", kerrors.ErrInvalidConfig, path, err)
	}

	return config, nil
}

// SaveConfig writes config to path.
func SaveConfig(path string, config *Config) error {
	if path == "" {
		return fmt.Errorf("%w: no config path", kerrors.ErrInvalidConfig)
	}

	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}
