// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable pointing at an optional
// configuration file.
const EnvConfigFile = "CERT_MANAGER_CONFIG_FILE"

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the renewal manager configuration structure.
// The zero value is unusable; obtain one through Load or Default so the
// defaults for missing values are applied.
type Config struct {
	// Paths: Locations of certbot's state on disk
	Paths struct {
		// LiveDir: Live certificate material, one subdirectory per lineage
		LiveDir string `json:"liveDir" yaml:"liveDir"`
		// RenewalDir: Per-lineage renewal configuration files
		RenewalDir string `json:"renewalDir" yaml:"renewalDir"`
		// CertbotBin: Binary name or path for registry and renewal calls
		CertbotBin string `json:"certbotBin" yaml:"certbotBin"`
	} `json:"paths" yaml:"paths"`

	// Renewal: Settings for the renewal command
	Renewal struct {
		// Email: Default notification email when the environment has none
		Email string `json:"email,omitempty" yaml:"email,omitempty"`
		// ACMEServer: Directory endpoint the renewal command targets
		ACMEServer string `json:"acmeServer" yaml:"acmeServer"`
		// TimeoutSeconds: Upper bound on the renewal command's runtime
		TimeoutSeconds int `json:"timeoutSeconds" yaml:"timeoutSeconds"`
	} `json:"renewal" yaml:"renewal"`

	// Display: Presentation settings
	Display struct {
		// WarnDays: Days-left threshold for the expiring-soon highlight
		WarnDays int `json:"warnDays" yaml:"warnDays"`
	} `json:"display" yaml:"display"`

	// Services: Web servers offered for reload after a renewal
	Services []string `json:"services,omitempty" yaml:"services,omitempty"`
}

// Default returns the configuration matching a stock certbot install.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills any unset values.
func (c *Config) applyDefaults() {
	if c.Paths.LiveDir == "" {
		c.Paths.LiveDir = "/etc/letsencrypt/live"
	}
	if c.Paths.RenewalDir == "" {
		c.Paths.RenewalDir = "/etc/letsencrypt/renewal"
	}
	if c.Paths.CertbotBin == "" {
		c.Paths.CertbotBin = "certbot"
	}
	if c.Renewal.ACMEServer == "" {
		c.Renewal.ACMEServer = "https://acme-v02.api.letsencrypt.org/directory"
	}
	if c.Renewal.TimeoutSeconds <= 0 {
		c.Renewal.TimeoutSeconds = 900
	}
	if c.Display.WarnDays <= 0 {
		c.Display.WarnDays = 30
	}
	if len(c.Services) == 0 {
		c.Services = []string{"nginx", "apache2", "httpd"}
	}
}

// detectConfigFormat determines the configuration file format based on file extension.
// It supports .json, .yaml, and .yml extensions.
//
// Parameters:
//   - configPath: Path to the configuration file
//
// Returns:
//   - configFormat: The detected format (configFormatJSON or configFormatYAML)
//
// The function uses case-insensitive extension matching for cross-platform compatibility.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, format configFormat, cfg *Config) error {
	switch format {
	case configFormatYAML:
		return yaml.Unmarshal(data, cfg)
	default:
		return json.Unmarshal(data, cfg)
	}
}

// Load reads the configuration file named by CERT_MANAGER_CONFIG_FILE and
// applies defaults for anything it leaves unset. Without the variable, the
// defaults alone are returned.
//
// Returns:
//   - *Config: Usable configuration
//   - error: File read or parse failures; an unset variable is not an error
func Load() (*Config, error) {
	return LoadFile(os.Getenv(EnvConfigFile))
}

// LoadFile loads configuration from path, or returns defaults when path is
// empty.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := unmarshalConfig(data, detectConfigFormat(path), cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}
