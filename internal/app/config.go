package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// DefaultListenAddr is the port the frontend expects.
const DefaultListenAddr = ":5000"

// Config is the fully resolved runtime configuration.
type Config struct {
	ListenAddr     string
	AllowedOrigins []string
	MaxUploadBytes int64
	Verbose        bool
}

// FileConfig is the single-file configuration schema. Nested sections map
// naturally to flags and env vars.
type FileConfig struct {
	Listen string `yaml:"listen" json:"listen"`

	CORS struct {
		Origins []string `yaml:"origins" json:"origins"`
	} `yaml:"cors" json:"cors"`

	Upload struct {
		MaxBytes int64 `yaml:"maxBytes" json:"maxBytes"`
	} `yaml:"upload" json:"upload"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// still at their defaults. Flags should already have been parsed; file
// config supplies defaults without overriding explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.ListenAddr == "" || cfg.ListenAddr == DefaultListenAddr) && fc.Listen != "" {
		cfg.ListenAddr = fc.Listen
	}
	if len(cfg.AllowedOrigins) == 0 && len(fc.CORS.Origins) > 0 {
		cfg.AllowedOrigins = append([]string{}, fc.CORS.Origins...)
	}
	if cfg.MaxUploadBytes == 0 && fc.Upload.MaxBytes > 0 {
		cfg.MaxUploadBytes = fc.Upload.MaxBytes
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal schema validation.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.ListenAddr) == "" {
		return errors.New("config: listen address is required")
	}
	if cfg.MaxUploadBytes < 0 {
		return errors.New("config: negative upload limit is not allowed")
	}
	return nil
}
