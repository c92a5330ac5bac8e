package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML-friendly types.
type FileConfig struct {
	ServiceURL   string `toml:"service_url"`
	LogFile      string `toml:"log_file"`
	HTTPTimeout  string `toml:"http_timeout"`
	AppName      string `toml:"app_name"`
	AppKey       string `toml:"app_key"`
	MasterSecret string `toml:"master_secret"`
	AlertText    string `toml:"alert_text"`
	Silent       *bool  `toml:"silent"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.pushcast/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".pushcast", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies file values into cfg, skipping flags in changed.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("service-url", fc.ServiceURL, &cfg.ServiceURL)
	s.setString("log-file", fc.LogFile, &cfg.LogFile)
	s.setString("app-name", fc.AppName, &cfg.AppName)
	s.setString("app-key", fc.AppKey, &cfg.AppKey)
	s.setString("master-secret", fc.MasterSecret, &cfg.MasterSecret)
	s.setAlert(fc.AlertText, fc.Silent, cfg)

	return s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
