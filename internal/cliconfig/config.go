package cliconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bft-labs/pushcast/pkg/pushlog"
	"github.com/bft-labs/pushcast/pkg/sender"
)

// DefaultServiceURL is the broadcast endpoint.
const DefaultServiceURL = sender.DefaultEndpoint

var (
	// ErrMissingCredentials is returned when a push is requested without
	// an app key or master secret.
	ErrMissingCredentials = errors.New("app-key and master-secret are required")

	// ErrMissingAppName is returned when a push is requested without an app name.
	ErrMissingAppName = errors.New("app-name is required")

	// ErrAlertConflict is returned when one config layer sets both alert
	// text and silent.
	ErrAlertConflict = errors.New("alert and silent are mutually exclusive")
)

// Config holds CLI configuration for pushcast.
type Config struct {
	ServiceURL  string
	LogFile     string
	HTTPTimeout time.Duration

	AppName      string
	AppKey       string
	MasterSecret string

	// AlertText is empty when the default alert should be sent.
	AlertText string
	Silent    bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ServiceURL: DefaultServiceURL,
		LogFile:    pushlog.DefaultFileName,
	}
}

// Validate checks the settings shared by every command and fills defaults.
func (c *Config) Validate() error {
	if c.ServiceURL == "" {
		c.ServiceURL = DefaultServiceURL
	}
	if c.LogFile == "" {
		c.LogFile = pushlog.DefaultFileName
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// ValidateSend runs Validate and additionally requires the push identity.
func (c *Config) ValidateSend() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.AppName) == "" {
		return ErrMissingAppName
	}
	if c.AppKey == "" || c.MasterSecret == "" {
		return ErrMissingCredentials
	}
	if c.Silent && c.AlertText != "" {
		return ErrAlertConflict
	}
	return nil
}

// EffectiveAlertText returns the alert text to send: SilentAlertText when
// silent, DefaultAlertText when none was configured.
func (c Config) EffectiveAlertText() string {
	switch {
	case c.Silent:
		return sender.SilentAlertText
	case c.AlertText == "":
		return sender.DefaultAlertText
	default:
		return c.AlertText
	}
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	if c.MasterSecret != "" {
		c.MasterSecret = "*****"
	}
	return c
}

// configSetter applies values unless the corresponding flag was set
// explicitly on the command line.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setAlert applies alert text and the silent switch as one setting.
// An explicit --alert or --silent flag blocks both; otherwise a value from
// this layer replaces the other one set by a lower layer.
func (s *configSetter) setAlert(text string, silent *bool, cfg *Config) {
	if s.changed["alert"] || s.changed["silent"] {
		return
	}
	if text != "" {
		cfg.AlertText = text
		cfg.Silent = false
	}
	if silent != nil {
		cfg.Silent = *silent
		if *silent && text == "" {
			cfg.AlertText = ""
		}
	}
}

// parseBool accepts "true" and "1" as true, anything else as false.
// An empty value yields nil.
func parseBool(value string) *bool {
	if value == "" {
		return nil
	}
	b := value == "true" || value == "1"
	return &b
}
