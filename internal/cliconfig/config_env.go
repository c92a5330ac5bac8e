package cliconfig

import "os"

// ApplyEnvConfig applies PUSHCAST_* environment variables, skipping flags
// in changed.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("service-url", os.Getenv("PUSHCAST_SERVICE_URL"), &cfg.ServiceURL)
	s.setString("log-file", os.Getenv("PUSHCAST_LOG_FILE"), &cfg.LogFile)
	s.setString("app-name", os.Getenv("PUSHCAST_APP_NAME"), &cfg.AppName)
	s.setString("app-key", os.Getenv("PUSHCAST_APP_KEY"), &cfg.AppKey)
	s.setString("master-secret", os.Getenv("PUSHCAST_MASTER_SECRET"), &cfg.MasterSecret)
	s.setAlert(os.Getenv("PUSHCAST_ALERT_TEXT"), parseBool(os.Getenv("PUSHCAST_SILENT")), cfg)

	return s.setDuration("timeout", os.Getenv("PUSHCAST_HTTP_TIMEOUT"), &cfg.HTTPTimeout)
}
