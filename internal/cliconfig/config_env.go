package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (LINEMARK_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("file", os.Getenv("LINEMARK_FILE"), &cfg.File)
	s.setString("log-level", os.Getenv("LINEMARK_LOG_LEVEL"), &cfg.LogLevel)
	s.setBoolFromString("watch", os.Getenv("LINEMARK_WATCH"), &cfg.Watch)

	if err := s.setIntFromString("revision", os.Getenv("LINEMARK_REVISION"), &cfg.Revision); err != nil {
		return err
	}
	if err := s.setDuration("watch-debounce", os.Getenv("LINEMARK_WATCH_DEBOUNCE"), &cfg.WatchDebounce); err != nil {
		return err
	}
	return nil
}
