package config

import "github.com/kelseyhightower/envconfig"

// Prefix is prepended to every variable name, e.g. NUTRICALC_LOG_LEVEL.
const Prefix = "nutricalc"

// Config holds application configuration loaded from environment variables.
// Command-line flags override these values.
type Config struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"warn"` // debug|info|warn|error
	Format      string `envconfig:"FORMAT" default:"table"`   // table|plain|json
	ProfilePath string `envconfig:"PROFILE"`                  // YAML profile; empty means prompt
	NoColor     bool   `envconfig:"NO_COLOR" default:"false"`
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
