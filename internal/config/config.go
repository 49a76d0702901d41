// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Level sets the minimum log level.
	// Valid values: "debug", "info", "warn", "error". Default: "info".
	Level string `json:"level,omitempty"`

	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty"`
}

// Config represents the trellis CLI configuration.
// Loaded from ~/.trellis/config.yaml.
type Config struct {
	// SkipVersionCheck disables the framework version compatibility check
	// against the project manifest.
	// Env: TRELLIS_SKIP_VERSION_CHECK
	SkipVersionCheck bool `json:"skipVersionCheck,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `trellis config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
	}
}

// WithDefaults fills unset fields with their default values.
func (c *Config) WithDefaults() *Config {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	return c
}

// DefaultConfigTemplate is the initial config file written by
// `trellis config init`. Kept as a literal so the generated file carries
// comments.
const DefaultConfigTemplate = `# Trellis CLI configuration.
# Flags and TRELLIS_* environment variables take precedence over values
# set here.

log:
  # Minimum log level: debug, info, warn or error.
  level: info

  # Show timestamps on log lines.
  timestamps: false

# Skip the framework version check against the project manifest.
skipVersionCheck: false
`
