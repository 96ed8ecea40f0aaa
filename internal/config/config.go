package config

// Config holds runtime settings for the TaskKeeper CLI.
//
// Fields:
//   - DataDir: directory holding the durable stores (users.json, tasks.json)
//     and the audit log. Relative paths resolve against the working directory.
//   - AuditEnabled: whether the activity trail is written.
//   - LogLevel: slog level name (debug, info, warn, error).
type Config struct {
	DataDir      string
	AuditEnabled bool
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "taskkeeper-data"
	c.AuditEnabled = true
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, an optional JSON file, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
