package config

import "github.com/caarlos0/env/v11"

// envConfig is a DTO for environment parsing. Pointer fields distinguish
// "unset" from zero values so the overlay only touches variables that were
// actually provided.
type envConfig struct {
	DataDir      *string `env:"TASKKEEPER_DATA_DIR"`
	AuditEnabled *bool   `env:"TASKKEEPER_AUDIT_ENABLED"`
	LogLevel     *string `env:"TASKKEEPER_LOG_LEVEL"`
}

// parseEnv overlays Config with values from the process environment.
// Panics on malformed values (e.g. a non-boolean TASKKEEPER_AUDIT_ENABLED),
// matching the behavior of the other config stages.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.DataDir != nil {
		cfg.DataDir = *ec.DataDir
	}
	if ec.AuditEnabled != nil {
		cfg.AuditEnabled = *ec.AuditEnabled
	}
	if ec.LogLevel != nil {
		cfg.LogLevel = *ec.LogLevel
	}
}
