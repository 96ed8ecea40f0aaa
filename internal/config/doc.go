// Package config loads runtime configuration for the TaskKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables (see parseEnv): TASKKEEPER_DATA_DIR,
//     TASKKEEPER_AUDIT_ENABLED, TASKKEEPER_LOG_LEVEL.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string         data directory for the durable stores
//	-audit            write the activity trail (-audit=false disables)
//	-loglevel string  log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "data_dir": "taskkeeper-data",
//	  "audit_enabled": true,
//	  "log_level": "info"
//	}
package config
