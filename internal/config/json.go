package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields let absent keys leave earlier config stages untouched.
type JsonConfig struct {
	DataDir      *string `json:"data_dir"`
	AuditEnabled *bool   `json:"audit_enabled"`
	LogLevel     *string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path is resolved from the -c or -config flags via
// flagx.JsonConfigFlags(); when neither is given, no JSON is loaded.
// Read or unmarshal errors panic: a config file that was explicitly named
// but cannot be used is not something to continue past.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.AuditEnabled != nil {
		cfg.AuditEnabled = *jc.AuditEnabled
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
