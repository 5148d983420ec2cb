package config

import (
	"encoding/json"
	"os"

	"github.com/harudiary/haru/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerAddr   string `json:"server_addr"`
	DebugLogFile string `json:"debug_log_file"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flags, if any. Empty fields leave the current value in place.
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

	if jc.ServerAddr != "" {
		cfg.ServerAddr = jc.ServerAddr
	}
	if jc.DebugLogFile != "" {
		cfg.DebugLogFile = jc.DebugLogFile
	}
}
