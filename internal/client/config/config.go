// Package config handles configuration for the client component,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the diary client.
//
// Fields:
//   - ServerAddr: host:port of the diary server.
//   - DebugLogFile: when set, debug logs are written there instead of
//     being discarded (the terminal belongs to the UI).
type Config struct {
	ServerAddr   string
	DebugLogFile string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "127.0.0.1:8080"
	c.DebugLogFile = ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
