package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "127.0.0.1:8080", cfg.ServerAddr)
	require.Empty(t, cfg.DebugLogFile)
}

func TestJsonConfig_EmptyFieldsKeepDefaults(t *testing.T) {
	var jc JsonConfig
	err := json.Unmarshal([]byte(`{"server_addr": "diary.example.com:9000"}`), &jc)
	require.NoError(t, err)

	cfg := &Config{}
	cfg.LoadDefaults()
	if jc.ServerAddr != "" {
		cfg.ServerAddr = jc.ServerAddr
	}
	if jc.DebugLogFile != "" {
		cfg.DebugLogFile = jc.DebugLogFile
	}

	require.Equal(t, "diary.example.com:9000", cfg.ServerAddr)
	require.Empty(t, cfg.DebugLogFile)
}
