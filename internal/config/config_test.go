package config

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigFromLookuper_Defaults(t *testing.T) {
	cfg, err := NewConfigFromLookuper(context.Background(), envconfig.MapLookuper(nil))
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Channels:         0,
		FallbackChannels: 2,
		Strict:           true,
		Format:           FormatS16LE,
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}, cfg)
}

func TestNewConfigFromLookuper_Overrides(t *testing.T) {
	cfg, err := NewConfigFromLookuper(context.Background(), envconfig.MapLookuper(map[string]string{
		"AC3_CHANNELS":        "1",
		"AC3_STRICT":          "false",
		"AC3_FORMAT":          "f32le",
		"AC3_VERBOSE":         "true",
		"AC3_LOG_FILE":        "/var/log/ac3frame.log",
		"AC3_LOG_MAX_SIZE_MB": "1",
		"AC3_LOG_COMPRESS":    "true",
		"CHANNELS":            "2", // unprefixed names are ignored
	}))
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Channels)
	assert.False(t, cfg.Strict)
	assert.Equal(t, FormatF32LE, cfg.Format)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "/var/log/ac3frame.log", cfg.Log.File)
	assert.Equal(t, 1, cfg.Log.MaxSizeMB)
	assert.True(t, cfg.Log.Compress)
}

func TestNewConfigFromLookuper_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"channels", map[string]string{"AC3_CHANNELS": "6"}},
		{"fallback", map[string]string{"AC3_FALLBACK_CHANNELS": "7"}},
		{"format", map[string]string{"AC3_FORMAT": "s24le"}},
		{"not a number", map[string]string{"AC3_CHANNELS": "two"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfigFromLookuper(context.Background(), envconfig.MapLookuper(tt.env))
			assert.Error(t, err)
		})
	}
}
