// Package config loads the ac3frame defaults from AC3_* environment
// variables. Command-line flags override these values.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Prefix is prepended to every variable name.
const Prefix = "AC3_"

// Output formats accepted by Format.
const (
	FormatS16LE = "s16le"
	FormatF32LE = "f32le"
)

type Config struct {
	// Channels requests a 1 or 2 channel downmix; 0 keeps the coded layout.
	Channels int `env:"CHANNELS, default=0"`

	// FallbackChannels is the output channel count used for a damaged
	// first frame.
	FallbackChannels int `env:"FALLBACK_CHANNELS, default=2"`

	// Strict enables CRC verification.
	Strict bool `env:"STRICT, default=true"`

	// Format is the raw PCM format, s16le or f32le.
	Format string `env:"FORMAT, default=s16le"`

	Verbose bool `env:"VERBOSE, default=false"`

	Log LogConfig `env:", prefix=LOG_"`
}

// LogConfig controls the rotating log file. An empty File logs to stderr.
type LogConfig struct {
	File       string `env:"FILE"`
	MaxSizeMB  int    `env:"MAX_SIZE_MB, default=10"`
	MaxBackups int    `env:"MAX_BACKUPS, default=3"`
	MaxAgeDays int    `env:"MAX_AGE_DAYS, default=28"`
	Compress   bool   `env:"COMPRESS, default=false"`
}

// NewConfigFromEnv reads the process environment.
func NewConfigFromEnv(ctx context.Context) (*Config, error) {
	return NewConfigFromLookuper(ctx, envconfig.OsLookuper())
}

// NewConfigFromLookuper reads variables from l.
func NewConfigFromLookuper(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.PrefixLookuper(Prefix, l),
	}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Channels < 0 || c.Channels > 2 {
		return fmt.Errorf("%sCHANNELS must be 0, 1 or 2, got %d", Prefix, c.Channels)
	}
	if c.FallbackChannels < 0 || c.FallbackChannels > 6 {
		return fmt.Errorf("%sFALLBACK_CHANNELS must be between 0 and 6, got %d", Prefix, c.FallbackChannels)
	}
	switch c.Format {
	case FormatS16LE, FormatF32LE:
	default:
		return fmt.Errorf("%sFORMAT must be %s or %s, got %q", Prefix, FormatS16LE, FormatF32LE, c.Format)
	}
	return nil
}
