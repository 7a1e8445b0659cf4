// Package config holds app-wide settings unmarshalled from Viper:
// scoring weights, report layout, and server binding. Settings come
// from built-in defaults, an optional YAML file, and SEQALIGN_*
// environment variables, in increasing priority.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/seqalign/seqalign-go/internal/align"
)

// ScoringConfig are the three linear alignment weights.
type ScoringConfig struct {
	Match    int64 `mapstructure:"match"`
	Mismatch int64 `mapstructure:"mismatch"`
	Gap      int64 `mapstructure:"gap"`
}

// Scoring converts the settings into the aligner's weight set.
func (c ScoringConfig) Scoring() align.Scoring {
	return align.Scoring{
		Match:    align.Score(c.Match),
		Mismatch: align.Score(c.Mismatch),
		Gap:      align.Score(c.Gap),
	}
}

// ReportConfig controls rendered report layout.
type ReportConfig struct {
	// MaxWidth is the total column budget per report line,
	// position margin included.
	MaxWidth int `mapstructure:"max-width"`
}

// ServerConfig is the HTTP server binding.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the host:port string the server listens on.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Config is the root-level settings struct.
type Config struct {
	Scoring ScoringConfig `mapstructure:"scoring"`
	Report  ReportConfig  `mapstructure:"report"`
	Server  ServerConfig  `mapstructure:"server"`
}

// Load reads settings from the given file path (optional; empty skips
// the file) layered over the defaults and the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("seqalign")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := align.DefaultScoring()
	v.SetDefault("scoring.match", int64(defaults.Match))
	v.SetDefault("scoring.mismatch", int64(defaults.Mismatch))
	v.SetDefault("scoring.gap", int64(defaults.Gap))
	v.SetDefault("report.max-width", 80)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
}
