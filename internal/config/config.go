// Package config loads the analysis thresholds from an optional YAML file.
// Every knob has a default matching the conventional minimum-sample floors,
// so the tool runs without any configuration present.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable minimum-sample thresholds and board sizes.
type Config struct {
	// Matchup gates.
	MinMatchupBalls int     `yaml:"min_matchup_balls"`
	MinPhaseOvers   float64 `yaml:"min_phase_overs"`

	// Leaderboard gates.
	MinStrikeRateBalls int     `yaml:"min_strike_rate_balls"`
	MinEconomyOvers    float64 `yaml:"min_economy_overs"`
	MinStyleBalls      int     `yaml:"min_style_balls"`
	MinGroundBalls     int     `yaml:"min_ground_balls"`
	MinPhaseBalls      int     `yaml:"min_phase_balls"`

	// TopN bounds every leaderboard.
	TopN int `yaml:"top_n"`
}

// DefaultConfig returns the built-in thresholds.
func DefaultConfig() *Config {
	return &Config{
		MinMatchupBalls:    6,
		MinPhaseOvers:      2,
		MinStrikeRateBalls: 50,
		MinEconomyOvers:    10,
		MinStyleBalls:      20,
		MinGroundBalls:     30,
		MinPhaseBalls:      20,
		TopN:               10,
	}
}

// Load reads thresholds from path, applying them over the defaults. A
// missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.TopN <= 0 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	if c.MinMatchupBalls < 1 {
		return fmt.Errorf("min_matchup_balls must be at least 1, got %d", c.MinMatchupBalls)
	}
	return nil
}
