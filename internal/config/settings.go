package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed settings.yaml
var defaultSettings []byte

// Settings carries the global tuning knobs loaded from settings.yaml.
type Settings struct {
	// Planet counts per map size keyword.
	MapSizes map[string]int `yaml:"map_sizes"`

	// Travel-time cap for generated edges, in turns.
	MaxEdgeDistance int `yaml:"max_edge_distance"`

	// Combat power multiplier applied when a ship kind faces a kind it counters.
	CounterMultiplier float64 `yaml:"counter_multiplier"`

	// Consecutive unbombarded turns before a planet's shield regenerates.
	ShieldRegenTurns int `yaml:"shield_regen_turns"`

	// Ships every starting colony begins with.
	StartingGarrison map[ShipID]int `yaml:"starting_garrison"`

	// Safety valve for AI decision loops.
	MaxAICommandsPerTurn int `yaml:"max_ai_commands_per_turn"`

	PlayerCallsigns    []string `yaml:"player_callsigns"`
	PlanetNameRoots    []string `yaml:"planet_name_roots"`
	PlanetNameSuffixes []string `yaml:"planet_name_suffixes"`
}

// LoadSettings reads tuning values from path, or the embedded defaults when
// path is empty.
func LoadSettings(path string) (Settings, error) {
	raw := defaultSettings
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, &ConfigError{File: path, Reason: fmt.Sprintf("read: %v", err)}
		}
		raw = b
	}
	var s Settings
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Settings{}, &ConfigError{File: "settings.yaml", Reason: fmt.Sprintf("parse: %v", err)}
	}
	if s.MaxAICommandsPerTurn < 1 {
		s.MaxAICommandsPerTurn = 8
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	if len(s.MapSizes) == 0 {
		return configErrf("settings.yaml", "map_sizes must not be empty")
	}
	for name, n := range s.MapSizes {
		if n < 1 {
			return configErrf("settings.yaml", "map size %q must be at least 1 planet", name)
		}
	}
	if s.MaxEdgeDistance < 1 {
		return configErrf("settings.yaml", "max_edge_distance must be at least 1")
	}
	if s.CounterMultiplier < 1 {
		return configErrf("settings.yaml", "counter_multiplier must be at least 1")
	}
	if s.ShieldRegenTurns < 1 {
		return configErrf("settings.yaml", "shield_regen_turns must be at least 1")
	}
	if len(s.PlanetNameRoots) == 0 || len(s.PlanetNameSuffixes) == 0 {
		return configErrf("settings.yaml", "planet name pools must not be empty")
	}
	if len(s.PlayerCallsigns) == 0 {
		return configErrf("settings.yaml", "player_callsigns must not be empty")
	}
	return nil
}
