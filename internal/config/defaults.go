package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration, matching the embedded
// defaults/blockfall.yaml.
func DefaultConfig() Config {
	return Config{
		Timing: Timing{
			FallIntervalMS:  400,
			InputIntervalMS: 100,
			TickRate:        60,
		},
		Input: Input{
			HoldWindowMS: 150,
		},
		Palette: []string{
			"#40E664", // green
			"#DC405A", // red
			"#4696D2", // blue
			"#DCE646", // yellow
			"#23DCF1", // cyan
			"#F08C46", // orange
		},
		Keys: map[string][]string{
			"left":    {"left", "a"},
			"right":   {"right", "d"},
			"drop":    {"down", "s", "space"},
			"rotate":  {"up", "w"},
			"pause":   {"p"},
			"restart": {"r"},
			"quit":    {"q", "ctrl+c"},
			"help":    {"?"},
		},
		Source: "built-in",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
