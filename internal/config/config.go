// Package config provides YAML configuration loading and validation for
// blockfall: timing, input handling, the piece palette and key bindings.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Config contains all user-tunable settings.
type Config struct {
	Timing Timing              `yaml:"timing"`
	Input  Input               `yaml:"input"`
	Keys   map[string][]string `yaml:"keys"` // Action name -> key names

	// Palette holds "#RRGGBB" colors, one per palette index.
	Palette []string `yaml:"palette" env:"BLOCKFALL_PALETTE" envSeparator:","`

	// Source is where the config was loaded from ("embedded" or a file path).
	Source string `yaml:"-"`
}

// Timing defines the simulation cadence.
type Timing struct {
	FallIntervalMS  int `yaml:"fall_interval_ms" env:"BLOCKFALL_FALL_INTERVAL_MS"`
	InputIntervalMS int `yaml:"input_interval_ms" env:"BLOCKFALL_INPUT_INTERVAL_MS"`
	TickRate        int `yaml:"tick_rate" env:"BLOCKFALL_TICK_RATE"`
}

// Input defines how key events become held states.
type Input struct {
	HoldWindowMS int `yaml:"hold_window_ms" env:"BLOCKFALL_HOLD_WINDOW_MS"`
}

// requiredActions must have at least one key bound.
var requiredActions = []core.Action{
	core.ActionLeft,
	core.ActionRight,
	core.ActionDrop,
	core.ActionRotate,
	core.ActionQuit,
}

// FallInterval returns the gravity cadence.
func (c Config) FallInterval() time.Duration {
	return time.Duration(c.Timing.FallIntervalMS) * time.Millisecond
}

// InputInterval returns the horizontal auto-repeat cadence.
func (c Config) InputInterval() time.Duration {
	return time.Duration(c.Timing.InputIntervalMS) * time.Millisecond
}

// HoldWindow returns how long a left/right key event counts as held.
func (c Config) HoldWindow() time.Duration {
	return time.Duration(c.Input.HoldWindowMS) * time.Millisecond
}

// Validate reports every problem found in the config.
func (c Config) Validate() error {
	var errs []error

	if c.Timing.FallIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.fall_interval_ms must be positive, got %d", c.Timing.FallIntervalMS))
	}
	if c.Timing.InputIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.input_interval_ms must be positive, got %d", c.Timing.InputIntervalMS))
	}
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_rate must be positive, got %d", c.Timing.TickRate))
	}
	if c.Input.HoldWindowMS < 0 {
		errs = append(errs, fmt.Errorf("input.hold_window_ms must not be negative, got %d", c.Input.HoldWindowMS))
	}

	if len(c.Palette) == 0 {
		errs = append(errs, errors.New("palette must have at least one color"))
	}
	if len(c.Palette) > core.MaxPaletteColors {
		errs = append(errs, fmt.Errorf("palette has %d colors, at most %d allowed", len(c.Palette), core.MaxPaletteColors))
	}
	for i, hex := range c.Palette {
		if !validHex(hex) {
			errs = append(errs, fmt.Errorf("palette[%d]: %q is not a #RRGGBB color", i, hex))
		}
	}

	errs = append(errs, c.validateKeys()...)
	return errors.Join(errs...)
}

func (c Config) validateKeys() []error {
	var errs []error
	owner := make(map[string]string)
	bound := make(map[core.Action]bool)

	for name, keys := range c.Keys {
		action, ok := core.ParseAction(name)
		if !ok {
			errs = append(errs, fmt.Errorf("keys: unknown action %q", name))
			continue
		}
		for _, k := range keys {
			if prev, dup := owner[k]; dup {
				errs = append(errs, fmt.Errorf("keys: %q bound to both %s and %s", k, prev, name))
				continue
			}
			owner[k] = name
		}
		if len(keys) > 0 {
			bound[action] = true
		}
	}

	for _, a := range requiredActions {
		if !bound[a] {
			errs = append(errs, fmt.Errorf("keys: no key bound to %s", a))
		}
	}
	return errs
}

func validHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, err := strconv.ParseUint(s[1:], 16, 32)
	return err == nil
}

// Bindings returns the keys bound to an action.
func (c Config) Bindings(a core.Action) []string {
	for name, keys := range c.Keys {
		if parsed, ok := core.ParseAction(name); ok && parsed == a {
			return keys
		}
	}
	return nil
}
