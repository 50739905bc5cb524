package machine

import (
	"fmt"
	"strings"

	"github.com/bgallie/enigma/alphabet"
	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/wirings"
)

// RotorConfig describes one rotor slot.  Wiring is either a 26 letter table
// or the name of a historical rotor (I - V); a named rotor with an empty
// Turnover uses its historical turnover letter.
type RotorConfig struct {
	Wiring   string `mapstructure:"wiring" yaml:"wiring"`
	Turnover string `mapstructure:"turnover" yaml:"turnover,omitempty"`
	Offset   string `mapstructure:"offset" yaml:"offset"`
}

// Config describes a machine.  Rotors are listed in stepping order: the
// first rotor steps on every symbol and is the first the signal passes
// through after the plugboard.  PlugboardPairs, when set, takes precedence
// over Plugboard.
type Config struct {
	Plugboard      string        `mapstructure:"plugboard" yaml:"plugboard,omitempty"`
	PlugboardPairs string        `mapstructure:"plugboardPairs" yaml:"plugboardPairs,omitempty"`
	Rotors         []RotorConfig `mapstructure:"rotors" yaml:"rotors"`
	Reflector      string        `mapstructure:"reflector" yaml:"reflector"`
}

// DefaultConfig returns rotors III, II and I in stepping order, all at
// offset a, with reflector B and no plugboard cables.
func DefaultConfig() Config {
	return Config{
		Plugboard: wirings.Identity,
		Rotors: []RotorConfig{
			{Wiring: "III", Offset: "a"},
			{Wiring: "II", Offset: "a"},
			{Wiring: "I", Offset: "a"},
		},
		Reflector: "B",
	}
}

// Resolve replaces historical rotor and reflector names with their wiring
// tables and fills in historical turnovers.  It reports missing keys as
// *cryptors.InvalidConfigurationError.
func (c Config) Resolve() (Config, error) {
	r := Config{
		Plugboard:      c.Plugboard,
		PlugboardPairs: c.PlugboardPairs,
		Rotors:         make([]RotorConfig, len(c.Rotors)),
		Reflector:      c.Reflector,
	}

	if r.Plugboard == "" && r.PlugboardPairs == "" {
		r.Plugboard = wirings.Identity
	}
	if len(c.Rotors) == 0 {
		return Config{}, &cryptors.InvalidConfigurationError{Key: "rotors", Reason: "at least one rotor is required"}
	}
	if r.Reflector == "" {
		return Config{}, &cryptors.InvalidConfigurationError{Key: "reflector", Reason: "missing"}
	}
	if w, ok := wirings.Reflector(strings.ToUpper(r.Reflector)); ok {
		r.Reflector = w
	}

	for i, rc := range c.Rotors {
		key := fmt.Sprintf("rotors[%d]", i)
		if rc.Wiring == "" {
			return Config{}, &cryptors.InvalidConfigurationError{Key: key + ".wiring", Reason: "missing"}
		}
		if h, ok := wirings.Rotor(strings.ToUpper(rc.Wiring)); ok {
			rc.Wiring = h.Wiring
			if rc.Turnover == "" {
				rc.Turnover = h.Turnover
			}
		}
		if rc.Turnover == "" {
			return Config{}, &cryptors.InvalidConfigurationError{Key: key + ".turnover", Reason: "missing"}
		}
		if rc.Offset == "" {
			rc.Offset = "a"
		}
		r.Rotors[i] = rc
	}

	return r, nil
}

// SetOffsets replaces the offset of every rotor with the corresponding letter
// of offsets.  The number of letters must match the number of rotors.
func (c *Config) SetOffsets(offsets string) error {
	symbols := alphabet.Normalize(offsets)
	if len(symbols) != len(c.Rotors) {
		return &cryptors.InvalidConfigurationError{
			Key:    "offsets",
			Reason: fmt.Sprintf("[%s] has %d letters for %d rotors", offsets, len(symbols), len(c.Rotors)),
		}
	}
	rotors := make([]RotorConfig, len(c.Rotors))
	copy(rotors, c.Rotors)
	for i := range rotors {
		rotors[i].Offset = string(alphabet.Letter(symbols[i]))
	}
	c.Rotors = rotors
	return nil
}

// Offsets returns the offset letters of the rotors in stepping order.
func (c Config) Offsets() string {
	var b strings.Builder
	for _, rc := range c.Rotors {
		b.WriteString(rc.Offset)
	}
	return b.String()
}
