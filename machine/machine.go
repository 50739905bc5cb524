// Package machine composes a plugboard, a stack of rotors and a reflector
// into a self-inverse rotor cipher.
//
// A Machine is not safe for concurrent use: every symbol advances the rotors.
// Each cipher session should own its Machine (see Session), or reset and
// use a shared Machine strictly sequentially.
package machine

import (
	"fmt"
	"strings"

	"github.com/bgallie/enigma/alphabet"
	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/plugboard"
	"github.com/bgallie/enigma/cryptors/reflector"
	"github.com/bgallie/enigma/cryptors/rotor"
)

type Machine struct {
	config    Config
	plugboard *plugboard.Plugboard
	rotors    []*rotor.Rotor // In stepping order; rotors[0] steps on every symbol.
	reflector *reflector.Reflector
}

// New builds a Machine from cfg.  On error no Machine is returned.
func New(cfg Config) (*Machine, error) {
	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	var m Machine
	m.config = resolved

	if resolved.PlugboardPairs != "" {
		m.plugboard, err = plugboard.NewFromPairs(resolved.PlugboardPairs)
	} else {
		m.plugboard, err = plugboard.New(resolved.Plugboard)
	}
	if err != nil {
		return nil, fmt.Errorf("plugboard: %w", err)
	}

	m.rotors = make([]*rotor.Rotor, len(resolved.Rotors))
	for i, rc := range resolved.Rotors {
		m.rotors[i], err = rotor.New(rc.Wiring, rc.Turnover, rc.Offset)
		if err != nil {
			return nil, fmt.Errorf("rotor %d: %w", i, err)
		}
	}

	m.reflector, err = reflector.New(resolved.Reflector)
	if err != nil {
		return nil, fmt.Errorf("reflector: %w", err)
	}

	return &m, nil
}

// Reset returns every rotor to its initial offset.
func (m *Machine) Reset() {
	for _, r := range m.rotors {
		r.Reset()
	}
}

// Advance steps the rotors once.  The first rotor always steps; each
// following rotor steps when the rotor before it carried.
func (m *Machine) Advance() {
	carry := true
	for _, r := range m.rotors {
		carry = r.Advance(carry)
	}
}

// Path returns the substitution of c at the current rotor positions without
// stepping.  c must be in [0, AlphabetSize); use Lookup for unchecked input.
func (m *Machine) Path(c int) int {
	c = m.plugboard.Forward(c)
	for _, r := range m.rotors {
		c = r.Forward(c)
	}
	c = m.reflector.Reflect(c)
	for i := len(m.rotors) - 1; i >= 0; i-- {
		c = m.rotors[i].Reverse(c)
	}
	return m.plugboard.Reverse(c)
}

// Lookup is Path for unchecked input.  An out of range c returns an
// *cryptors.InvalidSymbolError.
func (m *Machine) Lookup(c int) (int, error) {
	if !cryptors.ValidSymbol(c) {
		return 0, &cryptors.InvalidSymbolError{Symbol: c}
	}
	return m.Path(c), nil
}

// Plugged reports whether the plugboard swaps any letters.
func (m *Machine) Plugged() bool {
	return m.plugboard.Plugged()
}

// Encrypt steps the rotors and substitutes each symbol in turn.  Encrypt is
// its own inverse when applied from the same rotor positions.  Every symbol
// is checked before any rotor moves.
func (m *Machine) Encrypt(symbols []int) ([]int, error) {
	if err := cryptors.CheckSymbols(symbols); err != nil {
		return nil, err
	}

	out := make([]int, len(symbols))
	for i, c := range symbols {
		m.Advance()
		out[i] = m.Path(c)
	}

	return out, nil
}

// Decrypt is Encrypt.
func (m *Machine) Decrypt(symbols []int) ([]int, error) {
	return m.Encrypt(symbols)
}

// EncryptText normalizes text, encrypts it and returns the letters.
func (m *Machine) EncryptText(text string) string {
	// Normalize only yields valid symbols.
	out, _ := m.Encrypt(alphabet.Normalize(text))
	return alphabet.Denormalize(out)
}

// Positions returns the current rotor positions in stepping order.
func (m *Machine) Positions() []int {
	p := make([]int, len(m.rotors))
	for i, r := range m.rotors {
		p[i] = r.Position()
	}
	return p
}

// SetPositions moves the rotors to positions without changing the positions
// Reset restores.
func (m *Machine) SetPositions(positions []int) error {
	if len(positions) != len(m.rotors) {
		return &cryptors.InvalidConfigurationError{
			Key:    "positions",
			Reason: fmt.Sprintf("got %d positions for %d rotors", len(positions), len(m.rotors)),
		}
	}
	if err := cryptors.CheckSymbols(positions); err != nil {
		return err
	}
	for i, r := range m.rotors {
		r.SetPosition(positions[i])
	}
	return nil
}

// Rotors returns the number of rotors.
func (m *Machine) Rotors() int {
	return len(m.rotors)
}

// Config returns the resolved configuration the machine was built from.
func (m *Machine) Config() Config {
	c := m.config
	c.Rotors = append([]RotorConfig(nil), m.config.Rotors...)
	return c
}

func (m *Machine) String() string {
	var output strings.Builder
	output.WriteString(fmt.Sprintf("pb %s\n", m.plugboard))
	for i, r := range m.rotors {
		output.WriteString(fmt.Sprintf("r%d %s\n", i, r))
	}
	output.WriteString(fmt.Sprintf("rf %s", m.reflector))
	return output.String()
}
