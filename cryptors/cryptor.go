// cryptor
package cryptors

import (
	"fmt"
)

const (
	// AlphabetSize is the number of symbols every wiring permutes.
	AlphabetSize = 26
	// FirstLetter is the letter that normalizes to symbol 0.
	FirstLetter = 'a'
)

// Crypter is the keyed permutation capability shared by the plugboard, the
// rotors and the reflector.  Reverse(Forward(c)) == c for every symbol c in
// [0, AlphabetSize).
type Crypter interface {
	Forward(int) int
	Reverse(int) int
}

// InvalidWiringError reports a wiring table that is not a bijection over the
// alphabet (wrong length, duplicate images) or, for a reflector, is not its
// own inverse.
type InvalidWiringError struct {
	Wiring string
	Reason string
}

func (e *InvalidWiringError) Error() string {
	return fmt.Sprintf("invalid wiring [%s]: %s", e.Wiring, e.Reason)
}

// InvalidSymbolError reports a symbol outside [0, AlphabetSize).  Index is
// the symbol's position in the input sequence.
type InvalidSymbolError struct {
	Index  int
	Symbol int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %d at index %d: must be in [0,%d)", e.Symbol, e.Index, AlphabetSize)
}

// InvalidConfigurationError reports a machine configuration with a missing
// or unusable key.
type InvalidConfigurationError struct {
	Key    string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Key, e.Reason)
}

// ValidSymbol reports whether c is in [0, AlphabetSize).
func ValidSymbol(c int) bool {
	return c >= 0 && c < AlphabetSize
}

// CheckSymbols returns an *InvalidSymbolError for the first out of range
// symbol in symbols, or nil.
func CheckSymbols(symbols []int) error {
	for i, c := range symbols {
		if !ValidSymbol(c) {
			return &InvalidSymbolError{Index: i, Symbol: c}
		}
	}

	return nil
}

// Mod returns c modulo AlphabetSize in the range [0, AlphabetSize).
func Mod(c int) int {
	c %= AlphabetSize
	if c < 0 {
		c += AlphabetSize
	}

	return c
}
