// Package alphabet converts between text and the normalized symbols [0,26)
// consumed by the cipher machine.
package alphabet

import (
	"strings"

	"github.com/bgallie/enigma/cryptors"
)

// Symbol returns the symbol for letter, ignoring case.  ok is false when
// letter is not in a-z.
func Symbol(letter byte) (c int, ok bool) {
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	c = int(letter) - cryptors.FirstLetter
	return c, cryptors.ValidSymbol(c)
}

// Letter returns the lower case letter for symbol c, or '?' when c is out of
// range.
func Letter(c int) byte {
	if !cryptors.ValidSymbol(c) {
		return '?'
	}
	return byte(c + cryptors.FirstLetter)
}

// Normalize lower-cases text, drops every character outside a-z and maps
// the remaining letters to symbols in their original order.
func Normalize(text string) []int {
	symbols := make([]int, 0, len(text))
	for i := 0; i < len(text); i++ {
		if c, ok := Symbol(text[i]); ok {
			symbols = append(symbols, c)
		}
	}

	return symbols
}

// Denormalize maps each symbol back to its letter.
func Denormalize(symbols []int) string {
	var b strings.Builder
	b.Grow(len(symbols))
	for _, c := range symbols {
		b.WriteByte(Letter(c))
	}

	return b.String()
}
