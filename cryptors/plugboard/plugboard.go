// plugboard
package plugboard

import (
	"fmt"
	"strings"

	"github.com/bgallie/enigma/alphabet"
	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/bitops"
	"github.com/bgallie/enigma/cryptors/permutator"
)

// Plugboard swaps letters before and after the rotor stack.  Authentic
// boards are pairwise swaps, but any bijection is accepted by New.
type Plugboard struct {
	wiring *permutator.Permutator
}

var _ cryptors.Crypter = (*Plugboard)(nil)

func New(wiring string) (*Plugboard, error) {
	p, err := permutator.New(wiring)
	if err != nil {
		return nil, err
	}
	return &Plugboard{wiring: p}, nil
}

// Identity returns a plugboard with no cables connected.
func Identity() *Plugboard {
	return &Plugboard{wiring: permutator.Identity()}
}

// NewFromPairs creates a plugboard from space separated letter pairs such as
// "ab cd ef".  A letter may appear in at most one pair.
func NewFromPairs(pairs string) (*Plugboard, error) {
	var table [cryptors.AlphabetSize]int
	for i := range table {
		table[i] = i
	}

	var used bitops.LetterSet
	for _, pair := range strings.Fields(pairs) {
		s := alphabet.Normalize(pair)
		if len(s) != 2 || s[0] == s[1] {
			return nil, &cryptors.InvalidWiringError{Wiring: pairs, Reason: fmt.Sprintf("[%s] is not a pair of distinct letters", pair)}
		}
		if used.GetBit(s[0]) || used.GetBit(s[1]) {
			return nil, &cryptors.InvalidWiringError{Wiring: pairs, Reason: fmt.Sprintf("[%s] reuses a plugged letter", pair)}
		}
		used = used.SetBit(s[0]).SetBit(s[1])
		table[s[0]], table[s[1]] = s[1], s[0]
	}

	return New(alphabet.Denormalize(table[:]))
}

// Plugged reports whether any letter is swapped.
func (pb *Plugboard) Plugged() bool {
	return !pb.wiring.IsIdentity()
}

// Forward and Reverse assume c is in [0, AlphabetSize) and panic otherwise.
func (pb *Plugboard) Forward(c int) int {
	return pb.wiring.Forward(c)
}

func (pb *Plugboard) Reverse(c int) int {
	return pb.wiring.Reverse(c)
}

func (pb *Plugboard) String() string {
	return pb.wiring.String()
}
