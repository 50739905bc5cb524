// permutator project permutator.go
package permutator

import (
	"fmt"

	"github.com/bgallie/enigma/alphabet"
	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/bitops"
)

// Permutator is an invertible mapping over the alphabet built from a wiring
// string.  It is immutable after construction and may be shared freely.
type Permutator struct {
	forward [cryptors.AlphabetSize]int // forward[i] is the image of symbol i.
	reverse [cryptors.AlphabetSize]int // reverse[forward[i]] == i.
}

var _ cryptors.Crypter = (*Permutator)(nil)

// New creates a Permutator from wiring, where the i'th letter of the
// normalized wiring is the image of the i'th letter of the alphabet.
func New(wiring string) (*Permutator, error) {
	table := alphabet.Normalize(wiring)
	if len(table) != cryptors.AlphabetSize {
		return nil, &cryptors.InvalidWiringError{
			Wiring: wiring,
			Reason: fmt.Sprintf("has %d letters, need %d", len(table), cryptors.AlphabetSize),
		}
	}

	var p Permutator
	var seen bitops.LetterSet
	for i, v := range table {
		if seen.GetBit(v) {
			return nil, &cryptors.InvalidWiringError{
				Wiring: wiring,
				Reason: fmt.Sprintf("letter %c appears more than once", alphabet.Letter(v)),
			}
		}
		seen = seen.SetBit(v)
		p.forward[i] = v
		p.reverse[v] = i
	}

	return &p, nil
}

// Identity returns the Permutator that maps every symbol to itself.
func Identity() *Permutator {
	var p Permutator
	for i := range p.forward {
		p.forward[i], p.reverse[i] = i, i
	}
	return &p
}

// Forward and Reverse assume c is in [0, AlphabetSize) and panic otherwise.
func (p *Permutator) Forward(c int) int {
	return p.forward[c]
}

func (p *Permutator) Reverse(c int) int {
	return p.reverse[c]
}

// IsInvolution reports whether applying the permutation twice returns every
// symbol to itself.
func (p *Permutator) IsInvolution() bool {
	return p.forward == p.reverse
}

// IsIdentity reports whether the permutation maps every symbol to itself.
func (p *Permutator) IsIdentity() bool {
	for i, v := range p.forward {
		if i != v {
			return false
		}
	}
	return true
}

// String returns the wiring letters.
func (p *Permutator) String() string {
	return alphabet.Denormalize(p.forward[:])
}
