// rotor
package rotor

import (
	"fmt"

	"github.com/bgallie/enigma/alphabet"
	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/permutator"
)

// Rotor is a wiring permutation mounted at a rotating offset.  The wiring is
// shared read-only; the position is owned by the Rotor.
type Rotor struct {
	wiring   *permutator.Permutator
	turnover int // Position at which advancing also carries to the next rotor.
	start    int // Position restored by Reset.
	current  int
}

var _ cryptors.Crypter = (*Rotor)(nil)

// New creates a Rotor from a 26 letter wiring, the turnover letter and the
// initial offset letter.
func New(wiring, turnover, offset string) (*Rotor, error) {
	p, err := permutator.New(wiring)
	if err != nil {
		return nil, err
	}
	t, err := letter("turnover", turnover)
	if err != nil {
		return nil, err
	}
	o, err := letter("offset", offset)
	if err != nil {
		return nil, err
	}
	return FromPermutator(p, t, o), nil
}

// FromPermutator creates a Rotor over an already validated wiring.  turnover
// and start are reduced modulo the alphabet size.
func FromPermutator(p *permutator.Permutator, turnover, start int) *Rotor {
	r := Rotor{
		wiring:   p,
		turnover: cryptors.Mod(turnover),
		start:    cryptors.Mod(start),
	}
	r.current = r.start
	return &r
}

func letter(key, s string) (int, error) {
	symbols := alphabet.Normalize(s)
	if len(symbols) != 1 {
		return 0, &cryptors.InvalidConfigurationError{
			Key:    key,
			Reason: fmt.Sprintf("[%s] must be exactly one letter", s),
		}
	}
	return symbols[0], nil
}

// Forward and Reverse pass c through the wiring at the current position.  c
// must be in [0, AlphabetSize); other values panic.
func (r *Rotor) Forward(c int) int {
	return cryptors.Mod(r.wiring.Forward((c+r.current)%cryptors.AlphabetSize) - r.current)
}

func (r *Rotor) Reverse(c int) int {
	return cryptors.Mod(r.wiring.Reverse((c+r.current)%cryptors.AlphabetSize) - r.current)
}

// Reset restores the rotor to its initial offset.
func (r *Rotor) Reset() {
	r.current = r.start
}

// Advance steps the rotor one position when carryIn is true and reports
// whether the rotor was at its turnover position before stepping.  When
// carryIn is false the rotor is unchanged and Advance returns false.
func (r *Rotor) Advance(carryIn bool) bool {
	if !carryIn {
		return false
	}
	carryOut := r.current == r.turnover
	r.current = (r.current + 1) % cryptors.AlphabetSize
	return carryOut
}

func (r *Rotor) Position() int {
	return r.current
}

// SetPosition moves the rotor to c without changing its reset position.
func (r *Rotor) SetPosition(c int) {
	r.current = cryptors.Mod(c)
}

func (r *Rotor) ResetPosition() int {
	return r.start
}

func (r *Rotor) Turnover() int {
	return r.turnover
}

func (r *Rotor) Wiring() *permutator.Permutator {
	return r.wiring
}

// String returns the wiring, turnover letter and current position letter.
func (r *Rotor) String() string {
	return fmt.Sprintf("%s %c %c", r.wiring, alphabet.Letter(r.turnover), alphabet.Letter(r.current))
}
