// reflector
package reflector

import (
	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/permutator"
)

// Reflector turns the signal back through the rotor stack.  Its wiring must
// be its own inverse.
type Reflector struct {
	wiring *permutator.Permutator
}

var _ cryptors.Crypter = (*Reflector)(nil)

// New creates a Reflector, rejecting wirings that are not involutions.
func New(wiring string) (*Reflector, error) {
	p, err := permutator.New(wiring)
	if err != nil {
		return nil, err
	}
	if !p.IsInvolution() {
		return nil, &cryptors.InvalidWiringError{Wiring: wiring, Reason: "reflector wiring is not self-inverse"}
	}
	return &Reflector{wiring: p}, nil
}

// Reflect assumes c is in [0, AlphabetSize) and panics otherwise.
func (r *Reflector) Reflect(c int) int {
	return r.wiring.Forward(c)
}

// Forward and Reverse are both Reflect.
func (r *Reflector) Forward(c int) int { return r.wiring.Forward(c) }
func (r *Reflector) Reverse(c int) int { return r.wiring.Forward(c) }

func (r *Reflector) String() string {
	return r.wiring.String()
}
