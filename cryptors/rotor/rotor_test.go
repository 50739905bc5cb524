package rotor

import (
	"errors"
	"testing"

	"github.com/bgallie/enigma/cryptors"
)

const rotorI = "ekmflgdqvzntowyhxuspaibrcj"

func newRotor(t *testing.T, turnover, offset string) *Rotor {
	t.Helper()
	r, err := New(rotorI, turnover, offset)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestForwardReverseInverse(t *testing.T) {
	r := newRotor(t, "q", "a")
	for pos := 0; pos < cryptors.AlphabetSize; pos++ {
		r.SetPosition(pos)
		for c := 0; c < cryptors.AlphabetSize; c++ {
			if got := r.Reverse(r.Forward(c)); got != c {
				t.Fatalf("position %d: Reverse(Forward(%d)) = %d", pos, c, got)
			}
		}
	}
}

func TestForwardOffset(t *testing.T) {
	r := newRotor(t, "q", "a")
	// At position 0 the rotor is the bare wiring: a -> e.
	if got := r.Forward(0); got != 4 {
		t.Fatalf("Forward(a) at a = %d, want 4", got)
	}
	// At position 1, a enters contact b (k) and leaves shifted back: k-1 = j.
	r.SetPosition(1)
	if got := r.Forward(0); got != 9 {
		t.Fatalf("Forward(a) at b = %d, want 9", got)
	}
	// z enters contact a (e) and leaves at e-1 = d.
	if got := r.Forward(25); got != 3 {
		t.Fatalf("Forward(z) at b = %d, want 3", got)
	}
}

func TestAdvanceFullCycle(t *testing.T) {
	for turnover := 0; turnover < cryptors.AlphabetSize; turnover++ {
		r := FromPermutator(newRotor(t, "a", "a").Wiring(), turnover, 7)
		carries := 0
		for i := 0; i < cryptors.AlphabetSize; i++ {
			before := r.Position()
			carry := r.Advance(true)
			if carry {
				carries++
				if before != turnover {
					t.Fatalf("turnover %d: carry emitted leaving position %d", turnover, before)
				}
			} else if before == turnover {
				t.Fatalf("turnover %d: no carry leaving turnover position", turnover)
			}
			if want := (before + 1) % cryptors.AlphabetSize; r.Position() != want {
				t.Fatalf("position after advance = %d, want %d", r.Position(), want)
			}
		}
		if carries != 1 {
			t.Fatalf("turnover %d: %d carries in a full cycle, want 1", turnover, carries)
		}
		if r.Position() != 7 {
			t.Fatalf("position after full cycle = %d, want 7", r.Position())
		}
	}
}

func TestAdvanceWithoutCarry(t *testing.T) {
	r := newRotor(t, "c", "c")
	if r.Advance(false) {
		t.Fatalf("Advance(false) returned true")
	}
	if r.Position() != 2 {
		t.Fatalf("Advance(false) moved the rotor to %d", r.Position())
	}
}

func TestReset(t *testing.T) {
	r := newRotor(t, "q", "d")
	if r.Position() != 3 || r.ResetPosition() != 3 {
		t.Fatalf("initial position = %d, want 3", r.Position())
	}
	for i := 0; i < 5; i++ {
		r.Advance(true)
	}
	r.Reset()
	first := r.Position()
	r.Reset()
	if first != 3 || r.Position() != first {
		t.Fatalf("Reset positions = %d, %d, want 3", first, r.Position())
	}
	if r.Turnover() != 16 {
		t.Fatalf("Turnover() = %d, want 16", r.Turnover())
	}
}

func TestNewErrors(t *testing.T) {
	var werr *cryptors.InvalidWiringError
	if _, err := New("ekmflgdqvzntowyhxuspaibrce", "q", "a"); !errors.As(err, &werr) {
		t.Fatalf("repeated letter error = %v, want InvalidWiringError", err)
	}

	var cerr *cryptors.InvalidConfigurationError
	if _, err := New(rotorI, "", "a"); !errors.As(err, &cerr) || cerr.Key != "turnover" {
		t.Fatalf("empty turnover error = %v, want InvalidConfigurationError", err)
	}
	if _, err := New(rotorI, "q", "ab"); !errors.As(err, &cerr) || cerr.Key != "offset" {
		t.Fatalf("two letter offset error = %v, want InvalidConfigurationError", err)
	}
}

func TestString(t *testing.T) {
	r := newRotor(t, "Q", "B")
	if got, want := r.String(), rotorI+" q b"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
