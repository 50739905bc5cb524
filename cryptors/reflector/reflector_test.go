package reflector

import (
	"errors"
	"testing"

	"github.com/bgallie/enigma/cryptors"
)

func TestReflectInvolution(t *testing.T) {
	r, err := New("yruhqsldpxngokmiebfzcwvjat")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for c := 0; c < cryptors.AlphabetSize; c++ {
		if got := r.Reflect(r.Reflect(c)); got != c {
			t.Fatalf("Reflect(Reflect(%d)) = %d", c, got)
		}
		if r.Forward(c) != r.Reverse(c) {
			t.Fatalf("Forward(%d) != Reverse(%d)", c, c)
		}
	}
	if r.Reflect(0) != 24 {
		t.Fatalf("Reflect(a) = %d, want 24", r.Reflect(0))
	}
}

func TestNewRejectsNonInvolution(t *testing.T) {
	var werr *cryptors.InvalidWiringError
	r, err := New("ekmflgdqvzntowyhxuspaibrcj")
	if r != nil || !errors.As(err, &werr) {
		t.Fatalf("New(rotor I) = %v, %v; want InvalidWiringError", r, err)
	}
	if _, err := New("yruhqsldpxngokmiebfzcwvjaa"); !errors.As(err, &werr) {
		t.Fatalf("New(repeated letter) error = %v, want InvalidWiringError", err)
	}
}
