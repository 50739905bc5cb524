package permutator

import (
	"errors"
	"testing"

	"github.com/bgallie/enigma/cryptors"
)

const rotorI = "ekmflgdqvzntowyhxuspaibrcj"

func TestNewInverse(t *testing.T) {
	p, err := New(rotorI)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for c := 0; c < cryptors.AlphabetSize; c++ {
		if got := p.Reverse(p.Forward(c)); got != c {
			t.Fatalf("Reverse(Forward(%d)) = %d", c, got)
		}
		if got := p.Forward(p.Reverse(c)); got != c {
			t.Fatalf("Forward(Reverse(%d)) = %d", c, got)
		}
	}
	if p.Forward(0) != 4 || p.Reverse(4) != 0 {
		t.Fatalf("a should map to e, got %d", p.Forward(0))
	}
	if got := p.String(); got != rotorI {
		t.Fatalf("String() = %q, want %q", got, rotorI)
	}
}

func TestNewNormalizesWiring(t *testing.T) {
	p, err := New("EKMFL GDQVZ NTOWY HXUSP AIBRC J")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := p.String(); got != rotorI {
		t.Fatalf("String() = %q, want %q", got, rotorI)
	}
}

func TestNewInvalidWiring(t *testing.T) {
	tests := []struct {
		name   string
		wiring string
	}{
		{"empty", ""},
		{"short", "abcdefghijklmnopqrstuvwxy"},
		{"long", "abcdefghijklmnopqrstuvwxyza"},
		{"repeated letter", "abcdefghijklmnopqrstuvwxya"},
		{"non letters only pad", "abcdefghijklmnopqrstuvwxy1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.wiring)
			if p != nil {
				t.Fatalf("New(%q) returned a permutator", tt.wiring)
			}
			var werr *cryptors.InvalidWiringError
			if !errors.As(err, &werr) {
				t.Fatalf("New(%q) error = %v, want InvalidWiringError", tt.wiring, err)
			}
		})
	}
}

func TestIdentity(t *testing.T) {
	p := Identity()
	if !p.IsIdentity() || !p.IsInvolution() {
		t.Fatalf("identity permutation is not identity")
	}
	if got := p.String(); got != "abcdefghijklmnopqrstuvwxyz" {
		t.Fatalf("String() = %q", got)
	}
}

func TestIsInvolution(t *testing.T) {
	refB, err := New("yruhqsldpxngokmiebfzcwvjat")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !refB.IsInvolution() {
		t.Fatalf("reflector B should be an involution")
	}
	r, _ := New(rotorI)
	if r.IsInvolution() {
		t.Fatalf("rotor I should not be an involution")
	}
	if r.IsIdentity() {
		t.Fatalf("rotor I should not be the identity")
	}
}
