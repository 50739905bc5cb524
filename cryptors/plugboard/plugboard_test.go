package plugboard

import (
	"errors"
	"testing"

	"github.com/bgallie/enigma/cryptors"
)

func TestIdentity(t *testing.T) {
	pb := Identity()
	for c := 0; c < cryptors.AlphabetSize; c++ {
		if pb.Forward(c) != c || pb.Reverse(c) != c {
			t.Fatalf("identity plugboard moved %d", c)
		}
	}
}

func TestNewGeneralBijection(t *testing.T) {
	pb, err := New("bcdefghijklmnopqrstuvwxyza")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if pb.Forward(25) != 0 || pb.Reverse(0) != 25 {
		t.Fatalf("rotated plugboard: Forward(z) = %d, Reverse(a) = %d", pb.Forward(25), pb.Reverse(0))
	}
}

func TestNewFromPairs(t *testing.T) {
	pb, err := NewFromPairs("AB cz")
	if err != nil {
		t.Fatalf("NewFromPairs: %v", err)
	}
	if got, want := pb.String(), "bazdefghijklmnopqrstuvwxyc"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	for c := 0; c < cryptors.AlphabetSize; c++ {
		if pb.Forward(pb.Forward(c)) != c {
			t.Fatalf("pairwise plugboard is not self-inverse at %d", c)
		}
	}

	empty, err := NewFromPairs("")
	if err != nil || empty.String() != "abcdefghijklmnopqrstuvwxyz" {
		t.Fatalf("NewFromPairs(\"\") = %v, %v", empty, err)
	}
}

func TestNewFromPairsErrors(t *testing.T) {
	for _, pairs := range []string{"ab bc", "aa", "abc", "a"} {
		var werr *cryptors.InvalidWiringError
		if _, err := NewFromPairs(pairs); !errors.As(err, &werr) {
			t.Fatalf("NewFromPairs(%q) error = %v, want InvalidWiringError", pairs, err)
		}
	}
}

func TestPlugged(t *testing.T) {
	if Identity().Plugged() {
		t.Fatalf("identity plugboard reports cables")
	}
	pb, err := NewFromPairs("")
	if err != nil || pb.Plugged() {
		t.Fatalf("empty pairs: plugged=%v, err=%v", pb != nil && pb.Plugged(), err)
	}
	pb, err = NewFromPairs("qw")
	if err != nil || !pb.Plugged() {
		t.Fatalf("pairs [qw]: %v", err)
	}
}
