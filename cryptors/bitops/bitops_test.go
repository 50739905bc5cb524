package bitops

import "testing"

func TestLetterSet(t *testing.T) {
	var s LetterSet
	for _, bit := range []int{0, 7, 25} {
		if s.GetBit(bit) {
			t.Fatalf("bit %d set in empty set", bit)
		}
		s = s.SetBit(bit)
		if !s.GetBit(bit) {
			t.Fatalf("bit %d not set after SetBit", bit)
		}
	}
	if s != 1|1<<7|1<<25 {
		t.Fatalf("set = %b", s)
	}
	if s.SetBit(7) != s {
		t.Fatalf("SetBit is not idempotent")
	}
}
