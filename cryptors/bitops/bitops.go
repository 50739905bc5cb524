// bitops project bitops.go
package bitops

// LetterSet is a set of symbols in [0, 32), one bit per symbol.
type LetterSet uint32

func (s LetterSet) SetBit(bit int) LetterSet {
	return s | (1 << uint(bit))
}

func (s LetterSet) GetBit(bit int) bool {
	return s&(1<<uint(bit)) != 0
}
