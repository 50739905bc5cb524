// Package wirings holds the historical rotor and reflector tables.  The
// tables are read-only and shared by every machine.
package wirings

// RotorWiring is a rotor's wiring together with its turnover letter.
type RotorWiring struct {
	Wiring   string
	Turnover string
}

const (
	ReflectorA = "ejmzalyxvbwfcrquontspikhgd"
	ReflectorB = "yruhqsldpxngokmiebfzcwvjat"
	ReflectorC = "fvpjiaoyedrzxwgctkuqsbnmhl"

	Identity = "abcdefghijklmnopqrstuvwxyz"
)

var (
	RotorI   = RotorWiring{"ekmflgdqvzntowyhxuspaibrcj", "q"}
	RotorII  = RotorWiring{"ajdksiruxblhwtmcqgznpyfvoe", "e"}
	RotorIII = RotorWiring{"bdfhjlcprtxvznyeiwgakmusqo", "v"}
	RotorIV  = RotorWiring{"esovpzjayquirhxlnftgkdcmwb", "j"}
	RotorV   = RotorWiring{"vzbrgityupsdnhlxawmjqofeck", "z"}
)

var rotors = map[string]RotorWiring{
	"I":   RotorI,
	"II":  RotorII,
	"III": RotorIII,
	"IV":  RotorIV,
	"V":   RotorV,
}

var reflectors = map[string]string{
	"A": ReflectorA,
	"B": ReflectorB,
	"C": ReflectorC,
}

// Rotor returns the historical rotor with the given roman numeral name.
func Rotor(name string) (RotorWiring, bool) {
	r, ok := rotors[name]
	return r, ok
}

// Reflector returns the historical reflector wiring named A, B or C.
func Reflector(name string) (string, bool) {
	r, ok := reflectors[name]
	return r, ok
}

// TestVector is a plaintext and the ciphertext the default machine produces
// for it from its reset state.
type TestVector struct {
	Plaintext  string
	Ciphertext string
}

var TestVectors = []TestVector{
	{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "bdzgowcxltksbtmcdlpbmuqofxyhcx"},
	{"doyouknowthewaytosanjose", "miwmlorqeaxtdtcwznpzzdlz"},
}
