package alphabet

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int
	}{
		{"empty", "", []int{}},
		{"lower", "abz", []int{0, 1, 25}},
		{"upper", "ABZ", []int{0, 1, 25}},
		{"drops non letters", "Do you, 42 Know?", []int{3, 14, 24, 14, 20, 10, 13, 14, 22}},
		{"drops non ascii", "é-a", []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Normalize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDenormalize(t *testing.T) {
	if got := Denormalize([]int{12, 8, 22, 12}); got != "miwm" {
		t.Fatalf("Denormalize = %q, want %q", got, "miwm")
	}
	if got := Denormalize(nil); got != "" {
		t.Fatalf("Denormalize(nil) = %q, want empty", got)
	}
	if got := Denormalize([]int{0, 26, -1}); got != "a??" {
		t.Fatalf("Denormalize out of range = %q, want %q", got, "a??")
	}
}

func TestRoundTrip(t *testing.T) {
	text := "doyouknowthewaytosanjose"
	if got := Denormalize(Normalize(text)); got != text {
		t.Fatalf("round trip = %q, want %q", got, text)
	}
}
