package vietnamese

import "testing"

func TestTonePositionNewStyle(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"a", 0},
		{"hoa", 2},   // oa pair marks the second letter
		{"choe", 3},  // oe pair
		{"chieu", 3}, // ie pair
		{"thuy", 3},  // uy pair
		{"nguoi", 3}, // uo pair
		{"hoang", 2}, // two vowels plus final
		{"chao", 2},  // two vowels, no final, no pair
		{"mai", 1},   // same
		{"que", 2},   // qu initial, single vowel
		{"tuyêt", 3}, // ê wins
		{"thuơ", 3},  // ơ wins
		{"chân", 2},  // â wins
		{"khuya", 3}, // three vowels
		{"HOA", 2},   // case has no effect
		{"bbb", -1},  // no vowel
		{"", -1},
	}
	for _, tt := range tests {
		if got := TonePosition(tt.input, StyleNew); got != tt.want {
			t.Errorf("TonePosition(%q, new) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestTonePositionOldStyle(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hoa", 1},   // two vowels, no final: first
		{"chao", 2},  // same
		{"hoang", 2}, // two vowels plus final: second
		{"khuya", 3}, // three vowels: second
		{"tuyêt", 3}, // ê still wins
		{"thuơ", 3},  // ơ still wins
		{"que", 2},   // single vowel
	}
	for _, tt := range tests {
		if got := TonePosition(tt.input, StyleOld); got != tt.want {
			t.Errorf("TonePosition(%q, old) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
