package vietnamese

import "testing"

func TestWithTone(t *testing.T) {
	tests := []struct {
		ch   rune
		tone ToneMark
		want rune
	}{
		{'a', ToneAcute, 'á'},
		{'ê', ToneUnderdot, 'ệ'},
		{'ư', ToneGrave, 'ừ'},
		{'ơ', ToneHookAbove, 'ở'},
		{'A', ToneAcute, 'Á'},
		{'E', ToneTilde, 'Ẽ'},
		{'b', ToneAcute, 'b'},
	}
	for _, tt := range tests {
		if got := WithTone(tt.ch, tt.tone); got != tt.want {
			t.Errorf("WithTone(%c, %v) = %c, want %c", tt.ch, tt.tone, got, tt.want)
		}
	}
}

func TestWithModification(t *testing.T) {
	tests := []struct {
		ch   rune
		mod  Modification
		want rune
	}{
		{'a', ModCircumflex, 'â'},
		{'a', ModBreve, 'ă'},
		{'u', ModHorn, 'ư'},
		{'o', ModHorn, 'ơ'},
		{'d', ModStroke, 'đ'},
		{'D', ModStroke, 'Đ'},
		{'ẹ', ModCircumflex, 'ệ'},
		{'ọ', ModHorn, 'ợ'},
		{'e', ModBreve, 'e'},
	}
	for _, tt := range tests {
		if got := WithModification(tt.ch, tt.mod); got != tt.want {
			t.Errorf("WithModification(%c, %v) = %c, want %c", tt.ch, tt.mod, got, tt.want)
		}
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		ch   rune
		want rune
	}{
		{'ệ', 'e'},
		{'ự', 'u'},
		{'đ', 'd'},
		{'Ớ', 'O'},
		{'a', 'a'},
		{'x', 'x'},
	}
	for _, tt := range tests {
		if got := Clean(tt.ch); got != tt.want {
			t.Errorf("Clean(%c) = %c, want %c", tt.ch, got, tt.want)
		}
	}
}

func TestStripTone(t *testing.T) {
	tests := []struct {
		ch   rune
		want rune
	}{
		{'ứ', 'ư'},
		{'ộ', 'ô'},
		{'à', 'a'},
		{'ư', 'ư'},
		{'Ậ', 'Â'},
		{'k', 'k'},
	}
	for _, tt := range tests {
		if got := StripTone(tt.ch); got != tt.want {
			t.Errorf("StripTone(%c) = %c, want %c", tt.ch, got, tt.want)
		}
	}
}

func TestStripModification(t *testing.T) {
	tests := []struct {
		ch   rune
		want rune
	}{
		{'ự', 'ụ'},
		{'ế', 'é'},
		{'ơ', 'o'},
		{'đ', 'd'},
	}
	for _, tt := range tests {
		if got := StripModification(tt.ch); got != tt.want {
			t.Errorf("StripModification(%c) = %c, want %c", tt.ch, got, tt.want)
		}
	}
}

func TestToneOf(t *testing.T) {
	if tone, ok := ToneOf('ệ'); !ok || tone != ToneUnderdot {
		t.Errorf("ToneOf(ệ) = %v, %v, want ToneUnderdot", tone, ok)
	}
	if _, ok := ToneOf('ê'); ok {
		t.Error("ToneOf(ê) reported a tone on a toneless letter")
	}
}

func TestModificationOf(t *testing.T) {
	if mod, ok := ModificationOf('ậ'); !ok || mod != ModCircumflex {
		t.Errorf("ModificationOf(ậ) = %v, %v, want ModCircumflex", mod, ok)
	}
	if _, ok := ModificationOf('á'); ok {
		t.Error("ModificationOf(á) reported a modification on a plain letter")
	}
}

func TestIsVowel(t *testing.T) {
	for _, ch := range "aeiouyâăệỮ" {
		if !IsVowel(ch) {
			t.Errorf("IsVowel(%c) = false, want true", ch)
		}
	}
	for _, ch := range "bcdđxw1 " {
		if IsVowel(ch) {
			t.Errorf("IsVowel(%c) = true, want false", ch)
		}
	}
}
