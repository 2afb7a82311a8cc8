package vietnamese

import "testing"

func TestIsValidSyllable(t *testing.T) {
	valid := []string{
		"viet", "việt", "nam", "chào", "nghe", "nghiêng",
		"thương", "được", "gia", "quai", "ơ", "ư", "a",
		// No vowel at all is an opaque literal.
		"", "bbb", "123",
	}
	for _, input := range valid {
		if !IsValidSyllable(input) {
			t.Errorf("IsValidSyllable(%q) = false, want true", input)
		}
	}

	invalid := []string{
		"npa",   // bad initial cluster
		"xyz",   // y nucleus with z final
		"viet5", // trailing digit after the final
		"aook",  // bad nucleus shape
		"hoaix", // bad final
	}
	for _, input := range invalid {
		if IsValidSyllable(input) {
			t.Errorf("IsValidSyllable(%q) = true, want false", input)
		}
	}
}
