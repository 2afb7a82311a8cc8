package vietnamese

import "strings"

// Parts is the three-way split of a letter run: an optional initial
// consonant cluster, the vowel nucleus and whatever trails it. The split
// is purely positional; Validate decides whether the result is a real
// Vietnamese syllable.
type Parts struct {
	Initial string
	Vowel   string
	Final   string
}

// Split divides input into initial consonant, vowel nucleus and final
// cluster. "gi" and "qu" are consumed as initials ("gi" keeps only the
// "g" when no further vowel follows, so "gi" itself parses as g + i),
// otherwise the initial is everything up to the first vowel letter.
func Split(input string) Parts {
	runes := []rune(input)
	lower := []rune(strings.ToLower(input))

	initialLen := 0
	switch {
	case hasPrefix(lower, "gi"):
		if len(lower) > 2 && IsVowel(lower[2]) {
			initialLen = 2
		} else {
			initialLen = 1
		}
	case hasPrefix(lower, "qu"):
		initialLen = 2
	default:
		for initialLen < len(runes) && !IsVowel(runes[initialLen]) {
			initialLen++
		}
	}

	vowelEnd := initialLen
	for vowelEnd < len(runes) && IsVowel(runes[vowelEnd]) {
		vowelEnd++
	}

	return Parts{
		Initial: string(runes[:initialLen]),
		Vowel:   string(runes[initialLen:vowelEnd]),
		Final:   string(runes[vowelEnd:]),
	}
}

func hasPrefix(runes []rune, prefix string) bool {
	p := []rune(prefix)
	if len(runes) < len(p) {
		return false
	}
	for i, r := range p {
		if runes[i] != r {
			return false
		}
	}
	return true
}

// ExtractTone returns the single tone mark present in a rendered
// syllable, or ToneNone.
func ExtractTone(s string) ToneMark {
	for _, ch := range s {
		if tone, ok := ToneOf(ch); ok {
			return tone
		}
	}
	return ToneNone
}

// ExtractMarks lists the letter modifications present in a rendered
// syllable with their rune indexes. A syllable can carry several, e.g.
// "được" has a stroke and two horns.
func ExtractMarks(s string) []Mark {
	var marks []Mark
	for i, ch := range []rune(s) {
		if mod, ok := ModificationOf(ch); ok {
			marks = append(marks, Mark{Index: i, Kind: mod})
		}
	}
	return marks
}
