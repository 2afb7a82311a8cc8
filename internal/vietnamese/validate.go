package vietnamese

import (
	"strings"
	"unicode"
)

// Vietnamese consonant inventory.
// See: https://en.wikibooks.org/wiki/Vietnamese/Consonants
var singleInitials = map[rune]bool{
	'b': true, 'c': true, 'd': true, 'đ': true, 'g': true, 'h': true,
	'k': true, 'l': true, 'm': true, 'n': true, 'p': true, 'q': true,
	'r': true, 's': true, 't': true, 'v': true, 'x': true,
}

var digraphInitials = map[string]bool{
	"ch": true, "gh": true, "gi": true, "kh": true, "nh": true,
	"ng": true, "ph": true, "th": true, "tr": true, "qu": true,
}

var finalClusters = map[string]bool{
	"c": true, "ch": true, "m": true, "n": true,
	"nh": true, "ng": true, "p": true, "t": true,
}

// nucleusShapes is the set of vowel runs (with marks stripped) that can
// form a syllable nucleus.
var nucleusShapes = map[string]bool{
	"a": true, "e": true, "i": true, "o": true, "u": true, "y": true,
	"ai": true, "ao": true, "au": true, "ay": true, "eo": true,
	"ia": true, "ie": true, "io": true, "iu": true, "oa": true,
	"oe": true, "oi": true, "oo": true, "ua": true, "ui": true,
	"uo": true, "uu": true, "uy": true, "ye": true,
	"ieu": true, "oai": true, "oao": true, "oay": true, "oeo": true,
	"uoi": true, "uou": true, "uya": true, "uye": true, "uyu": true,
	"yeu": true,
}

// IsValidSyllable reports whether input can stand as a Vietnamese
// syllable. A run with no vowel at all is accepted: it is an opaque
// literal that no placement will ever touch.
func IsValidSyllable(input string) bool {
	parts := Split(input)
	if parts.Vowel == "" {
		return true
	}

	if !validInitial(parts.Initial) || !validFinal(parts.Final) {
		return false
	}

	var cleaned strings.Builder
	for _, ch := range parts.Vowel {
		cleaned.WriteRune(unicode.ToLower(Clean(ch)))
	}
	return nucleusShapes[cleaned.String()]
}

func validInitial(initial string) bool {
	if initial == "" {
		return true
	}
	lower := []rune(strings.ToLower(initial))
	switch len(lower) {
	case 1:
		return singleInitials[lower[0]]
	case 2:
		return digraphInitials[string(lower)]
	case 3:
		return string(lower) == "ngh"
	}
	return false
}

func validFinal(final string) bool {
	if final == "" {
		return true
	}
	return finalClusters[strings.ToLower(final)]
}
