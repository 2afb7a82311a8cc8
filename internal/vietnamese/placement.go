package vietnamese

import (
	"strings"
	"unicode"
)

// Vowel pairs whose second letter takes the tone mark under the modern
// placement convention.
var specialPairs = []string{"oa", "oe", "oo", "uy", "uo", "ie"}

// TonePosition returns the rune index of the letter that carries the
// tone mark in a rendered syllable, or -1 when the syllable has no
// vowel.
//
// Placement rules, in order:
//  1. a single-vowel nucleus takes the mark itself;
//  2. a nucleus containing ơ, or failing that ê, or failing that â,
//     takes the mark on that letter;
//  3. StyleOld: a three-vowel nucleus, or a two-vowel nucleus followed
//     by a final consonant, marks the second vowel; anything else marks
//     the first;
//  4. StyleNew: nuclei containing one of the special pairs mark the
//     second letter; a two-vowel nucleus with no final marks the first;
//     otherwise the second.
func TonePosition(raw string, style AccentStyle) int {
	parts := Split(raw)
	vowel := []rune(parts.Vowel)
	base := len([]rune(parts.Initial))

	if len(vowel) == 0 {
		return -1
	}
	if len(vowel) == 1 {
		return base
	}

	for _, head := range []rune{'ơ', 'ê', 'â'} {
		for i, ch := range vowel {
			if unicode.ToLower(ch) == head {
				return base + i
			}
		}
	}

	if style == StyleOld {
		if len(vowel) == 3 || (len(vowel) == 2 && parts.Final != "") {
			return base + 1
		}
		return base
	}

	lower := strings.ToLower(parts.Vowel)
	for _, pair := range specialPairs {
		if strings.Contains(lower, pair) {
			return base + 1
		}
	}

	if parts.Final == "" && len(vowel) == 2 {
		return base
	}
	return base + 1
}

// modificationTargets returns the rune indexes a modification attaches
// to for the current syllable, or nil when it does not apply.
//
// Rules:
//  1. the stroke always targets a leading d;
//  2. the circumflex targets a, o or e, but only when exactly one of
//     them is present in the nucleus;
//  3. the breve targets a;
//  4. the horn never applies to "oa"; on "uo" with only an initial
//     consonant it targets the o alone (thuở), on "uo"/"uoi"/"uou" it
//     targets the u and the o, and otherwise the u, or failing that
//     the o.
func modificationTargets(s *Syllable, mod Modification) []int {
	vowel := strings.ToLower(s.Vowel)
	base := len([]rune(s.Initial))

	switch mod {
	case ModStroke:
		first, ok := s.firstRune()
		if !ok || unicode.ToLower(Clean(first)) != 'd' {
			return nil
		}
		return []int{0}

	case ModCircumflex:
		var targets []int
		for i, ch := range []rune(vowel) {
			if ch == 'a' || ch == 'o' || ch == 'e' {
				targets = append(targets, base+i)
			}
		}
		if len(targets) != 1 {
			return nil
		}
		return targets

	case ModBreve:
		if i := strings.IndexRune(vowel, 'a'); i >= 0 {
			return []int{base + i}
		}
		return nil

	case ModHorn:
		if vowel == "oa" {
			return nil
		}
		if vowel == "uo" && s.Initial != "" && s.Final == "" {
			return []int{base + 1}
		}
		if vowel == "uo" || vowel == "uoi" || vowel == "uou" {
			return []int{base, base + 1}
		}
		if i := strings.IndexRune(vowel, 'u'); i >= 0 {
			return []int{base + i}
		}
		if i := strings.IndexRune(vowel, 'o'); i >= 0 {
			return []int{base + i}
		}
	}
	return nil
}
