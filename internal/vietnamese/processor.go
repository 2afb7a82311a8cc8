package vietnamese

import "strings"

// maxSyllableLen caps how many letters a syllable may hold before tone
// keys stop applying; no Vietnamese syllable is longer than seven runes.
const maxSyllableLen = 7

// Change describes what a transformation did to a syllable. Callers use
// it to decide whether the trigger key was consumed or should fall
// through as a literal character.
type Change int

const (
	Unchanged Change = iota
	ToneAdded
	ToneRemoved
	ModificationAdded
	ModificationRemoved
	ModificationReplaced
)

// AddTone places a tone mark on the syllable. Re-applying the tone the
// syllable already carries removes it instead, which is how a doubled
// trigger key types its literal character.
func AddTone(s *Syllable, tone ToneMark) Change {
	if s.Len() > maxSyllableLen || s.Vowel == "" {
		return Unchanged
	}
	if s.Tone == tone {
		s.Tone = ToneNone
		return ToneRemoved
	}
	s.Tone = tone
	return ToneAdded
}

// RemoveTone clears the tone mark, if any.
func RemoveTone(s *Syllable) Change {
	if s.Tone == ToneNone {
		return Unchanged
	}
	s.Tone = ToneNone
	return ToneRemoved
}

// ModifyLetter applies a letter modification to the syllable. When every
// target letter already carries the modification the marks are removed
// instead, with one exception: a horn over a complete ươ pair stays put,
// since the pair was usually produced by an earlier key and undoing it
// would tear both letters down at once.
func ModifyLetter(s *Syllable, mod Modification) Change {
	targets := modificationTargets(s, mod)
	if len(targets) == 0 {
		return Unchanged
	}

	if s.covers(mod, targets) {
		if mod == ModHorn && len(targets) > 1 && isHornPair(s.Vowel) {
			return ModificationAdded
		}
		s.removeMarks(mod)
		return ModificationRemoved
	}

	displaced := false
	for _, idx := range targets {
		if s.clearOthersAt(idx, mod) {
			displaced = true
		}
		if !s.hasMarkAt(idx, mod) {
			s.Marks = append(s.Marks, Mark{Index: idx, Kind: mod})
		}
	}
	if displaced {
		return ModificationReplaced
	}
	return ModificationAdded
}

func isHornPair(vowel string) bool {
	switch strings.ToLower(vowel) {
	case "uo", "uoi", "uou":
		return true
	}
	return false
}
