package vietnamese

import "strings"

// Mark is a letter modification pinned to a rune index in the syllable.
type Mark struct {
	Index int
	Kind  Modification
}

// Syllable is the mutable state of one word while it is being typed.
// Initial and Vowel are kept clean (marks and tone tracked separately)
// so transformations never have to re-derive them from rendered text;
// String renders the final form on demand.
type Syllable struct {
	Initial string
	Vowel   string
	Final   string
	Tone    ToneMark
	Style   AccentStyle
	Marks   []Mark
}

// Len is the syllable length in runes.
func (s *Syllable) Len() int {
	return len([]rune(s.Initial)) + len([]rune(s.Vowel)) + len([]rune(s.Final))
}

// IsEmpty reports whether the syllable has no letters at all.
func (s *Syllable) IsEmpty() bool {
	return s.Initial == "" && s.Vowel == "" && s.Final == ""
}

// Push appends a literal character and re-splits the syllable, since a
// new letter can move the consonant/vowel boundaries. Marks are
// re-anchored afterwards.
func (s *Syllable) Push(ch rune) {
	parts := Split(s.Initial + s.Vowel + s.Final + string(ch))
	s.Initial = cleanString(parts.Initial)
	s.Vowel = cleanString(parts.Vowel)
	s.Final = parts.Final
	s.recalculateMarks()
}

// Set replaces the whole syllable with a rendered string, re-extracting
// its tone and marks. Used for the fallback path when a transformation
// produced something unpronounceable.
func (s *Syllable) Set(raw string) {
	parts := Split(raw)
	s.Initial = cleanString(parts.Initial)
	s.Vowel = cleanString(parts.Vowel)
	s.Final = parts.Final
	s.Marks = ExtractMarks(raw)
	s.Tone = ExtractTone(raw)
}

// ReplaceLast swaps the final rendered character for ch and reparses.
func (s *Syllable) ReplaceLast(ch rune) {
	runes := []rune(s.String())
	if len(runes) == 0 {
		return
	}
	runes[len(runes)-1] = ch
	s.Set(string(runes))
}

// Reset returns the syllable to its empty state, keeping the style.
func (s *Syllable) Reset() {
	s.Initial, s.Vowel, s.Final = "", "", ""
	s.Tone = ToneNone
	s.Marks = nil
}

// HasMark reports whether any letter carries the given modification.
func (s *Syllable) HasMark(mod Modification) bool {
	for _, m := range s.Marks {
		if m.Kind == mod {
			return true
		}
	}
	return false
}

func (s *Syllable) hasMarkAt(index int, mod Modification) bool {
	for _, m := range s.Marks {
		if m.Index == index && m.Kind == mod {
			return true
		}
	}
	return false
}

// covers reports whether every target index already carries mod.
func (s *Syllable) covers(mod Modification, targets []int) bool {
	for _, idx := range targets {
		if !s.hasMarkAt(idx, mod) {
			return false
		}
	}
	return true
}

func (s *Syllable) removeMarks(mod Modification) {
	kept := s.Marks[:0]
	for _, m := range s.Marks {
		if m.Kind != mod {
			kept = append(kept, m)
		}
	}
	s.Marks = kept
}

// clearOthersAt drops marks of a different kind at index, reporting
// whether anything was displaced.
func (s *Syllable) clearOthersAt(index int, mod Modification) bool {
	displaced := false
	kept := s.Marks[:0]
	for _, m := range s.Marks {
		if m.Index == index && m.Kind != mod {
			displaced = true
			continue
		}
		kept = append(kept, m)
	}
	s.Marks = kept
	return displaced
}

func (s *Syllable) firstRune() (rune, bool) {
	for _, ch := range s.Initial + s.Vowel + s.Final {
		return ch, true
	}
	return 0, false
}

// recalculateMarks re-derives mark positions after the syllable shape
// changed. Two cases are deliberately left alone: a bare nucleus (the
// horn in "ưo" must wait for a consonant, except for "uoi") and "uo"
// after an initial consonant with no final yet (thuở vs. thương is only
// decided by the final).
func (s *Syllable) recalculateMarks() {
	if s.Initial == "" && s.Final == "" && !strings.EqualFold(s.Vowel, "uoi") {
		return
	}
	if strings.EqualFold(s.Vowel, "uo") && s.Initial != "" && s.Final == "" {
		return
	}

	var kinds []Modification
	for _, m := range s.Marks {
		seen := false
		for _, k := range kinds {
			if k == m.Kind {
				seen = true
				break
			}
		}
		if !seen {
			kinds = append(kinds, m.Kind)
		}
	}

	s.Marks = nil
	for _, kind := range kinds {
		ModifyLetter(s, kind)
	}
}

// String renders the syllable: clean letters, then marks, then the tone
// mark at its placement position.
func (s *Syllable) String() string {
	runes := []rune(s.Initial + s.Vowel + s.Final)
	for _, m := range s.Marks {
		if m.Index >= 0 && m.Index < len(runes) {
			runes[m.Index] = WithModification(runes[m.Index], m.Kind)
		}
	}
	if s.Tone != ToneNone {
		if pos := TonePosition(string(runes), s.Style); pos >= 0 && pos < len(runes) {
			runes[pos] = WithTone(runes[pos], s.Tone)
		}
	}
	return string(runes)
}

func cleanString(in string) string {
	var b strings.Builder
	for _, ch := range in {
		b.WriteRune(Clean(ch))
	}
	return b.String()
}
