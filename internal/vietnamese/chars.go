// Package vietnamese models Vietnamese orthography: the character tables
// for tone marks and letter modifications, the syllable parser and
// validator, and the accent placement rules shared by every typing method.
package vietnamese

import "unicode"

// ToneMark is one of the five explicit Vietnamese tone marks. The level
// tone (thanh ngang) carries no mark and is represented by ToneNone.
type ToneMark int

const (
	ToneNone      ToneMark = iota // thanh ngang
	ToneAcute                     // dấu sắc
	ToneGrave                     // dấu huyền
	ToneHookAbove                 // dấu hỏi
	ToneTilde                     // dấu ngã
	ToneUnderdot                  // dấu nặng
)

// Modification alters the shape of a base letter rather than its tone.
type Modification int

const (
	ModCircumflex Modification = iota // â ê ô
	ModBreve                          // ă
	ModHorn                           // ơ ư
	ModStroke                         // đ
)

// AccentStyle selects between the two historical placement conventions
// for the tone mark: "hoà" (StyleNew) versus "hòa" (StyleOld).
type AccentStyle int

const (
	StyleNew AccentStyle = iota
	StyleOld
)

// vowelOrder lists every vowel letter in family groups of six: the bare
// letter followed by its grave, hook above, tilde, acute and underdot
// forms. The grouping is what lets StripTone reset a rune to the head of
// its group of six.
var vowelOrder = []rune(
	"aàảãáạ" + "ăằẳẵắặ" + "âầẩẫấậ" +
		"eèẻẽéẹ" + "êềểễếệ" +
		"iìỉĩíị" +
		"oòỏõóọ" + "ôồổỗốộ" + "ơờởỡớợ" +
		"uùủũúụ" + "ưừửữứự" +
		"yỳỷỹýỵ")

var vowelIndex = func() map[rune]int {
	m := make(map[rune]int, len(vowelOrder))
	for i, r := range vowelOrder {
		m[r] = i
	}
	return m
}()

// cleanFamilies maps every marked form back to its bare letter; the
// first rune of each string is the head of the family.
var cleanFamilies = []string{
	"aàảãáạăằẳẵắặâầẩẫấậ",
	"dđ",
	"eèẻẽéẹêềểễếệ",
	"iìỉĩíị",
	"oòỏõóọôồổỗốộơờởỡớợ",
	"uùủũúụưừửữứự",
	"yỳỷỹýỵ",
}

var acuteTable = map[rune]rune{
	'a': 'á', 'â': 'ấ', 'ă': 'ắ',
	'e': 'é', 'ê': 'ế',
	'i': 'í',
	'o': 'ó', 'ô': 'ố', 'ơ': 'ớ',
	'u': 'ú', 'ư': 'ứ',
	'y': 'ý',
}

var graveTable = map[rune]rune{
	'a': 'à', 'â': 'ầ', 'ă': 'ằ',
	'e': 'è', 'ê': 'ề',
	'i': 'ì',
	'o': 'ò', 'ô': 'ồ', 'ơ': 'ờ',
	'u': 'ù', 'ư': 'ừ',
	'y': 'ỳ',
}

var hookAboveTable = map[rune]rune{
	'a': 'ả', 'â': 'ẩ', 'ă': 'ẳ',
	'e': 'ẻ', 'ê': 'ể',
	'i': 'ỉ',
	'o': 'ỏ', 'ô': 'ổ', 'ơ': 'ở',
	'u': 'ủ', 'ư': 'ử',
	'y': 'ỷ',
}

var tildeTable = map[rune]rune{
	'a': 'ã', 'â': 'ẫ', 'ă': 'ẵ',
	'e': 'ẽ', 'ê': 'ễ',
	'i': 'ĩ',
	'o': 'õ', 'ô': 'ỗ', 'ơ': 'ỡ',
	'u': 'ũ', 'ư': 'ữ',
	'y': 'ỹ',
}

var underdotTable = map[rune]rune{
	'a': 'ạ', 'â': 'ậ', 'ă': 'ặ',
	'e': 'ẹ', 'ê': 'ệ',
	'i': 'ị',
	'o': 'ọ', 'ô': 'ộ', 'ơ': 'ợ',
	'u': 'ụ', 'ư': 'ự',
	'y': 'ỵ',
}

// circumflexTable also covers letters that already carry a tone mark so
// that e.g. "ẹ" turns into "ệ" directly.
var circumflexTable = map[rune]rune{
	'a': 'â', 'á': 'ấ', 'à': 'ầ', 'ả': 'ẩ', 'ã': 'ẫ', 'ạ': 'ậ',
	'e': 'ê', 'é': 'ế', 'è': 'ề', 'ẻ': 'ể', 'ẽ': 'ễ', 'ẹ': 'ệ',
	'o': 'ô', 'ó': 'ố', 'ò': 'ồ', 'ỏ': 'ổ', 'õ': 'ỗ', 'ọ': 'ộ',
}

var breveTable = map[rune]rune{
	'a': 'ă', 'á': 'ắ', 'à': 'ằ', 'ả': 'ẳ', 'ã': 'ẵ', 'ạ': 'ặ',
}

var hornTable = map[rune]rune{
	'u': 'ư', 'ú': 'ứ', 'ù': 'ừ', 'ủ': 'ử', 'ũ': 'ữ', 'ụ': 'ự',
	'o': 'ơ', 'ó': 'ớ', 'ò': 'ờ', 'ỏ': 'ở', 'õ': 'ỡ', 'ọ': 'ợ',
}

var strokeTable = map[rune]rune{
	'd': 'đ',
}

var toneTables = map[ToneMark]map[rune]rune{
	ToneAcute:     acuteTable,
	ToneGrave:     graveTable,
	ToneHookAbove: hookAboveTable,
	ToneTilde:     tildeTable,
	ToneUnderdot:  underdotTable,
}

var modTables = map[Modification]map[rune]rune{
	ModCircumflex: circumflexTable,
	ModBreve:      breveTable,
	ModHorn:       hornTable,
	ModStroke:     strokeTable,
}

// Reverse lookups, built once from the forward tables.
var (
	toneOfRune = func() map[rune]ToneMark {
		m := make(map[rune]ToneMark)
		for tone, table := range toneTables {
			for _, marked := range table {
				m[marked] = tone
			}
		}
		return m
	}()

	modOfRune = func() map[rune]Modification {
		m := make(map[rune]Modification)
		for mod, table := range modTables {
			for _, marked := range table {
				m[marked] = mod
			}
		}
		return m
	}()
)

// mapRune looks up a rune in a lowercase table, preserving case.
func mapRune(table map[rune]rune, ch rune) (rune, bool) {
	if marked, ok := table[ch]; ok {
		return marked, true
	}
	if marked, ok := table[unicode.ToLower(ch)]; ok {
		return unicode.ToUpper(marked), true
	}
	return ch, false
}

// WithTone returns ch carrying the given tone mark, or ch unchanged when
// the mark does not apply.
func WithTone(ch rune, tone ToneMark) rune {
	if tone == ToneNone {
		return StripTone(ch)
	}
	marked, _ := mapRune(toneTables[tone], ch)
	return marked
}

// WithModification returns ch carrying the given letter modification, or
// ch unchanged when the modification does not apply.
func WithModification(ch rune, mod Modification) rune {
	marked, _ := mapRune(modTables[mod], ch)
	return marked
}

// Clean strips both the tone mark and any letter modification from ch.
func Clean(ch rune) rune {
	lower := unicode.ToLower(ch)
	for _, family := range cleanFamilies {
		for _, member := range family {
			if member == lower {
				head := []rune(family)[0]
				if unicode.IsUpper(ch) {
					return unicode.ToUpper(head)
				}
				return head
			}
		}
	}
	return ch
}

// StripTone removes the tone mark from ch but keeps its modification, so
// "ứ" becomes "ư" while "ư" is left alone.
func StripTone(ch rune) rune {
	lower := unicode.ToLower(ch)
	idx, ok := vowelIndex[lower]
	if !ok {
		return ch
	}
	bare := vowelOrder[idx-idx%6]
	if unicode.IsUpper(ch) {
		return unicode.ToUpper(bare)
	}
	return bare
}

// StripModification removes the letter modification from ch but keeps
// its tone mark, so "ự" becomes "ụ".
func StripModification(ch rune) rune {
	bare := Clean(ch)
	if tone, ok := ToneOf(ch); ok {
		return WithTone(bare, tone)
	}
	return bare
}

// ToneOf reports the tone mark carried by ch, if any.
func ToneOf(ch rune) (ToneMark, bool) {
	if tone, ok := toneOfRune[unicode.ToLower(ch)]; ok {
		return tone, true
	}
	return ToneNone, false
}

// ModificationOf reports the letter modification carried by ch, if any.
func ModificationOf(ch rune) (Modification, bool) {
	mod, ok := modOfRune[unicode.ToLower(ch)]
	return mod, ok
}

// IsVowel reports whether ch is a Vietnamese vowel letter, marked or not.
func IsVowel(ch rune) bool {
	_, ok := vowelIndex[unicode.ToLower(ch)]
	return ok
}
