// Package engine turns whole inputs into Vietnamese text: the one-shot
// Transform over arbitrary strings and the incremental Session for
// keystroke streams. Word splitting, separator handling and input
// normalization live here; the per-word mechanics live in method.
package engine

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/vhngoc/govi/internal/method"
	"github.com/vhngoc/govi/internal/vietnamese"
)

// InputMethod names a built-in typing method.
type InputMethod string

const (
	MethodTelex InputMethod = "telex"
	MethodVNI   InputMethod = "vni"
)

// Definition returns the key table for a built-in method.
func (m InputMethod) Definition() method.Definition {
	if m == MethodVNI {
		return method.VNI
	}
	return method.Telex
}

// ParseMethod resolves a method name from config or a flag.
func ParseMethod(name string) (InputMethod, error) {
	switch strings.ToLower(name) {
	case "telex", "":
		return MethodTelex, nil
	case "vni":
		return MethodVNI, nil
	}
	return "", fmt.Errorf("unknown input method %q (want telex or vni)", name)
}

// ParseStyle resolves an accent style name from config or a flag.
func ParseStyle(name string) (vietnamese.AccentStyle, error) {
	switch strings.ToLower(name) {
	case "new", "":
		return vietnamese.StyleNew, nil
	case "old":
		return vietnamese.StyleOld, nil
	}
	return vietnamese.StyleNew, fmt.Errorf("unknown accent style %q (want new or old)", name)
}

// Transform converts a whole input string at once. Runs of word
// characters are transformed independently; everything between them
// passes through verbatim. A letter that is also a trigger key stays
// part of the word, which is what lets "viet65" end in two digits.
func Transform(input string, def method.Definition, style vietnamese.AccentStyle) (string, error) {
	if !utf8.ValidString(input) {
		return "", fmt.Errorf("input is not valid UTF-8")
	}
	input = norm.NFC.String(input)

	var out strings.Builder
	word := make([]rune, 0, 16)

	flush := func() {
		if len(word) == 0 {
			return
		}
		out.WriteString(renderWord(word, def, style))
		word = word[:0]
	}

	for _, ch := range input {
		if isWordRune(ch, def) {
			word = append(word, ch)
			continue
		}
		flush()
		out.WriteRune(ch)
	}
	flush()

	return out.String(), nil
}

// isWordRune reports whether ch belongs to the current word: any letter,
// a combining mark (decomposed input must stay attached to its base
// letter), or any trigger key of the method (VNI digits, for instance).
func isWordRune(ch rune, def method.Definition) bool {
	if unicode.IsLetter(ch) || unicode.IsMark(ch) {
		return true
	}
	_, ok := def[unicode.ToLower(ch)]
	return ok
}

// renderWord runs one word through a fresh buffer. The word is composed
// to NFC first so a session fed decomposed runes one at a time renders
// the same as the one-shot transform.
func renderWord(word []rune, def method.Definition, style vietnamese.AccentStyle) string {
	buf := method.NewBufferWithStyle(def, style)
	for _, ch := range norm.NFC.String(string(word)) {
		buf.Push(ch)
	}
	return buf.View()
}
