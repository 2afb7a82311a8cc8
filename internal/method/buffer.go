package method

import (
	"strings"
	"unicode"

	"github.com/vhngoc/govi/internal/vietnamese"
)

// Result reports side effects of a transformation that callers care
// about: whether a tone mark or a letter modification was taken off the
// syllable. Input methods use these to decide whether a trigger key
// should also be forwarded to the application as a literal.
type Result struct {
	ToneRemoved         bool
	ModificationRemoved bool
}

// Buffer transforms one word incrementally, keystroke by keystroke. It
// caches the syllable state so each Push is O(1) in the word length
// rather than replaying the whole input.
type Buffer struct {
	def    Definition
	syl    vietnamese.Syllable
	input  []rune
	output string
	result Result
	last   ActionKind
}

// NewBuffer returns an empty buffer using the modern accent placement.
func NewBuffer(def Definition) *Buffer {
	return NewBufferWithStyle(def, vietnamese.StyleNew)
}

// NewBufferWithStyle returns an empty buffer with an explicit accent
// placement style.
func NewBufferWithStyle(def Definition, style vietnamese.AccentStyle) *Buffer {
	return &Buffer{
		def:  def,
		syl:  vietnamese.Syllable{Style: style},
		last: actionNone,
	}
}

// Push feeds one typed character into the buffer and returns what that
// single keystroke removed, if anything.
//
// A key with no definition entry is a literal. A defined key tries its
// candidate actions in order and stops at the first one that applies;
// when none applies the key falls through as a literal too. A key whose
// transformation renders something unpronounceable is rolled back: the
// syllable resets to its previous rendering plus the literal key.
func (b *Buffer) Push(ch rune) Result {
	b.input = append(b.input, ch)

	actions, ok := b.def[unicode.ToLower(ch)]
	if !ok {
		b.syl.Push(ch)
		b.output = b.syl.String()
		return Result{}
	}

	fallback := b.syl.String() + string(ch)

	var res Result
	idx := 0
	act := actions[idx]
	var change vietnamese.Change
	for {
		change = b.apply(act, ch)
		if change == vietnamese.Unchanged && idx+1 < len(actions) {
			idx++
			act = actions[idx]
			continue
		}
		break
	}

	if change == vietnamese.ToneRemoved {
		res.ToneRemoved = true
		b.result.ToneRemoved = true
	}
	if change == vietnamese.ModificationRemoved {
		res.ModificationRemoved = true
		b.result.ModificationRemoved = true
	}

	var performed bool
	switch change {
	case vietnamese.Unchanged, vietnamese.ModificationRemoved:
		performed = false
	case vietnamese.ToneRemoved:
		// Only the dedicated remove-tone key counts as consuming the
		// keystroke; a doubled tone key does not, so it echoes.
		performed = act.Kind == ActionRemoveTone
	default:
		performed = true
	}

	// The ư undo already rewrote the syllable; nothing to echo.
	if act.Kind == ActionUndoInsertUHorn {
		b.last = act.Kind
		b.output = b.syl.String()
		return res
	}

	switch {
	case !performed:
		b.syl.Push(ch)
		b.last = actionNone
	case !vietnamese.IsValidSyllable(b.syl.String()):
		b.syl.Set(fallback)
		b.last = actionNone
	default:
		b.last = act.Kind
	}

	b.output = b.syl.String()
	return res
}

func (b *Buffer) apply(act Action, ch rune) vietnamese.Change {
	switch act.Kind {
	case ActionTone:
		return vietnamese.AddTone(&b.syl, act.Tone)

	case ActionModify:
		return vietnamese.ModifyLetter(&b.syl, act.Mod)

	case ActionModifyFamily:
		if !strings.ContainsRune(strings.ToLower(b.syl.Vowel), act.Family) {
			return vietnamese.Unchanged
		}
		return vietnamese.ModifyLetter(&b.syl, act.Mod)

	case ActionRemoveTone:
		return vietnamese.RemoveTone(&b.syl)

	case ActionInsertUHorn:
		if b.syl.Vowel != "" && b.syl.String() != "gi" {
			return vietnamese.Unchanged
		}
		u := 'u'
		if !unicode.IsLower(ch) {
			u = 'U'
		}
		b.syl.Push(u)
		b.syl.Marks = append(b.syl.Marks, vietnamese.Mark{
			Index: b.syl.Len() - 1,
			Kind:  vietnamese.ModHorn,
		})
		return vietnamese.ModificationAdded

	case ActionUndoInsertUHorn:
		if b.last != ActionInsertUHorn {
			return vietnamese.Unchanged
		}
		b.syl.ReplaceLast(ch)
		return vietnamese.ModificationRemoved
	}
	return vietnamese.Unchanged
}

// View returns the current rendering of the word.
func (b *Buffer) View() string {
	return b.output
}

// Result returns the removals accumulated over the whole input.
func (b *Buffer) Result() Result {
	return b.result
}

// Input returns the raw characters typed so far.
func (b *Buffer) Input() []rune {
	return b.input
}

// Len is the number of characters typed so far.
func (b *Buffer) Len() int {
	return len(b.input)
}

// IsEmpty reports whether nothing has been typed yet.
func (b *Buffer) IsEmpty() bool {
	return len(b.input) == 0
}

// Clear resets the buffer for a new word, keeping the method and style.
func (b *Buffer) Clear() {
	style := b.syl.Style
	b.syl = vietnamese.Syllable{Style: style}
	b.input = nil
	b.output = ""
	b.result = Result{}
	b.last = actionNone
}
