// Package method defines typing methods: the mapping from trigger keys
// to syllable transformations, and the incremental buffer that applies
// them one keystroke at a time.
package method

import "github.com/vhngoc/govi/internal/vietnamese"

// ActionKind names the transformations a trigger key can request.
type ActionKind int

const (
	// ActionTone places (or, when doubled, removes) a tone mark.
	ActionTone ActionKind = iota
	// ActionModify applies a letter modification wherever it fits.
	ActionModify
	// ActionModifyFamily applies a letter modification only when the
	// nucleus contains the given base letter, e.g. circumflex via "a"
	// should not touch "e".
	ActionModifyFamily
	// ActionInsertUHorn appends a ư to a syllable with no vowel yet.
	ActionInsertUHorn
	// ActionUndoInsertUHorn turns an immediately preceding inserted ư
	// back into the literal trigger key.
	ActionUndoInsertUHorn
	// ActionRemoveTone clears the tone mark.
	ActionRemoveTone

	actionNone ActionKind = -1
)

// Action is one entry in a trigger key's candidate list.
type Action struct {
	Kind   ActionKind
	Tone   vietnamese.ToneMark
	Mod    vietnamese.Modification
	Family rune
}

// Definition maps each trigger key (lowercase) to its candidate actions.
// The first action that applies wins; the rest are ignored.
type Definition map[rune][]Action

// Telex is the standard Telex method: tones on s f r x j, circumflex by
// doubling a e o, w for horn and breve, dd for đ, z to drop the tone.
var Telex = Definition{
	's': {{Kind: ActionTone, Tone: vietnamese.ToneAcute}},
	'f': {{Kind: ActionTone, Tone: vietnamese.ToneGrave}},
	'r': {{Kind: ActionTone, Tone: vietnamese.ToneHookAbove}},
	'x': {{Kind: ActionTone, Tone: vietnamese.ToneTilde}},
	'j': {{Kind: ActionTone, Tone: vietnamese.ToneUnderdot}},
	'a': {{Kind: ActionModifyFamily, Mod: vietnamese.ModCircumflex, Family: 'a'}},
	'e': {{Kind: ActionModifyFamily, Mod: vietnamese.ModCircumflex, Family: 'e'}},
	'o': {{Kind: ActionModifyFamily, Mod: vietnamese.ModCircumflex, Family: 'o'}},
	'w': {
		{Kind: ActionUndoInsertUHorn},
		{Kind: ActionModify, Mod: vietnamese.ModHorn},
		{Kind: ActionModify, Mod: vietnamese.ModBreve},
		{Kind: ActionInsertUHorn},
	},
	'd': {{Kind: ActionModify, Mod: vietnamese.ModStroke}},
	'z': {{Kind: ActionRemoveTone}},
}

// VNI is the standard VNI method: tones on 1-5, letter shapes on 6-9,
// 0 to drop the tone.
var VNI = Definition{
	'1': {{Kind: ActionTone, Tone: vietnamese.ToneAcute}},
	'2': {{Kind: ActionTone, Tone: vietnamese.ToneGrave}},
	'3': {{Kind: ActionTone, Tone: vietnamese.ToneHookAbove}},
	'4': {{Kind: ActionTone, Tone: vietnamese.ToneTilde}},
	'5': {{Kind: ActionTone, Tone: vietnamese.ToneUnderdot}},
	'6': {{Kind: ActionModify, Mod: vietnamese.ModCircumflex}},
	'7': {{Kind: ActionModify, Mod: vietnamese.ModHorn}},
	'8': {{Kind: ActionModify, Mod: vietnamese.ModBreve}},
	'9': {{Kind: ActionModify, Mod: vietnamese.ModStroke}},
	'0': {{Kind: ActionRemoveTone}},
}
