package method

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vhngoc/govi/internal/vietnamese"
)

// definitionFile is the YAML shape of a user-supplied typing method.
//
//	name: my-vni
//	keys:
//	  "1": [acute]
//	  "6": [circumflex]
//	  "a": [circumflex:a]
//	  "w": [undo-u-horn, horn, breve, insert-u-horn]
type definitionFile struct {
	Name string              `yaml:"name"`
	Keys map[string][]string `yaml:"keys"`
}

var toneNames = map[string]vietnamese.ToneMark{
	"acute":    vietnamese.ToneAcute,
	"grave":    vietnamese.ToneGrave,
	"hook":     vietnamese.ToneHookAbove,
	"tilde":    vietnamese.ToneTilde,
	"underdot": vietnamese.ToneUnderdot,
}

var modNames = map[string]vietnamese.Modification{
	"circumflex": vietnamese.ModCircumflex,
	"breve":      vietnamese.ModBreve,
	"horn":       vietnamese.ModHorn,
	"stroke":     vietnamese.ModStroke,
}

// LoadDefinition reads a custom typing method from a YAML file and
// returns its name and key table.
func LoadDefinition(path string) (string, Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading method file: %w", err)
	}

	var file definitionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return "", nil, fmt.Errorf("parsing method file %s: %w", path, err)
	}
	if file.Name == "" {
		return "", nil, fmt.Errorf("method file %s has no name", path)
	}

	def := make(Definition, len(file.Keys))
	for key, specs := range file.Keys {
		runes := []rune(key)
		if len(runes) != 1 {
			return "", nil, fmt.Errorf("method %s: key %q must be a single character", file.Name, key)
		}

		var actions []Action
		for _, spec := range specs {
			action, err := parseAction(spec)
			if err != nil {
				return "", nil, fmt.Errorf("method %s, key %q: %w", file.Name, key, err)
			}
			actions = append(actions, action)
		}
		if len(actions) == 0 {
			return "", nil, fmt.Errorf("method %s: key %q has no actions", file.Name, key)
		}
		def[runes[0]] = actions
	}

	return file.Name, def, nil
}

func parseAction(spec string) (Action, error) {
	name, arg, hasArg := strings.Cut(spec, ":")

	if tone, ok := toneNames[name]; ok && !hasArg {
		return Action{Kind: ActionTone, Tone: tone}, nil
	}

	if mod, ok := modNames[name]; ok {
		if !hasArg {
			return Action{Kind: ActionModify, Mod: mod}, nil
		}
		family := []rune(arg)
		if len(family) != 1 {
			return Action{}, fmt.Errorf("family %q must be a single letter", arg)
		}
		return Action{Kind: ActionModifyFamily, Mod: mod, Family: family[0]}, nil
	}

	switch spec {
	case "remove-tone":
		return Action{Kind: ActionRemoveTone}, nil
	case "insert-u-horn":
		return Action{Kind: ActionInsertUHorn}, nil
	case "undo-u-horn":
		return Action{Kind: ActionUndoInsertUHorn}, nil
	}
	return Action{}, fmt.Errorf("unknown action %q", spec)
}
