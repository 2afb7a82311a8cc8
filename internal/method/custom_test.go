package method

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vhngoc/govi/internal/vietnamese"
)

const customMethod = `
name: my-vni
keys:
  "1": [acute]
  "2": [grave]
  "3": [hook]
  "4": [tilde]
  "5": [underdot]
  "6": [circumflex]
  "7": [horn]
  "8": [breve]
  "9": [stroke]
  "0": [remove-tone]
  "z": [undo-u-horn, insert-u-horn]
`

func writeMethodFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "method.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefinition(t *testing.T) {
	name, def, err := LoadDefinition(writeMethodFile(t, customMethod))
	if err != nil {
		t.Fatal(err)
	}
	if name != "my-vni" {
		t.Errorf("name = %q, want %q", name, "my-vni")
	}
	if len(def) != 11 {
		t.Errorf("len(def) = %d, want 11", len(def))
	}

	tests := map[string]string{
		"viet65": "việt",
		"chza":   "chưa",
		"an8":    "ăn",
	}
	for input, want := range tests {
		if got := render(def, vietnamese.StyleNew, input); got != want {
			t.Errorf("my-vni %q = %q, want %q", input, got, want)
		}
	}
}

func TestLoadDefinitionFamilies(t *testing.T) {
	_, def, err := LoadDefinition(writeMethodFile(t, `
name: mini-telex
keys:
  "a": [circumflex:a]
  "s": [acute]
`))
	if err != nil {
		t.Fatal(err)
	}

	if got := render(def, vietnamese.StyleNew, "caas"); got != "cấ" {
		t.Errorf("caas = %q, want %q", got, "cấ")
	}
	// The family restriction keeps the circumflex off other letters.
	if got := render(def, vietnamese.StyleNew, "cea"); got != "cea" {
		t.Errorf("cea = %q, want %q", got, "cea")
	}
}

func TestLoadDefinitionErrors(t *testing.T) {
	cases := map[string]string{
		"no name":        "keys:\n  \"1\": [acute]\n",
		"unknown action": "name: bad\nkeys:\n  \"1\": [sparkle]\n",
		"long key":       "name: bad\nkeys:\n  \"ab\": [acute]\n",
		"empty actions":  "name: bad\nkeys:\n  \"1\": []\n",
	}
	for label, content := range cases {
		if _, _, err := LoadDefinition(writeMethodFile(t, content)); err == nil {
			t.Errorf("%s: expected error", label)
		}
	}

	if _, _, err := LoadDefinition(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file: expected error")
	}
}
