package engine

import (
	"testing"

	"github.com/vhngoc/govi/internal/method"
	"github.com/vhngoc/govi/internal/vietnamese"
)

func TestTransformTelex(t *testing.T) {
	tests := map[string]string{
		"xin chaof":               "xin chào",
		"vieetj nam":              "việt nam",
		"chuwongw trinhf":         "chương trình",
		"toi la nguoi":            "toi la nguoi",
		"hello, ban oi!":          "hello, ban oi!",
		"":                        "",
		"  leading and trailing ": "  leading and trailing ",
	}
	for input, want := range tests {
		got, err := Transform(input, method.Telex, vietnamese.StyleNew)
		if err != nil {
			t.Fatalf("Transform(%q): %v", input, err)
		}
		if got != want {
			t.Errorf("Transform(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTransformVNI(t *testing.T) {
	tests := map[string]string{
		"viet65 nam": "việt nam",
		"chu7o7ng1":  "chướng",
		"xin chao2!": "xin chào!",
		"25 nam":     "25 nam",
	}
	for input, want := range tests {
		got, err := Transform(input, method.VNI, vietnamese.StyleNew)
		if err != nil {
			t.Fatalf("Transform(%q): %v", input, err)
		}
		if got != want {
			t.Errorf("Transform(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTransformOldStyle(t *testing.T) {
	got, err := Transform("hoa binhf hoas", method.Telex, vietnamese.StyleOld)
	if err != nil {
		t.Fatal(err)
	}
	if want := "hoa bình hóa"; got != want {
		t.Errorf("old style = %q, want %q", got, want)
	}

	got, err = Transform("viet65 nam", method.VNI, vietnamese.StyleOld)
	if err != nil {
		t.Fatal(err)
	}
	if want := "việt nam"; got != want {
		t.Errorf("old style vni = %q, want %q", got, want)
	}
}

func TestTransformDigitsAreSeparatorsInTelex(t *testing.T) {
	// Digits are not Telex trigger keys, so they split words and pass
	// through untouched.
	got, err := Transform("viet65", method.Telex, vietnamese.StyleNew)
	if err != nil {
		t.Fatal(err)
	}
	if got != "viet65" {
		t.Errorf("Transform(viet65, telex) = %q, want %q", got, "viet65")
	}
}

func TestTransformInvalidUTF8(t *testing.T) {
	if _, err := Transform(string([]byte{0xff, 0xfe}), method.Telex, vietnamese.StyleNew); err == nil {
		t.Error("expected an error for invalid UTF-8 input")
	}
}

func TestTransformDeterministic(t *testing.T) {
	input := "chuwongw trinhf vieetj nam 123"
	first, err := Transform(input, method.Telex, vietnamese.StyleNew)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := Transform(input, method.Telex, vietnamese.StyleNew)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("run %d: %q != %q", i, again, first)
		}
	}
}

func TestParseMethod(t *testing.T) {
	if m, err := ParseMethod("vni"); err != nil || m != MethodVNI {
		t.Errorf("ParseMethod(vni) = %v, %v", m, err)
	}
	if m, err := ParseMethod(""); err != nil || m != MethodTelex {
		t.Errorf("ParseMethod(\"\") = %v, %v", m, err)
	}
	if _, err := ParseMethod("qwerty"); err == nil {
		t.Error("ParseMethod(qwerty): expected error")
	}
}

func TestParseStyle(t *testing.T) {
	if s, err := ParseStyle("old"); err != nil || s != vietnamese.StyleOld {
		t.Errorf("ParseStyle(old) = %v, %v", s, err)
	}
	if s, err := ParseStyle(""); err != nil || s != vietnamese.StyleNew {
		t.Errorf("ParseStyle(\"\") = %v, %v", s, err)
	}
	if _, err := ParseStyle("diagonal"); err == nil {
		t.Error("ParseStyle(diagonal): expected error")
	}
}
