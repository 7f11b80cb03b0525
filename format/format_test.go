package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"t": TextFormat, "text": TextFormat, "yaml": YAMLFormat, "j": JSONFormat} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Errorf("%q: got %s want %s", in, got, want)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestUnmarshalText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("json")); err != nil {
		t.Fatal(err)
	}
	if f != JSONFormat || !f.IsStructured() {
		t.Errorf("got %s", f)
	}
	if TextFormat.IsStructured() {
		t.Error("text is not structured")
	}
}
