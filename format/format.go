package format

import (
	"errors"
	"fmt"
)

// Format selects how results are written.
type Format int

const (
	TextFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

var names = map[string]Format{
	"t":    TextFormat,
	"text": TextFormat,
	"y":    YAMLFormat,
	"yaml": YAMLFormat,
	"j":    JSONFormat,
	"json": JSONFormat,
}

func ParseFormat(v string) (Format, error) {
	if f, ok := names[v]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsStructured reports whether f encodes values rather than the textual
// listing forms.
func (f Format) IsStructured() bool { return f == YAMLFormat || f == JSONFormat }
