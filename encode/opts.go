package encode

import "github.com/signadot/go-datalog/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	return newEncState(opts).format
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeIndent sets the prefix of indented lines in text output.
func EncodeIndent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}
