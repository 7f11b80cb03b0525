package encode

import (
	"io"
	"strings"

	"github.com/signadot/go-datalog/ir"
)

// Source writes p as Datalog source in canonical layout: each section
// keyword on its own line followed by its items, one per line and
// indented.  Parsing the output yields a program equal to p.
func Source(w io.Writer, p *ir.Program, opts ...EncodeOption) error {
	es := newEncState(opts)
	var sb strings.Builder
	section := func(kw string, items []string, end string) {
		sb.WriteString(es.color(KeywordColor, kw))
		sb.WriteString(":\n")
		for _, it := range items {
			sb.WriteString(es.indent + it + end + "\n")
		}
	}
	section("Schemes", es.predicates(p.Schemes), "")
	section("Facts", es.predicates(p.Facts), ".")
	section("Rules", es.rules(p.Rules), ".")
	section("Queries", es.predicates(p.Queries), "?")
	return writeString(w, sb.String())
}

// SourceString is Source to a string without colors.
func SourceString(p *ir.Program) string {
	var sb strings.Builder
	_ = Source(&sb, p)
	return sb.String()
}
