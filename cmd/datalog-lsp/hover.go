package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/go-datalog/ir"
	"github.com/signadot/go-datalog/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.prog == nil {
		return nil, nil
	}
	i, ok := tokenAt(doc.toks, int(params.Position.Line), int(params.Position.Character))
	if !ok {
		return nil, nil
	}
	text := buildHoverText(doc.prog, doc.toks, i)
	if text == "" {
		return nil, nil
	}
	rng := tokenRange(doc.toks[i])
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
		Range: &rng,
	}, nil
}

// tokenAt finds the token covering the 0 based line and character.
func tokenAt(toks []token.Token, line, char int) (int, bool) {
	for i, t := range toks {
		if t.Type == token.TEOF || t.Line-1 != line {
			continue
		}
		start := t.Col - 1
		if char >= start && char < start+tokenLen(t) {
			return i, true
		}
	}
	return 0, false
}

func buildHoverText(p *ir.Program, toks []token.Token, i int) string {
	t := toks[i]
	switch {
	case isPredicateName(toks, i):
		return predicateHover(p, t.Text)
	case t.Type == token.TIdent:
		return fmt.Sprintf("variable **%s**", t.Text)
	case t.Type == token.TString:
		dom := p.Domain()
		k, _ := slices.BinarySearch(dom, t.Text)
		return fmt.Sprintf("constant '%s' (%d of %d in the domain)", t.Text, k+1, len(dom))
	}
	return ""
}

func predicateHover(p *ir.Program, name string) string {
	u := p.Usage(name)
	var sb strings.Builder
	if u.Scheme != nil {
		fmt.Fprintf(&sb, "**%s**\n\n", u.Scheme)
	} else {
		fmt.Fprintf(&sb, "**%s** (no scheme)\n\n", name)
	}
	fmt.Fprintf(&sb, "- %s\n", plural(u.Facts, "fact"))
	fmt.Fprintf(&sb, "- %s\n", plural(u.Rules, "rule"))
	fmt.Fprintf(&sb, "- %s\n", plural(u.Bodies, "body use"))
	fmt.Fprintf(&sb, "- %s\n", plural(u.Queries, "query"))
	return sb.String()
}

func plural(n int, what string) string {
	if n == 1 {
		return "1 " + what
	}
	if strings.HasSuffix(what, "y") {
		return fmt.Sprintf("%d %sies", n, strings.TrimSuffix(what, "y"))
	}
	return fmt.Sprintf("%d %ss", n, what)
}
