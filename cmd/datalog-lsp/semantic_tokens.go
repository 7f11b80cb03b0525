package main

import (
	"context"
	"math"

	"github.com/signadot/go-datalog/token"
	"go.lsp.dev/protocol"
)

var semanticLegend = protocol.SemanticTokensLegend{
	TokenTypes: []protocol.SemanticTokenTypes{
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenFunction,
		protocol.SemanticTokenVariable,
		protocol.SemanticTokenString,
		protocol.SemanticTokenOperator,
	},
	TokenModifiers: []protocol.SemanticTokenModifiers{
		protocol.SemanticTokenModifierDefinition,
	},
}

// indices into semanticLegend
const (
	semKeyword uint32 = iota
	semFunction
	semVariable
	semString
	semOperator
)

const modDefinition uint32 = 1

// isPredicateName reports whether toks[i] names a predicate.
func isPredicateName(toks []token.Token, i int) bool {
	return toks[i].Type == token.TIdent && i+1 < len(toks) && toks[i+1].Type == token.TLParen
}

func semanticType(toks []token.Token, i int) (uint32, bool) {
	t := toks[i]
	switch {
	case t.Type.IsKeyword():
		return semKeyword, true
	case isPredicateName(toks, i):
		return semFunction, true
	case t.Type == token.TIdent:
		return semVariable, true
	case t.Type == token.TString:
		return semString, true
	case t.Type == token.TEOF, t.Type == token.TUndefined:
		return 0, false
	}
	return semOperator, true
}

// collectSemanticTokens encodes the tokens on lines [from, to) with
// relative positions.  Predicate names in the Schemes section carry the
// definition modifier.
func collectSemanticTokens(doc *document, from, to int) []uint32 {
	data := []uint32{}
	var (
		prevLine, prevCol uint32
		section           token.TokenType
	)
	for i, t := range doc.toks {
		if t.Type.IsKeyword() {
			section = t.Type
		}
		line := t.Line - 1
		if line < from || line >= to {
			continue
		}
		typ, ok := semanticType(doc.toks, i)
		if !ok {
			continue
		}
		var mods uint32
		if typ == semFunction && section == token.TSchemes {
			mods = modDefinition
		}
		l, c := uint32(line), uint32(max(t.Col-1, 0))
		deltaCol := c
		if l == prevLine {
			deltaCol = c - prevCol
		}
		data = append(data, l-prevLine, deltaCol, uint32(tokenLen(t)), typ, mods)
		prevLine, prevCol = l, c
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc, 0, math.MaxInt),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	r := params.Range
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc, int(r.Start.Line), int(r.End.Line)+1),
	}, nil
}
