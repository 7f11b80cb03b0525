package main

import (
	"context"
	"slices"

	"github.com/signadot/go-datalog/token"
	"go.lsp.dev/protocol"
)

var sectionKeywords = sortedKeywords()

func sortedKeywords() []string {
	kws := token.DefaultKeywords()
	res := make([]string, 0, len(kws))
	for k := range kws {
		res = append(res, k)
	}
	// section order, not alphabetical
	slices.SortFunc(res, func(a, b string) int { return int(kws[a]) - int(kws[b]) })
	return res
}

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	completions := []protocol.CompletionItem{}
	if atLineStart(doc.content, int(params.Position.Line), int(params.Position.Character)) {
		for _, kw := range sectionKeywords {
			completions = append(completions, protocol.CompletionItem{
				Label:      kw,
				Kind:       protocol.CompletionItemKindKeyword,
				InsertText: kw + ":",
			})
		}
	}
	for _, name := range predicateNames(doc.toks) {
		completions = append(completions, protocol.CompletionItem{
			Label:      name,
			Kind:       protocol.CompletionItemKindFunction,
			InsertText: name,
		})
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completions,
	}, nil
}

// atLineStart reports whether only blanks precede the position on its
// line.
func atLineStart(content string, line, col int) bool {
	runes := []rune(content)
	start := lineColToOffset(runes, line, 0)
	for i := start; i < len(runes) && i < start+col; i++ {
		if runes[i] != ' ' && runes[i] != '\t' {
			return false
		}
	}
	return true
}

// predicateNames lists the distinct predicate names in toks in order of
// appearance.  It works on documents that do not parse.
func predicateNames(toks []token.Token) []string {
	var res []string
	for i := range toks {
		if !isPredicateName(toks, i) || slices.Contains(res, toks[i].Text) {
			continue
		}
		res = append(res, toks[i].Text)
	}
	return res
}
