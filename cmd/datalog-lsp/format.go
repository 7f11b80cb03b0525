package main

import (
	"context"
	"strings"

	"github.com/signadot/go-datalog/encode"
	"go.lsp.dev/protocol"
)

// Formatting rewrites a document that parses into canonical layout.
// Comments are not part of the program, so documents with comments are
// left alone.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.prog == nil || strings.Contains(doc.content, "#") {
		return nil, nil
	}
	formatted := encode.SourceString(doc.prog)
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: formatted,
		},
	}, nil
}
