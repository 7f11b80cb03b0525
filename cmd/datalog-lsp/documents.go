package main

import (
	"context"
	"errors"
	"sync"
	"unicode/utf8"

	"github.com/signadot/go-datalog/ir"
	"github.com/signadot/go-datalog/parse"
	"github.com/signadot/go-datalog/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an open text with its tokens and, when it parses, its
// program.
type document struct {
	uri     string
	content string
	version int32
	toks    []token.Token
	prog    *ir.Program
	err     error
}

func newDocument(uri, content string, version int32) *document {
	doc := &document{
		uri:     uri,
		content: content,
		version: version,
		toks:    token.Tokenize([]byte(content)),
	}
	doc.prog, doc.err = parse.ParseString(content)
	return doc
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}
	diagnostics := validateDocument(doc)
	if s.conn == nil {
		return
	}
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(uri),
		Diagnostics: diagnostics,
	})
	if err != nil {
		theLog.Error("publishing diagnostics", "uri", uri, "error", err)
	}
}

// validateDocument reports the first token the parser rejected.
func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	var perr *parse.Error
	if !errors.As(doc.err, &perr) {
		return append(diagnostics, protocol.Diagnostic{
			Severity: protocol.DiagnosticSeverityError,
			Message:  doc.err.Error(),
			Source:   "datalog",
		})
	}
	return append(diagnostics, protocol.Diagnostic{
		Range:    tokenRange(perr.Token),
		Severity: protocol.DiagnosticSeverityError,
		Message:  "unexpected " + perr.Token.Info() + ": " + perr.Token.String(),
		Source:   "datalog",
	})
}

// tokenLen is the length of t in the source, quotes included.
func tokenLen(t token.Token) int {
	n := utf8.RuneCountInString(t.Text)
	if t.Type == token.TString {
		n += 2
	}
	return n
}

func tokenRange(t token.Token) protocol.Range {
	line := uint32(max(t.Line-1, 0))
	col := uint32(max(t.Col-1, 0))
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: col},
		End:   protocol.Position{Line: line, Character: col + uint32(max(tokenLen(t), 1))},
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		content = applyChange(content, change)
	}
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

// applyChange applies one content change.  A zero range replaces the
// whole document.
func applyChange(content string, change protocol.TextDocumentContentChangeEvent) string {
	r := change.Range
	if r == (protocol.Range{}) {
		return change.Text
	}
	runes := []rune(content)
	start := lineColToOffset(runes, int(r.Start.Line), int(r.Start.Character))
	end := lineColToOffset(runes, int(r.End.Line), int(r.End.Character))
	if start > end {
		return content
	}
	return string(runes[:start]) + change.Text + string(runes[end:])
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func lineColToOffset(runes []rune, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range runes {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			if currentLine == line {
				return i
			}
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(runes)
}
