package parse

import (
	"context"

	"github.com/signadot/go-datalog/token"
)

type parseOpts struct {
	ctx      context.Context
	keywords map[string]token.TokenType
	pipeline int
}

func (o *parseOpts) LexOpts() []token.LexOption {
	if o.keywords == nil {
		return nil
	}
	return []token.LexOption{token.LexKeywords(o.keywords)}
}

type ParseOption func(*parseOpts)

// ParsePipeline runs the lexer concurrently with the parser, buffering up
// to size tokens.  A size of 0 lexes synchronously.
func ParsePipeline(size int) ParseOption {
	return func(o *parseOpts) { o.pipeline = size }
}

// ParseKeywords sets the section keyword table handed to the lexer.
func ParseKeywords(kw map[string]token.TokenType) ParseOption {
	return func(o *parseOpts) { o.keywords = kw }
}

// ParseContext bounds the lifetime of the lexer goroutine started by
// ParsePipeline.
func ParseContext(ctx context.Context) ParseOption {
	return func(o *parseOpts) { o.ctx = ctx }
}
