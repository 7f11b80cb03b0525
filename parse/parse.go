package parse

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/go-datalog/debug"
	"github.com/signadot/go-datalog/ir"
	"github.com/signadot/go-datalog/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Program, error) {
	return ParseReader(bytes.NewReader(d), opts...)
}

func ParseString(s string, opts ...ParseOption) (*ir.Program, error) {
	return ParseReader(strings.NewReader(s), opts...)
}

func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Program, error) {
	pOpts := &parseOpts{ctx: context.Background()}
	for _, f := range opts {
		f(pOpts)
	}
	lx := token.NewLexer(r, pOpts.LexOpts()...)
	var (
		src  token.Source = lx
		pipe *token.Pipe
	)
	if pOpts.pipeline > 0 {
		pipe = token.NewPipe(pOpts.ctx, lx, pOpts.pipeline)
		src = pipe
	}
	prog, err := FromSource(src)
	if pipe != nil {
		// the lexer is only safe to inspect once its goroutine is gone.
		pipe.Close()
		if cerr := pOpts.ctx.Err(); cerr != nil {
			return nil, cerr
		}
	}
	var perr *Error
	if errors.As(err, &perr) && perr.Token.Type != token.TEOF {
		return nil, err
	}
	if lerr := lx.Err(); lerr != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, lerr)
	}
	if err != nil {
		return nil, err
	}
	return prog, nil
}

// FromSource parses a complete program from src.  It consumes src up to
// and including TEOF on success and stops at the offending token on
// failure.
func FromSource(src token.Source) (*ir.Program, error) {
	p := &parser{src: src, prog: &ir.Program{}}
	if err := p.program(); err != nil {
		return nil, err
	}
	return p.prog, nil
}

type paramKind int

const (
	anyParam paramKind = iota
	identParam
	stringParam
)

type parser struct {
	src  token.Source
	prog *ir.Program
}

func (p *parser) fail(t token.Token) error {
	if debug.Parse() {
		debug.Logf("parse failed at %s\n", t.Info())
	}
	return &Error{Token: t}
}

func (p *parser) expect(tt token.TokenType) (token.Token, error) {
	t := p.src.Next()
	if t.Type != tt {
		return t, p.fail(t)
	}
	return t, nil
}

func (p *parser) program() error {
	if err := p.section(token.TSchemes, true, p.scheme); err != nil {
		return err
	}
	if err := p.section(token.TFacts, false, p.fact); err != nil {
		return err
	}
	if err := p.section(token.TRules, false, p.rule); err != nil {
		return err
	}
	if err := p.section(token.TQueries, true, p.query); err != nil {
		return err
	}
	if t := p.src.Next(); t.Type != token.TEOF {
		return p.fail(t)
	}
	return nil
}

// section recognizes `<keyword> : item*`, requiring one item when
// atLeastOne is set.  Every item starts with an identifier, so a single
// token of lookahead decides whether another follows.
func (p *parser) section(kw token.TokenType, atLeastOne bool, item func() error) error {
	if _, err := p.expect(kw); err != nil {
		return err
	}
	if _, err := p.expect(token.TColon); err != nil {
		return err
	}
	if atLeastOne {
		if err := item(); err != nil {
			return err
		}
	}
	for p.src.Peek().Type == token.TIdent {
		if err := item(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) scheme() error {
	pred, err := p.predicate(identParam)
	if err != nil {
		return err
	}
	p.prog.Schemes = append(p.prog.Schemes, pred)
	p.trace("scheme", pred)
	return nil
}

func (p *parser) fact() error {
	pred, err := p.predicate(stringParam)
	if err != nil {
		return err
	}
	if _, err := p.expect(token.TPeriod); err != nil {
		return err
	}
	p.prog.Facts = append(p.prog.Facts, pred)
	p.trace("fact", pred)
	return nil
}

func (p *parser) rule() error {
	head, err := p.predicate(anyParam)
	if err != nil {
		return err
	}
	if _, err := p.expect(token.TColonDash); err != nil {
		return err
	}
	r := ir.Rule{Head: head}
	for {
		pred, err := p.predicate(anyParam)
		if err != nil {
			return err
		}
		r.Body = append(r.Body, pred)
		if p.src.Peek().Type != token.TComma {
			break
		}
		p.src.Next()
	}
	if _, err := p.expect(token.TPeriod); err != nil {
		return err
	}
	p.prog.Rules = append(p.prog.Rules, r)
	if debug.Parse() {
		debug.Logf("parsed rule %s\n", r)
	}
	return nil
}

func (p *parser) query() error {
	pred, err := p.predicate(anyParam)
	if err != nil {
		return err
	}
	if _, err := p.expect(token.TQuestion); err != nil {
		return err
	}
	p.prog.Queries = append(p.prog.Queries, pred)
	p.trace("query", pred)
	return nil
}

func (p *parser) predicate(kind paramKind) (ir.Predicate, error) {
	name, err := p.expect(token.TIdent)
	if err != nil {
		return ir.Predicate{}, err
	}
	if _, err := p.expect(token.TLParen); err != nil {
		return ir.Predicate{}, err
	}
	pred := ir.Predicate{Name: name.Text}
	for {
		t := p.src.Next()
		term, ok := paramTerm(t, kind)
		if !ok {
			return ir.Predicate{}, p.fail(t)
		}
		pred.Terms = append(pred.Terms, term)
		if p.src.Peek().Type != token.TComma {
			break
		}
		p.src.Next()
	}
	if _, err := p.expect(token.TRParen); err != nil {
		return ir.Predicate{}, err
	}
	return pred, nil
}

func paramTerm(t token.Token, kind paramKind) (ir.Term, bool) {
	switch t.Type {
	case token.TString:
		if kind == identParam {
			return ir.Term{}, false
		}
		return ir.Const(t.Text), true
	case token.TIdent:
		if kind == stringParam {
			return ir.Term{}, false
		}
		return ir.Var(t.Text), true
	}
	return ir.Term{}, false
}

func (p *parser) trace(what string, pred ir.Predicate) {
	if debug.Parse() {
		debug.Logf("parsed %s %s\n", what, pred)
	}
}
