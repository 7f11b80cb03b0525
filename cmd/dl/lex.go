package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/go-datalog/encode"
	"github.com/signadot/go-datalog/token"
)

func lex(cfg *LexConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lex.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachSource(cc.Out, cc.In, args, func(w io.Writer, r io.Reader) error {
		return lexReader(cfg, w, r)
	})
}

func lexReader(cfg *LexConfig, w io.Writer, r io.Reader) error {
	lx := token.NewLexer(r)
	var toks []token.Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Type == token.TEOF {
			break
		}
	}
	if err := lx.Err(); err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	return encode.Tokens(w, toks, cfg.encOpts(w)...)
}
