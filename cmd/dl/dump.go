package main

import (
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/go-datalog/encode"
	"github.com/signadot/go-datalog/parse"
)

func dump(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachSource(cc.Out, cc.In, args, func(w io.Writer, r io.Reader) error {
		return dumpReader(cfg.MainConfig, w, r)
	})
}

func dumpReader(cfg *MainConfig, w io.Writer, r io.Reader) error {
	prog, err := parse.ParseReader(r, cfg.parseOpts()...)
	if err != nil {
		theLog.Debug("parse failed", "error", err)
	}
	if err := encode.Dump(w, prog, err, cfg.encOpts(w)...); err != nil {
		return err
	}
	return blankLine(cfg, w)
}

// blankLine separates the text output of consecutive sources.
func blankLine(cfg *MainConfig, w io.Writer) error {
	if cfg.format().IsStructured() {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}
