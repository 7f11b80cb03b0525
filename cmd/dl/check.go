package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/go-datalog/encode"
	"github.com/signadot/go-datalog/libdiff"
)

var ErrMismatch = errors.New("output mismatch")

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: expected <program> <expected>", cli.ErrUsage)
	}
	want, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("could not read expected output: %w", err)
	}
	return eachFile(cc.Out, args[0], func(w io.Writer, r io.Reader) error {
		return checkReader(context.Background(), cfg, w, r, string(want))
	})
}

// checkReader writes the text output for r and compares it with want,
// writing a line diff to w when they differ.
func checkReader(ctx context.Context, cfg *CheckConfig, w io.Writer, r io.Reader, want string) error {
	// the comparison is always between text forms, without colors.
	textCfg := *cfg.MainConfig
	textCfg.OutFormat = nil
	textCfg.Color = false
	textCfg.ColorSet = true
	buf := &bytes.Buffer{}
	var err error
	if cfg.Dump {
		err = dumpReader(&textCfg, buf, r)
	} else {
		qCfg := &QueryConfig{MainConfig: &textCfg}
		err = queryReader(ctx, qCfg, nil, buf, r)
	}
	if err != nil {
		return err
	}
	d := libdiff.Lines(want, buf.String())
	if d.Empty() {
		_, err := io.WriteString(w, "ok\n")
		return err
	}
	var color func(libdiff.Op, string) string
	if c := cfg.colors(w); c != nil {
		color = func(op libdiff.Op, s string) string {
			switch op {
			case libdiff.Insert:
				return c.Color(encode.InsertColor, s)
			case libdiff.Delete:
				return c.Color(encode.DeleteColor, s)
			}
			return s
		}
	}
	if err := d.Write(w, color); err != nil {
		return err
	}
	ins, del := d.Changes()
	return fmt.Errorf("%w: %d lines missing, %d unexpected", ErrMismatch, del, ins)
}
