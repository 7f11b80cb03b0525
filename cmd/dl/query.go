package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/scott-cotton/cli"
	"github.com/signadot/go-datalog/encode"
	"github.com/signadot/go-datalog/eval"
	"github.com/signadot/go-datalog/parse"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	var filter *eval.Filter
	if cfg.Where != "" {
		filter, err = eval.CompileFilter(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return eachSource(cc.Out, cc.In, args, func(w io.Writer, r io.Reader) error {
		return queryReader(ctx, cfg, filter, w, r)
	})
}

func queryReader(ctx context.Context, cfg *QueryConfig, filter *eval.Filter, w io.Writer, r io.Reader) error {
	answers, err := answer(ctx, cfg, filter, r)
	var perr *parse.Error
	if errors.As(err, &perr) {
		if err := encode.Dump(w, nil, perr, cfg.encOpts(w)...); err != nil {
			return err
		}
		return blankLine(cfg.MainConfig, w)
	}
	if err != nil {
		return err
	}
	if err := encode.Answers(w, answers, cfg.encOpts(w)...); err != nil {
		return err
	}
	return blankLine(cfg.MainConfig, w)
}

func answer(ctx context.Context, cfg *QueryConfig, filter *eval.Filter, r io.Reader) ([]*eval.Answer, error) {
	prog, err := parse.ParseReader(r, append(cfg.parseOpts(), parse.ParseContext(ctx))...)
	if err != nil {
		return nil, err
	}
	answers, err := eval.EvaluateAll(ctx, prog,
		eval.Parallelism(cfg.parallel()),
		eval.WithLogger(theLog))
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return answers, nil
	}
	for i, a := range answers {
		answers[i], err = a.Filter(filter)
		if err != nil {
			return nil, err
		}
	}
	return answers, nil
}
