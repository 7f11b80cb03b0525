package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(), "(format)"),
		},
		&cli.Opt{
			Name:        "config",
			Description: "yaml file of default settings, applied where it appears",
			Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "dl").
		WithSynopsis("dl [opts] command [opts] [files]").
		WithDescription("dl lexes, parses and answers the queries of datalog programs.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dlMain(cfg, cc, args)
		}).
		WithSubs(
			LexCommand(cfg),
			ParseCommand(cfg),
			QueryCommand(cfg),
			CheckCommand(cfg))
}

func LexCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LexConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Lex, "lex").
		WithAliases("l").
		WithSynopsis("lex [files]").
		WithDescription("list the tokens of datalog files").
		WithRun(func(cc *cli.Context, args []string) error {
			return lex(cfg, cc, args)
		})
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Parse, "parse").
		WithAliases("dump", "p").
		WithSynopsis("parse [files]").
		WithDescription("parse datalog files and dump their schemes, facts, rules, queries and domain").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query [-p n] [-where expr] [files]").
		WithDescription("answer the queries of datalog files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithSynopsis("check [-dump] <program> <expected>").
		WithDescription("compare the answers of a datalog program with an expected output file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}
