package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/go-datalog/encode"
	"github.com/signadot/go-datalog/format"
	"github.com/signadot/go-datalog/parse"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Pipe  int  `cli:"name=pipe desc='lex concurrently with parsing, buffering up to n tokens'"`

	OutFormat       *format.Format
	ColorSet        bool
	DefaultParallel int

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.OutFormat = &f
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// FileConfig is the layout of the -config file.  Unset fields leave the
// corresponding settings alone.
type FileConfig struct {
	Format   string `yaml:"format"`
	Color    *bool  `yaml:"color"`
	Pipe     *int   `yaml:"pipe"`
	Parallel *int   `yaml:"parallel"`
}

func (cfg *MainConfig) configOpt(_ *cli.Context, a string) (any, error) {
	d, err := os.ReadFile(a)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyConfig(d); err != nil {
		return nil, fmt.Errorf("%w: config %s: %w", cli.ErrUsage, a, err)
	}
	return nil, nil
}

func (cfg *MainConfig) applyConfig(d []byte) error {
	fc := &FileConfig{}
	if err := yaml.Unmarshal(d, fc); err != nil {
		return err
	}
	if fc.Format != "" {
		f, err := format.ParseFormat(fc.Format)
		if err != nil {
			return err
		}
		cfg.OutFormat = &f
	}
	if fc.Color != nil {
		cfg.Color = *fc.Color
		cfg.ColorSet = true
	}
	if fc.Pipe != nil {
		cfg.Pipe = *fc.Pipe
	}
	if fc.Parallel != nil {
		cfg.DefaultParallel = *fc.Parallel
	}
	return nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.ParsePipeline(cfg.Pipe)}
}

func (cfg *MainConfig) format() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.TextFormat
}

func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	if cfg.ColorSet || cfg.flagSet("color") {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) flagSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.EncodeFormat(cfg.format())}
	if c := cfg.colors(w); c != nil && !cfg.format().IsStructured() {
		res = append(res, encode.EncodeColors(c))
	}
	return res
}

type LexConfig struct {
	*MainConfig

	Lex *cli.Command
}

type ParseConfig struct {
	*MainConfig

	Parse *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Parallel int    `cli:"name=p aliases=parallel desc='evaluate up to n queries at once'"`
	Where    string `cli:"name=where desc='keep only bindings satisfying an expression over the query variables'"`

	Query *cli.Command
}

func (cfg *QueryConfig) parallel() int {
	if cfg.Parallel > 0 {
		return cfg.Parallel
	}
	return cfg.DefaultParallel
}

type CheckConfig struct {
	*MainConfig

	Dump bool `cli:"name=dump desc='compare the program dump instead of the answers'"`

	Check *cli.Command
}
