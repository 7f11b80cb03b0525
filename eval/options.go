package eval

import (
	"log/slog"
	"runtime"
)

type options struct {
	log      *slog.Logger
	parallel int
}

type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{}
	for _, f := range opts {
		f(o)
	}
	if o.log == nil {
		o.log = slog.New(slog.DiscardHandler)
	}
	if o.parallel <= 0 {
		o.parallel = runtime.NumCPU()
	}
	return o
}

// WithLogger sets the logger receiving per query summaries at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// Parallelism bounds the number of queries EvaluateAll evaluates at once.
// Values below 1 select runtime.NumCPU().
func Parallelism(n int) Option {
	return func(o *options) { o.parallel = n }
}
