package eval

import (
	"context"

	"github.com/signadot/go-datalog/ir"
	"golang.org/x/sync/errgroup"
)

// EvaluateAll answers every query of p, running up to Parallelism queries
// at a time.  The answers are in query order.  It returns ctx.Err() if ctx
// is done before all queries have started.
func EvaluateAll(ctx context.Context, p *ir.Program, opts ...Option) ([]*Answer, error) {
	o := newOptions(opts)
	e := New(p, opts...)
	res := make([]*Answer, len(p.Queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallel)
	for i, q := range p.Queries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res[i] = e.Evaluate(q)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
