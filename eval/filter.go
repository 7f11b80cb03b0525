package eval

import (
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled boolean expression over the variables of a
// binding, such as `X == "1" && Y != X`.  Variables the binding lacks are
// nil.
type Filter struct {
	src  string
	prog *vm.Program
}

func CompileFilter(src string) (*Filter, error) {
	opts := append(filterFuncs(), expr.AsBool(), expr.AllowUndefinedVariables())
	prog, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", src, err)
	}
	return &Filter{src: src, prog: prog}, nil
}

func (f *Filter) String() string {
	return f.src
}

func (f *Filter) Match(b Binding) (bool, error) {
	env := make(map[string]any, len(b))
	for _, a := range b {
		env[a.Name] = a.Value
	}
	out, err := vm.Run(f.prog, env)
	if err != nil {
		return false, fmt.Errorf("filter %q on %s: %w", f.src, b, err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("filter %q gave %T, not bool", f.src, out)
	}
	return ok, nil
}

func filterFuncs() []expr.Option {
	return []expr.Option{
		expr.Function("num", func(params ...any) (any, error) {
			s, _ := params[0].(string)
			return strconv.ParseFloat(s, 64)
		},
			new(func(string) float64)),
	}
}
