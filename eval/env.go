package eval

import (
	"github.com/signadot/go-datalog/ir"
)

// Env binds variable names to constant values during evaluation.
type Env map[string]string

// Subst returns p with every bound variable replaced by its value.  p is
// not modified.
func (e Env) Subst(p ir.Predicate) ir.Predicate {
	res := ir.Predicate{Name: p.Name, Terms: make([]ir.Term, len(p.Terms))}
	for i, t := range p.Terms {
		if t.IsVar {
			if v, ok := e[t.Name]; ok {
				res.Terms[i] = ir.Const(v)
				continue
			}
		}
		res.Terms[i] = t
	}
	return res
}

// Binding returns the values of names in e, in the order given.
func (e Env) Binding(names []string) Binding {
	res := make(Binding, 0, len(names))
	for _, n := range names {
		res = append(res, Assignment{Name: n, Value: e[n]})
	}
	return res
}

// Unify matches the ground goal against head.  Names and arities are
// compared before any term; head constants must equal the goal's values
// and head variables are bound to them, consistently when a variable
// repeats.  Unify never modifies its arguments.
func Unify(goal, head ir.Predicate) (Env, bool) {
	if goal.Name != head.Name || len(goal.Terms) != len(head.Terms) {
		return nil, false
	}
	env := Env{}
	for i, h := range head.Terms {
		g := goal.Terms[i]
		if g.IsVar {
			return nil, false
		}
		if !h.IsVar {
			if h.Value != g.Value {
				return nil, false
			}
			continue
		}
		if v, ok := env[h.Name]; ok && v != g.Value {
			return nil, false
		}
		env[h.Name] = g.Value
	}
	return env, true
}
