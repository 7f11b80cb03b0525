package eval

import (
	"math"

	"github.com/signadot/go-datalog/debug"
	"github.com/signadot/go-datalog/ir"
)

const noCut = math.MaxInt

// resolver holds the state of one query evaluation.
//
// pending maps each goal on the active proof path to its depth.  A goal
// met again while pending fails that attempt.  A failure reached through
// such a cut may be an artifact of the goals pending above it, so low
// tracks the smallest pending depth cut beneath the goal being proved,
// and a false result is memoized only if no cut reached above its own
// depth.
type resolver struct {
	e       *Engine
	memo    map[string]bool
	pending map[string]int
	depth   int
	low     int
	stats   Stats
}

func newResolver(e *Engine) *resolver {
	return &resolver{
		e:       e,
		memo:    map[string]bool{},
		pending: map[string]int{},
		low:     noCut,
	}
}

// enumerate assigns the variables of terms left to right, calling leaf
// once per complete assignment.  A variable already in env keeps its
// value.
func (r *resolver) enumerate(terms []ir.Term, env Env, leaf func()) {
	if len(terms) == 0 {
		leaf()
		return
	}
	t := terms[0]
	if !t.IsVar {
		r.enumerate(terms[1:], env, leaf)
		return
	}
	if _, ok := env[t.Name]; ok {
		r.enumerate(terms[1:], env, leaf)
		return
	}
	for _, v := range r.e.domain {
		env[t.Name] = v
		r.enumerate(terms[1:], env, leaf)
	}
	delete(env, t.Name)
}

// prove reports whether the ground goal follows from the facts, or else
// from some rule.
func (r *resolver) prove(goal ir.Predicate) bool {
	key := goal.Key()
	r.stats.Goals++
	if v, ok := r.memo[key]; ok {
		r.stats.MemoHits++
		return v
	}
	if d, ok := r.pending[key]; ok {
		r.stats.Cuts++
		r.low = min(r.low, d)
		if debug.Eval() {
			debug.Logf("cycle at %s depth %d\n", goal, d)
		}
		return false
	}
	if _, ok := r.e.facts[key]; ok {
		r.memo[key] = true
		return true
	}

	r.depth++
	depth := r.depth
	outerLow := r.low
	r.pending[key] = depth
	r.low = noCut

	ok := r.rules(goal)

	delete(r.pending, key)
	r.depth--
	tainted := r.low < depth
	if ok || !tainted {
		r.memo[key] = ok
		if debug.Memo() {
			debug.Logf("memo %s = %t\n", goal, ok)
		}
	}
	if tainted {
		r.low = min(outerLow, r.low)
	} else {
		r.low = outerLow
	}
	return ok
}

func (r *resolver) rules(goal ir.Predicate) bool {
	for _, cr := range r.e.rules[goal.Name] {
		env, ok := Unify(goal, cr.rule.Head)
		if !ok {
			continue
		}
		if r.body(cr, env, 0) {
			if debug.Eval() {
				debug.Logf("%s by %s\n", goal, cr.rule)
			}
			return true
		}
	}
	return false
}

// body proves the body items of cr that become ground at level k, then
// assigns free[k] over the domain and descends.
func (r *resolver) body(cr *compiledRule, env Env, k int) bool {
	for _, i := range cr.ready[k] {
		if !r.prove(env.Subst(cr.rule.Body[i])) {
			return false
		}
	}
	if k == len(cr.free) {
		return true
	}
	v := cr.free[k]
	defer delete(env, v)
	for _, d := range r.e.domain {
		env[v] = d
		if r.body(cr, env, k+1) {
			return true
		}
	}
	return false
}
