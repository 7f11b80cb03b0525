package eval

import (
	"log/slog"

	"github.com/signadot/go-datalog/debug"
	"github.com/signadot/go-datalog/ir"
)

// Engine answers queries against one Program.  An Engine holds only
// read-only state and may be shared by concurrent calls to Evaluate.
type Engine struct {
	prog   *ir.Program
	domain []string
	facts  map[string]struct{}
	rules  map[string][]*compiledRule
	log    *slog.Logger
}

func New(p *ir.Program, opts ...Option) *Engine {
	o := newOptions(opts)
	e := &Engine{
		prog:   p,
		domain: p.Domain(),
		facts:  make(map[string]struct{}, len(p.Facts)),
		rules:  map[string][]*compiledRule{},
		log:    o.log,
	}
	for _, f := range p.Facts {
		e.facts[f.Key()] = struct{}{}
	}
	for _, r := range p.Rules {
		e.rules[r.Head.Name] = append(e.rules[r.Head.Name], compileRule(r))
	}
	return e
}

func (e *Engine) Program() *ir.Program {
	return e.prog
}

// Evaluate finds every assignment of the variables of q over the domain
// that the facts and rules entail.  Assignments are produced in domain
// order, the leftmost variable varying slowest.
func (e *Engine) Evaluate(q ir.Predicate) *Answer {
	r := newResolver(e)
	ans := &Answer{Query: q, Vars: q.Vars()}
	env := Env{}
	r.enumerate(q.Terms, env, func() {
		if r.prove(env.Subst(q)) {
			ans.Bindings = append(ans.Bindings, env.Binding(ans.Vars))
		}
	})
	ans.Stats = r.stats
	if debug.Memo() {
		debug.LogAny(r.memo)
	}
	e.log.Debug("evaluated query",
		"query", q.String(),
		"answers", len(ans.Bindings),
		"goals", r.stats.Goals,
		"memoHits", r.stats.MemoHits,
		"cuts", r.stats.Cuts)
	return ans
}

// Evaluate reports whether q is satisfiable in p and lists its bindings.
func Evaluate(q ir.Predicate, p *ir.Program) (bool, []Binding) {
	a := New(p).Evaluate(q)
	return a.Satisfiable(), a.Bindings
}

// compiledRule caches the variable layout of a rule body.  free holds the
// body variables the head does not bind, each once, in order of first
// appearance.  ready[k] lists the body items that are ground once the head
// is unified and free[:k] are assigned.
type compiledRule struct {
	rule  ir.Rule
	free  []string
	ready [][]int
}

func compileRule(r ir.Rule) *compiledRule {
	head := map[string]bool{}
	for _, v := range r.Head.Vars() {
		head[v] = true
	}
	cr := &compiledRule{rule: r}
	level := map[string]int{}
	for _, b := range r.Body {
		for _, v := range b.Vars() {
			if head[v] {
				continue
			}
			if _, ok := level[v]; ok {
				continue
			}
			cr.free = append(cr.free, v)
			level[v] = len(cr.free)
		}
	}
	cr.ready = make([][]int, len(cr.free)+1)
	for i, b := range r.Body {
		k := 0
		for _, v := range b.Vars() {
			k = max(k, level[v])
		}
		cr.ready[k] = append(cr.ready[k], i)
	}
	if debug.Eval() {
		debug.Logf("compiled rule %s free %v\n", r, cr.free)
	}
	return cr
}
