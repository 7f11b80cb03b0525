package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-datalog/ir"
)

type unifyTest struct {
	goal, head ir.Predicate
	env        Env
}

func TestUnify(t *testing.T) {
	c, v := ir.Const, ir.Var
	p := ir.NewPredicate
	uts := []unifyTest{
		{goal: p("a", c("1")), head: p("a", v("X")), env: Env{"X": "1"}},
		{goal: p("a", c("1"), c("2")), head: p("a", v("X"), c("2")), env: Env{"X": "1"}},
		{goal: p("a", c("1"), c("1")), head: p("a", v("X"), v("X")), env: Env{"X": "1"}},
		{goal: p("a", c("1")), head: p("a", c("1")), env: Env{}},
		{goal: p("a", c("1"), c("2")), head: p("a", v("X"), v("X"))},
		{goal: p("a", c("1")), head: p("b", v("X"))},
		{goal: p("a", c("1")), head: p("a", v("X"), v("Y"))},
		{goal: p("a", c("1")), head: p("a", c("2"))},
		{goal: p("a", v("Q")), head: p("a", v("X"))},
	}
	for _, ut := range uts {
		head := ut.head.String()
		env, ok := Unify(ut.goal, ut.head)
		if ok != (ut.env != nil) {
			t.Errorf("unify %s with %s: got %t", ut.goal, ut.head, ok)
			continue
		}
		if diff := cmp.Diff(ut.env, env); ok && diff != "" {
			t.Errorf("unify %s with %s (-want +got)\n%s", ut.goal, ut.head, diff)
		}
		if ut.head.String() != head {
			t.Errorf("head modified: %s became %s", head, ut.head)
		}
	}
}

func TestSubst(t *testing.T) {
	body := ir.NewPredicate("a", ir.Var("X"), ir.Var("Z"), ir.Const("k"))
	got := Env{"X": "1"}.Subst(body)
	if got.String() != "a('1',Z,'k')" {
		t.Errorf("got %s", got)
	}
	if body.String() != "a(X,Z,'k')" {
		t.Errorf("body modified: %s", body)
	}
}

func TestCompileRule(t *testing.T) {
	r := ir.Rule{
		Head: ir.NewPredicate("r", ir.Var("X")),
		Body: []ir.Predicate{
			ir.NewPredicate("e", ir.Var("X"), ir.Var("Y")),
			ir.NewPredicate("f", ir.Var("X")),
			ir.NewPredicate("e", ir.Var("Y"), ir.Var("Z"), ir.Var("Y")),
		},
	}
	cr := compileRule(r)
	if diff := cmp.Diff([]string{"Y", "Z"}, cr.free); diff != "" {
		t.Errorf("free (-want +got)\n%s", diff)
	}
	if diff := cmp.Diff([][]int{{1}, {0}, {2}}, cr.ready); diff != "" {
		t.Errorf("ready (-want +got)\n%s", diff)
	}
}

func TestBinding(t *testing.T) {
	b := Env{"X": "1", "Y": "2"}.Binding([]string{"Y", "X"})
	if b.String() != "Y='2', X='1'" {
		t.Errorf("got %s", b)
	}
	if v, ok := b.Get("X"); !ok || v != "1" {
		t.Errorf("get X: %q %t", v, ok)
	}
	if diff := cmp.Diff(map[string]string{"X": "1", "Y": "2"}, b.Map()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}
