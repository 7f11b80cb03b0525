package ir

import (
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func sample() *Program {
	return &Program{
		Schemes: []Predicate{NewPredicate("a", Var("A"), Var("B"))},
		Facts: []Predicate{
			NewPredicate("a", Const("2"), Const("3")),
			NewPredicate("a", Const("1"), Const("2")),
		},
		Rules: []Rule{{
			Head: NewPredicate("b", Var("X"), Const("9")),
			Body: []Predicate{NewPredicate("a", Var("X"), Const("2"))},
		}},
		Queries: []Predicate{NewPredicate("b", Var("X"), Const("0"))},
	}
}

func TestDomain(t *testing.T) {
	p := sample()
	want := []string{"0", "1", "2", "3", "9"}
	if diff := cmp.Diff(want, p.Domain()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	d := p.Domain()
	d[0] = "changed"
	if diff := cmp.Diff(want, p.Domain()); diff != "" {
		t.Errorf("domain not stable (-want +got)\n%s", diff)
	}
}

func TestDomainConcurrent(t *testing.T) {
	p := sample()
	var wg sync.WaitGroup
	res := make([][]string, 8)
	for i := range res {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res[i] = p.Domain()
		}()
	}
	wg.Wait()
	for _, r := range res[1:] {
		if !slices.Equal(res[0], r) {
			t.Errorf("got %v and %v", res[0], r)
		}
	}
}

func TestEmptyDomain(t *testing.T) {
	p := &Program{Queries: []Predicate{NewPredicate("q", Var("X"))}}
	if d := p.Domain(); len(d) != 0 {
		t.Errorf("expected empty domain, got %v", d)
	}
}

func TestTermCompare(t *testing.T) {
	terms := []Term{Var("b"), Const("z"), Var("a"), Const("a")}
	slices.SortFunc(terms, Term.Compare)
	want := []Term{Const("a"), Const("z"), Var("a"), Var("b")}
	if diff := cmp.Diff(want, terms); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if !Var("x").Equal(Var("x")) || Var("x").Equal(Const("x")) {
		t.Error("bad term equality")
	}
}

func TestPredicate(t *testing.T) {
	p := NewPredicate("f", Var("X"), Const("a"), Var("Y"), Var("X"))
	if p.String() != "f(X,'a',Y,X)" {
		t.Errorf("got %s", p)
	}
	if diff := cmp.Diff([]string{"X", "Y"}, p.Vars()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if p.IsGround() || !NewPredicate("f", Const("a")).IsGround() {
		t.Error("bad IsGround")
	}
	if p.Index(Var("Y")) != 2 || p.Index(Const("b")) != -1 {
		t.Error("bad Index")
	}
	if p.Arity() != 4 {
		t.Errorf("arity %d", p.Arity())
	}
}

func TestPredicateOrder(t *testing.T) {
	ps := []Predicate{
		NewPredicate("b", Const("1")),
		NewPredicate("a", Const("1"), Const("2")),
		NewPredicate("a", Const("1")),
		NewPredicate("a", Var("X")),
	}
	slices.SortFunc(ps, Predicate.Compare)
	want := []Predicate{
		NewPredicate("a", Const("1")),
		NewPredicate("a", Const("1"), Const("2")),
		NewPredicate("a", Var("X")),
		NewPredicate("b", Const("1")),
	}
	if diff := cmp.Diff(want, ps, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestKey(t *testing.T) {
	keys := map[string]Predicate{}
	for _, p := range []Predicate{
		NewPredicate("a", Const("b,c")),
		NewPredicate("a", Const("b"), Const("c")),
		NewPredicate("a", Var("b"), Const("c")),
		NewPredicate("a", Const("b")),
		NewPredicate("ab"),
		NewPredicate("a", Const("")),
	} {
		k := p.Key()
		if q, ok := keys[k]; ok {
			t.Errorf("%s and %s share key %q", p, q, k)
		}
		keys[k] = p
	}
	if NewPredicate("a", Const("1")).Key() != NewPredicate("a", Const("1")).Key() {
		t.Error("equal predicates differ in key")
	}
}

func TestRule(t *testing.T) {
	p := sample()
	r := p.Rules[0]
	if r.String() != "b(X,'9') :- a(X,'2')" {
		t.Errorf("got %s", r)
	}
	if !r.Equal(sample().Rules[0]) {
		t.Error("rule not equal to copy")
	}
}

func TestUsage(t *testing.T) {
	p := sample()
	u := p.Usage("a")
	if u.Scheme == nil || u.Facts != 2 || u.Rules != 0 || u.Bodies != 1 || u.Queries != 0 {
		t.Errorf("unexpected usage %+v", u)
	}
	if _, ok := p.Scheme("b"); ok {
		t.Error("b has no scheme")
	}
}
