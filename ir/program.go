package ir

import (
	"slices"
	"sync"
)

// Program is a parsed Datalog program.  Its lists are in source order.
// A Program must not be modified once Domain has been called.
type Program struct {
	Schemes []Predicate
	Facts   []Predicate
	Rules   []Rule
	Queries []Predicate

	domainOnce sync.Once
	domain     []string
}

// Domain returns every constant value appearing in the facts, rules and
// queries of p, deduplicated and in ascending order.  It is computed on
// first use and cached.
func (p *Program) Domain() []string {
	p.domainOnce.Do(func() {
		p.domain = p.computeDomain()
	})
	return slices.Clone(p.domain)
}

func (p *Program) computeDomain() []string {
	seen := map[string]bool{}
	add := func(pred Predicate) {
		for _, t := range pred.Terms {
			if !t.IsVar {
				seen[t.Value] = true
			}
		}
	}
	for _, f := range p.Facts {
		add(f)
	}
	for _, r := range p.Rules {
		add(r.Head)
		for _, b := range r.Body {
			add(b)
		}
	}
	for _, q := range p.Queries {
		add(q)
	}
	res := make([]string, 0, len(seen))
	for v := range seen {
		res = append(res, v)
	}
	slices.Sort(res)
	return res
}

// Scheme returns the scheme declaring name, if any.
func (p *Program) Scheme(name string) (Predicate, bool) {
	for _, s := range p.Schemes {
		if s.Name == name {
			return s, true
		}
	}
	return Predicate{}, false
}

// Usage counts the places a predicate name occurs in a program.
type Usage struct {
	Scheme  *Predicate
	Facts   int
	Rules   int // rules whose head has the name
	Bodies  int // body items with the name
	Queries int
}

func (p *Program) Usage(name string) Usage {
	var u Usage
	if s, ok := p.Scheme(name); ok {
		u.Scheme = &s
	}
	for _, f := range p.Facts {
		if f.Name == name {
			u.Facts++
		}
	}
	for _, r := range p.Rules {
		if r.Head.Name == name {
			u.Rules++
		}
		for _, b := range r.Body {
			if b.Name == name {
				u.Bodies++
			}
		}
	}
	for _, q := range p.Queries {
		if q.Name == name {
			u.Queries++
		}
	}
	return u
}
