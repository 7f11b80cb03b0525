package ir

import (
	"strconv"
	"strings"
)

// Predicate is a name applied to an ordered list of terms.  Schemes,
// facts, queries, rule heads and rule body items all share this shape.
type Predicate struct {
	Name  string
	Terms []Term
}

func NewPredicate(name string, terms ...Term) Predicate {
	return Predicate{Name: name, Terms: terms}
}

func (p Predicate) Arity() int {
	return len(p.Terms)
}

// IsGround reports whether every term of p is a constant.
func (p Predicate) IsGround() bool {
	for _, t := range p.Terms {
		if t.IsVar {
			return false
		}
	}
	return true
}

// Vars returns the distinct variable names of p in order of first
// appearance.
func (p Predicate) Vars() []string {
	var res []string
	seen := map[string]bool{}
	for _, t := range p.Terms {
		if !t.IsVar || seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		res = append(res, t.Name)
	}
	return res
}

// Index returns the position of the first term equal to t, or -1.
func (p Predicate) Index(t Term) int {
	for i, x := range p.Terms {
		if x.Equal(t) {
			return i
		}
	}
	return -1
}

func (p Predicate) Equal(o Predicate) bool {
	if p.Name != o.Name || len(p.Terms) != len(o.Terms) {
		return false
	}
	for i := range p.Terms {
		if !p.Terms[i].Equal(o.Terms[i]) {
			return false
		}
	}
	return true
}

// Compare orders by name, then term by term, then by arity.
func (p Predicate) Compare(o Predicate) int {
	if c := strings.Compare(p.Name, o.Name); c != 0 {
		return c
	}
	n := min(len(p.Terms), len(o.Terms))
	for i := 0; i < n; i++ {
		if c := p.Terms[i].Compare(o.Terms[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(p.Terms) > n:
		return 1
	case len(o.Terms) > n:
		return -1
	}
	return 0
}

// Key returns a string identifying p by name and ordered terms, suitable
// as a map key.  Distinct predicates have distinct keys.
func (p Predicate) Key() string {
	var sb strings.Builder
	sb.WriteString(p.Name)
	sb.WriteByte('/')
	sb.WriteString(strconv.Itoa(len(p.Terms)))
	for _, t := range p.Terms {
		s := t.Value
		if t.IsVar {
			sb.WriteByte('?')
			s = t.Name
		} else {
			sb.WriteByte('=')
		}
		sb.WriteString(strconv.Itoa(len(s)))
		sb.WriteByte(':')
		sb.WriteString(s)
	}
	return sb.String()
}

func (p Predicate) String() string {
	var sb strings.Builder
	sb.WriteString(p.Name)
	sb.WriteByte('(')
	for i, t := range p.Terms {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(t.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Rule derives its head from the conjunction of its body predicates.
type Rule struct {
	Head Predicate
	Body []Predicate
}

func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteString(r.Head.String())
	sb.WriteString(" :- ")
	for i, p := range r.Body {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(p.String())
	}
	return sb.String()
}

func (r Rule) Equal(o Rule) bool {
	if !r.Head.Equal(o.Head) || len(r.Body) != len(o.Body) {
		return false
	}
	for i := range r.Body {
		if !r.Body[i].Equal(o.Body[i]) {
			return false
		}
	}
	return true
}
