package eval

import (
	"strings"

	"github.com/signadot/go-datalog/ir"
)

type Assignment struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Binding assigns a domain value to each distinct variable of a query, in
// the order the variables first appear in the query.
type Binding []Assignment

func (b Binding) Get(name string) (string, bool) {
	for _, a := range b {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (b Binding) Map() map[string]string {
	res := make(map[string]string, len(b))
	for _, a := range b {
		res[a.Name] = a.Value
	}
	return res
}

// String renders b as `X='1', Y='2'`.
func (b Binding) String() string {
	parts := make([]string, len(b))
	for i, a := range b {
		parts[i] = a.Name + "='" + a.Value + "'"
	}
	return strings.Join(parts, ", ")
}

// Stats counts the work done answering one query.
type Stats struct {
	Goals    int `json:"goals"`    // ground goals tried against facts and rules
	MemoHits int `json:"memoHits"` // goals answered from the memo sets
	Cuts     int `json:"cuts"`     // goals failed by the cycle guard
}

// Answer holds every binding satisfying a query, in enumeration order.
type Answer struct {
	Query    ir.Predicate
	Vars     []string
	Bindings []Binding
	Stats    Stats
}

func (a *Answer) Satisfiable() bool {
	return len(a.Bindings) > 0
}

// Filter returns a copy of a keeping only the bindings f accepts.
func (a *Answer) Filter(f *Filter) (*Answer, error) {
	res := &Answer{Query: a.Query, Vars: a.Vars, Stats: a.Stats}
	for _, b := range a.Bindings {
		ok, err := f.Match(b)
		if err != nil {
			return nil, err
		}
		if ok {
			res.Bindings = append(res.Bindings, b)
		}
	}
	return res, nil
}
