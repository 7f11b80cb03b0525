package ir

import (
	"fmt"
	"strings"
)

// Term is one argument position of a predicate: either a constant with a
// literal value or a variable with a name.  Terms are immutable; variable
// bindings live in an evaluation environment, never in the term.
type Term struct {
	IsVar bool
	Name  string // variable name
	Value string // constant value
}

func Const(v string) Term {
	return Term{Value: v}
}

func Var(name string) Term {
	return Term{IsVar: true, Name: name}
}

// Equal reports term identity: constants with equal values or variables
// with equal names.
func (t Term) Equal(o Term) bool {
	if t.IsVar != o.IsVar {
		return false
	}
	if t.IsVar {
		return t.Name == o.Name
	}
	return t.Value == o.Value
}

// Compare orders constants before variables, and otherwise compares
// values or names lexicographically.
func (t Term) Compare(o Term) int {
	switch {
	case !t.IsVar && !o.IsVar:
		return strings.Compare(t.Value, o.Value)
	case t.IsVar && o.IsVar:
		return strings.Compare(t.Name, o.Name)
	case !t.IsVar:
		return -1
	default:
		return 1
	}
}

// String renders constants single-quoted and variables bare.
func (t Term) String() string {
	if t.IsVar {
		return t.Name
	}
	return fmt.Sprintf("'%s'", t.Value)
}
