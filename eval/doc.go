// Package eval answers Datalog queries by resolution over the constant
// domain of a program.
//
// # Usage
//
//	prog, err := parse.ParseString(src)
//	if err != nil {
//		return err
//	}
//	e := eval.New(prog)
//	for _, q := range prog.Queries {
//		ans := e.Evaluate(q)
//		...
//	}
//
// A query is answered by assigning each of its variables every domain
// value in ascending order and proving each resulting ground goal.  A
// ground goal holds if it is a fact, or if it unifies with the head of a
// rule whose body holds for some assignment of the body's remaining
// variables.  A goal met again while it is still being proved fails that
// attempt, so recursive rule sets terminate.  Proven goals are memoized
// for the rest of the query.
//
// Bindings are kept in an [Env]; the parsed program is never modified, so
// one [Engine] serves concurrent queries.  [EvaluateAll] answers every
// query of a program in parallel.
//
// # Related Packages
//
//   - github.com/signadot/go-datalog/ir for the program model
//   - github.com/signadot/go-datalog/parse for building programs
//   - github.com/signadot/go-datalog/encode for rendering answers
package eval
