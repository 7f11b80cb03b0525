// Package parse parses Datalog source text into an ir.Program.
//
// # Usage
//
//	prog, err := parse.Parse(src)
//	if err != nil {
//	    var perr *parse.Error
//	    if errors.As(err, &perr) {
//	        fmt.Println("offending token:", perr.Token)
//	    }
//	    return err
//	}
//
//	// Lex in a separate goroutine, buffering up to 64 tokens
//	prog, err := parse.ParseReader(f, parse.ParsePipeline(64))
//
// A program is four sections in order, Schemes, Facts, Rules and Queries.
// Schemes and Queries need at least one item.  Scheme parameters are
// identifiers, fact parameters are strings, and rule and query parameters
// may be either.  Parsing stops at the first token that cannot continue
// the grammar and no partial program is returned.
//
// # Related Packages
//
//   - github.com/signadot/go-datalog/token - Lexing
//   - github.com/signadot/go-datalog/ir - Program model
//   - github.com/signadot/go-datalog/encode - Program dumps
package parse
