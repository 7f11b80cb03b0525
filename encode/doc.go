// Package encode writes tokens, programs and answers.
//
// # Usage
//
//	encode.Tokens(os.Stdout, token.Tokenize(src))
//	prog, err := parse.Parse(src)
//	encode.Dump(os.Stdout, prog, err)
//	encode.Answer(os.Stdout, eval.New(prog).Evaluate(q),
//		encode.EncodeColors(encode.NewColors()))
//
// The text forms are line oriented:
//
//	(IDENT,"a",2)
//	Total Tokens = 1
//
//	Success!
//	Schemes(1):
//	  a(A)
//	...
//	Domain(1):
//	  '1'
//
//	a(X)? Yes(1)
//	  X='1'
//
// With [EncodeFormat] set to YAML or JSON, the same results are written as
// [TokenDoc], [ProgramDoc] and [AnswerDoc] documents.  [Source] renders a
// program back into parseable source.
//
// # Related Packages
//
//   - github.com/signadot/go-datalog/format for output formats
//   - github.com/signadot/go-datalog/eval for answers
package encode
