// Package token provides tokenization of Datalog source.
//
// [Lexer] reads a source one rune at a time and produces [Token]s on
// demand, with one token of lookahead through Peek.  [Tokenize] lexes a
// whole input at once.
//
// [Pipe] runs any [Source] in its own goroutine behind a bounded channel,
// so a consumer can overlap lexing with parsing.
package token
