package token

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/signadot/go-datalog/debug"
)

// Source is a stream of tokens with one token of lookahead.  Once a
// Source has produced TEOF it keeps producing TEOF.
type Source interface {
	Next() Token
	Peek() Token
}

type lexOpts struct {
	keywords map[string]TokenType
}

type LexOption func(*lexOpts)

// LexKeywords sets the table mapping identifier text to section keyword
// types.  A nil table disables keywords.
func LexKeywords(kw map[string]TokenType) LexOption {
	return func(o *lexOpts) { o.keywords = kw }
}

// Lexer classifies the characters of a reader into tokens.  It strips
// whitespace and comments and reports malformed fragments as TUndefined
// tokens rather than failing.
type Lexer struct {
	r        *bufio.Reader
	keywords map[string]TokenType

	line int
	col  int

	ahead    rune
	hasAhead bool
	atEOF    bool
	err      error

	peeked *Token
}

var _ Source = (*Lexer)(nil)

func NewLexer(r io.Reader, opts ...LexOption) *Lexer {
	o := &lexOpts{keywords: DefaultKeywords()}
	for _, f := range opts {
		f(o)
	}
	return &Lexer{
		r:        bufio.NewReader(r),
		keywords: o.keywords,
		line:     1,
	}
}

// Err returns the first read error other than io.EOF encountered by the
// lexer.  Such an error ends the token stream with TEOF.
func (l *Lexer) Err() error {
	return l.err
}

func (l *Lexer) Next() Token {
	if l.peeked != nil {
		t := *l.peeked
		l.peeked = nil
		return t
	}
	return l.lex()
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() Token {
	if l.peeked == nil {
		t := l.lex()
		l.peeked = &t
	}
	return *l.peeked
}

func (l *Lexer) lex() Token {
	t := l.lexOne()
	if debug.Lex() {
		debug.Logf("lex %s col=%d\n", t, t.Col)
	}
	return t
}

func (l *Lexer) lexOne() Token {
	for {
		l.skipSpace()
		c, ok := l.peekRune()
		if !ok {
			return Token{Type: TEOF, Line: l.line, Col: l.col + 1}
		}
		l.popRune()
		col := l.col
		switch {
		case unicode.IsLetter(c):
			return l.ident(c, col)
		case c == '\'':
			return l.str(col)
		case c == '#':
			l.comment()
		default:
			return l.symbol(c, col)
		}
	}
}

func (l *Lexer) peekRune() (rune, bool) {
	if l.hasAhead {
		return l.ahead, true
	}
	if l.atEOF {
		return 0, false
	}
	c, _, err := l.r.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			l.err = err
		}
		l.atEOF = true
		return 0, false
	}
	l.ahead = c
	l.hasAhead = true
	return c, true
}

func (l *Lexer) popRune() (rune, bool) {
	c, ok := l.peekRune()
	if !ok {
		return 0, false
	}
	l.hasAhead = false
	if c == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return c, true
}

func (l *Lexer) skipSpace() {
	for {
		c, ok := l.peekRune()
		if !ok || !unicode.IsSpace(c) {
			return
		}
		l.popRune()
	}
}

func isIdentRune(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c)
}

func (l *Lexer) ident(first rune, col int) Token {
	var sb strings.Builder
	sb.WriteRune(first)
	for {
		c, ok := l.peekRune()
		if !ok || !isIdentRune(c) {
			break
		}
		l.popRune()
		sb.WriteRune(c)
	}
	text := sb.String()
	// the whole identifier has been consumed, so a keyword match here
	// cannot be the prefix of a longer identifier.
	if kw, ok := l.keywords[text]; ok {
		return Token{Type: kw, Line: l.line, Col: col, Text: text}
	}
	return Token{Type: TIdent, Line: l.line, Col: col, Text: text}
}

// str reads a string literal after its opening quote.  Newlines are
// inspected raw: a newline or end of input before the closing quote yields
// TUndefined holding the partial text, opening quote included.
func (l *Lexer) str(col int) Token {
	var sb strings.Builder
	sb.WriteByte('\'')
	for {
		c, ok := l.peekRune()
		if !ok || c == '\n' {
			return Token{Type: TUndefined, Line: l.line, Col: col, Text: sb.String()}
		}
		l.popRune()
		if c == '\'' {
			return Token{Type: TString, Line: l.line, Col: col, Text: sb.String()[1:]}
		}
		sb.WriteRune(c)
	}
}

func (l *Lexer) comment() {
	for {
		c, ok := l.peekRune()
		if !ok || c == '\n' {
			return
		}
		l.popRune()
	}
}

var symbols = map[rune]TokenType{
	'(': TLParen,
	')': TRParen,
	',': TComma,
	'.': TPeriod,
	'?': TQuestion,
}

func (l *Lexer) symbol(c rune, col int) Token {
	if c == ':' {
		// raw peek: ": -" is a colon followed by an undefined dash.
		if n, ok := l.peekRune(); ok && n == '-' {
			l.popRune()
			return Token{Type: TColonDash, Line: l.line, Col: col, Text: ":-"}
		}
		return Token{Type: TColon, Line: l.line, Col: col, Text: ":"}
	}
	if tt, ok := symbols[c]; ok {
		return Token{Type: tt, Line: l.line, Col: col, Text: string(c)}
	}
	return Token{Type: TUndefined, Line: l.line, Col: col, Text: string(c)}
}

// Tokenize lexes d up to and including the terminal TEOF token.
func Tokenize(d []byte, opts ...LexOption) []Token {
	l := NewLexer(bytes.NewReader(d), opts...)
	var res []Token
	for {
		t := l.Next()
		res = append(res, t)
		if t.Type == TEOF {
			return res
		}
	}
}
