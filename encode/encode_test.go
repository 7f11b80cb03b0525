package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-datalog/eval"
	"github.com/signadot/go-datalog/format"
	"github.com/signadot/go-datalog/ir"
	"github.com/signadot/go-datalog/parse"
	"github.com/signadot/go-datalog/token"
)

const closure = `Schemes:
  a(A,B)
Facts:
  a('1','2').
  a('2','3').
Rules:
  b(X,Y) :- a(X,Y).
  b(X,Y) :- a(X,Z),b(Z,Y).
Queries:
  b(X,Y)?
  b('1','3')?
  b('3',Y)?
`

func mustParse(t *testing.T, src string) *ir.Program {
	t.Helper()
	p, err := parse.ParseString(src)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func mustAnswers(t *testing.T, p *ir.Program) []*eval.Answer {
	t.Helper()
	e := eval.New(p)
	var res []*eval.Answer
	for _, q := range p.Queries {
		res = append(res, e.Evaluate(q))
	}
	return res
}

func TestTokens(t *testing.T) {
	buf := &bytes.Buffer{}
	toks := token.Tokenize([]byte("Schemes:\n a('x')"))
	if err := Tokens(buf, toks); err != nil {
		t.Fatal(err)
	}
	want := `(SCHEMES,"Schemes",1)
(COLON,":",1)
(IDENT,"a",2)
(LEFT_PAREN,"(",2)
(STRING,"x",2)
(RIGHT_PAREN,")",2)
(EOF,"",2)
Total Tokens = 7
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestTokensYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	toks := token.Tokenize([]byte("a?"))
	if err := Tokens(buf, toks, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	var got []TokenDoc
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("%v\n%s", err, buf)
	}
	want := []TokenDoc{
		{Type: "IDENT", Text: "a", Line: 1},
		{Type: "QUESTION", Text: "?", Line: 1},
		{Type: "EOF", Text: "", Line: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestDump(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Dump(buf, mustParse(t, closure), nil); err != nil {
		t.Fatal(err)
	}
	want := `Success!
Schemes(1):
  a(A,B)
Facts(2):
  a('1','2')
  a('2','3')
Rules(2):
  b(X,Y) :- a(X,Y)
  b(X,Y) :- a(X,Z),b(Z,Y)
Queries(3):
  b(X,Y)
  b('1','3')
  b('3',Y)
Domain(3):
  '1'
  '2'
  '3'
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestDumpFailure(t *testing.T) {
	p, err := parse.ParseString("Schemes:\na(A)\nFacts:\na(1).\n")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	buf := &bytes.Buffer{}
	if err := Dump(buf, p, err); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "Failure!\n  (") {
		t.Errorf("got %q", buf)
	}

	buf.Reset()
	if err := Dump(buf, p, err, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	var doc ProgramDoc
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("%v\n%s", err, buf)
	}
	if doc.Success || doc.Offending == nil {
		t.Errorf("got %+v", doc)
	}

	other := errors.New("disk on fire")
	if err := Dump(buf, nil, other); !errors.Is(err, other) {
		t.Errorf("expected %v, got %v", other, err)
	}
}

func TestAnswers(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Answers(buf, mustAnswers(t, mustParse(t, closure))); err != nil {
		t.Fatal(err)
	}
	want := `b(X,Y)? Yes(3)
  X='1', Y='2'
  X='1', Y='3'
  X='2', Y='3'
b('1','3')? Yes(1)
b('3',Y)? No
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

type answerDoc struct {
	Query    string              `yaml:"query"`
	Yes      bool                `yaml:"yes"`
	Count    int                 `yaml:"count"`
	Bindings []map[string]string `yaml:"bindings"`
}

func TestAnswersStructured(t *testing.T) {
	as := mustAnswers(t, mustParse(t, closure))
	want := []answerDoc{
		{
			Query: "b(X,Y)",
			Yes:   true,
			Count: 3,
			Bindings: []map[string]string{
				{"X": "1", "Y": "2"},
				{"X": "1", "Y": "3"},
				{"X": "2", "Y": "3"},
			},
		},
		{Query: "b('1','3')", Yes: true, Count: 1},
		{Query: "b('3',Y)"},
	}
	for _, f := range []format.Format{format.YAMLFormat, format.JSONFormat} {
		buf := &bytes.Buffer{}
		if err := Answers(buf, as, EncodeFormat(f)); err != nil {
			t.Fatal(err)
		}
		if f == format.JSONFormat && !strings.HasPrefix(buf.String(), "[") {
			t.Errorf("json output is not a list:\n%s", buf)
		}
		var got []answerDoc
		if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("%s: %v\n%s", f, err, buf)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s (-want +got)\n%s", f, diff)
		}
	}
}

func TestAnswerDocOrder(t *testing.T) {
	p := mustParse(t, "Schemes: a(A,B) Facts: a('1','2'). Rules: Queries: a(Y,X)?")
	doc := AnswerDocOf(mustAnswers(t, p)[0])
	if len(doc.Bindings) != 1 {
		t.Fatalf("got %+v", doc)
	}
	var keys []string
	for _, it := range doc.Bindings[0] {
		keys = append(keys, it.Key.(string))
	}
	if diff := cmp.Diff([]string{"Y", "X"}, keys); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestSourceRoundTrip(t *testing.T) {
	p := mustParse(t, closure)
	src := SourceString(p)
	q := mustParse(t, src)
	if diff := cmp.Diff(p.Schemes, q.Schemes); diff != "" {
		t.Errorf("schemes (-want +got)\n%s", diff)
	}
	if diff := cmp.Diff(p.Facts, q.Facts); diff != "" {
		t.Errorf("facts (-want +got)\n%s", diff)
	}
	if diff := cmp.Diff(p.Rules, q.Rules); diff != "" {
		t.Errorf("rules (-want +got)\n%s", diff)
	}
	if diff := cmp.Diff(p.Queries, q.Queries); diff != "" {
		t.Errorf("queries (-want +got)\n%s", diff)
	}
	if SourceString(q) != src {
		t.Errorf("layout not stable:\n%s", SourceString(q))
	}
}

func TestColors(t *testing.T) {
	c := &Colors{
		Default: func(s string, _ ...any) string { return s },
		Map: map[ColorAttr]func(string, ...any) string{
			YesColor: func(s string, _ ...any) string { return "<" + s + ">" },
			VarColor: func(s string, _ ...any) string { return "_" + s },
		},
	}
	p := mustParse(t, "Schemes: a(A) Facts: a('1'). Rules: Queries: a(X)?")
	buf := &bytes.Buffer{}
	if err := Answers(buf, mustAnswers(t, p), EncodeColors(c)); err != nil {
		t.Fatal(err)
	}
	want := "a(_X)? <Yes(1)>\n  _X='1'\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}

	for tt, want := range map[token.TokenType]ColorAttr{
		token.TSchemes:   KeywordColor,
		token.TQueries:   KeywordColor,
		token.TIdent:     NameColor,
		token.TString:    ConstColor,
		token.TUndefined: UndefinedColor,
		token.TColonDash: SepColor,
	} {
		if got := TokenAttr(tt); got != want {
			t.Errorf("%s: got %d want %d", tt, got, want)
		}
	}
}
