package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/go-datalog/eval"
	"github.com/signadot/go-datalog/format"
	"github.com/signadot/go-datalog/ir"
	"github.com/signadot/go-datalog/parse"
	"github.com/signadot/go-datalog/token"
)

type EncState struct {
	indent string
	format format.Format
	Color  func(ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: "  "}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

// Tokens writes one line per token followed by the token count.
func Tokens(w io.Writer, toks []token.Token, opts ...EncodeOption) error {
	es := newEncState(opts)
	if es.format.IsStructured() {
		return writeDoc(w, es, TokensDoc(toks))
	}
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(es.token(t))
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Total Tokens = %d\n", len(toks))
	return writeString(w, sb.String())
}

func (es *EncState) token(t token.Token) string {
	if es.Color == nil {
		return t.String()
	}
	return fmt.Sprintf("(%s,\"%s\",%d)",
		es.color(TokenAttr(t.Type), t.Type.String()), t.Text, t.Line)
}

// Dump writes the outcome of parsing a program.  If err carries a
// *parse.Error, the offending token is reported; any other non-nil err is
// returned.
func Dump(w io.Writer, p *ir.Program, err error, opts ...EncodeOption) error {
	es := newEncState(opts)
	var perr *parse.Error
	if err != nil && !errors.As(err, &perr) {
		return err
	}
	if es.format.IsStructured() {
		return writeDoc(w, es, ProgramDocOf(p, perr))
	}
	var sb strings.Builder
	if perr != nil {
		sb.WriteString(es.color(NoColor, "Failure!"))
		sb.WriteByte('\n')
		sb.WriteString(es.indent + es.token(perr.Token) + "\n")
		return writeString(w, sb.String())
	}
	sb.WriteString(es.color(YesColor, "Success!"))
	sb.WriteByte('\n')
	section := func(name string, items []string) {
		sb.WriteString(es.color(HeaderColor, fmt.Sprintf("%s(%d):", name, len(items))))
		sb.WriteByte('\n')
		for _, it := range items {
			sb.WriteString(es.indent + it + "\n")
		}
	}
	section("Schemes", es.predicates(p.Schemes))
	section("Facts", es.predicates(p.Facts))
	section("Rules", es.rules(p.Rules))
	section("Queries", es.predicates(p.Queries))
	dom := p.Domain()
	for i, v := range dom {
		dom[i] = es.color(ConstColor, "'"+v+"'")
	}
	section("Domain", dom)
	return writeString(w, sb.String())
}

// Answer writes a as `q? Yes(n)` with one indented line per binding, or
// as `q? No`.
func Answer(w io.Writer, a *eval.Answer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if es.format.IsStructured() {
		return writeDoc(w, es, AnswerDocOf(a))
	}
	return writeString(w, es.answer(a))
}

// Answers writes each answer in order.  Structured formats write a single
// list.
func Answers(w io.Writer, as []*eval.Answer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if es.format.IsStructured() {
		docs := make([]AnswerDoc, len(as))
		for i, a := range as {
			docs[i] = AnswerDocOf(a)
		}
		return writeDoc(w, es, docs)
	}
	var sb strings.Builder
	for _, a := range as {
		sb.WriteString(es.answer(a))
	}
	return writeString(w, sb.String())
}

func (es *EncState) answer(a *eval.Answer) string {
	var sb strings.Builder
	sb.WriteString(es.predicate(a.Query))
	sb.WriteString("? ")
	if !a.Satisfiable() {
		sb.WriteString(es.color(NoColor, "No"))
		sb.WriteByte('\n')
		return sb.String()
	}
	sb.WriteString(es.color(YesColor, fmt.Sprintf("Yes(%d)", len(a.Bindings))))
	sb.WriteByte('\n')
	if len(a.Vars) == 0 {
		return sb.String()
	}
	for _, b := range a.Bindings {
		sb.WriteString(es.indent)
		for i, asg := range b {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(es.color(VarColor, asg.Name))
			sb.WriteByte('=')
			sb.WriteString(es.color(ConstColor, "'"+asg.Value+"'"))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (es *EncState) predicate(p ir.Predicate) string {
	if es.Color == nil {
		return p.String()
	}
	var sb strings.Builder
	sb.WriteString(es.color(NameColor, p.Name))
	sb.WriteByte('(')
	for i, t := range p.Terms {
		if i > 0 {
			sb.WriteByte(',')
		}
		if t.IsVar {
			sb.WriteString(es.color(VarColor, t.String()))
		} else {
			sb.WriteString(es.color(ConstColor, t.String()))
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

func (es *EncState) predicates(ps []ir.Predicate) []string {
	res := make([]string, len(ps))
	for i, p := range ps {
		res[i] = es.predicate(p)
	}
	return res
}

func (es *EncState) rule(r ir.Rule) string {
	if es.Color == nil {
		return r.String()
	}
	body := make([]string, len(r.Body))
	for i, b := range r.Body {
		body[i] = es.predicate(b)
	}
	return es.predicate(r.Head) + es.color(SepColor, " :- ") + strings.Join(body, ",")
}

func (es *EncState) rules(rs []ir.Rule) []string {
	res := make([]string, len(rs))
	for i, r := range rs {
		res[i] = es.rule(r)
	}
	return res
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
