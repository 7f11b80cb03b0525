package encode

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/go-datalog/eval"
	"github.com/signadot/go-datalog/format"
	"github.com/signadot/go-datalog/ir"
	"github.com/signadot/go-datalog/parse"
	"github.com/signadot/go-datalog/token"
)

// TokenDoc is the structured form of a token.
type TokenDoc struct {
	Type string `yaml:"type" json:"type"`
	Text string `yaml:"text" json:"text"`
	Line int    `yaml:"line" json:"line"`
}

func TokenDocOf(t token.Token) TokenDoc {
	return TokenDoc{Type: t.Type.String(), Text: t.Text, Line: t.Line}
}

func TokensDoc(toks []token.Token) []TokenDoc {
	res := make([]TokenDoc, len(toks))
	for i, t := range toks {
		res[i] = TokenDocOf(t)
	}
	return res
}

// ProgramDoc is the structured form of a program dump.
type ProgramDoc struct {
	Success   bool      `yaml:"success" json:"success"`
	Offending *TokenDoc `yaml:"offending,omitempty" json:"offending,omitempty"`
	Schemes   []string  `yaml:"schemes,omitempty" json:"schemes,omitempty"`
	Facts     []string  `yaml:"facts,omitempty" json:"facts,omitempty"`
	Rules     []string  `yaml:"rules,omitempty" json:"rules,omitempty"`
	Queries   []string  `yaml:"queries,omitempty" json:"queries,omitempty"`
	Domain    []string  `yaml:"domain,omitempty" json:"domain,omitempty"`
}

func ProgramDocOf(p *ir.Program, perr *parse.Error) ProgramDoc {
	if perr != nil {
		td := TokenDocOf(perr.Token)
		return ProgramDoc{Offending: &td}
	}
	doc := ProgramDoc{Success: true, Domain: p.Domain()}
	for _, s := range p.Schemes {
		doc.Schemes = append(doc.Schemes, s.String())
	}
	for _, f := range p.Facts {
		doc.Facts = append(doc.Facts, f.String())
	}
	for _, r := range p.Rules {
		doc.Rules = append(doc.Rules, r.String())
	}
	for _, q := range p.Queries {
		doc.Queries = append(doc.Queries, q.String())
	}
	return doc
}

// AnswerDoc is the structured form of an answer.  Each binding keeps the
// order of the query's variables.
type AnswerDoc struct {
	Query    string          `yaml:"query" json:"query"`
	Yes      bool            `yaml:"yes" json:"yes"`
	Count    int             `yaml:"count" json:"count"`
	Bindings []yaml.MapSlice `yaml:"bindings,omitempty" json:"bindings,omitempty"`
}

func AnswerDocOf(a *eval.Answer) AnswerDoc {
	doc := AnswerDoc{
		Query: a.Query.String(),
		Yes:   a.Satisfiable(),
		Count: len(a.Bindings),
	}
	if len(a.Vars) == 0 {
		return doc
	}
	for _, b := range a.Bindings {
		ms := make(yaml.MapSlice, len(b))
		for i, asg := range b {
			ms[i] = yaml.MapItem{Key: asg.Name, Value: asg.Value}
		}
		doc.Bindings = append(doc.Bindings, ms)
	}
	return doc
}

func writeDoc(w io.Writer, es *EncState, v any) error {
	var yopts []yaml.EncodeOption
	if es.format == format.JSONFormat {
		yopts = append(yopts, yaml.JSON())
	}
	d, err := yaml.MarshalWithOptions(v, yopts...)
	if err != nil {
		return err
	}
	if len(d) > 0 && d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}
