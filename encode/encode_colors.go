package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/go-datalog/token"
)

type ColorAttr int

const (
	KeywordColor ColorAttr = iota
	NameColor
	ConstColor
	VarColor
	SepColor
	HeaderColor
	YesColor
	NoColor
	UndefinedColor
	InsertColor
	DeleteColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			KeywordColor:   color.RGB(74, 92, 138).SprintfFunc(),
			NameColor:      color.RGB(128, 168, 196).SprintfFunc(),
			ConstColor:     color.RGB(8, 196, 16).SprintfFunc(),
			VarColor:       color.RGB(196, 96, 16).SprintfFunc(),
			SepColor:       color.RGB(255, 0, 196).SprintfFunc(),
			HeaderColor:    color.New(color.Bold).SprintfFunc(),
			YesColor:       color.GreenString,
			NoColor:        color.RedString,
			UndefinedColor: color.New(color.FgRed, color.Underline).SprintfFunc(),
			InsertColor:    color.GreenString,
			DeleteColor:    color.RedString,
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

// TokenAttr gives the color attribute for tokens of type tt.
func TokenAttr(tt token.TokenType) ColorAttr {
	switch {
	case tt.IsKeyword():
		return KeywordColor
	case tt == token.TIdent:
		return NameColor
	case tt == token.TString:
		return ConstColor
	case tt == token.TUndefined:
		return UndefinedColor
	}
	return SepColor
}
