package token

import (
	"fmt"
)

type TokenType int

const (
	TSchemes TokenType = iota
	TFacts
	TRules
	TQueries
	TIdent
	TString
	TLParen
	TRParen
	TComma
	TPeriod
	TQuestion
	TColon
	TColonDash
	TEOF
	TUndefined
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TSchemes:   "SCHEMES",
		TFacts:     "FACTS",
		TRules:     "RULES",
		TQueries:   "QUERIES",
		TIdent:     "IDENT",
		TString:    "STRING",
		TLParen:    "LEFT_PAREN",
		TRParen:    "RIGHT_PAREN",
		TComma:     "COMMA",
		TPeriod:    "PERIOD",
		TQuestion:  "QUESTION",
		TColon:     "COLON",
		TColonDash: "COLON_DASH",
		TEOF:       "EOF",
		TUndefined: "UNDEFINED",
	}[t]
}

// IsKeyword reports whether t is one of the section keywords.
func (t TokenType) IsKeyword() bool {
	switch t {
	case TSchemes, TFacts, TRules, TQueries:
		return true
	}
	return false
}

// Token is a lexical unit.  Line is 1-based and counts the newlines
// consumed up to and including the unit.  Col is the 1-based column of the
// unit's first character.
type Token struct {
	Type TokenType
	Line int
	Col  int
	Text string
}

func (t Token) String() string {
	return fmt.Sprintf("(%s,\"%s\",%d)", t.Type, t.Text, t.Line)
}

func (t Token) Info() string {
	return fmt.Sprintf("%s at line %d, col %d", t.Type, t.Line, t.Col)
}

// DefaultKeywords returns a fresh copy of the section keyword table.
func DefaultKeywords() map[string]TokenType {
	return map[string]TokenType{
		"Schemes": TSchemes,
		"Facts":   TFacts,
		"Rules":   TRules,
		"Queries": TQueries,
	}
}
