package analyzer

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"vardecl/internal/token"
)

// normalizer folds lexemes once, as they enter the automaton. A Caser keeps
// internal state, so each Analyze call owns its own.
type normalizer struct {
	caser cases.Caser
}

func newNormalizer() *normalizer {
	return &normalizer{caser: cases.Lower(language.Und)}
}

// lexeme is a token together with its folded text and keyword/punct kind.
type lexeme struct {
	tok  token.Token
	fold string
	kind token.Kind
}

func (n *normalizer) lexeme(tok token.Token) lexeme {
	lx := lexeme{tok: tok, fold: n.caser.String(tok.Text)}
	if k, ok := token.LookupKeyword(lx.fold); ok {
		lx.kind = k
	} else if k, ok := tok.Punct(); ok {
		lx.kind = k
	}
	return lx
}

func (lx lexeme) is(k token.Kind) bool {
	return lx.kind == k
}
