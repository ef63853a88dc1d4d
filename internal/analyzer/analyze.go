package analyzer

import (
	"vardecl/internal/token"
)

// Analyze validates a tokenized declaration.
//
// On success the returned table holds every declared name. On failure the
// table is nil and the error is an *Error describing the first violation
// in scan order. Tokens after the terminating `;` are not examined.
func Analyze(tokens []token.Token) (SymbolTable, error) {
	return Trace(tokens, nil)
}

// Trace is Analyze that also reports every transition to visit: the state
// before the token, the token and the state after it (StateError on failure).
func Trace(tokens []token.Token, visit func(from State, tok token.Token, to State)) (SymbolTable, error) {
	if len(tokens) == 0 {
		return nil, emptyDeclaration()
	}

	v := newValidation()
	state := StateStart
	for _, tok := range tokens {
		next, err := v.step(state, v.norm.lexeme(tok))
		if visit != nil {
			visit(state, tok, next)
		}
		if err != nil {
			return nil, err
		}
		if state = next; state == StateFinish {
			return v.table, nil
		}
	}

	return nil, missingSemicolon(tokens[len(tokens)-1])
}
