package analyzer

import (
	"fmt"

	"vardecl/internal/diag"
	"vardecl/internal/token"
)

// Kind classifies a rejection.
type Kind uint8

const (
	// Syntax: the token does not fit the expected production.
	Syntax Kind = iota
	// Semantic: the token fits the grammar but breaks a language rule.
	Semantic
)

func (k Kind) String() string {
	if k == Semantic {
		return "semantic"
	}
	return "syntax"
}

// Error is the single positioned failure of an Analyze call.
// Pos and Len are character offsets into the analyzed text.
type Error struct {
	kind    Kind
	code    diag.Code
	pos     uint32
	length  uint32
	msg     string
	related *token.Token
}

func (e *Error) Error() string {
	return fmt.Sprintf("error at char %d: %s error: %s", e.pos, e.kind, e.msg)
}

func (e *Error) Kind() Kind       { return e.kind }
func (e *Error) Code() diag.Code  { return e.code }
func (e *Error) Pos() uint32      { return e.pos }
func (e *Error) Len() uint32      { return e.length }
func (e *Error) Message() string  { return e.msg }
func (e *Error) End() uint32      { return e.pos + e.length }
func (e *Error) IsSyntax() bool   { return e.kind == Syntax }
func (e *Error) IsSemantic() bool { return e.kind == Semantic }

// Related returns the earlier declaration a duplicate-name error refers to.
func (e *Error) Related() (token.Token, bool) {
	if e.related == nil {
		return token.Token{}, false
	}
	return *e.related, true
}

func syntaxErrorf(code diag.Code, tok token.Token, format string, args ...any) *Error {
	return &Error{
		kind:   Syntax,
		code:   code,
		pos:    tok.Pos,
		length: tok.Len(),
		msg:    fmt.Sprintf(format, args...),
	}
}

func semanticErrorf(code diag.Code, tok token.Token, format string, args ...any) *Error {
	return &Error{
		kind:   Semantic,
		code:   code,
		pos:    tok.Pos,
		length: tok.Len(),
		msg:    fmt.Sprintf(format, args...),
	}
}

// unexpected reports tok in place of what the state wanted.
func unexpected(code diag.Code, tok token.Token, want string) *Error {
	return syntaxErrorf(code, tok, "expected %s, found `%s`", want, tok.Text)
}

func integerOutOfRange(tok token.Token) *Error {
	return semanticErrorf(diag.SemaIntLiteralOutOfRange, tok,
		"integer constant should be in range [%d, %d], actual: %s", minBound, maxBound, tok.Text)
}

func duplicateIdentifier(tok, first token.Token) *Error {
	err := semanticErrorf(diag.SemaDuplicateSymbol, tok, "identifier `%s` already taken", tok.Text)
	err.related = &first
	return err
}

func emptyDeclaration() *Error {
	return &Error{
		kind: Syntax,
		code: diag.SynEmptyDeclaration,
		msg:  "var declaration should start with the `var` keyword",
	}
}

// missingSemicolon points one character past the last token.
func missingSemicolon(last token.Token) *Error {
	return &Error{
		kind:   Syntax,
		code:   diag.SynExpectSemicolon,
		pos:    last.End(),
		length: 1,
		msg:    "expected semicolon at the end",
	}
}
