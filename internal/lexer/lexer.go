package lexer

import (
	"vardecl/internal/source"
	"vardecl/internal/token"
)

// Lexer splits declaration text into positioned lexemes. It never fails:
// malformed input still produces tokens and is rejected later by the validator.
type Lexer struct {
	cursor Cursor
}

// New creates a lexer over the characters of src.
func New(src []rune) *Lexer {
	return &Lexer{cursor: NewCursor(src)}
}

// NewFile creates a lexer over a loaded source file.
func NewFile(f *source.File) *Lexer {
	return New(f.Runes)
}

// Next возвращает следующий токен; ok == false после конца ввода.
//
// Rules, in priority order: a run of alphanumeric characters forms one token;
// a space ends the current run and is dropped; any other character ends the
// current run and becomes a token of its own.
func (lx *Lexer) Next() (tok token.Token, ok bool) {
	for !lx.cursor.EOF() && lx.cursor.Peek() == ' ' {
		lx.cursor.Bump()
	}
	if lx.cursor.EOF() {
		return token.Token{}, false
	}

	start := lx.cursor.Mark()
	if isAlnum(lx.cursor.Bump()) {
		for !lx.cursor.EOF() && isAlnum(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	return token.New(lx.cursor.TextFrom(start), uint32(start)), true
}

// All drains the lexer.
func (lx *Lexer) All() []token.Token {
	tokens := make([]token.Token, 0, 16)
	for {
		tok, ok := lx.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Tokenize splits text into tokens. Positions are character offsets.
func Tokenize(text string) []token.Token {
	return New([]rune(text)).All()
}
