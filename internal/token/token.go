package token

import (
	"unicode/utf8"

	"fortio.org/safecast"

	"vardecl/internal/source"
)

// Token is a positioned lexeme.
type Token struct {
	Text string
	Pos  uint32
}

// New builds a token; pos is a character offset.
func New(text string, pos uint32) Token {
	return Token{Text: text, Pos: pos}
}

// Len returns the lexeme length in characters.
func (t Token) Len() uint32 {
	n, err := safecast.Conv[uint32](utf8.RuneCountInString(t.Text))
	if err != nil {
		panic(err)
	}
	return n
}

// End returns the offset just past the lexeme.
func (t Token) End() uint32 {
	return t.Pos + t.Len()
}

// Span places the token inside the given file.
func (t Token) Span(file source.FileID) source.Span {
	return source.Span{File: file, Start: t.Pos, End: t.End()}
}

// Punct reports the punctuation kind of a one-character token.
func (t Token) Punct() (Kind, bool) {
	return LookupPunct(t.Text)
}
