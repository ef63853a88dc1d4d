package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"vardecl/internal/lexer"
	"vardecl/internal/source"
	"vardecl/internal/token"
)

type TokenOutput struct {
	Class string `json:"class"`
	Text  string `json:"text"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// tokenClass is a display label only; the validator does its own matching.
func tokenClass(tok token.Token) string {
	if k, ok := token.LookupKeyword(strings.ToLower(tok.Text)); ok {
		return "keyword:" + k.String()
	}
	if k, ok := tok.Punct(); ok {
		return "punct:" + k.String()
	}
	switch {
	case lexer.IsInteger(tok.Text):
		return "integer"
	case lexer.IsIdentifier(tok.Text):
		return "identifier"
	}
	return "other"
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet, file source.FileID) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span(file))
		if _, err := fmt.Fprintf(w, "%3d: %-18s %q at %d:%d-%d:%d\n",
			i+1, tokenClass(tok), tok.Text,
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col); err != nil {
			return err
		}
	}
	return nil
}

// Tokens converts tokens to their serializable form.
func Tokens(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Class: tokenClass(tok),
			Text:  tok.Text,
			Start: tok.Pos,
			End:   tok.End(),
		})
	}
	return output
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	return encodeJSON(w, Tokens(tokens))
}
