package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"vardecl/internal/lexer"
	"vardecl/internal/token"
)

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%q@%d", tok.Text, tok.Pos)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// expectTokens проверяет последовательность токенов и их позиции
func expectTokens(t *testing.T, input string, expected []token.Token) {
	t.Helper()
	tokens := lexer.Tokenize(input)
	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %s",
			len(expected), len(tokens), input, tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok != expected[i] {
			t.Errorf("Token %d: expected %q@%d, got %q@%d", i, expected[i].Text, expected[i].Pos, tok.Text, tok.Pos)
		}
	}
}

func TestTokenize_Declaration(t *testing.T) {
	expectTokens(t, "VAR A,K:ARRAY[2:10,10:40] OF BYTE;", []token.Token{
		{Text: "VAR", Pos: 0}, {Text: "A", Pos: 4}, {Text: ",", Pos: 5}, {Text: "K", Pos: 6}, {Text: ":", Pos: 7}, {Text: "ARRAY", Pos: 8}, {Text: "[", Pos: 13},
		{Text: "2", Pos: 14}, {Text: ":", Pos: 15}, {Text: "10", Pos: 16}, {Text: ",", Pos: 18}, {Text: "10", Pos: 19}, {Text: ":", Pos: 21}, {Text: "40", Pos: 22},
		{Text: "]", Pos: 24}, {Text: "OF", Pos: 26}, {Text: "BYTE", Pos: 29}, {Text: ";", Pos: 33},
	})
}

func TestTokenize_SpacesAreDropped(t *testing.T) {
	expectTokens(t, "   var    a  ", []token.Token{{Text: "var", Pos: 3}, {Text: "a", Pos: 10}})
}

func TestTokenize_Empty(t *testing.T) {
	expectTokens(t, "", nil)
	expectTokens(t, "     ", nil)
}

func TestTokenize_SignIsItsOwnToken(t *testing.T) {
	// знак не является буквенно-цифровым символом, поэтому отделяется
	expectTokens(t, "[-5:+7]", []token.Token{
		{Text: "[", Pos: 0}, {Text: "-", Pos: 1}, {Text: "5", Pos: 2}, {Text: ":", Pos: 3}, {Text: "+", Pos: 4}, {Text: "7", Pos: 5}, {Text: "]", Pos: 6},
	})
}

func TestTokenize_OtherWhitespaceIsPunctuation(t *testing.T) {
	expectTokens(t, "a\tb\nc", []token.Token{{Text: "a", Pos: 0}, {Text: "\t", Pos: 1}, {Text: "b", Pos: 2}, {Text: "\n", Pos: 3}, {Text: "c", Pos: 4}})
}

func TestTokenize_AdjacentPunctuation(t *testing.T) {
	expectTokens(t, "a:=;;", []token.Token{{Text: "a", Pos: 0}, {Text: ":", Pos: 1}, {Text: "=", Pos: 2}, {Text: ";", Pos: 3}, {Text: ";", Pos: 4}})
}

func TestTokenize_UnicodePositionsAreCharacters(t *testing.T) {
	expectTokens(t, "var ёж,x1: byte", []token.Token{
		{Text: "var", Pos: 0}, {Text: "ёж", Pos: 4}, {Text: ",", Pos: 6}, {Text: "x1", Pos: 7}, {Text: ":", Pos: 9}, {Text: "byte", Pos: 11},
	})
}

func TestTokenize_FinalRunIsFlushed(t *testing.T) {
	expectTokens(t, "abc12", []token.Token{{Text: "abc12", Pos: 0}})
}

// Склеивание текстов токенов восстанавливает все непробельные символы исходника.
func TestTokenize_RoundTrip(t *testing.T) {
	inputs := []string{
		"var a, k: array[2:10,10:40] of byte, d17,e7: word;",
		"  x ,, y;;[]  ",
		"\t\tvar\n  q:real ;",
		"привет мир: char;",
		"",
	}
	for _, in := range inputs {
		var b strings.Builder
		for _, tok := range lexer.Tokenize(in) {
			b.WriteString(tok.Text)
		}
		want := strings.ReplaceAll(in, " ", "")
		if b.String() != want {
			t.Errorf("round trip of %q = %q, want %q", in, b.String(), want)
		}
	}
}

func TestTokenize_PositionsSliceSource(t *testing.T) {
	in := "var ñandú, b2 : array [ 1 : 9 ] of char ;"
	runes := []rune(in)
	for _, tok := range lexer.Tokenize(in) {
		got := string(runes[tok.Pos:tok.End()])
		if got != tok.Text {
			t.Errorf("source[%d:%d] = %q, token text %q", tok.Pos, tok.End(), got, tok.Text)
		}
	}
}

func TestLexer_NextAfterEnd(t *testing.T) {
	lx := lexer.New([]rune("a"))
	if _, ok := lx.Next(); !ok {
		t.Fatal("expected one token")
	}
	for range 3 {
		if _, ok := lx.Next(); ok {
			t.Fatal("Next after end must keep returning ok=false")
		}
	}
}
