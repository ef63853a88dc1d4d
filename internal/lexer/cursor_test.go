package lexer

import (
	"testing"
)

// TestSequentialReading проверяет последовательное чтение: "a\nб" → a, \n, б, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor([]rune("a\nб"))

	for _, want := range []rune{'a', '\n', 'б'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Errorf("Peek() = %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Errorf("Bump() = %q, want %q", got, want)
		}
	}

	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("Peek/Bump past the end must return 0")
	}
	if cursor.Off != 3 {
		t.Errorf("Off = %d, want 3 (characters, not bytes)", cursor.Off)
	}
}

func TestMarkTextFromReset(t *testing.T) {
	cursor := NewCursor([]rune("var x"))
	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	cursor.Bump()
	if got := cursor.TextFrom(m); got != "var" {
		t.Fatalf("TextFrom = %q", got)
	}
	cursor.Reset(m)
	if cursor.Off != 0 || cursor.Peek() != 'v' {
		t.Fatalf("Reset did not rewind: off=%d", cursor.Off)
	}
}
