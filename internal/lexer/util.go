package lexer

import "unicode"

// ===== Классификаторы символов =====

// isAlnum decides what accumulates into a word token.
func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isLetter(r rune) bool { return unicode.IsLetter(r) }

// isDec accepts ASCII digits only; other Unicode digits are letters-or-numbers
// for the tokenizer but never digits for the classifiers.
func isDec(r rune) bool { return r >= '0' && r <= '9' }

func isSign(r rune) bool { return r == '+' || r == '-' }
