// Package token defines lexemes and the keyword tables of the declaration dialect.
// Invariants:
//   - Token.Text is exactly the characters of the lexeme, case preserved.
//   - Token.Pos is a character (rune) offset into the source, not a byte offset.
//   - Spaces are never tokens; every other non-alphanumeric character is a
//     one-character token.
//   - Keyword lookup expects already normalized (lowercase) text. Case folding
//     is the validator's job, not the table's.
package token
