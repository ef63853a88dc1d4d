package analyzer

import (
	"math"
	"strconv"
	"unicode/utf8"

	"fortio.org/safecast"

	"vardecl/internal/diag"
	"vardecl/internal/lexer"
	"vardecl/internal/token"
)

// validation holds the mutable side of one Analyze call.
type validation struct {
	norm  *normalizer
	table SymbolTable

	// pending: объявлены, но тип ещё не назначен. Порядок сохраняется.
	pending []string
	// declared remembers where every name (pending or typed) first appeared.
	declared map[string]token.Token

	array *arrayBuilder
}

func newValidation() *validation {
	return &validation{
		norm:     newNormalizer(),
		table:    make(SymbolTable),
		declared: make(map[string]token.Token),
	}
}

// step consumes one lexeme in state s.
func (v *validation) step(s State, lx lexeme) (State, *Error) {
	tok := lx.tok

	switch s {
	case StateStart:
		if lx.is(token.KwVar) {
			return StateDefinition, nil
		}
		return StateError, unexpected(diag.SynExpectVar, tok, "`var`")

	case StateDefinition:
		if err := v.declare(lx); err != nil {
			return StateError, err
		}
		return StateIdentifier, nil

	case StateIdentifier:
		switch {
		case lx.is(token.Comma):
			return StateDefinition, nil
		case lx.is(token.Colon):
			return StateType, nil
		}
		return StateError, syntaxErrorf(diag.SynExpectCommaOrColon, tok, "`%s` should be either comma or colon", tok.Text)

	case StateType:
		switch {
		case lx.kind.IsSimpleType():
			v.bind(Simple(lx.kind))
			return StateSimpleType, nil
		case lx.is(token.KwArray):
			v.array = newArrayBuilder(tok)
			return StateArray, nil
		}
		return StateError, syntaxErrorf(diag.SynExpectType, tok,
			"`%s` should be a valid type keyword: byte, word, integer, etc.", tok.Text)

	case StateSimpleType:
		switch {
		case lx.is(token.Comma):
			return StateDefinition, nil
		case lx.is(token.Semicolon):
			return StateFinish, nil
		}
		return StateError, syntaxErrorf(diag.SynExpectCommaOrSemicolon, tok, "`%s` should be either comma or semicolon", tok.Text)

	case StateArray:
		if lx.is(token.LBracket) {
			return StateRangesStart, nil
		}
		return StateError, unexpected(diag.SynExpectLeftBracket, tok, "`[`")

	case StateRangesStart:
		if err := v.lowerBound(tok, "integer constant (start of a range)"); err != nil {
			return StateError, err
		}
		return StateFirstRangeBeginValue, nil

	case StateFirstRangeBeginValue, StateSecondRangeBeginValue:
		if !lx.is(token.Colon) {
			return StateError, unexpected(diag.SynExpectColon, tok, "`:`")
		}
		if s == StateFirstRangeBeginValue {
			return StateFirstRangeDelimiter, nil
		}
		return StateSecondRangeDelimiter, nil

	case StateFirstRangeDelimiter:
		if err := v.upperBound(tok); err != nil {
			return StateError, err
		}
		return StateFirstRangeEndValue, nil

	case StateFirstRangeEndValue:
		switch {
		case lx.is(token.Comma):
			return StateRangesDelimiter, nil
		case lx.is(token.RBracket):
			return StateRangesEnd, nil
		}
		return StateError, unexpected(diag.SynExpectCommaOrBracket, tok, "`,` or `]`")

	case StateRangesDelimiter:
		if err := v.lowerBound(tok, "integer constant"); err != nil {
			return StateError, err
		}
		return StateSecondRangeBeginValue, nil

	case StateSecondRangeDelimiter:
		if err := v.upperBound(tok); err != nil {
			return StateError, err
		}
		return StateSecondRangeEndValue, nil

	case StateSecondRangeEndValue:
		// третьего измерения нет: запятая здесь тоже ошибка
		if lx.is(token.RBracket) {
			return StateRangesEnd, nil
		}
		return StateError, unexpected(diag.SynExpectRightBracket, tok, "`]`")

	case StateRangesEnd:
		if lx.is(token.KwOf) {
			v.array.setOf(tok)
			return StateOf, nil
		}
		return StateError, unexpected(diag.SynExpectOf, tok, "`of`")

	case StateOf:
		if !lx.kind.IsSimpleType() {
			return StateError, unexpected(diag.SynExpectSimpleType, tok, "one of simple types (byte, integer, real, etc)")
		}
		v.bind(v.array.seal(lx))
		v.array = nil
		return StateArrayType, nil

	case StateArrayType:
		switch {
		case lx.is(token.Semicolon):
			return StateFinish, nil
		case lx.is(token.Comma):
			return StateDefinition, nil
		}
		return StateError, unexpected(diag.SynExpectCommaOrSemicolon, tok, "`;` or `,`")
	}

	panic("unreachable: step in state " + s.String())
}

// declare checks a new name and puts it into the pending list.
func (v *validation) declare(lx lexeme) *Error {
	tok := lx.tok
	if !lexer.IsIdentifier(tok.Text) {
		return syntaxErrorf(diag.SynExpectIdentifier, tok, "`%s` should be a valid identifier", tok.Text)
	}
	if utf8.RuneCountInString(tok.Text) > MaxIdentifierLength {
		return semanticErrorf(diag.SemaIdentTooLong, tok,
			"identifier can't be longer than %d characters", MaxIdentifierLength)
	}
	if lx.kind.IsKeyword() {
		return semanticErrorf(diag.SemaReservedWord, tok,
			"identifier can't be a reserved word: var, real, double, etc.")
	}
	if first, taken := v.declared[lx.fold]; taken {
		return duplicateIdentifier(tok, first)
	}

	v.declared[lx.fold] = tok
	v.pending = append(v.pending, lx.fold)
	return nil
}

// bind assigns typ to every pending name and clears the list.
func (v *validation) bind(typ Type) {
	for _, name := range v.pending {
		v.table[name] = typ
	}
	v.pending = v.pending[:0]
}

func (v *validation) lowerBound(tok token.Token, want string) *Error {
	value, err := parseBound(tok, want)
	if err != nil {
		return err
	}
	v.array.addBound(value, tok)
	return nil
}

func (v *validation) upperBound(tok token.Token) *Error {
	value, err := parseBound(tok, "integer constant")
	if err != nil {
		return err
	}
	if value <= v.array.low() {
		return semanticErrorf(diag.SemaRangeBoundsOrder, tok, "first bound of range should be less than second")
	}
	v.array.addBound(value, tok)
	return nil
}

// parseBound accepts an integer literal within the 16-bit signed range.
func parseBound(tok token.Token, want string) (int16, *Error) {
	if !lexer.IsInteger(tok.Text) {
		return 0, unexpected(diag.SynExpectInteger, tok, want)
	}
	n, err := strconv.ParseInt(tok.Text, 10, 64)
	if err != nil || n < math.MinInt16 || n > math.MaxInt16 {
		return 0, integerOutOfRange(tok)
	}
	value, err := safecast.Conv[int16](n)
	if err != nil {
		panic("unreachable: " + err.Error())
	}
	return value, nil
}
