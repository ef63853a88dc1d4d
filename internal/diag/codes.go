package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Синтаксические
	SynInfo                   Code = 2000
	SynUnexpectedToken        Code = 2001
	SynExpectVar              Code = 2002
	SynEmptyDeclaration       Code = 2003
	SynExpectIdentifier       Code = 2004
	SynExpectCommaOrColon     Code = 2005
	SynExpectType             Code = 2006
	SynExpectCommaOrSemicolon Code = 2007
	SynExpectLeftBracket      Code = 2008
	SynExpectInteger          Code = 2009
	SynExpectColon            Code = 2010
	SynExpectCommaOrBracket   Code = 2011
	SynExpectRightBracket     Code = 2012
	SynExpectOf               Code = 2013
	SynExpectSimpleType       Code = 2014
	SynExpectSemicolon        Code = 2015

	// Семантические
	SemaInfo                 Code = 3000
	SemaError                Code = 3001
	SemaDuplicateSymbol      Code = 3002
	SemaIdentTooLong         Code = 3003
	SemaReservedWord         Code = 3004
	SemaIntLiteralOutOfRange Code = 3005
	SemaRangeBoundsOrder     Code = 3006

	// Ошибки I/O
	IOLoadFileError Code = 4001

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:               "Unknown error",
	SynInfo:                   "Syntax information",
	SynUnexpectedToken:        "Unexpected token",
	SynExpectVar:              "Expect `var` keyword",
	SynEmptyDeclaration:       "Empty declaration",
	SynExpectIdentifier:       "Expect identifier",
	SynExpectCommaOrColon:     "Expect comma or colon",
	SynExpectType:             "Expect type",
	SynExpectCommaOrSemicolon: "Expect comma or semicolon",
	SynExpectLeftBracket:      "Expect `[`",
	SynExpectInteger:          "Expect integer constant",
	SynExpectColon:            "Expect colon",
	SynExpectCommaOrBracket:   "Expect comma or `]`",
	SynExpectRightBracket:     "Expect `]`",
	SynExpectOf:               "Expect `of` keyword",
	SynExpectSimpleType:       "Expect simple type",
	SynExpectSemicolon:        "Expect semicolon",
	SemaInfo:                  "Semantic information",
	SemaError:                 "Semantic error",
	SemaDuplicateSymbol:       "Duplicate identifier",
	SemaIdentTooLong:          "Identifier too long",
	SemaReservedWord:          "Reserved word used as identifier",
	SemaIntLiteralOutOfRange:  "Integer constant out of range",
	SemaRangeBoundsOrder:      "Range bounds out of order",
	IOLoadFileError:           "Failed to load file",
	ObsInfo:                   "Observability information",
	ObsTimings:                "Timings",
}

// ID returns the stable textual identifier, e.g. SYN2015.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// IsSyntax reports whether the code belongs to the syntax range.
func (c Code) IsSyntax() bool {
	return c >= 2000 && c < 3000
}

// IsSemantic reports whether the code belongs to the semantic range.
func (c Code) IsSemantic() bool {
	return c >= 3000 && c < 4000
}
