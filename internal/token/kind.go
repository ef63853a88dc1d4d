package token

// Kind represents the category of a keyword or punctuation lexeme.
type Kind uint8

const (
	// Invalid marks text that is neither a keyword nor known punctuation.
	Invalid Kind = iota

	KwVar     // var
	KwByte    // byte
	KwWord    // word
	KwInteger // integer
	KwReal    // real
	KwChar    // char
	KwDouble  // double
	KwArray   // array
	KwOf      // of

	Comma     // ,
	Colon     // :
	Semicolon // ;
	LBracket  // [
	RBracket  // ]
)

var kindNames = [...]string{
	Invalid:   "invalid",
	KwVar:     "var",
	KwByte:    "byte",
	KwWord:    "word",
	KwInteger: "integer",
	KwReal:    "real",
	KwChar:    "char",
	KwDouble:  "double",
	KwArray:   "array",
	KwOf:      "of",
	Comma:     ",",
	Colon:     ":",
	Semicolon: ";",
	LBracket:  "[",
	RBracket:  "]",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= KwVar && k <= KwOf
}

// IsSimpleType reports whether k names one of the primitive element types.
func (k Kind) IsSimpleType() bool {
	return k >= KwByte && k <= KwDouble
}

// IsPunct reports whether k is a punctuation kind.
func (k Kind) IsPunct() bool {
	return k >= Comma && k <= RBracket
}
