package token

var keywords = map[string]Kind{
	"var":     KwVar,
	"byte":    KwByte,
	"word":    KwWord,
	"integer": KwInteger,
	"real":    KwReal,
	"char":    KwChar,
	"double":  KwDouble,
	"array":   KwArray,
	"of":      KwOf,
}

var puncts = map[string]Kind{
	",": Comma,
	":": Colon,
	";": Semicolon,
	"[": LBracket,
	"]": RBracket,
}

// LookupKeyword возвращает тип и bool если это зарезервированное слово.
// Таблица регистрозависимая: на вход ожидается уже нормализованный (lowercase) текст.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// LookupPunct maps a one-character lexeme to its punctuation kind.
func LookupPunct(text string) (Kind, bool) {
	k, ok := puncts[text]
	return k, ok
}

// SimpleTypes lists the primitive type keywords in declaration order.
func SimpleTypes() []Kind {
	return []Kind{KwByte, KwWord, KwInteger, KwReal, KwChar, KwDouble}
}
