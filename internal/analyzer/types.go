package analyzer

import (
	"maps"
	"slices"

	"vardecl/internal/token"
)

const (
	// MaxIdentifierLength ограничивает длину имени (в символах).
	MaxIdentifierLength = 8

	minBound = -32768
	maxBound = 32767
)

// Range is one array dimension, Low < High.
type Range struct {
	Low  int16 `json:"low" msgpack:"low"`
	High int16 `json:"high" msgpack:"high"`
}

// Type describes what an identifier was declared as: a simple type, or an
// array of a simple type with one or two dimensions.
type Type struct {
	Elem token.Kind
	Dims []Range

	// text is the array serialization captured while the declaration was read.
	text string
}

// Simple returns the descriptor of a simple type keyword.
func Simple(k token.Kind) Type {
	return Type{Elem: k}
}

func (t Type) IsArray() bool {
	return len(t.Dims) > 0
}

// String is the canonical form: `byte`, or `array[1:10,0:3] of byte`.
func (t Type) String() string {
	if !t.IsArray() {
		return t.Elem.String()
	}
	return t.text
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// SymbolTable maps lowercase identifier names to their types.
type SymbolTable map[string]Type

// Names returns the declared names in lexical order.
func (st SymbolTable) Names() []string {
	return slices.Sorted(maps.Keys(st))
}

// Strings flattens the table to name -> canonical type text.
func (st SymbolTable) Strings() map[string]string {
	out := make(map[string]string, len(st))
	for name, typ := range st {
		out[name] = typ.String()
	}
	return out
}
