package analyzer

import (
	"strings"

	"vardecl/internal/token"
)

// bound keeps a parsed array bound next to the lexeme it came from.
type bound struct {
	value int16
	text  string
}

// arrayBuilder collects an array type while the automaton walks through
// `array [ lo : hi {, lo : hi} ] of elem`. It is started at `array`, fed on
// every array state transition and sealed at the element type.
type arrayBuilder struct {
	keyword string
	bounds  []bound
	of      string
}

func newArrayBuilder(keyword token.Token) *arrayBuilder {
	return &arrayBuilder{keyword: keyword.Text, bounds: make([]bound, 0, 4)}
}

func (b *arrayBuilder) addBound(value int16, tok token.Token) {
	b.bounds = append(b.bounds, bound{value: value, text: tok.Text})
}

// low is the lower bound of the dimension being read.
func (b *arrayBuilder) low() int16 {
	return b.bounds[len(b.bounds)-1].value
}

func (b *arrayBuilder) setOf(tok token.Token) {
	b.of = tok.Text
}

func (b *arrayBuilder) seal(elem lexeme) Type {
	dims := make([]Range, 0, len(b.bounds)/2)
	for i := 0; i+1 < len(b.bounds); i += 2 {
		dims = append(dims, Range{Low: b.bounds[i].value, High: b.bounds[i+1].value})
	}
	return Type{
		Elem: elem.kind,
		Dims: dims,
		text: formatArray(b.keyword, b.bounds, b.of, elem.tok.Text),
	}
}

// formatArray is the one place the array serialization is defined:
//
//	array[2:10,10:40] of byte
//
// Keyword spelling is taken from the source lexemes.
func formatArray(keyword string, bounds []bound, of, elem string) string {
	var sb strings.Builder
	sb.WriteString(keyword)
	sb.WriteByte('[')
	for i, b := range bounds {
		if i > 0 {
			if i%2 == 1 {
				sb.WriteByte(':')
			} else {
				sb.WriteByte(',')
			}
		}
		sb.WriteString(b.text)
	}
	sb.WriteString("] ")
	sb.WriteString(of)
	sb.WriteByte(' ')
	sb.WriteString(elem)
	return sb.String()
}
