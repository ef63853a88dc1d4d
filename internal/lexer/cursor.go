package lexer

import (
	"fmt"

	"fortio.org/safecast"
)

// Cursor представляет собой позицию в последовательности символов
type Cursor struct {
	Src []rune
	Off uint32
}

// NewCursor creates a cursor at the beginning of src.
func NewCursor(src []rune) Cursor {
	if _, err := safecast.Conv[uint32](len(src)); err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}
	return Cursor{Src: src}
}

// EOF проверяет, достигнут ли конец ввода
func (c *Cursor) EOF() bool {
	return int(c.Off) >= len(c.Src)
}

// Peek читает текущий символ, если есть, иначе возвращает 0
func (c *Cursor) Peek() rune {
	if c.EOF() {
		return 0
	}
	return c.Src[c.Off]
}

// Bump перемещает курсор на один символ вперед и возвращает прочитанный символ
func (c *Cursor) Bump() rune {
	if c.EOF() {
		return 0
	}
	r := c.Src[c.Off]
	c.Off++
	return r
}

// Mark это метка начала читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// TextFrom returns the characters between m and the current position.
func (c *Cursor) TextFrom(m Mark) string {
	return string(c.Src[uint32(m):c.Off])
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}
