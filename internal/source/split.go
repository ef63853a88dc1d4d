package source

// Split cuts text around a character span into the part before it, the part
// it covers and the part after it. Offsets past the end are clamped, so the
// one-past-the-end span of a missing terminator yields an empty lexeme.
//
// Front ends highlight the offending lexeme by printing the three parts with
// the middle one emphasised.
func Split(text string, start, length uint32) (before, lexeme, after string) {
	runes := []rune(text)
	n := mustU32(len(runes))
	if start > n {
		start = n
	}
	end := start + length
	if end > n || end < start {
		end = n
	}
	return string(runes[:start]), string(runes[start:end]), string(runes[end:])
}

// Split applies the package-level Split to the span inside f.
func (f *File) Split(span Span) (before, lexeme, after string) {
	return Split(string(f.Runes), span.Start, span.Len())
}
