package diagfmt

import (
	"fmt"

	"vardecl/internal/diag"
	"vardecl/internal/source"
)

type fixEditPreview struct {
	before string
	after  string
}

// buildFixEditPreview renders the line an edit touches before and after it is applied.
// Edits spanning several lines are not previewed.
func buildFixEditPreview(fs *source.FileSet, edit diag.FixEdit) (fixEditPreview, error) {
	if fs == nil {
		return fixEditPreview{}, fmt.Errorf("nil FileSet")
	}
	file := fs.Get(edit.Span.File)
	if file == nil {
		return fixEditPreview{}, fmt.Errorf("file %d not found in FileSet", edit.Span.File)
	}

	startPos, endPos := fs.Resolve(edit.Span)
	if startPos.Line != endPos.Line {
		return fixEditPreview{}, fmt.Errorf("edit spans lines %d-%d", startPos.Line, endPos.Line)
	}

	line := file.GetLine(startPos.Line)
	width := edit.Span.Len()
	before, _, after := source.Split(line, startPos.Col-1, width)

	return fixEditPreview{
		before: line,
		after:  before + edit.NewText + after,
	}, nil
}
