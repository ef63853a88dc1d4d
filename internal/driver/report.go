package driver

import (
	"vardecl/internal/analyzer"
	"vardecl/internal/diag"
	"vardecl/internal/source"
)

// reportRejection emits the analyzer rejection as a diagnostic inside file.
func reportRejection(r diag.Reporter, err *analyzer.Error, file source.FileID) {
	primary := source.Span{File: file, Start: err.Pos(), End: err.End()}
	b := diag.ReportError(r, err.Code(), primary, err.Message())

	if first, ok := err.Related(); ok {
		b.WithNote(first.Span(file), "previously declared here")
	}
	if err.Code() == diag.SynExpectSemicolon {
		at := source.Span{File: file, Start: err.Pos(), End: err.Pos()}
		b.WithFix("insert `;`", diag.FixEdit{Span: at, NewText: ";"})
	}
	b.Emit()
}
