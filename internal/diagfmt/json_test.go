package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"vardecl/internal/diag"
	"vardecl/internal/source"
)

// TestJSONBasic проверяет базовое JSON форматирование
func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.var", []byte("var a,\nA: byte;"))

	bag := diag.NewBag(10)
	d := diag.NewError(diag.SemaDuplicateSymbol, source.Span{File: fileID, Start: 7, End: 8}, "identifier `A` already taken").
		WithNote(source.Span{File: fileID, Start: 4, End: 5}, "previously declared here")
	bag.Add(d)

	var buf bytes.Buffer
	err := JSON(&buf, bag, fs, JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
	})
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}
	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %d", output.Count)
	}

	got := output.Diagnostics[0]
	if got.Severity != "ERROR" || got.Code != "SEM3002" {
		t.Errorf("severity/code = %s/%s", got.Severity, got.Code)
	}
	loc := got.Location
	if loc.File != "test.var" || loc.Start != 7 || loc.End != 8 {
		t.Errorf("location = %+v", loc)
	}
	if loc.StartLine != 2 || loc.StartCol != 1 {
		t.Errorf("line/col = %d:%d, want 2:1", loc.StartLine, loc.StartCol)
	}
	if got.Highlight == nil || got.Highlight.Before != "var a,\n" || got.Highlight.Lexeme != "A" || got.Highlight.After != ": byte;" {
		t.Errorf("highlight = %+v", got.Highlight)
	}
	if len(got.Notes) != 1 || got.Notes[0].Location.Start != 4 {
		t.Errorf("notes = %+v", got.Notes)
	}
}

func TestJSONMaxAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.var", []byte("var a: byte"))

	bag := diag.NewBag(10)
	insert := source.Span{File: fileID, Start: 11, End: 11}
	bag.Add(diag.NewError(diag.SynExpectSemicolon, source.Span{File: fileID, Start: 11, End: 12}, "expected semicolon at the end").
		WithFix("insert `;`", diag.FixEdit{Span: insert, NewText: ";"}))
	bag.Add(diag.NewError(diag.SynExpectSemicolon, source.Span{File: fileID, Start: 11, End: 12}, "second"))

	output := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1, IncludeFixes: true, IncludePreviews: true})
	if output.Count != 1 {
		t.Fatalf("Max not applied: %d", output.Count)
	}
	fixes := output.Diagnostics[0].Fixes
	if len(fixes) != 1 || len(fixes[0].Edits) != 1 {
		t.Fatalf("fixes = %+v", fixes)
	}
	edit := fixes[0].Edits[0]
	if edit.NewText != ";" || edit.Before != "var a: byte" || edit.After != "var a: byte;" {
		t.Fatalf("edit = %+v", edit)
	}
	if output.Diagnostics[0].Location.StartLine != 0 {
		t.Fatalf("positions must be omitted without IncludePositions")
	}
}
