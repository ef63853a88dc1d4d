package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"vardecl/internal/diag"
	"vardecl/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.Add("/home/user/project/decls/test.var", []byte("var a,a: byte;"), 0)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SemaDuplicateSymbol, source.Span{File: fileID, Start: 6, End: 7}, "identifier `a` already taken"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/decls/test.var:1:7"},
		{"Relative path", PathModeRelative, "decls/test.var:1:7"},
		{"Basename only", PathModeBasename, "test.var:1:7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR SEM3002: identifier `a` already taken") {
				t.Errorf("Expected header in output, got:\n%s", output)
			}
		})
	}
}

func TestPrettySnippet(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("decl.var", []byte("var a: array[111112:10] of byte;"))

	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.SemaIntLiteralOutOfRange, source.Span{File: fileID, Start: 13, End: 19}, "out of range"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	want := "decl.var:1:14: ERROR SEM3005: out of range\n" +
		"  1 | var a: array[111112:10] of byte;\n" +
		"    |              ^^^^^^\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestPrettyPastEnd(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("decl.var", []byte("var a: byte"))

	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.SynExpectSemicolon, source.Span{File: fileID, Start: 11, End: 12}, "expected semicolon at the end"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	if !strings.Contains(buf.String(), "    |            ^\n") {
		t.Fatalf("caret should sit one past the end, got:\n%s", buf.String())
	}
}

func TestPrettyWideCharacters(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("decl.var", []byte("var 名前,名前: byte;"))

	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.SemaDuplicateSymbol, source.Span{File: fileID, Start: 7, End: 9}, "dup"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	// "var 名前," занимает 9 колонок, лексема 4
	if !strings.Contains(buf.String(), "    |          ^^^^\n") {
		t.Fatalf("caret width should follow display width, got:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("decl.var", []byte("var a b"))

	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.SynExpectCommaOrColon, source.Span{File: fileID, Start: 6, End: 7}, "`b` should be either comma or colon"))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})

	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("plain output contains escapes:\n%q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("colored output has no escapes:\n%q", colored.String())
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.var", []byte("var a: byte"))

	primary := source.Span{File: fileID, Start: 11, End: 12}
	d := diag.NewError(diag.SynExpectSemicolon, primary, "expected semicolon at the end").
		WithNote(source.Span{File: fileID, Start: 7, End: 11}, "declaration ends here").
		WithFix("insert `;`", diag.FixEdit{Span: source.Span{File: fileID, Start: 11, End: 11}, NewText: ";"})

	bag := diag.NewBag(4)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{
		PathMode:    PathModeBasename,
		ShowNotes:   true,
		ShowFixes:   true,
		ShowPreview: true,
	})
	output := buf.String()

	for _, want := range []string{
		"note: test.var:1:8: declaration ends here",
		"fix #1: insert `;`",
		"apply=\";\"",
		"preview:",
		"- var a: byte\n",
		"+ var a: byte;\n",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, output)
		}
	}
}
