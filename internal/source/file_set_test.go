package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("decl.var", []byte("var a: byte;"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	// Добавляем тот же файл с новым содержимым
	id2 := fs.Add("decl.var", []byte("var b: word;"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists := fs.GetLatest("decl.var")
	if !exists || latestID != id2 {
		t.Fatalf("GetLatest = %d,%v; want %d,true", latestID, exists, id2)
	}

	if got := fs.Get(id1).Text(); got != "var a: byte;" {
		t.Errorf("first file text = %q", got)
	}
	if got := fs.Get(id2).Text(); got != "var b: word;" {
		t.Errorf("second file text = %q", got)
	}
	if fs.Get(7) != nil {
		t.Errorf("Get on unknown id should return nil")
	}
}

func TestAddNormalizedStripsBOMAndTerminators(t *testing.T) {
	fs := NewFileSet()
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("var a: byte;\r\n\r\n")...)
	id := fs.AddNormalized("bom.var", raw, 0)
	f := fs.Get(id)

	if f.Text() != "var a: byte;" {
		t.Fatalf("text = %q", f.Text())
	}
	if f.Flags&FileHadBOM == 0 {
		t.Errorf("expected FileHadBOM flag")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("expected FileNormalizedCRLF flag")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.var")
	if err := os.WriteFile(path, []byte("var x: real;\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := fs.Get(id).Text(); got != "var x: real;" {
		t.Errorf("text = %q", got)
	}
	if got := fs.Get(id).FormatPath("relative", dir); got != "x.var" {
		t.Errorf("relative path = %q", got)
	}
	if got := fs.Get(id).FormatPath("basename", ""); got != "x.var" {
		t.Errorf("basename = %q", got)
	}

	if _, err := fs.Load(filepath.Join(dir, "missing.var")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestResolveCountsCharacters(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("u.var", []byte("var ä,\nб: byte;"))

	// "б" стоит после перевода строки: символ 7, строка 2, колонка 1
	start, end := fs.Resolve(Span{File: id, Start: 7, End: 8})
	if start != (LineCol{Line: 2, Col: 1}) {
		t.Errorf("start = %+v", start)
	}
	if end != (LineCol{Line: 2, Col: 2}) {
		t.Errorf("end = %+v", end)
	}

	start, _ = fs.Resolve(Span{File: id, Start: 4, End: 5})
	if start != (LineCol{Line: 1, Col: 5}) {
		t.Errorf("start of ä = %+v", start)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("l.var", []byte("one\ntwo\nthree")))

	cases := map[uint32]string{0: "", 1: "one", 2: "two", 3: "three", 4: ""}
	for line, want := range cases {
		if got := f.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}
