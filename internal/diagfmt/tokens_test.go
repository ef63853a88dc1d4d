package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"vardecl/internal/lexer"
	"vardecl/internal/source"
)

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	src := "VAR x1: array[1:2]"
	fileID := fs.AddVirtual("t.var", []byte(src))

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, lexer.Tokenize(src), fs, fileID); err != nil {
		t.Fatal(err)
	}
	want := `  1: keyword:var        "VAR" at 1:1-1:4
  2: identifier         "x1" at 1:5-1:7
  3: punct::            ":" at 1:7-1:8
  4: keyword:array      "array" at 1:9-1:14
  5: punct:[            "[" at 1:14-1:15
  6: integer            "1" at 1:15-1:16
  7: punct::            ":" at 1:16-1:17
  8: integer            "2" at 1:17-1:18
  9: punct:]            "]" at 1:18-1:19
`
	if got := buf.String(); got != want {
		t.Fatalf("unexpected listing:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, lexer.Tokenize("var ä-")); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	want := []TokenOutput{
		{Class: "keyword:var", Text: "var", Start: 0, End: 3},
		{Class: "identifier", Text: "ä", Start: 4, End: 5},
		{Class: "other", Text: "-", Start: 5, End: 6},
	}
	if len(out) != len(want) {
		t.Fatalf("got %d tokens", len(out))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, out[i], want[i])
		}
	}
}

func TestFormatTokensJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "[]\n" {
		t.Fatalf("empty listing = %q", buf.String())
	}
}
