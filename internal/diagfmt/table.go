package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"vardecl/internal/analyzer"
	"vardecl/internal/observ"
)

// SymbolJSON is one row of an exported symbol table.
type SymbolJSON struct {
	Name  string           `json:"name" msgpack:"name"`
	Type  string           `json:"type" msgpack:"type"`
	Dims  []analyzer.Range `json:"dims,omitempty" msgpack:"dims,omitempty"`
	Array bool             `json:"array,omitempty" msgpack:"array,omitempty"`
}

// CheckOutput is the machine-readable result of checking one declaration.
type CheckOutput struct {
	File        string             `json:"file" msgpack:"file"`
	Accepted    bool               `json:"accepted" msgpack:"accepted"`
	Symbols     []SymbolJSON       `json:"symbols" msgpack:"symbols"`
	Diagnostics *DiagnosticsOutput `json:"diagnostics,omitempty" msgpack:"-"`
	Timings     *observ.Report     `json:"timings,omitempty" msgpack:"-"`
}

// Symbols flattens a table into rows sorted by name.
func Symbols(table analyzer.SymbolTable) []SymbolJSON {
	rows := make([]SymbolJSON, 0, len(table))
	for _, name := range table.Names() {
		typ := table[name]
		rows = append(rows, SymbolJSON{
			Name:  name,
			Type:  typ.String(),
			Dims:  typ.Dims,
			Array: typ.IsArray(),
		})
	}
	return rows
}

// TablePretty prints `name : type` rows, names padded to one column.
func TablePretty(w io.Writer, table analyzer.SymbolTable, useColor bool) error {
	nameColor := color.New(color.FgGreen, color.Bold)
	toggle(nameColor, useColor)

	width := 0
	for name := range table {
		width = max(width, runewidth.StringWidth(name))
	}
	for _, name := range table.Names() {
		pad := runewidth.FillRight(name, width)
		if _, err := fmt.Fprintf(w, "%s : %s\n", nameColor.Sprint(pad), table[name]); err != nil {
			return err
		}
	}
	return nil
}

// CheckJSON writes out as indented JSON.
func CheckJSON(w io.Writer, out CheckOutput) error {
	return encodeJSON(w, out)
}

// TableMsgpack writes the symbol table of out as a msgpack document.
// Diagnostics and timings are JSON-only.
func TableMsgpack(w io.Writer, out CheckOutput) error {
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)
	return enc.Encode(out)
}
