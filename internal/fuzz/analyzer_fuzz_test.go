package fuzztests

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"vardecl/internal/analyzer"
	"vardecl/internal/lexer"
	"vardecl/internal/source"
)

// analyzeTimeout bounds a single Analyze call; going over means a loop.
const analyzeTimeout = 5 * time.Second

func FuzzAnalyzer(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.var", input))
		tokens := lexer.NewFile(file).All()

		ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
		defer cancel()

		type outcome struct {
			table analyzer.SymbolTable
			err   error
		}
		done := make(chan outcome, 1)
		go func() {
			table, err := analyzer.Analyze(tokens)
			done <- outcome{table, err}
		}()

		var first outcome
		select {
		case first = <-done:
		case <-ctx.Done():
			t.Fatalf("Analyze did not finish in %s on %q", analyzeTimeout, input)
		}

		if first.err != nil {
			var aerr *analyzer.Error
			if !errors.As(first.err, &aerr) {
				t.Fatalf("unexpected error type %T", first.err)
			}
			if first.table != nil {
				t.Fatal("rejected declaration returned a table")
			}
			if aerr.Pos() > file.Len()+1 {
				t.Fatalf("error position %d beyond input length %d", aerr.Pos(), file.Len())
			}
		} else if len(first.table) == 0 {
			t.Fatal("accepted declaration declared nothing")
		}

		table, err := analyzer.Analyze(tokens)
		if !reflect.DeepEqual(table, first.table) || !reflect.DeepEqual(err, first.err) {
			t.Fatalf("second run differs: %v/%v vs %v/%v", table, err, first.table, first.err)
		}
	})
}
