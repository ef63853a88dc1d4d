package driver

import (
	"errors"
	"fmt"

	"vardecl/internal/analyzer"
	"vardecl/internal/diag"
	"vardecl/internal/lexer"
	"vardecl/internal/observ"
	"vardecl/internal/source"
	"vardecl/internal/token"
)

// CheckResult is the outcome of checking one declaration source.
type CheckResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Table   analyzer.SymbolTable // nil when rejected
	Err     *analyzer.Error      // nil when accepted
	Bag     *diag.Bag
	Timing  *observ.Report
}

// Accepted reports whether the declaration passed validation.
func (r *CheckResult) Accepted() bool {
	return r != nil && r.Err == nil
}

// Check loads path (BOM, CRLF and trailing newlines normalized) and checks it.
func Check(path string, maxDiagnostics int) (*CheckResult, error) {
	timer := observ.NewTimer()
	fs := source.NewFileSet()

	done := timer.Track(string(StageLoad))
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	done(fmt.Sprintf("%d chars", fs.Get(fileID).Len()))

	return checkFile(fs, fileID, maxDiagnostics, timer), nil
}

// CheckString checks text exactly as given.
func CheckString(name, text string, maxDiagnostics int) *CheckResult {
	fs := source.NewFileSet()
	return checkFile(fs, fs.AddVirtual(name, []byte(text)), maxDiagnostics, observ.NewTimer())
}

// CheckBytes checks content read from a stream, normalized like a file.
func CheckBytes(name string, content []byte, maxDiagnostics int) *CheckResult {
	fs := source.NewFileSet()
	return checkFile(fs, fs.AddNormalized(name, content, source.FileVirtual), maxDiagnostics, observ.NewTimer())
}

func checkFile(fs *source.FileSet, id source.FileID, maxDiagnostics int, timer *observ.Timer) *CheckResult {
	file := fs.Get(id)
	res := &CheckResult{
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(maxDiagnostics),
	}

	done := timer.Track(string(StageTokenize))
	res.Tokens = lexer.NewFile(file).All()
	done(fmt.Sprintf("%d tokens", len(res.Tokens)))

	done = timer.Track(string(StageAnalyze))
	table, err := analyzer.Analyze(res.Tokens)
	if err != nil {
		var aerr *analyzer.Error
		if !errors.As(err, &aerr) {
			panic(fmt.Errorf("analyzer returned %T: %w", err, err))
		}
		res.Err = aerr
		reportRejection(diag.BagReporter{Bag: res.Bag}, aerr, id)
		done("rejected")
	} else {
		res.Table = table
		done(fmt.Sprintf("%d symbols", len(table)))
	}

	report := timer.Report()
	res.Timing = &report
	return res
}

// AppendTimings records the timing report as an info diagnostic.
func (r *CheckResult) AppendTimings() {
	if r == nil || r.Timing == nil {
		return
	}
	appendTimingDiagnostic(r.Bag, timingPayload{
		Kind:    "check",
		Path:    r.File.Path,
		File:    r.File.ID,
		TotalMS: r.Timing.TotalMS,
		Phases:  r.Timing.Phases,
	})
}
