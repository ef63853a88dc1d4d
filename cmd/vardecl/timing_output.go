package main

import (
	"io"

	"vardecl/internal/observ"
)

func printTimings(out io.Writer, report *observ.Report) {
	if out == nil || report == nil {
		return
	}
	if _, err := io.WriteString(out, report.Summary()); err != nil {
		panic(err)
	}
}
