package diag

import (
	"fmt"
	"strings"

	"vardecl/internal/source"
)

// FormatShortDiagnostics renders diagnostics one per line:
//
//	error SEM3002 decl.var:1:7 identifier `a` already taken
//
// Notes follow their diagnostic when includeNotes is set. Order is the bag's
// order; callers sort first when they need determinism across files.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	lines := make([]string, 0, len(diags))
	for _, d := range diags {
		lines = append(lines, shortLine(severityLabel(d.Severity), d.Code, fs, d.Primary, d.Message))
		if !includeNotes {
			continue
		}
		for _, note := range d.Notes {
			lines = append(lines, shortLine("note", d.Code, fs, note.Span, note.Msg))
		}
	}
	return strings.Join(lines, "\n")
}

func shortLine(label string, code Code, fs *source.FileSet, span source.Span, msg string) string {
	f := fs.Get(span.File)
	if f == nil {
		return fmt.Sprintf("%s %s %s", label, code.ID(), sanitizeMessage(msg))
	}
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s %s %s:%d:%d %s", label, code.ID(), f.Path, start.Line, start.Col, sanitizeMessage(msg))
}

func severityLabel(sev Severity) string {
	switch sev {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
