package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"vardecl/internal/diag"
	"vardecl/internal/source"
)

// palette holds the colours of one Pretty call. With colour off every
// function returns its input unchanged.
type palette struct {
	sev    map[diag.Severity]*color.Color
	lexeme *color.Color
	caret  *color.Color
	gutter *color.Color
	note   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		lexeme: color.New(color.FgRed, color.Underline),
		caret:  color.New(color.FgRed, color.Bold),
		gutter: color.New(color.FgBlue),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.lexeme, p.caret, p.gutter, p.note} {
		toggle(c, enabled)
	}
	for _, c := range p.sev {
		toggle(c, enabled)
	}
	return p
}

func toggle(c *color.Color, enabled bool) {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//	  1 | var a,a: byte;
//	    |       ^
//
// Строка делится на три части (до, лексема, после); лексема подсвечивается.
// Затем Notes и Fixes, если включены.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		f := fs.Get(d.Primary.File)
		if f == nil {
			fmt.Fprintf(w, "%s %s: %s\n", p.sev[d.Severity].Sprint(d.Severity.String()), d.Code.ID(), d.Message)
			continue
		}
		path := formatPath(f, opts.PathMode, fs.BaseDir())
		start, _ := fs.Resolve(d.Primary)

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			path, start.Line, start.Col,
			p.sev[d.Severity].Sprint(d.Severity.String()), d.Code.ID(), d.Message)
		writeSnippet(w, f, d.Primary, start, p, opts.Width)

		if opts.ShowNotes {
			for _, note := range d.Notes {
				writeNote(w, fs, note, opts.PathMode, p)
			}
		}
		if opts.ShowFixes {
			for i, fix := range d.Fixes {
				writeFix(w, fs, i+1, fix, opts.ShowPreview)
			}
		}
	}
}

// writeSnippet prints the source line of span with the lexeme highlighted
// and a caret line under it.
func writeSnippet(w io.Writer, f *source.File, span source.Span, start source.LineCol, p palette, width uint8) {
	line := f.GetLine(start.Line)
	before, lexeme, after := source.Split(line, start.Col-1, span.Len())

	if width > 0 {
		limit := int(width)
		if runewidth.StringWidth(before+lexeme) > limit {
			// лексема важнее хвоста строки
			limit = runewidth.StringWidth(before + lexeme)
		}
		after = runewidth.Truncate(after, max(limit-runewidth.StringWidth(before+lexeme), 0), "…")
	}

	num := fmt.Sprintf("%d", start.Line)
	pad := strings.Repeat(" ", len(num))
	fmt.Fprintf(w, "  %s %s %s%s%s\n", p.gutter.Sprint(num), p.gutter.Sprint("|"), before, p.lexeme.Sprint(lexeme), after)

	marks := max(runewidth.StringWidth(lexeme), 1)
	fmt.Fprintf(w, "  %s %s %s%s\n", pad, p.gutter.Sprint("|"),
		strings.Repeat(" ", runewidth.StringWidth(before)), p.caret.Sprint(strings.Repeat("^", marks)))
}

func writeNote(w io.Writer, fs *source.FileSet, note diag.Note, mode PathMode, p palette) {
	f := fs.Get(note.Span.File)
	if f == nil {
		fmt.Fprintf(w, "  %s %s\n", p.note.Sprint("note:"), note.Msg)
		return
	}
	pos, _ := fs.Resolve(note.Span)
	fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"),
		formatPath(f, mode, fs.BaseDir()), pos.Line, pos.Col, note.Msg)
}

func writeFix(w io.Writer, fs *source.FileSet, n int, fix diag.Fix, showPreview bool) {
	fmt.Fprintf(w, "  fix #%d: %s\n", n, fix.Title)
	for _, edit := range fix.Edits {
		pos, _ := fs.Resolve(edit.Span)
		fmt.Fprintf(w, "    at %d:%d apply=%q\n", pos.Line, pos.Col, edit.NewText)
		if !showPreview {
			continue
		}
		preview, err := buildFixEditPreview(fs, edit)
		if err != nil {
			continue
		}
		fmt.Fprintln(w, "    preview:")
		fmt.Fprintf(w, "      - %s\n", preview.before)
		fmt.Fprintf(w, "      + %s\n", preview.after)
	}
}
