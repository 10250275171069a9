// Package diagfmt renders finished diagnostics: a pretty multi-line
// form with source context for terminals, and a stable one-line form
// for machine output and golden tests.
package diagfmt

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lintwire/ast"
	"lintwire/diag"
	"lintwire/internal/source"
	"lintwire/lint"
)

var (
	warnColor    = color.New(color.FgYellow, color.Bold)
	denyColor    = color.New(color.FgRed, color.Bold)
	noteColor    = color.New(color.FgCyan)
	lintColor    = color.New(color.Bold)
	caretColor   = color.New(color.FgGreen, color.Bold)
	suggestColor = color.New(color.FgGreen)
)

func levelText(l lint.Level, colored bool) string {
	switch l {
	case lint.LevelWarn:
		if colored {
			return warnColor.Sprint("warning")
		}
		return "warning"
	case lint.LevelDeny, lint.LevelForbid:
		if colored {
			return denyColor.Sprint("error")
		}
		return "error"
	default:
		return l.String()
	}
}

// Pretty renders diagnostics with source context. The caller is
// expected to sort the slice first.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts Opts) {
	for i := range diags {
		prettyOne(w, &diags[i], fs, opts)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts Opts) {
	name := d.Lint.Name
	if opts.Color {
		name = lintColor.Sprint(name)
	}
	fmt.Fprintf(w, "%s: %s [%s]\n", levelText(d.Level, opts.Color), d.Msg, name)
	writeSpanContext(w, &d.Span, fs, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			label := "note"
			if note.Kind == diag.NoteKindHelp {
				label = "help"
			}
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			fmt.Fprintf(w, "  %s: %s\n", label, note.Msg)
			if note.HasSpan {
				writeSpanContext(w, &note.Span, fs, opts)
			}
		}
	}
	if opts.ShowSuggestions {
		for _, sug := range d.Suggestions {
			repl := fmt.Sprintf("`%s`", sug.Replacement)
			if opts.Color {
				repl = suggestColor.Sprint(repl)
			}
			fmt.Fprintf(w, "  suggestion (%s): %s: %s\n", applicabilityText(sug.Applicability), sug.Msg, repl)
		}
	}
}

// writeSpanContext prints the location line, then for file-backed spans
// the source line with a caret underline.
func writeSpanContext(w io.Writer, span *ast.Span, fs *source.FileSet, opts Opts) {
	if !span.IsFromFile() {
		fmt.Fprintf(w, "  --> macro expansion %d, bytes %d-%d\n", span.Source().MacroID(), span.Start(), span.End())
		return
	}
	path := span.Source().File()
	f, ok := fs.GetByPath(path)
	if !ok {
		fmt.Fprintf(w, "  --> %s, bytes %d-%d\n", path, span.Start(), span.End())
		return
	}
	pos := fs.Resolve(f.ID, span.Start())
	fmt.Fprintf(w, "  --> %s:%d:%d\n", path, pos.Line, pos.Col)

	line := f.GetLine(pos.Line)
	if line == "" {
		return
	}
	if opts.MaxWidth > 4 {
		line = runewidth.Truncate(line, opts.MaxWidth-4, "...")
	}
	fmt.Fprintf(w, "    %s\n", line)

	// The caret must land under the span start even when the prefix
	// holds wide runes, so alignment uses display width, not bytes.
	// Col is a byte column; back it up to a rune boundary so the
	// prefix never splits a UTF-8 sequence.
	col := int(pos.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	for col > 0 && col < len(line) && !utf8.RuneStart(line[col]) {
		col--
	}
	pad := runewidth.StringWidth(line[:col])
	underline := int(span.Len())
	if rest := len(line) - col; underline > rest {
		underline = rest
	}
	if underline < 1 {
		underline = 1
	}
	marks := "^" + strings.Repeat("~", underline-1)
	if opts.Color {
		marks = caretColor.Sprint(marks)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), marks)
}

func applicabilityText(a diag.Applicability) string {
	switch a {
	case diag.MachineApplicable:
		return "machine-applicable"
	case diag.MaybeIncorrect:
		return "maybe-incorrect"
	case diag.HasPlaceholders:
		return "has-placeholders"
	default:
		return "unspecified"
	}
}

// Short renders one stable line per diagnostic:
// path:start-end level lint_name: msg
func Short(w io.Writer, diags []diag.Diagnostic) {
	for i := range diags {
		d := &diags[i]
		loc := d.Span.String()
		fmt.Fprintf(w, "%s %s %s: %s\n", loc, d.Level, d.Lint.Name, d.Msg)
	}
}
