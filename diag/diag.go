// Package diag defines diagnostics and the builder plugins use to
// decorate them with notes, help and code suggestions before the host
// renders them.
package diag

import (
	"lintwire/ast"
	"lintwire/lint"
)

// Applicability states how mechanically a suggestion can be applied.
type Applicability uint8

const (
	// MachineApplicable suggestions can be applied without review.
	MachineApplicable Applicability = iota
	// MaybeIncorrect suggestions are plausible but need review.
	MaybeIncorrect
	// HasPlaceholders suggestions contain text a human must fill in.
	HasPlaceholders
	// Unspecified is for suggestions that opted out of the scale.
	Unspecified
)

// NoteKind distinguishes the secondary message classes.
type NoteKind uint8

const (
	NoteKindNote NoteKind = iota
	NoteKindHelp
)

// Note is a secondary message, optionally anchored to a span.
type Note struct {
	Kind    NoteKind
	Msg     string
	Span    ast.Span
	HasSpan bool
}

// Suggestion proposes replacing the text of a span.
type Suggestion struct {
	Msg           string
	Span          ast.Span
	Replacement   string
	Applicability Applicability
}

// Diagnostic is one finished lint report, handed to the host for
// rendering. The host decides presentation; the plugin only supplies
// content.
type Diagnostic struct {
	Lint        *lint.Lint
	Level       lint.Level
	Node        ast.EmissionNode
	Msg         string
	Span        ast.Span
	Notes       []Note
	Suggestions []Suggestion
}

// Builder accumulates decoration for one diagnostic. The session layer
// creates it, passes it to the caller's decorate step, then hands the
// finished value to the driver.
type Builder struct {
	diag Diagnostic
}

// NewBuilder starts a diagnostic for the given lint at the given node.
func NewBuilder(l *lint.Lint, node ast.EmissionNode, msg string, span ast.Span) *Builder {
	return &Builder{diag: Diagnostic{Lint: l, Node: node, Msg: msg, Span: span}}
}

// Note attaches a plain note.
func (b *Builder) Note(msg string) *Builder {
	b.diag.Notes = append(b.diag.Notes, Note{Kind: NoteKindNote, Msg: msg})
	return b
}

// NoteSpan attaches a note anchored to a span.
func (b *Builder) NoteSpan(span ast.Span, msg string) *Builder {
	b.diag.Notes = append(b.diag.Notes, Note{Kind: NoteKindNote, Msg: msg, Span: span, HasSpan: true})
	return b
}

// Help attaches a help message.
func (b *Builder) Help(msg string) *Builder {
	b.diag.Notes = append(b.diag.Notes, Note{Kind: NoteKindHelp, Msg: msg})
	return b
}

// HelpSpan attaches a help message anchored to a span.
func (b *Builder) HelpSpan(span ast.Span, msg string) *Builder {
	b.diag.Notes = append(b.diag.Notes, Note{Kind: NoteKindHelp, Msg: msg, Span: span, HasSpan: true})
	return b
}

// Suggest proposes replacing the span's text.
func (b *Builder) Suggest(msg string, span ast.Span, replacement string, app Applicability) *Builder {
	b.diag.Suggestions = append(b.diag.Suggestions, Suggestion{
		Msg:           msg,
		Span:          span,
		Replacement:   replacement,
		Applicability: app,
	})
	return b
}

// Diagnostic returns the accumulated diagnostic.
func (b *Builder) Diagnostic() Diagnostic {
	return b.diag
}

// SetLevel records the resolved level. Called by the session layer.
func (b *Builder) SetLevel(l lint.Level) {
	b.diag.Level = l
}

// SnippetWithApplicability fetches the span's snippet for use in a
// suggestion, downgrading the applicability to match what the snippet
// can promise:
//   - a macro-sourced span downgrades MachineApplicable and
//     MaybeIncorrect to MaybeIncorrect;
//   - falling back to def downgrades MachineApplicable to
//     HasPlaceholders;
//   - Unspecified is never changed.
func SnippetWithApplicability(span *ast.Span, def string, app *Applicability) string {
	if *app != Unspecified && span.IsFromMacro() {
		*app = MaybeIncorrect
	}
	if snip, ok := span.Snippet(); ok {
		return snip
	}
	if *app == MachineApplicable {
		*app = HasPlaceholders
	}
	return def
}
