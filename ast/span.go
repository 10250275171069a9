package ast

import "fmt"

// SpanSrcKind classifies where a span's text comes from.
type SpanSrcKind uint8

const (
	// SpanSrcFile marks text read directly from a source file.
	SpanSrcFile SpanSrcKind = iota
	// SpanSrcMacro marks text produced by a macro expansion.
	SpanSrcMacro
	// SpanSrcSugar marks file-backed text produced by desugaring. It is
	// treated like a file source for most purposes; the distinction
	// mostly matters to the host.
	SpanSrcSugar
)

// SpanSource describes the provenance of a span. Values are created by
// the host and shared between all spans with the same origin.
type SpanSource struct {
	kind  SpanSrcKind
	file  string
	macro SpanSrcID
}

// FileSource returns a provenance value for text from the given file.
func FileSource(path string) *SpanSource {
	return &SpanSource{kind: SpanSrcFile, file: path}
}

// MacroSource returns a provenance value for a macro expansion.
func MacroSource(id SpanSrcID) *SpanSource {
	return &SpanSource{kind: SpanSrcMacro, macro: id}
}

// SugarSource returns a provenance value for desugared, file-backed text.
func SugarSource(path string, id SpanSrcID) *SpanSource {
	return &SpanSource{kind: SpanSrcSugar, file: path, macro: id}
}

// Kind returns the provenance classification.
func (s *SpanSource) Kind() SpanSrcKind {
	return s.kind
}

// File returns the file path for file and sugar sources, "" otherwise.
func (s *SpanSource) File() string {
	return s.file
}

// MacroID returns the expansion ID for macro and sugar sources.
func (s *SpanSource) MacroID() SpanSrcID {
	return s.macro
}

// Equal reports whether two provenance values denote the same origin.
// File paths compare by content, macro expansions by ID.
func (s *SpanSource) Equal(other *SpanSource) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.kind == other.kind && s.file == other.file && s.macro == other.macro
}

// Span is a half-open byte range [Start, End) within one SpanSource.
type Span struct {
	source *SpanSource
	start  uint32
	end    uint32
}

// NewSpan creates a span. The host must uphold start <= end; violating
// that is a construction bug, not user input, so it aborts.
func NewSpan(source *SpanSource, start, end uint32) Span {
	if source == nil {
		panic("ast: span with nil source")
	}
	if start > end {
		panic(fmt.Sprintf("ast: span start %d past end %d", start, end))
	}
	return Span{source: source, start: start, end: end}
}

// Source returns the provenance of the span.
func (s *Span) Source() *SpanSource {
	return s.source
}

func (s *Span) Start() uint32 {
	return s.start
}

func (s *Span) End() uint32 {
	return s.end
}

// SetStart moves the start of the span. Used to shrink a span onto a
// sub-range before asking for a snippet.
func (s *Span) SetStart(start uint32) {
	if start > s.end {
		panic(fmt.Sprintf("ast: span start %d past end %d", start, s.end))
	}
	s.start = start
}

// SetEnd moves the end of the span.
func (s *Span) SetEnd(end uint32) {
	if end < s.start {
		panic(fmt.Sprintf("ast: span end %d before start %d", end, s.start))
	}
	s.end = end
}

// IsEmpty reports whether the span covers zero bytes.
func (s *Span) IsEmpty() bool {
	return s.start == s.end
}

// Len returns the number of bytes inside the span.
func (s *Span) Len() uint32 {
	return s.end - s.start
}

// IsFromFile reports whether the span text lives in a file. Sugar spans
// count as file-backed.
func (s *Span) IsFromFile() bool {
	return s.source.kind == SpanSrcFile || s.source.kind == SpanSrcSugar
}

// IsFromMacro reports whether the span was produced by a macro
// expansion. Mutually exclusive with IsFromFile.
func (s *Span) IsFromMacro() bool {
	return s.source.kind == SpanSrcMacro
}

// IsSameSource reports whether both spans originate from the same file
// or the same macro expansion.
func (s *Span) IsSameSource(other *Span) bool {
	return s.source.Equal(other.source)
}

// Snippet returns the source text the span covers, or false if the
// host cannot provide it.
func (s *Span) Snippet() (string, bool) {
	return currentResolver().SnippetOf(s)
}

// SnippetOr returns the covered source text, or def when unavailable.
func (s *Span) SnippetOr(def string) string {
	if snip, ok := s.Snippet(); ok {
		return snip
	}
	return def
}

func (s Span) String() string {
	switch s.source.kind {
	case SpanSrcMacro:
		return fmt.Sprintf("macro(%d):%d-%d", s.source.macro, s.start, s.end)
	default:
		return fmt.Sprintf("%s:%d-%d", s.source.file, s.start, s.end)
	}
}
