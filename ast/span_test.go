package ast

import (
	"testing"
)

func TestSpan_Provenance(t *testing.T) {
	tests := []struct {
		name      string
		source    *SpanSource
		fromFile  bool
		fromMacro bool
	}{
		{name: "file", source: FileSource("src/lib.sg"), fromFile: true},
		{name: "macro", source: MacroSource(7), fromMacro: true},
		{name: "sugar counts as file", source: SugarSource("src/lib.sg", 7), fromFile: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := NewSpan(tt.source, 0, 4)
			if got := sp.IsFromFile(); got != tt.fromFile {
				t.Errorf("IsFromFile() = %v, want %v", got, tt.fromFile)
			}
			if got := sp.IsFromMacro(); got != tt.fromMacro {
				t.Errorf("IsFromMacro() = %v, want %v", got, tt.fromMacro)
			}
			if sp.IsFromFile() && sp.IsFromMacro() {
				t.Error("IsFromFile and IsFromMacro must be mutually exclusive")
			}
		})
	}
}

func TestSpan_IsSameSource(t *testing.T) {
	fileA := NewSpan(FileSource("a.sg"), 0, 1)
	fileA2 := NewSpan(FileSource("a.sg"), 10, 20)
	fileB := NewSpan(FileSource("b.sg"), 0, 1)
	macro1 := NewSpan(MacroSource(1), 0, 1)
	macro1b := NewSpan(MacroSource(1), 5, 9)
	macro2 := NewSpan(MacroSource(2), 0, 1)
	sugar := NewSpan(SugarSource("a.sg", 1), 0, 1)

	// File paths compare by content, even across distinct source values.
	if !fileA.IsSameSource(&fileA2) {
		t.Error("spans in the same file should share a source")
	}
	if fileA.IsSameSource(&fileB) {
		t.Error("spans in different files must not share a source")
	}
	if !macro1.IsSameSource(&macro1b) {
		t.Error("spans in the same expansion should share a source")
	}
	if macro1.IsSameSource(&macro2) {
		t.Error("spans in different expansions must not share a source")
	}
	if fileA.IsSameSource(&sugar) {
		t.Error("file and sugar provenance are distinct sources")
	}
}

func TestSpan_Empty(t *testing.T) {
	src := FileSource("a.sg")
	empty := NewSpan(src, 5, 5)
	if !empty.IsEmpty() {
		t.Error("zero-width span should be empty")
	}
	if empty.Len() != 0 {
		t.Errorf("Len() = %d, want 0", empty.Len())
	}

	sp := NewSpan(src, 5, 9)
	if sp.IsEmpty() {
		t.Error("non-zero-width span should not be empty")
	}
	if sp.Len() != 4 {
		t.Errorf("Len() = %d, want 4", sp.Len())
	}
}

func TestSpan_StartPastEndAborts(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewSpan with start > end should panic")
		}
	}()
	NewSpan(FileSource("a.sg"), 9, 5)
}

func TestSpan_SetBoundsKeepInvariant(t *testing.T) {
	sp := NewSpan(FileSource("a.sg"), 5, 9)
	sp.SetStart(7)
	sp.SetEnd(8)
	if sp.Start() != 7 || sp.End() != 8 {
		t.Errorf("got %d-%d, want 7-8", sp.Start(), sp.End())
	}

	defer func() {
		if recover() == nil {
			t.Error("SetEnd below start should panic")
		}
	}()
	sp.SetEnd(3)
}
