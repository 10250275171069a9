package source

import (
	"testing"

	"lintwire/ast"
)

func TestFileSet_AddAndSnippet(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("main.sg", []byte("static X = 1;\nstatic Y = 2;\n"))

	f := fs.Get(id)
	if f.Flags&FileVirtual == 0 {
		t.Error("virtual file should carry FileVirtual")
	}
	if got := f.GetLine(2); got != "static Y = 2;" {
		t.Errorf("GetLine(2) = %q", got)
	}

	snip, ok := fs.Snippet("main.sg", 7, 8)
	if !ok || snip != "X" {
		t.Errorf("Snippet = %q, %v", snip, ok)
	}
	if _, ok := fs.Snippet("other.sg", 0, 1); ok {
		t.Error("unknown file should not produce a snippet")
	}
	if _, ok := fs.Snippet("main.sg", 5, 1000); ok {
		t.Error("out-of-range snippet should fail")
	}
}

func TestFileSet_Resolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.sg", []byte("ab\ncd\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{7, LineCol{3, 2}},
	}
	for _, tt := range tests {
		if got := fs.Resolve(id, tt.off); got != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestFileSet_NormalizesOnLoad(t *testing.T) {
	content, changed := normalizeCRLF([]byte("a\r\nb\rc"))
	if !changed || string(content) != "a\nb\rc" {
		t.Errorf("normalizeCRLF = %q, %v", content, changed)
	}
	content, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if !had || string(content) != "x" {
		t.Errorf("removeBOM = %q, %v", content, had)
	}
}

func TestInterner(t *testing.T) {
	in := NewInterner()
	a := in.Intern("COUNTER")
	b := in.Intern("limit")
	if a == ast.NoSymbolID || b == ast.NoSymbolID {
		t.Fatal("interned symbols must not collide with NoSymbolID")
	}
	if in.Intern("COUNTER") != a {
		t.Error("re-interning must return the same ID")
	}
	if got := in.MustLookup(b); got != "limit" {
		t.Errorf("MustLookup = %q", got)
	}
	if _, ok := in.Lookup(ast.SymbolID(99)); ok {
		t.Error("unknown ID should not resolve")
	}
	if s, ok := in.Lookup(ast.NoSymbolID); !ok || s != "" {
		t.Error("reserved slot should resolve to the empty string")
	}
}
