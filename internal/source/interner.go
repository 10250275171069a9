package source

import (
	"slices"

	"lintwire/ast"
)

// Interner deduplicates strings behind symbol IDs. Slot zero is
// reserved for ast.NoSymbolID and maps to the empty string.
type Interner struct {
	byID  []string
	index map[string]ast.SymbolID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]ast.SymbolID{"": ast.NoSymbolID},
	}
}

// Intern stores s and returns its ID, reusing the existing ID when the
// string was seen before.
func (i *Interner) Intern(s string) ast.SymbolID {
	if id, ok := i.index[s]; ok {
		return id
	}

	// Copy so the entry does not pin the caller's backing buffer.
	cpy := string([]byte(s))
	id := ast.SymbolID(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

// Lookup returns the string for an ID.
func (i *Interner) Lookup(id ast.SymbolID) (string, bool) {
	if !i.Has(id) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup returns the string for an ID, panicking on unknown IDs.
func (i *Interner) MustLookup(id ast.SymbolID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("source: invalid symbol ID")
	}
	return s
}

// Has reports whether id names an interned string.
func (i *Interner) Has(id ast.SymbolID) bool {
	return int(id) < len(i.byID)
}

// Len returns the number of interned strings, the reserved empty
// string included.
func (i *Interner) Len() int {
	return len(i.byID)
}

// Snapshot returns a copy of all interned strings in ID order.
func (i *Interner) Snapshot() []string {
	return slices.Clone(i.byID)
}
