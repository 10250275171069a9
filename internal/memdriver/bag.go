package memdriver

import (
	"sort"

	"lintwire/diag"
	"lintwire/lint"
)

// Bag collects the diagnostics a session emits, capped at max.
type Bag struct {
	items []diag.Diagnostic
	max   int
}

func NewBag(max int) *Bag {
	return &Bag{
		items: make([]diag.Diagnostic, 0, max),
		max:   max,
	}
}

// Add appends a diagnostic. Returns false when the cap is reached and
// the diagnostic was dropped.
func (b *Bag) Add(d diag.Diagnostic) bool {
	if len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items exposes the collected diagnostics. Read-only.
func (b *Bag) Items() []diag.Diagnostic {
	return b.items
}

// HasDeny reports whether any diagnostic resolved to Deny or Forbid.
func (b *Bag) HasDeny() bool {
	for i := range b.items {
		if b.items[i].Level >= lint.LevelDeny {
			return true
		}
	}
	return false
}

// Sort orders diagnostics by file, start offset, level (descending)
// and lint name, so output is deterministic across runs.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		fi, fj := di.Span.Source().File(), dj.Span.Source().File()
		if fi != fj {
			return fi < fj
		}
		if di.Span.Start() != dj.Span.Start() {
			return di.Span.Start() < dj.Span.Start()
		}
		if di.Level != dj.Level {
			return di.Level > dj.Level
		}
		return di.Lint.Name < dj.Lint.Name
	})
}
