package ast

import "sync"

// Resolver is the node-facing slice of the session context. Node
// accessors that need host data (names, spans, snippets, types) reach
// the currently installed resolver; the calling node only anchors the
// borrow, the data itself stays owned by the host.
type Resolver interface {
	SpanOf(id SpanID) *Span
	SnippetOf(span *Span) (string, bool)
	SymbolName(sym SymbolID) string
	ExprType(id ExprID) TyKind
	MethodTarget(id ExprID) ItemID
	BodyOf(id BodyID) *Body
}

// One resolver per session. The analysis model is single-threaded and
// cooperative; the mutex only makes contract violations deterministic.
var (
	resolverMu sync.Mutex
	resolver   Resolver
)

// InstallResolver makes r the current session resolver. It is called by
// the session layer when a traversal starts; plugins never call it.
// Installing over an active resolver is a contract violation and aborts.
func InstallResolver(r Resolver) {
	resolverMu.Lock()
	defer resolverMu.Unlock()
	if r == nil {
		panic("ast: installing nil resolver")
	}
	if resolver != nil {
		panic("ast: resolver already installed, nested sessions are not allowed")
	}
	resolver = r
}

// UninstallResolver clears the current session resolver. Called by the
// session layer when the traversal ends.
func UninstallResolver() {
	resolverMu.Lock()
	defer resolverMu.Unlock()
	if resolver == nil {
		panic("ast: no resolver installed")
	}
	resolver = nil
}

func currentResolver() Resolver {
	resolverMu.Lock()
	defer resolverMu.Unlock()
	if resolver == nil {
		panic("ast: node accessor called outside an active session")
	}
	return resolver
}
