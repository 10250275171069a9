package ast

// Ident is a name occurrence. The name text is resolved lazily through
// the session context and never cached inline, so the host can rewrite
// its symbol table without invalidating issued identifiers.
type Ident struct {
	sym  SymbolID
	span SpanID
}

// NewIdent creates an identifier. Host-side constructor.
func NewIdent(sym SymbolID, span SpanID) Ident {
	return Ident{sym: sym, span: span}
}

// Name resolves the identifier text through the current context.
func (id Ident) Name() string {
	return currentResolver().SymbolName(id.sym)
}

// Span resolves the identifier's span.
func (id Ident) Span() *Span {
	return currentResolver().SpanOf(id.span)
}

// Sym returns the raw symbol handle. Mostly useful to hosts.
func (id Ident) Sym() SymbolID {
	return id.sym
}

// SpanID returns the raw span handle. Mostly useful to hosts.
func (id Ident) SpanID() SpanID {
	return id.span
}

func (id Ident) String() string {
	return id.Name()
}
