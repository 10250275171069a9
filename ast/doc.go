// Package ast defines the plugin-visible AST surface: opaque node IDs,
// spans with source provenance, identifiers, and the closed expression,
// item and type kind sets.
//
// All node memory is owned by the host for the duration of one analysis
// session. Plugins only ever hold borrows; keeping an ID or a node
// reference past the end of the session is forbidden and is not guarded
// at runtime.
package ast
