// Package lints holds small real passes. They keep the protocol honest
// end to end and double as fixtures for drivers and the CLI.
package lints

import (
	"fmt"
	"strings"
	"unicode"

	"lintwire/ast"
	"lintwire/diag"
	"lintwire/lint"
	"lintwire/pass"
	"lintwire/session"
)

// StaticName flags static items whose name is not UPPER_SNAKE_CASE.
var StaticName = &lint.Lint{
	Name:         "static_name",
	Description:  "static item names should be UPPER_SNAKE_CASE",
	DefaultLevel: lint.LevelWarn,
}

type StaticNamePass struct {
	pass.Base
}

func (StaticNamePass) RegisteredLints() []*lint.Lint {
	return []*lint.Lint{StaticName}
}

func (StaticNamePass) CheckStatic(cx *session.Context, item *ast.StaticItem) {
	name := item.Ident().Name()
	if name == "" || isUpperSnake(name) {
		return
	}
	fixed := toUpperSnake(name)
	cx.EmitLint(StaticName, ast.ItemNode(item.ID()),
		fmt.Sprintf("static `%s` is not UPPER_SNAKE_CASE", name),
		*item.Span(),
		func(b *diag.Builder) {
			b.Suggest("rename it", *item.Ident().Span(), fixed, diag.MachineApplicable)
		})
}

func isUpperSnake(name string) bool {
	for _, r := range name {
		if r != '_' && !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func toUpperSnake(name string) string {
	var sb strings.Builder
	prevLower := false
	for _, r := range name {
		if unicode.IsUpper(r) && prevLower {
			sb.WriteByte('_')
		}
		prevLower = unicode.IsLower(r)
		sb.WriteRune(unicode.ToUpper(r))
	}
	return sb.String()
}
