// Package ast implements the tree of statement and expression nodes that
// make up a parsed program. Every node satisfies runtime.Executable: it
// evaluates itself against a scope and an output context and produces a
// value or a runtime error. Each node exclusively owns its children; there
// is no shared mutable AST state between executions of the same tree.
package ast

import "able/minipy/pkg/runtime"

// NumberLiteral returns a share handle to an embedded Number. The literal
// lives inside the node itself, so the handle never needs to own it.
type NumberLiteral struct {
	Value runtime.Number
}

func (n *NumberLiteral) Execute(_ runtime.Scope, _ runtime.Context) (runtime.Handle, error) {
	return runtime.Share(n.Value), nil
}

// StringLiteral returns a share handle to an embedded String.
type StringLiteral struct {
	Value runtime.String
}

func (n *StringLiteral) Execute(_ runtime.Scope, _ runtime.Context) (runtime.Handle, error) {
	return runtime.Share(n.Value), nil
}

// BoolLiteral returns a share handle to an embedded Boolean.
type BoolLiteral struct {
	Value runtime.Boolean
}

func (n *BoolLiteral) Execute(_ runtime.Scope, _ runtime.Context) (runtime.Handle, error) {
	return runtime.Share(n.Value), nil
}

// NoneLiteral always evaluates to the empty handle.
type NoneLiteral struct{}

func (NoneLiteral) Execute(_ runtime.Scope, _ runtime.Context) (runtime.Handle, error) {
	return runtime.None(), nil
}
