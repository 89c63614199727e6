package ast

import "able/minipy/pkg/runtime"

// IfElse evaluates Cond, branches on its truthiness, and executes Then or
// Else (if present); the chosen branch's result is discarded and IfElse
// itself always yields None.
type IfElse struct {
	Cond runtime.Executable
	Then runtime.Executable
	Else runtime.Executable // nil when there is no else clause
}

func (i *IfElse) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	cond, err := i.Cond.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	if runtime.IsTrue(cond) {
		if _, err := i.Then.Execute(scope, ctx); err != nil {
			return runtime.None(), err
		}
	} else if i.Else != nil {
		if _, err := i.Else.Execute(scope, ctx); err != nil {
			return runtime.None(), err
		}
	}
	return runtime.None(), nil
}
