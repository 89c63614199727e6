package ast

import "able/minipy/pkg/runtime"

// Compound executes each of Statements in order. After each, if the scope
// carries a pending return (ReturnedValueKey is set), execution stops
// immediately. A Compound's own result is always None — its purpose is
// sequencing and the observable effects (field/scope mutation, output) of
// its children, never a value of its own.
type Compound struct {
	Statements []runtime.Executable
}

func (c *Compound) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	for _, stmt := range c.Statements {
		if _, err := stmt.Execute(scope, ctx); err != nil {
			return runtime.None(), err
		}
		if scope.HasReturned() {
			return runtime.None(), nil
		}
	}
	return runtime.None(), nil
}

// MethodBody executes Body, then resolves to the value recorded by a
// Return statement if one fired, else None.
type MethodBody struct {
	Body runtime.Executable
}

func (m *MethodBody) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	if _, err := m.Body.Execute(scope, ctx); err != nil {
		return runtime.None(), err
	}
	if scope.HasReturned() {
		return scope.ReturnedValue(), nil
	}
	return runtime.None(), nil
}

// ExprStatement evaluates Expr purely for its side effects (typically a
// MethodCall) and discards its result.
type ExprStatement struct {
	Expr runtime.Executable
}

func (e *ExprStatement) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	_, err := e.Expr.Execute(scope, ctx)
	return runtime.None(), err
}

// Return evaluates Expr and records it at the scope's reserved
// ReturnedValueKey slot; the enclosing Compound/MethodBody detects the
// sentinel. Return itself always yields None.
type Return struct {
	Expr runtime.Executable
}

func (r *Return) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	v, err := r.Expr.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	scope.Set(runtime.ReturnedValueKey, v)
	return runtime.None(), nil
}
