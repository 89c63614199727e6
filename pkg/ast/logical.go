package ast

import "able/minipy/pkg/runtime"

// Or evaluates Lhs; if it is truthy, returns True without evaluating Rhs.
// Otherwise returns the truthiness of Rhs.
type Or struct{ Lhs, Rhs runtime.Executable }

func (o *Or) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	lhs, err := o.Lhs.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	if runtime.IsTrue(lhs) {
		return runtime.Own(runtime.Boolean{Value: true}), nil
	}
	rhs, err := o.Rhs.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	return runtime.Own(runtime.Boolean{Value: runtime.IsTrue(rhs)}), nil
}

// And evaluates Lhs; if it is falsy, returns False without evaluating Rhs.
// Otherwise returns the truthiness of Rhs.
type And struct{ Lhs, Rhs runtime.Executable }

func (a *And) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	lhs, err := a.Lhs.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	if !runtime.IsTrue(lhs) {
		return runtime.Own(runtime.Boolean{Value: false}), nil
	}
	rhs, err := a.Rhs.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	return runtime.Own(runtime.Boolean{Value: runtime.IsTrue(rhs)}), nil
}

// Not negates the truthiness of Arg.
type Not struct{ Arg runtime.Executable }

func (n *Not) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	v, err := n.Arg.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	return runtime.Own(runtime.Boolean{Value: !runtime.IsTrue(v)}), nil
}

// Comparison evaluates both sides and applies Cmp — one of the six
// relations in the runtime package — wrapping the result as an owned Bool.
type Comparison struct {
	Lhs, Rhs runtime.Executable
	Cmp      runtime.Comparator
}

func (c *Comparison) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	lhs, err := c.Lhs.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	rhs, err := c.Rhs.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	result, err := c.Cmp(lhs, rhs, ctx)
	if err != nil {
		return runtime.None(), err
	}
	return runtime.Own(runtime.Boolean{Value: result}), nil
}
