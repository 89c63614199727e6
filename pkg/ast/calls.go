package ast

import "able/minipy/pkg/runtime"

// MethodCall evaluates Object (which must be a ClassInstance), evaluates
// Args left to right, and invokes Method on the instance.
type MethodCall struct {
	Object runtime.Executable
	Method string
	Args   []runtime.Executable
}

func (c *MethodCall) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	obj, err := c.Object.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	instance, ok := obj.TryAsInstance()
	if !ok {
		return runtime.None(), runtime.NewError("cannot call method %q on non-instance value", c.Method)
	}
	args := make([]runtime.Handle, len(c.Args))
	for i, a := range c.Args {
		v, err := a.Execute(scope, ctx)
		if err != nil {
			return runtime.None(), err
		}
		args[i] = v
	}
	return instance.Call(c.Method, args, ctx)
}

// NewInstance constructs an empty ClassInstance of Class. If the class
// defines __init__ with arity matching len(Args), Args are evaluated and
// __init__ is called. Otherwise the instance is returned uninitialized and
// Args are never evaluated — this is a deliberate asymmetry with MethodCall,
// which always evaluates its arguments.
type NewInstance struct {
	Class *runtime.Class
	Args  []runtime.Executable
}

func (n *NewInstance) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	instance := runtime.NewClassInstance(n.Class)
	if instance.HasMethod("__init__", len(n.Args)) {
		args := make([]runtime.Handle, len(n.Args))
		for i, a := range n.Args {
			v, err := a.Execute(scope, ctx)
			if err != nil {
				return runtime.None(), err
			}
			args[i] = v
		}
		if _, err := instance.Call("__init__", args, ctx); err != nil {
			return runtime.None(), err
		}
	}
	return runtime.Own(instance), nil
}
