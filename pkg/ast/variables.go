package ast

import "able/minipy/pkg/runtime"

// VariableValue reads a dotted identifier path: Ids[0] resolves against
// scope, and each subsequent id descends into the current value's fields —
// which must be a ClassInstance at every step.
type VariableValue struct {
	Ids []string
}

func (v *VariableValue) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	current, ok := scope.Get(v.Ids[0])
	if !ok {
		return runtime.None(), runtime.NewError("undefined variable: %s", v.Ids[0])
	}
	for _, id := range v.Ids[1:] {
		instance, ok := current.TryAsInstance()
		if !ok {
			return runtime.None(), runtime.NewError("cannot access field %q of non-instance value", id)
		}
		current, ok = instance.Fields().Get(id)
		if !ok {
			return runtime.None(), runtime.NewError("undefined field: %s", id)
		}
	}
	return current, nil
}

// Assignment binds Name to the value of Rhs in scope and returns that value.
type Assignment struct {
	Name string
	Rhs  runtime.Executable
}

func (a *Assignment) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	v, err := a.Rhs.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	scope.Set(a.Name, v)
	return v, nil
}

// FieldAssignment evaluates Object to a ClassInstance, evaluates Rhs, sets
// the instance's Field to that value, and returns it.
type FieldAssignment struct {
	Object runtime.Executable
	Field  string
	Rhs    runtime.Executable
}

func (f *FieldAssignment) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	obj, err := f.Object.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	instance, ok := obj.TryAsInstance()
	if !ok {
		return runtime.None(), runtime.NewError("cannot assign field %q on non-instance value", f.Field)
	}
	v, err := f.Rhs.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	instance.Fields().Set(f.Field, v)
	return v, nil
}
