package ast

import "able/minipy/pkg/runtime"

// Add implements Number+Number, String+String (concatenation), and
// dispatch to a left-hand ClassInstance's 1-arg __add__; anything else
// fails.
type Add struct {
	Lhs, Rhs runtime.Executable
}

func (a *Add) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	lhs, err := a.Lhs.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	rhs, err := a.Rhs.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	if l, ok := lhs.TryAsNumber(); ok {
		if r, ok := rhs.TryAsNumber(); ok {
			return runtime.Own(runtime.Number{Value: l.Value + r.Value}), nil
		}
		return runtime.None(), runtime.NewError("addition is not applicable")
	}
	if l, ok := lhs.TryAsString(); ok {
		if r, ok := rhs.TryAsString(); ok {
			return runtime.Own(runtime.String{Value: l.Value + r.Value}), nil
		}
		return runtime.None(), runtime.NewError("addition is not applicable")
	}
	if l, ok := lhs.TryAsInstance(); ok {
		if l.HasMethod("__add__", 1) {
			return l.Call("__add__", []runtime.Handle{rhs}, ctx)
		}
	}
	return runtime.None(), runtime.NewError("addition is not applicable")
}

// arithOp is the shared shape of Sub, Mult, and Div: Number op Number only.
type arithOp struct {
	Lhs, Rhs runtime.Executable
	name     string
	apply    func(l, r int) (int, error)
}

func (op *arithOp) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	lhs, err := op.Lhs.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	rhs, err := op.Rhs.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	l, lok := lhs.TryAsNumber()
	r, rok := rhs.TryAsNumber()
	if !lok || !rok {
		return runtime.None(), runtime.NewError("%s is not applicable", op.name)
	}
	v, err := op.apply(l.Value, r.Value)
	if err != nil {
		return runtime.None(), err
	}
	return runtime.Own(runtime.Number{Value: v}), nil
}

// Sub is Number-Number.
type Sub struct{ Lhs, Rhs runtime.Executable }

func (s *Sub) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	op := &arithOp{Lhs: s.Lhs, Rhs: s.Rhs, name: "subtraction", apply: func(l, r int) (int, error) {
		return l - r, nil
	}}
	return op.Execute(scope, ctx)
}

// Mult is Number*Number.
type Mult struct{ Lhs, Rhs runtime.Executable }

func (m *Mult) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	op := &arithOp{Lhs: m.Lhs, Rhs: m.Rhs, name: "multiplication", apply: func(l, r int) (int, error) {
		return l * r, nil
	}}
	return op.Execute(scope, ctx)
}

// Div is integer-truncating Number/Number; dividing by zero fails.
type Div struct{ Lhs, Rhs runtime.Executable }

func (d *Div) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	op := &arithOp{Lhs: d.Lhs, Rhs: d.Rhs, name: "division", apply: func(l, r int) (int, error) {
		if r == 0 {
			return 0, runtime.NewError("division by zero")
		}
		return l / r, nil
	}}
	return op.Execute(scope, ctx)
}
