package ast

import (
	"bytes"

	"able/minipy/pkg/runtime"
)

// Stringify evaluates Arg and captures its printed form into a new owned
// String, using the same dispatch Print uses (including __str__ for class
// instances) but against a private Context backed by an internal buffer
// rather than the caller's context — str() itself never produces visible
// output.
type Stringify struct {
	Arg runtime.Executable
}

func (s *Stringify) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	v, err := s.Arg.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	var buf bytes.Buffer
	if err := runtime.Print(v, &buf, runtime.NewContext(&buf)); err != nil {
		return runtime.None(), err
	}
	return runtime.Own(runtime.String{Value: buf.String()}), nil
}
