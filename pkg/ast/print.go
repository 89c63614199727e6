package ast

import (
	"io"

	"able/minipy/pkg/runtime"
)

// Print evaluates each of Args left to right, writes their values
// space-separated to the context's output (an empty handle prints as the
// literal "None"), terminates the line with a newline, and returns None.
type Print struct {
	Args []runtime.Executable
}

func (p *Print) Execute(scope runtime.Scope, ctx runtime.Context) (runtime.Handle, error) {
	w := ctx.Output()
	for i, arg := range p.Args {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return runtime.None(), err
			}
		}
		v, err := arg.Execute(scope, ctx)
		if err != nil {
			return runtime.None(), err
		}
		if err := runtime.Print(v, w, ctx); err != nil {
			return runtime.None(), err
		}
	}
	_, err := io.WriteString(w, "\n")
	return runtime.None(), err
}
