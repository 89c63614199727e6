package driver

import (
	"io"

	"able/minipy/pkg/lexer"
	"able/minipy/pkg/parser"
	"able/minipy/pkg/runtime"
)

// Run lexes and parses source, then executes the resulting program tree
// against a fresh global scope and a Context backed by out. It returns
// the first lexer, parse or runtime error encountered, if any.
func Run(source io.Reader, out io.Writer) error {
	l, err := lexer.New(source)
	if err != nil {
		return err
	}
	program, err := parser.Parse(l)
	if err != nil {
		return err
	}
	ctx := runtime.NewContext(out)
	scope := runtime.NewScope()
	_, err = program.Execute(scope, ctx)
	return err
}

// RunFile opens path and runs it, writing output to out.
func RunFile(path string, out io.Writer) error {
	f, err := openSource(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Run(f, out)
}
