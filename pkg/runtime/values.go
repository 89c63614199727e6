// Package runtime implements minipy's value universe: a small closed set of
// object kinds reached through a reference-style Handle, plus the scope and
// output-context abstractions the AST evaluator executes against. The value
// model and its comparison/truthiness rules are ported from the C++
// reference runtime this package replaces.
package runtime

import (
	"fmt"
	"io"
)

// Kind tags the closed set of runtime value categories.
type Kind int

const (
	KindNumber Kind = iota
	KindBoolean
	KindString
	KindClass
	KindClassInstance
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindBoolean:
		return "Boolean"
	case KindString:
		return "String"
	case KindClass:
		return "Class"
	case KindClassInstance:
		return "ClassInstance"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Object is the behaviour shared by every value kind: every object can
// render itself to an output stream, consulting Context for anything that
// needs to call back into user-defined methods (e.g. __str__).
type Object interface {
	Kind() Kind
	Print(w io.Writer, ctx Context) error
}

// Context is the instructions-execution context passed through evaluation:
// an abstraction over the current output stream.
type Context interface {
	Output() io.Writer
}

// SimpleContext is the usual Context backed by a single writer.
type SimpleContext struct {
	w io.Writer
}

// NewContext wraps w as a Context.
func NewContext(w io.Writer) *SimpleContext {
	return &SimpleContext{w: w}
}

// Output returns the underlying writer.
func (c *SimpleContext) Output() io.Writer { return c.w }

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

// Number is an immutable integer value.
type Number struct {
	Value int
}

func (Number) Kind() Kind { return KindNumber }

func (n Number) Print(w io.Writer, _ Context) error {
	_, err := fmt.Fprintf(w, "%d", n.Value)
	return err
}

// Boolean is an immutable true/false value.
type Boolean struct {
	Value bool
}

func (Boolean) Kind() Kind { return KindBoolean }

func (b Boolean) Print(w io.Writer, _ Context) error {
	if b.Value {
		_, err := io.WriteString(w, "True")
		return err
	}
	_, err := io.WriteString(w, "False")
	return err
}

// String is an immutable byte string value.
type String struct {
	Value string
}

func (String) Kind() Kind { return KindString }

func (s String) Print(w io.Writer, _ Context) error {
	_, err := io.WriteString(w, s.Value)
	return err
}
