package runtime

import (
	"fmt"
	"io"
)

// Method describes one class method: its name, the names of its formal
// parameters (positional, bound by Call), and its executable body.
type Method struct {
	Name   string
	Params []string
	Body   Executable
}

// Class owns its method vector and an optional parent for inheritance.
// Method lookup walks the parent chain, first match wins.
type Class struct {
	name         string
	methods      []Method
	nameToMethod map[string]int
	parent       *Class
}

// NewClass builds a class with a given name and method set, inheriting from
// parent (nil for no parent). Method name→index entries must be unique
// within methods.
func NewClass(name string, methods []Method, parent *Class) *Class {
	c := &Class{
		name:         name,
		methods:      methods,
		nameToMethod: make(map[string]int, len(methods)),
		parent:       parent,
	}
	for i, m := range methods {
		c.nameToMethod[m.Name] = i
	}
	return c
}

func (*Class) Kind() Kind { return KindClass }

// Name returns the class's name.
func (c *Class) Name() string { return c.name }

// Parent returns the class's parent, or nil.
func (c *Class) Parent() *Class { return c.parent }

// GetMethod resolves name, consulting the parent chain on miss.
func (c *Class) GetMethod(name string) (*Method, bool) {
	if idx, ok := c.nameToMethod[name]; ok {
		return &c.methods[idx], true
	}
	if c.parent != nil {
		return c.parent.GetMethod(name)
	}
	return nil, false
}

func (c *Class) Print(w io.Writer, _ Context) error {
	_, err := fmt.Fprintf(w, "Class %s", c.name)
	return err
}

// ClassInstance holds a reference to its Class and an owned, mutable field
// scope.
type ClassInstance struct {
	class  *Class
	fields Scope
}

// NewClassInstance constructs an empty instance of class.
func NewClassInstance(class *Class) *ClassInstance {
	return &ClassInstance{class: class, fields: NewScope()}
}

func (*ClassInstance) Kind() Kind { return KindClassInstance }

// Class returns the instance's class.
func (ci *ClassInstance) Class() *Class { return ci.class }

// Fields returns the instance's mutable field scope.
func (ci *ClassInstance) Fields() Scope { return ci.fields }

// HasMethod reports whether method resolves to a method whose formal
// parameter count equals argc.
func (ci *ClassInstance) HasMethod(method string, argc int) bool {
	m, ok := ci.class.GetMethod(method)
	return ok && len(m.Params) == argc
}

// Call invokes method with the given positional args. It builds a fresh
// local scope binding `self` (via Share, to avoid owning a cycle from this
// call frame) followed by each formal parameter to its actual argument,
// executes the method body against that scope, and takes the value recorded
// at ReturnedValueKey as the result when the body set it (else the body's
// own result). It then honors the self-rebinding protocol: if the method
// replaced `self` with a different object, that replacement is returned
// instead.
func (ci *ClassInstance) Call(method string, args []Handle, ctx Context) (Handle, error) {
	if !ci.HasMethod(method, len(args)) {
		return None(), NewError("method does not exist: %s", method)
	}
	m, _ := ci.class.GetMethod(method)

	callScope := NewScope()
	callScope.Set("self", Share(ci))
	for i, param := range m.Params {
		callScope.Set(param, args[i])
	}

	result, err := m.Body.Execute(callScope, ctx)
	if err != nil {
		return None(), err
	}
	if callScope.HasReturned() {
		result = callScope.ReturnedValue()
	}

	self, _ := callScope.Get("self")
	if instance, ok := self.TryAsInstance(); !ok || instance != ci {
		return self, nil
	}
	return result, nil
}

func (ci *ClassInstance) Print(w io.Writer, ctx Context) error {
	if m, ok := ci.class.GetMethod("__str__"); ok && len(m.Params) == 0 {
		result, err := ci.Call("__str__", nil, ctx)
		if err != nil {
			return err
		}
		s, ok := result.TryAsString()
		if !ok {
			return NewError("__str__ must return a string")
		}
		_, err = io.WriteString(w, s.Value)
		return err
	}
	_, err := fmt.Fprintf(w, "<%s instance at %p>", ci.class.name, ci)
	return err
}
