package runtime

import "io"

// Handle is a reference to an Object, or the empty handle representing
// None. Own and Share exist as distinct constructors to document intent —
// Own for freshly-computed values the caller now holds the only reference
// to, Share for a non-owning reference to an object that already lives
// somewhere else (the `self` binding installed by ClassInstance.Call, see
// class.go, and the literal and class-definition nodes of pkg/ast, whose
// values live inside the tree) — even though Go's garbage collector
// makes the two operationally identical: unlike the reference-counted
// original, nothing here needs a no-op deleter to avoid a self-referential
// cycle keeping an object alive forever.
type Handle struct {
	obj Object
}

// Own returns a handle owning o.
func Own(o Object) Handle {
	return Handle{obj: o}
}

// Share returns a non-owning handle to an already-live object.
func Share(o Object) Handle {
	return Handle{obj: o}
}

// None returns the empty handle.
func None() Handle {
	return Handle{}
}

// IsNone reports whether the handle is empty.
func (h Handle) IsNone() bool {
	return h.obj == nil
}

// Object returns the underlying object, or nil for the empty handle.
func (h Handle) Object() Object {
	return h.obj
}

// TryAsNumber narrows the handle to a Number.
func (h Handle) TryAsNumber() (Number, bool) {
	n, ok := h.obj.(Number)
	return n, ok
}

// TryAsBoolean narrows the handle to a Boolean.
func (h Handle) TryAsBoolean() (Boolean, bool) {
	b, ok := h.obj.(Boolean)
	return b, ok
}

// TryAsString narrows the handle to a String.
func (h Handle) TryAsString() (String, bool) {
	s, ok := h.obj.(String)
	return s, ok
}

// TryAsClass narrows the handle to a *Class.
func (h Handle) TryAsClass() (*Class, bool) {
	c, ok := h.obj.(*Class)
	return c, ok
}

// TryAsInstance narrows the handle to a *ClassInstance.
func (h Handle) TryAsInstance() (*ClassInstance, bool) {
	ci, ok := h.obj.(*ClassInstance)
	return ci, ok
}

// Print renders the handle: "None" for the empty handle, else the
// underlying object's own Print.
func Print(h Handle, w io.Writer, ctx Context) error {
	if h.IsNone() {
		_, err := io.WriteString(w, "None")
		return err
	}
	return h.Object().Print(w, ctx)
}

// IsTrue reports minipy truthiness: empty is false; Number is false only at
// zero; Boolean is its own value; String is false only when empty; every
// other kind (Class, ClassInstance) is false.
func IsTrue(h Handle) bool {
	if h.IsNone() {
		return false
	}
	switch v := h.Object().(type) {
	case Number:
		return v.Value != 0
	case Boolean:
		return v.Value
	case String:
		return v.Value != ""
	default:
		return false
	}
}
