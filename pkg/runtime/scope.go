package runtime

// ReturnedValueKey is the reserved scope slot a method body writes to signal
// an early return; user programs must not bind a variable with this name.
const ReturnedValueKey = "returned_value"

// Scope is the closure: a flat, order-irrelevant mapping from identifier to
// value. It is the sole mechanism for variable lookup, parameter binding,
// and the return-value protocol described by ReturnedValueKey. Unlike a
// lexically-nested environment, a Scope never chains to a parent — each
// call frame (global program, method invocation) owns exactly one.
type Scope map[string]Handle

// NewScope returns an empty scope.
func NewScope() Scope {
	return make(Scope)
}

// Get looks up name, reporting whether it is bound.
func (s Scope) Get(name string) (Handle, bool) {
	v, ok := s[name]
	return v, ok
}

// Set binds name to v, replacing any existing binding.
func (s Scope) Set(name string, v Handle) {
	s[name] = v
}

// HasReturned reports whether this scope has recorded an early return.
func (s Scope) HasReturned() bool {
	_, ok := s[ReturnedValueKey]
	return ok
}

// ReturnedValue fetches the value recorded by a Return statement.
func (s Scope) ReturnedValue() Handle {
	return s[ReturnedValueKey]
}

// Executable is the contract every AST node satisfies: evaluate against a
// scope and an output context, producing a value or a runtime error.
type Executable interface {
	Execute(scope Scope, ctx Context) (Handle, error)
}
