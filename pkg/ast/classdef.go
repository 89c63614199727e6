package ast

import "able/minipy/pkg/runtime"

// ClassDefinition binds Class's name in scope to a share handle of the
// class object and returns None. The Class itself — its method table and
// parent link — is fully built by the time this node executes; this node's
// only job is installing it in scope, where VariableValue lookups find it.
// NewInstance nodes hold the *runtime.Class directly and do not consult
// the scope.
type ClassDefinition struct {
	Class *runtime.Class
}

func (c *ClassDefinition) Execute(scope runtime.Scope, _ runtime.Context) (runtime.Handle, error) {
	scope.Set(c.Class.Name(), runtime.Share(c.Class))
	return runtime.None(), nil
}
