package interp

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// Environment is one lexical scope's variable bindings, chained to its
// enclosing scope the way a closure captures its defining environment. The
// binding map reuses swiss.Map the same way the teacher's machine package
// does for its own Map value — repurposed here since this language has no
// user-facing map literal of its own to exercise that dependency.
type Environment struct {
	enclosing *Environment
	values    *swiss.Map[string, any]
}

// NewEnvironment creates a top-level (global) environment.
func NewEnvironment() *Environment {
	return &Environment{values: swiss.NewMap[string, any](8)}
}

// NewChild creates a new scope enclosed by e.
func (e *Environment) NewChild() *Environment {
	return &Environment{enclosing: e, values: swiss.NewMap[string, any](4)}
}

// Define binds name to value in this scope, shadowing any binding of the
// same name in an enclosing scope. Redefining a name already bound in this
// scope (e.g. a duplicate top-level `var`) silently replaces it, matching
// the reference interpreter's permissive global redeclaration.
func (e *Environment) Define(name string, value any) {
	e.values.Put(name, value)
}

// Get looks up name starting in this scope and walking outward.
func (e *Environment) Get(name string) (any, bool) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values.Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Assign rebinds name to value in the nearest enclosing scope (including
// this one) where it is already defined. It reports false if name is
// undefined anywhere in the chain.
func (e *Environment) Assign(name string, value any) bool {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values.Get(name); ok {
			env.values.Put(name, value)
			return true
		}
	}
	return false
}

// ancestor walks distance scopes outward from e.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		if env.enclosing == nil {
			panic(fmt.Sprintf("interp: environment chain too short for distance %d", distance))
		}
		env = env.enclosing
	}
	return env
}

// GetAt looks up name exactly distance scopes outward from e, the position
// the resolver recorded in its resolution table. It must exist: the
// resolver having found it statically guarantees it exists at runtime.
func (e *Environment) GetAt(distance int, name string) any {
	v, _ := e.ancestor(distance).values.Get(name)
	return v
}

// AssignAt rebinds name exactly distance scopes outward from e.
func (e *Environment) AssignAt(distance int, name string, value any) {
	e.ancestor(distance).values.Put(name, value)
}
