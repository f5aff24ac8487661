package interp

import (
	"context"
	"fmt"

	"github.com/dolthub/swiss"
	"github.com/mna/lox/lang/ast"
)

// Function is a user-defined function or method: an AST declaration paired
// with the environment in effect where it was declared, which is what
// makes it a closure.
type Function struct {
	Decl          *ast.FunctionDecl
	Closure       *Environment
	IsInitializer bool
}

func (f *Function) Arity() int   { return len(f.Decl.Params) }
func (f *Function) Name() string { return f.Decl.Name }
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Decl.Name)
}

// Bind returns a copy of f whose closure is extended with `this` bound to
// instance, turning an unbound method into the callable backing
// instance.method.
func (f *Function) Bind(instance *Instance) *Function {
	env := f.Closure.NewChild()
	env.Define("this", instance)
	return &Function{Decl: f.Decl, Closure: env, IsInitializer: f.IsInitializer}
}

// Call executes f's body in a fresh environment enclosed by its closure,
// with parameters bound to args. A `return` statement inside the body
// unwinds here via the returnSignal panic/recover idiom (see interpreter.go)
// rather than an error return, matching the reference interpreter's
// exception-based control transfer.
func (f *Function) Call(ctx context.Context, in *Interpreter, args []any) (result any, err error) {
	env := f.Closure.NewChild()
	for i, p := range f.Decl.Params {
		env.Define(p, args[i])
	}

	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			if f.IsInitializer {
				result = f.Closure.GetAt(0, "this")
				return
			}
			result = sig.value
		}
	}()

	if execErr := in.execBlock(ctx, f.Decl.Body, env); execErr != nil {
		return nil, execErr
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// Class is a runtime class object: a name, an optional superclass and a set
// of methods. Instantiating it (calling it) allocates an Instance and, if
// present, runs its init method.
type Class struct {
	ClassName  string
	Superclass *Class
	Methods    *swiss.Map[string, *Function]
}

func NewClass(name string, superclass *Class) *Class {
	return &Class{ClassName: name, Superclass: superclass, Methods: swiss.NewMap[string, *Function](4)}
}

func (c *Class) Name() string      { return c.ClassName }
func (c *Class) String() string    { return c.ClassName }

// FindMethod looks up name in c's own method set, then its superclass
// chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods.Get(name); ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call instantiates c, running its `init` method (if any) against args.
func (c *Class) Call(ctx context.Context, in *Interpreter, args []any) (any, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(ctx, in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a runtime object created by calling a Class.
type Instance struct {
	Class  *Class
	fields *swiss.Map[string, any]
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, fields: swiss.NewMap[string, any](4)}
}

func (i *Instance) String() string { return i.Class.ClassName + " instance" }

// GetAttr implements field-then-method-chain lookup for a get expression
// (x.f): the instance's own fields shadow methods of the same name found on
// its class or any ancestor.
func (i *Instance) GetAttr(name string) (any, bool, error) {
	if v, ok := i.fields.Get(name); ok {
		return v, true, nil
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m.Bind(i), true, nil
	}
	return nil, false, nil
}

// SetAttr implements a set expression (x.f = v): instance fields are
// created freely; there is no declared field list to validate against.
func (i *Instance) SetAttr(name string, v any) {
	i.fields.Put(name, v)
}
