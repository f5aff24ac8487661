// Package interp implements the tree-walking evaluator: the Environment
// chain, the runtime representations of functions, classes and instances,
// and the Interpreter that executes a resolved AST.
//
// Values are represented as plain Go `any`, holding one of nil, bool,
// float64, string, *Function, *NativeFunction, *Class or *Instance. Rather
// than wrapping every value behind a custom interface the way the teacher's
// machine package wraps Value, capabilities a value may or may not have
// (being callable, having attributes) are expressed the same way the
// teacher expresses them — as small, separately implementable interfaces —
// but type-asserted directly against `any`, since this language has no
// user-definable types that would need a shared Value method set.
package interp

import "context"

// Callable is implemented by any value that may appear as the operand of a
// call expression: user-defined functions and methods, bound methods,
// classes (instantiation) and native functions.
type Callable interface {
	// Arity returns the number of arguments Call expects.
	Arity() int
	// Call invokes the value with the given already-evaluated arguments.
	Call(ctx context.Context, in *Interpreter, args []any) (any, error)
	// Name returns a human-readable name.
	Name() string
}

// HasAttrs is implemented by values whose fields or methods may be read by
// a get expression (x.f).
type HasAttrs interface {
	GetAttr(name string) (any, bool, error)
}

// HasSetField is implemented by values whose fields may be written by a set
// expression (x.f = v).
type HasSetField interface {
	HasAttrs
	SetAttr(name string, v any)
}

var (
	_ Callable = (*Function)(nil)
	_ Callable = (*NativeFunction)(nil)
	_ Callable = (*Class)(nil)
	_ HasAttrs = (*Instance)(nil)
	_ HasSetField = (*Instance)(nil)
)

// NativeFunction wraps a Go function as a Callable, used for the language's
// small set of built-ins (clock).
type NativeFunction struct {
	FnName string
	NArity int
	Fn     func(ctx context.Context, in *Interpreter, args []any) (any, error)
}

func (f *NativeFunction) Arity() int    { return f.NArity }
func (f *NativeFunction) Name() string  { return f.FnName }
func (f *NativeFunction) Call(ctx context.Context, in *Interpreter, args []any) (any, error) {
	return f.Fn(ctx, in, args)
}
func (f *NativeFunction) String() string { return "<native fn " + f.FnName + ">" }
