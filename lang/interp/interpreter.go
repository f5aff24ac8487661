package interp

import (
	"context"
	"io"
	"time"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/token"
)

// returnSignal is panicked by a Return statement and recovered by the
// nearest enclosing Function.Call, the same non-local-exit idiom the parser
// uses (panic(errParse)/recover) to unwind a single in-progress parse.
type returnSignal struct {
	value any
}

// Interpreter executes a resolved program against a chain of Environments.
type Interpreter struct {
	Globals *Environment
	env     *Environment
	locals  resolver.Table
	file    *token.File

	// Clock, when non-nil, overrides the native clock() built-in. Set by
	// lang/config for reproducible golden-file tests; nil means use the
	// system wall clock.
	Clock func() time.Time

	// Out is where Print statements write. Defaults to io.Discard.
	Out io.Writer

	// MaxCallDepth bounds nested Function/Class calls, as a defense against
	// a runaway program overflowing the host stack. Zero means unbounded.
	// This is an ambient safety net, not a language feature: exceeding it is
	// reported as a runtime error rather than left as an implementation-
	// defined crash.
	MaxCallDepth int
	callDepth    int
}

// enterCall increments the active call depth, failing if it would exceed
// MaxCallDepth (when set).
func (in *Interpreter) enterCall(pos token.Pos) error {
	in.callDepth++
	if in.MaxCallDepth > 0 && in.callDepth > in.MaxCallDepth {
		in.callDepth--
		return in.runtimeErrorf(pos, "Stack overflow.")
	}
	return nil
}

func (in *Interpreter) exitCall() {
	in.callDepth--
}

// New creates an Interpreter with a fresh global environment seeded with
// the native clock() function.
func New(file *token.File, locals resolver.Table) *Interpreter {
	globals := NewEnvironment()
	in := &Interpreter{Globals: globals, env: globals, locals: locals, file: file}
	globals.Define("clock", &NativeFunction{
		FnName: "clock",
		NArity: 0,
		Fn: func(ctx context.Context, in *Interpreter, args []any) (any, error) {
			return float64(in.now().UnixNano()) / 1e9, nil
		},
	})
	return in
}

func (in *Interpreter) now() time.Time {
	if in.Clock != nil {
		return in.Clock()
	}
	return time.Now()
}

func (in *Interpreter) line(pos token.Pos) int {
	return in.file.Position(pos).Line
}

func (in *Interpreter) runtimeErrorf(pos token.Pos, format string, args ...any) error {
	return diag.NewRuntimeError(in.line(pos), format, args...)
}

// EvalExpr evaluates a single expression (as produced by parser.ParseExpr)
// against the interpreter's current environment, for the `evaluate` CLI
// subcommand.
func (in *Interpreter) EvalExpr(ctx context.Context, e ast.Expr) (any, error) {
	return in.eval(ctx, e)
}

// Interpret executes a full program's statements in the interpreter's
// global environment.
func (in *Interpreter) Interpret(ctx context.Context, stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := in.exec(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// execBlock runs stmts in env, restoring the interpreter's previous active
// environment on every exit path (normal, early return-panic, or error).
func (in *Interpreter) execBlock(ctx context.Context, stmts []ast.Stmt, env *Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, s := range stmts {
		if err := in.exec(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
