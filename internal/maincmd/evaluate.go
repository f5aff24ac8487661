package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/mainer"
)

// Evaluate parses a single expression and evaluates it directly against a
// fresh global environment, printing its value without the trailing ".0"
// that `run`/`print` force onto integers (§6.3's documented divergence).
func (c *Cmd) Evaluate(ctx context.Context, stdio mainer.Stdio, args []string) error {
	_, f, src, err := readFile(args[0])
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	expr, perr := parser.ParseExpr(f, src)
	if perr != nil {
		fmt.Fprintln(stdio.Stderr, perr)
		return syntaxError(perr)
	}

	// A bare expression still passes through the resolver so that `this` /
	// `super` misuse inside it is rejected the same way `run` would reject
	// it, by wrapping it as the sole statement of a one-statement program.
	table, rerr := resolver.Resolve(f, []ast.Stmt{&ast.ExprStmt{X: expr}})
	if rerr != nil {
		fmt.Fprintln(stdio.Stderr, rerr)
		return syntaxError(rerr)
	}

	in := interp.New(f, table)
	in.Out = stdio.Stdout

	v, everr := in.EvalExpr(ctx, expr)
	if everr != nil {
		fmt.Fprintln(stdio.Stderr, everr)
		return runtimeError(everr)
	}

	fmt.Fprintln(stdio.Stdout, interp.StringifyBare(v))
	return nil
}
