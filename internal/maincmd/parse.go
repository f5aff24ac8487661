package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/mainer"
)

func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
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

	fmt.Fprintln(stdio.Stdout, ast.Print(expr))
	return nil
}
