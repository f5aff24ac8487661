package maincmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mna/lox/lang/config"
	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/mainer"
)

func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	_, f, src, err := readFile(args[0])
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	stmts, perr := parser.ParseProgram(f, src)
	if perr != nil {
		fmt.Fprintln(stdio.Stderr, perr)
		return syntaxError(perr)
	}

	table, rerr := resolver.Resolve(f, stmts)
	if rerr != nil {
		fmt.Fprintln(stdio.Stderr, rerr)
		return syntaxError(rerr)
	}

	cfg, cerr := config.Load(c.ConfigPath)
	if cerr != nil {
		fmt.Fprintln(stdio.Stderr, cerr)
		return usageError("%s", cerr)
	}

	in := interp.New(f, table)
	in.Out = stdio.Stdout
	in.MaxCallDepth = cfg.MaxCallDepth
	if cfg.FixedClock != "" {
		secs, err := strconv.ParseInt(cfg.FixedClock, 10, 64)
		if err != nil {
			return usageError("invalid fixed_clock %q: %s", cfg.FixedClock, err)
		}
		in.Clock = func() time.Time { return time.Unix(secs, 0) }
	}

	if ierr := in.Interpret(ctx, stmts); ierr != nil {
		fmt.Fprintln(stdio.Stderr, ierr)
		return runtimeError(ierr)
	}
	return nil
}
