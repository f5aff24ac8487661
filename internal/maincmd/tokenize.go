package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
	"github.com/mna/mainer"
)

func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	_, f, src, err := readFile(args[0])
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	toks, errs := scanner.Scan(f, src)
	for _, tv := range toks {
		fmt.Fprintln(stdio.Stdout, tokenLine(tv))
	}
	if err := errs.Err(); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return syntaxError(err)
	}
	return nil
}

func tokenLine(tv scanner.TokenAndValue) string {
	literal := "null"
	switch tv.Kind {
	case token.STRING:
		literal = tv.Value.Str
	case token.NUMBER:
		literal = interp.Stringify(tv.Value.Number)
	}
	return fmt.Sprintf("%s %s %s", tv.Kind.Name(), tv.Value.Lexeme, literal)
}
