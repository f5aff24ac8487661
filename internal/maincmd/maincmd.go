// Package maincmd implements the `lox` command-line surface: the four
// subcommands from SPEC_FULL.md §6.2 (tokenize, parse, evaluate, run), each
// taking a single filename argument, and the exit-code mapping from §6.3.
//
// Structurally this follows the teacher's own internal/maincmd: a Cmd
// struct with `flag:"..."` tags driving mainer.Parser, a reflection-based
// buildCmds dispatch table keyed by lower-cased method name, and a Main
// entry point that parses flags, resolves the subcommand and runs it with a
// context cancelled on SIGINT.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "lox"

var (
	shortUsage = fmt.Sprintf(`
usage: %s <command> <path>
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s <command> <path>
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the lox programming language.

The <command> can be one of:
       tokenize                  Run the scanner phase and print each
                                  token.
       parse                     Parse a single expression and print its
                                  parenthesised prefix form.
       evaluate                  Parse and evaluate a single expression,
                                  printing its value.
       run                       Parse, resolve and interpret a full
                                  program.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
       --config                  Path to an optional lox.config.yaml
                                  (ambient tuning only, see SPEC_FULL.md).

More information on the %[1]s repository:
       https://github.com/mna/lox
`, binName)
)

// exitError pairs an error with the exit code it must produce, letting Main
// map each phase's failure (usage, syntax, missing file, runtime) onto the
// exact codes from §6.3 without every subcommand handler needing to know
// about mainer.ExitCode directly.
type exitError struct {
	code mainer.ExitCode
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(format string, args ...any) error {
	return &exitError{code: mainer.ExitCode(64), err: fmt.Errorf(format, args...)}
}

func fileError(err error) error {
	return &exitError{code: mainer.ExitCode(66), err: err}
}

func syntaxError(err error) error {
	return &exitError{code: mainer.ExitCode(65), err: err}
}

func runtimeError(err error) error {
	return &exitError{code: mainer.ExitCode(70), err: err}
}

// Cmd holds the parsed CLI flags and dispatches to the matching subcommand
// method.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	ConfigPath string `flag:"config"`

	args  []string
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string) { c.args = args }

func (c *Cmd) SetFlags(map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]
	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	if len(c.args[1:]) != 1 {
		return fmt.Errorf("%s: exactly one file argument is required", cmdName)
	}
	return nil
}

// Main parses args, dispatches to the resolved subcommand and maps its
// error (if any) to the exact process exit code from §6.3.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   true,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.ExitCode(64)
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.ExitCode(0)
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.ExitCode(0)
	}

	if verr := c.Validate(); verr != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n%s", verr, shortUsage)
		return mainer.ExitCode(64)
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		return mainer.ExitCode(70)
	}
	return mainer.ExitCode(0)
}

// valid commands are those that take a context.Context and a mainer.Stdio
// and a slice of strings as input, and return an error as output.
func buildCmds(v any) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
