package maincmd_test

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/lox/internal/filetest"
	"github.com/mna/lox/internal/maincmd"
	"github.com/mna/mainer"
)

var testUpdateCmdTests = flag.Bool("test.update-cmd-tests", false, "If set, replace expected maincmd test results with actual results.")

func runSubcommand(t *testing.T, run func(*maincmd.Cmd, context.Context, mainer.Stdio, []string) error, path string) (string, string, error) {
	t.Helper()
	var out, errout bytes.Buffer
	stdio := mainer.Stdio{Stdout: &out, Stderr: &errout}
	c := &maincmd.Cmd{}
	err := run(c, context.Background(), stdio, []string{path})
	return out.String(), errout.String(), err
}

func TestTokenize(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")
	for _, fi := range filetest.SourceFiles(t, srcDir, ".lox") {
		if fi.Name() != "tokens.lox" {
			continue
		}
		t.Run(fi.Name(), func(t *testing.T) {
			out, _, err := runSubcommand(t, (*maincmd.Cmd).Tokenize, filepath.Join(srcDir, fi.Name()))
			if err != nil {
				t.Fatalf("Tokenize: %v", err)
			}
			filetest.DiffCustom(t, fi, "tokenize output", ".tokenize.want", out, resultDir, testUpdateCmdTests)
		})
	}
}

func TestParse(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")
	for _, fi := range filetest.SourceFiles(t, srcDir, ".lox") {
		if fi.Name() != "arith.lox" {
			continue
		}
		t.Run(fi.Name(), func(t *testing.T) {
			out, _, err := runSubcommand(t, (*maincmd.Cmd).Parse, filepath.Join(srcDir, fi.Name()))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			filetest.DiffCustom(t, fi, "parse output", ".parse.want", out, resultDir, testUpdateCmdTests)
		})
	}
}

func TestEvaluate(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")
	for _, fi := range filetest.SourceFiles(t, srcDir, ".lox") {
		if fi.Name() != "arith.lox" {
			continue
		}
		t.Run(fi.Name(), func(t *testing.T) {
			out, _, err := runSubcommand(t, (*maincmd.Cmd).Evaluate, filepath.Join(srcDir, fi.Name()))
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			filetest.DiffCustom(t, fi, "evaluate output", ".evaluate.want", out, resultDir, testUpdateCmdTests)
		})
	}
}

func TestRun(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")
	for _, fi := range filetest.SourceFiles(t, srcDir, ".lox") {
		if fi.Name() != "run.lox" {
			continue
		}
		t.Run(fi.Name(), func(t *testing.T) {
			out, _, err := runSubcommand(t, (*maincmd.Cmd).Run, filepath.Join(srcDir, fi.Name()))
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			filetest.DiffCustom(t, fi, "run output", ".run.want", out, resultDir, testUpdateCmdTests)
		})
	}
}

func TestExitCodeMapping(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.lox")
	syntaxErrPath := filepath.Join(dir, "bad.lox")
	if err := os.WriteFile(syntaxErrPath, []byte("var ;"), 0o600); err != nil {
		t.Fatal(err)
	}
	runtimeErrPath := filepath.Join(dir, "runtime.lox")
	if err := os.WriteFile(runtimeErrPath, []byte(`print "a" + 1;`+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	okPath := filepath.Join(dir, "ok.lox")
	if err := os.WriteFile(okPath, []byte("print 1;\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		args []string
		want mainer.ExitCode
	}{
		{"no command", nil, 64},
		{"unknown command", []string{"frobnicate", okPath}, 64},
		{"missing file arg", []string{"run"}, 64},
		{"cannot open file", []string{"run", missing}, 66},
		{"syntax error", []string{"run", syntaxErrPath}, 65},
		{"runtime error", []string{"run", runtimeErrPath}, 70},
		{"success", []string{"run", okPath}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out, errout bytes.Buffer
			stdio := mainer.Stdio{Stdout: &out, Stderr: &errout}
			cmd := &maincmd.Cmd{}
			got := cmd.Main(append([]string{"lox"}, c.args...), stdio)
			if got != c.want {
				t.Errorf("exit code = %d, want %d (stderr: %s)", got, c.want, errout.String())
			}
		})
	}
}
