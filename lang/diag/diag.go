// Package diag implements the diagnostic types shared by the scanner,
// parser, resolver and interpreter. It is modeled on the teacher's
// scanner.ErrorList pattern (aggregate, sort, join into a single error),
// generalized to the two message shapes this language's error contract
// requires: syntax diagnostics ("[line N] Error at 'x': msg") and runtime
// diagnostics ("msg\n[line N]").
package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mna/lox/lang/token"
)

// SyntaxError is a diagnostic produced by the scanner, parser or resolver.
// It renders as "[line N] Error: MESSAGE" when HasAt is false (bare scanner
// errors), or "[line N] Error at 'LEXEME': MESSAGE" (or "at end" when AtEOF
// is set) otherwise.
type SyntaxError struct {
	Pos     token.Position
	Message string
	Lexeme  string
	AtEOF   bool
	HasAt   bool // true for parser/resolver errors, false for bare scanner errors
}

func (e *SyntaxError) Error() string {
	if !e.HasAt {
		return fmt.Sprintf("[line %d] Error: %s", e.Pos.Line, e.Message)
	}
	if e.AtEOF {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Pos.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Pos.Line, e.Lexeme, e.Message)
}

// SyntaxErrors is a non-empty, sortable list of *SyntaxError, returned as the
// error from a scan/parse/resolve phase.
type SyntaxErrors []*SyntaxError

func (es SyntaxErrors) Error() string {
	lines := make([]string, len(es))
	for i, e := range es {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// List accumulates SyntaxErrors across a scan/parse/resolve phase.
type List struct {
	errs SyntaxErrors
}

// Add records a bare scanner-style error (no lexeme, no "at").
func (l *List) Add(pos token.Position, msg string) {
	l.errs = append(l.errs, &SyntaxError{Pos: pos, Message: msg})
}

// AddAt records a parser/resolver-style error that references a specific
// token (or the end of input, when atEOF is true).
func (l *List) AddAt(pos token.Position, lexeme string, atEOF bool, msg string) {
	l.errs = append(l.errs, &SyntaxError{Pos: pos, Message: msg, Lexeme: lexeme, AtEOF: atEOF, HasAt: true})
}

// Len reports the number of diagnostics recorded so far.
func (l *List) Len() int { return len(l.errs) }

// Sort orders the diagnostics by line then column, for deterministic output
// regardless of the order errors were discovered in.
func (l *List) Sort() {
	sort.Slice(l.errs, func(i, j int) bool {
		pi, pj := l.errs[i].Pos, l.errs[j].Pos
		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}
		return pi.Column < pj.Column
	})
}

// Err returns nil if the list is empty, else the accumulated SyntaxErrors.
func (l *List) Err() error {
	if len(l.errs) == 0 {
		return nil
	}
	return l.errs
}

// RuntimeError is a diagnostic raised while evaluating a resolved program. It
// renders as "MESSAGE\n[line N]", matching the reference interpreter's
// runtime-error report format.
type RuntimeError struct {
	Message string
	Line    int
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Line)
}

// NewRuntimeError builds a *RuntimeError for the given source line.
func NewRuntimeError(line int, format string, args ...any) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...), Line: line}
}
