// Package resolver implements the static resolver described in §4.2: a
// single AST walk that binds every Variable/Assign/This/Super reference to
// a lexical scope depth and rejects the context-sensitive violations that
// must be caught before execution (return outside a function, `this`
// outside a class, self-inheritance, `super` without a superclass, reading
// a local in its own initializer, redeclaring a name in the same scope).
//
// The scope-stack push/pop idiom (a slice of frames, innermost last, with
// one frame per lexical block) is modeled on the teacher's resolver.block/push/pop,
// generalized from the teacher's label/defer-aware blocks down to this
// language's simpler two-phase declare/define scoping.
package resolver

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/token"
)

// Table is the resolver's output: for each resolvable expression id, the
// number of lexical scopes between its use and its definition. An id absent
// from the table was not found in any local scope and should be treated as
// a global reference by the interpreter.
type Table map[ast.ID]int

type functionKind int

const (
	fkNone functionKind = iota
	fkFunction
	fkMethod
	fkInitializer
)

type classKind int

const (
	ckNone classKind = iota
	ckClass
	ckSubclass
)

// scope is one lexical block's frame: name -> defined?. A name present with
// a false value has been declared but not yet defined (its initializer is
// still being resolved), which is how "can't read local variable in its own
// initializer" is detected.
type scope struct {
	names map[string]bool
}

type resolver struct {
	file  *token.File
	errs  diag.List
	table Table

	scopes []*scope // innermost last

	fnKind    functionKind
	classKind classKind
}

// Resolve walks stmts (a full program, as produced by parser.ParseProgram)
// and returns the resolution table, or a diag.SyntaxErrors error if any
// context-sensitive violation was found.
func Resolve(file *token.File, stmts []ast.Stmt) (Table, error) {
	var r resolver
	r.file = file
	r.table = make(Table)

	for _, s := range stmts {
		r.stmt(s)
	}

	r.errs.Sort()
	if err := r.errs.Err(); err != nil {
		return nil, err
	}
	return r.table, nil
}

func (r *resolver) errorAt(pos token.Pos, lexeme, msg string) {
	r.errs.AddAt(r.file.Position(pos), lexeme, false, msg)
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, &scope{names: make(map[string]bool)})
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) current() *scope {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare inserts name -> false in the current scope; a name redeclared in
// the same non-global scope is an error. Declaring at global scope (no
// scopes on the stack) is a no-op since globals aren't tracked here.
func (r *resolver) declare(pos token.Pos, name string) {
	s := r.current()
	if s == nil {
		return
	}
	if _, ok := s.names[name]; ok {
		r.errorAt(pos, name, "Already a variable with this name in this scope.")
	}
	s.names[name] = false
}

func (r *resolver) define(name string) {
	if s := r.current(); s != nil {
		s.names[name] = true
	}
}

// resolveLocal searches the scope stack from innermost outward for name,
// recording (id -> depth) in the table on a hit. No entry is recorded on a
// miss; the interpreter treats that as a global reference.
func (r *resolver) resolveLocal(id ast.ID, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i].names[name]; ok {
			r.table[id] = len(r.scopes) - 1 - i
			return
		}
	}
}
