package resolver

import "github.com/mna/lox/lang/ast"

func (r *resolver) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.ExprStmt:
		r.expr(s.X)

	case *ast.PrintStmt:
		r.expr(s.X)

	case *ast.VarStmt:
		r.declare(s.Pos(), s.Name)
		if s.Init != nil {
			r.expr(s.Init)
		}
		r.define(s.Name)

	case *ast.BlockStmt:
		r.beginScope()
		r.block(s.Stmts)
		r.endScope()

	case *ast.IfStmt:
		r.expr(s.Cond)
		r.stmt(s.Then)
		if s.Else != nil {
			r.stmt(s.Else)
		}

	case *ast.WhileStmt:
		r.expr(s.Cond)
		r.stmt(s.Body)

	case *ast.FunStmt:
		r.declare(s.Decl.Pos(), s.Decl.Name)
		r.define(s.Decl.Name)
		r.resolveFunction(s.Decl, fkFunction)

	case *ast.ReturnStmt:
		if r.fnKind == fkNone {
			r.errorAt(s.KeywordPos, "return", "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.fnKind == fkInitializer {
				r.errorAt(s.KeywordPos, "return", "Can't return a value from an initializer.")
			}
			r.expr(s.Value)
		}

	case *ast.ClassStmt:
		r.classStmt(s)

	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *resolver) block(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.stmt(s)
	}
}

func (r *resolver) classStmt(s *ast.ClassStmt) {
	enclosingClass := r.classKind
	r.classKind = ckClass
	defer func() { r.classKind = enclosingClass }()

	r.declare(s.KeywordPos, s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name == s.Name {
			r.errorAt(s.Superclass.NamePos, s.Superclass.Name, "A class can't inherit from itself.")
		}
		r.classKind = ckSubclass
		r.resolveLocal(s.Superclass.ID, s.Superclass.Name)

		r.beginScope()
		r.current().names["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.current().names["this"] = true
	defer r.endScope()

	for _, m := range s.Methods {
		kind := fkMethod
		if m.Name == "init" {
			kind = fkInitializer
		}
		r.resolveFunction(m, kind)
	}
}

// resolveFunction resolves decl's parameters and body in a fresh scope. The
// enclosing function kind is saved and restored, so nested functions see
// their own kind while returning correctly reports violations against the
// innermost enclosing function.
func (r *resolver) resolveFunction(decl *ast.FunctionDecl, kind functionKind) {
	enclosingFn := r.fnKind
	r.fnKind = kind
	defer func() { r.fnKind = enclosingFn }()

	r.beginScope()
	defer r.endScope()

	for _, param := range decl.Params {
		r.declare(decl.NamePos, param)
		r.define(param)
	}
	r.block(decl.Body)
}
