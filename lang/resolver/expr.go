package resolver

import "github.com/mna/lox/lang/ast"

func (r *resolver) expr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.LiteralExpr:
		// nothing to resolve

	case *ast.GroupingExpr:
		r.expr(e.Expr)

	case *ast.UnaryExpr:
		r.expr(e.Right)

	case *ast.BinaryExpr:
		r.expr(e.Left)
		r.expr(e.Right)

	case *ast.LogicalExpr:
		r.expr(e.Left)
		r.expr(e.Right)

	case *ast.VariableExpr:
		if s := r.current(); s != nil {
			if defined, ok := s.names[e.Name]; ok && !defined {
				r.errorAt(e.NamePos, e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e.ID, e.Name)

	case *ast.AssignExpr:
		r.expr(e.Value)
		r.resolveLocal(e.ID, e.Name)

	case *ast.CallExpr:
		r.expr(e.Callee)
		for _, a := range e.Args {
			r.expr(a)
		}

	case *ast.GetExpr:
		r.expr(e.Object)

	case *ast.SetExpr:
		r.expr(e.Value)
		r.expr(e.Object)

	case *ast.ThisExpr:
		if r.classKind == ckNone {
			r.errorAt(e.KeywordPos, "this", "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e.ID, "this")

	case *ast.SuperExpr:
		switch r.classKind {
		case ckNone:
			r.errorAt(e.KeywordPos, "super", "Can't use 'super' outside of a class.")
			return
		case ckClass:
			r.errorAt(e.KeywordPos, "super", "Can't use 'super' in a class with no superclass.")
			return
		}
		r.resolveLocal(e.ID, "super")

	default:
		panic("resolver: unhandled expression type")
	}
}
