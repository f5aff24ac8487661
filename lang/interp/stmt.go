package interp

import (
	"context"

	"github.com/mna/lox/lang/ast"
)

func (in *Interpreter) exec(ctx context.Context, s ast.Stmt) error {
	switch s := s.(type) {
	case *ast.ExprStmt:
		_, err := in.eval(ctx, s.X)
		return err

	case *ast.PrintStmt:
		v, err := in.eval(ctx, s.X)
		if err != nil {
			return err
		}
		in.print(v)
		return nil

	case *ast.VarStmt:
		var v any
		if s.Init != nil {
			var err error
			v, err = in.eval(ctx, s.Init)
			if err != nil {
				return err
			}
		}
		in.env.Define(s.Name, v)
		return nil

	case *ast.BlockStmt:
		return in.execBlock(ctx, s.Stmts, in.env.NewChild())

	case *ast.IfStmt:
		cond, err := in.eval(ctx, s.Cond)
		if err != nil {
			return err
		}
		if truthy(cond) {
			return in.exec(ctx, s.Then)
		}
		if s.Else != nil {
			return in.exec(ctx, s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.eval(ctx, s.Cond)
			if err != nil {
				return err
			}
			if !truthy(cond) {
				return nil
			}
			if err := in.exec(ctx, s.Body); err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
		}

	case *ast.FunStmt:
		fn := &Function{Decl: s.Decl, Closure: in.env}
		in.env.Define(s.Decl.Name, fn)
		return nil

	case *ast.ReturnStmt:
		var v any
		if s.Value != nil {
			var err error
			v, err = in.eval(ctx, s.Value)
			if err != nil {
				return err
			}
		}
		panic(returnSignal{value: v})

	case *ast.ClassStmt:
		return in.execClass(ctx, s)

	default:
		panic("interp: unhandled statement type")
	}
}

// execClass implements the six-step class-declaration protocol from §4.4:
// optionally evaluate and validate the superclass, pre-bind the name to nil
// (so methods may reference the class recursively), push a `super`-holding
// scope for method capture, build the method table, then replace the
// pre-binding with the real Class value.
func (in *Interpreter) execClass(ctx context.Context, s *ast.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := in.eval(ctx, s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return in.runtimeErrorf(s.Superclass.Pos(), "Superclass must be a class.")
		}
		superclass = sc
	}

	in.env.Define(s.Name, nil)

	methodEnv := in.env
	if superclass != nil {
		methodEnv = in.env.NewChild()
		methodEnv.Define("super", superclass)
	}

	class := NewClass(s.Name, superclass)
	for _, m := range s.Methods {
		fn := &Function{Decl: m, Closure: methodEnv, IsInitializer: m.Name == "init"}
		class.Methods.Put(m.Name, fn)
	}

	in.env.Assign(s.Name, class)
	return nil
}
