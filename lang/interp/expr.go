package interp

import (
	"context"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

func (in *Interpreter) eval(ctx context.Context, e ast.Expr) (any, error) {
	switch e := e.(type) {
	case *ast.LiteralExpr:
		return e.Value, nil

	case *ast.GroupingExpr:
		return in.eval(ctx, e.Expr)

	case *ast.UnaryExpr:
		return in.evalUnary(ctx, e)

	case *ast.BinaryExpr:
		return in.evalBinary(ctx, e)

	case *ast.LogicalExpr:
		return in.evalLogical(ctx, e)

	case *ast.VariableExpr:
		return in.lookupVariable(e.ID, e.Name, e.NamePos)

	case *ast.AssignExpr:
		return in.evalAssign(ctx, e)

	case *ast.CallExpr:
		return in.evalCall(ctx, e)

	case *ast.GetExpr:
		return in.evalGet(ctx, e)

	case *ast.SetExpr:
		return in.evalSet(ctx, e)

	case *ast.ThisExpr:
		v, err := in.lookupVariable(e.ID, "this", e.KeywordPos)
		return v, err

	case *ast.SuperExpr:
		return in.evalSuper(e)

	default:
		panic("interp: unhandled expression type")
	}
}

func (in *Interpreter) lookupVariable(id ast.ID, name string, pos token.Pos) (any, error) {
	if depth, ok := in.locals[id]; ok {
		return in.env.GetAt(depth, name), nil
	}
	if v, ok := in.Globals.Get(name); ok {
		return v, nil
	}
	return nil, in.runtimeErrorf(pos, "Undefined variable '%s'.", name)
}

func (in *Interpreter) evalUnary(ctx context.Context, e *ast.UnaryExpr) (any, error) {
	right, err := in.eval(ctx, e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case token.MINUS:
		f, ok := right.(float64)
		if !ok {
			return nil, in.runtimeErrorf(e.OpPos, "Operand must be a number.")
		}
		return -f, nil
	case token.BANG:
		return !truthy(right), nil
	default:
		panic("interp: unhandled unary operator")
	}
}

func (in *Interpreter) evalBinary(ctx context.Context, e *ast.BinaryExpr) (any, error) {
	left, err := in.eval(ctx, e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(ctx, e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case token.PLUS:
		if lf, ok := left.(float64); ok {
			if rf, ok := right.(float64); ok {
				return lf + rf, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, in.runtimeErrorf(e.OpPos, "Operands must be two numbers or two strings.")

	case token.MINUS, token.STAR, token.SLASH:
		lf, lok := left.(float64)
		rf, rok := right.(float64)
		if !lok || !rok {
			return nil, in.runtimeErrorf(e.OpPos, "Operands must be numbers.")
		}
		switch e.Op {
		case token.MINUS:
			return lf - rf, nil
		case token.STAR:
			return lf * rf, nil
		default:
			return lf / rf, nil
		}

	case token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		lf, lok := left.(float64)
		rf, rok := right.(float64)
		if !lok || !rok {
			return nil, in.runtimeErrorf(e.OpPos, "Operands must be numbers.")
		}
		switch e.Op {
		case token.GREATER:
			return lf > rf, nil
		case token.GREATER_EQUAL:
			return lf >= rf, nil
		case token.LESS:
			return lf < rf, nil
		default:
			return lf <= rf, nil
		}

	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil
	case token.BANG_EQUAL:
		return !isEqual(left, right), nil

	default:
		panic("interp: unhandled binary operator")
	}
}

func (in *Interpreter) evalLogical(ctx context.Context, e *ast.LogicalExpr) (any, error) {
	left, err := in.eval(ctx, e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op == token.OR {
		if truthy(left) {
			return left, nil
		}
	} else { // AND
		if !truthy(left) {
			return left, nil
		}
	}
	return in.eval(ctx, e.Right)
}

func (in *Interpreter) evalAssign(ctx context.Context, e *ast.AssignExpr) (any, error) {
	v, err := in.eval(ctx, e.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := in.locals[e.ID]; ok {
		in.env.AssignAt(depth, e.Name, v)
		return v, nil
	}
	if !in.Globals.Assign(e.Name, v) {
		return nil, in.runtimeErrorf(e.NamePos, "Undefined variable '%s'.", e.Name)
	}
	return v, nil
}

func (in *Interpreter) evalCall(ctx context.Context, e *ast.CallExpr) (any, error) {
	callee, err := in.eval(ctx, e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]any, len(e.Args))
	for i, a := range e.Args {
		v, err := in.eval(ctx, a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, in.runtimeErrorf(e.Callee.Pos(), "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, in.runtimeErrorf(e.ParenPos, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	if err := in.enterCall(e.ParenPos); err != nil {
		return nil, err
	}
	defer in.exitCall()
	return fn.Call(ctx, in, args)
}

func (in *Interpreter) evalGet(ctx context.Context, e *ast.GetExpr) (any, error) {
	obj, err := in.eval(ctx, e.Object)
	if err != nil {
		return nil, err
	}
	attrs, ok := obj.(HasAttrs)
	if !ok {
		return nil, in.runtimeErrorf(e.NamePos, "Only instances have properties.")
	}
	v, found, err := attrs.GetAttr(e.Name)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, in.runtimeErrorf(e.NamePos, "Undefined property '%s'.", e.Name)
	}
	return v, nil
}

func (in *Interpreter) evalSet(ctx context.Context, e *ast.SetExpr) (any, error) {
	obj, err := in.eval(ctx, e.Object)
	if err != nil {
		return nil, err
	}
	settable, ok := obj.(HasSetField)
	if !ok {
		return nil, in.runtimeErrorf(e.NamePos, "Only instances have fields.")
	}
	v, err := in.eval(ctx, e.Value)
	if err != nil {
		return nil, err
	}
	settable.SetAttr(e.Name, v)
	return v, nil
}

func (in *Interpreter) evalSuper(e *ast.SuperExpr) (any, error) {
	depth := in.locals[e.ID]
	superAny := in.env.GetAt(depth, "super")
	superclass, ok := superAny.(*Class)
	if !ok {
		return nil, in.runtimeErrorf(e.KeywordPos, "Superclass must be a class.")
	}
	thisAny := in.env.GetAt(depth-1, "this")
	instance, ok := thisAny.(*Instance)
	if !ok {
		return nil, in.runtimeErrorf(e.KeywordPos, "Only instances have properties.")
	}
	method, ok := superclass.FindMethod(e.Method)
	if !ok {
		return nil, in.runtimeErrorf(e.KeywordPos, "Undefined property '%s'.", e.Method)
	}
	return method.Bind(instance), nil
}
