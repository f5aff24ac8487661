package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

const maxArgs = 255

func (p *parser) expression() ast.Expr {
	return p.assignment()
}

// assignment implements the assignment-target rule from §4.1: parse the
// logic_or production, and if an '=' follows, rewrite the left-hand side
// into an Assign or Set node (or report "Invalid assignment target." at the
// '=' token's position if it isn't a valid target).
func (p *parser) assignment() ast.Expr {
	expr := p.or()

	if p.tok == token.EQUAL {
		eq := p.val
		p.advance()
		value := p.assignment()

		switch e := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{ID: p.newID(), NamePos: e.NamePos, Name: e.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Object: e.Object, NamePos: e.NamePos, Name: e.Name, Value: value}
		default:
			p.errorAt(eq, "Invalid assignment target.")
			return expr
		}
	}
	return expr
}

func (p *parser) or() ast.Expr {
	expr := p.and()
	for p.tok == token.OR {
		op := p.val
		p.advance()
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, OpPos: op.Pos, Op: token.OR, Right: right}
	}
	return expr
}

func (p *parser) and() ast.Expr {
	expr := p.equality()
	for p.tok == token.AND {
		op := p.val
		p.advance()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, OpPos: op.Pos, Op: token.AND, Right: right}
	}
	return expr
}

func (p *parser) equality() ast.Expr {
	expr := p.comparison()
	for p.check(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op, opTok := p.val, p.tok
		p.advance()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, OpPos: op.Pos, Op: opTok, Right: right}
	}
	return expr
}

func (p *parser) comparison() ast.Expr {
	expr := p.term()
	for p.check(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op, opTok := p.val, p.tok
		p.advance()
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, OpPos: op.Pos, Op: opTok, Right: right}
	}
	return expr
}

func (p *parser) term() ast.Expr {
	expr := p.factor()
	for p.check(token.MINUS, token.PLUS) {
		op, opTok := p.val, p.tok
		p.advance()
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, OpPos: op.Pos, Op: opTok, Right: right}
	}
	return expr
}

func (p *parser) factor() ast.Expr {
	expr := p.unary()
	for p.check(token.SLASH, token.STAR) {
		op, opTok := p.val, p.tok
		p.advance()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, OpPos: op.Pos, Op: opTok, Right: right}
	}
	return expr
}

func (p *parser) unary() ast.Expr {
	if p.check(token.BANG, token.MINUS) {
		op, opTok := p.val, p.tok
		p.advance()
		right := p.unary()
		return &ast.UnaryExpr{OpPos: op.Pos, Op: opTok, Right: right}
	}
	return p.call()
}

func (p *parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.tok == token.LEFT_PAREN:
			p.advance()
			expr = p.finishCall(expr)
		case p.tok == token.DOT:
			p.advance()
			name := p.expect(token.IDENTIFIER)
			expr = &ast.GetExpr{Object: expr, NamePos: name.Pos, Name: name.Lexeme}
		default:
			return expr
		}
	}
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if p.tok != token.RIGHT_PAREN {
		for {
			if len(args) >= maxArgs {
				p.errorAtCurrent("Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.expect(token.RIGHT_PAREN)
	return &ast.CallExpr{Callee: callee, ParenPos: paren.Pos, Args: args}
}

func (p *parser) primary() ast.Expr {
	switch p.tok {
	case token.FALSE:
		pos := p.val.Pos
		p.advance()
		return &ast.LiteralExpr{ValuePos: pos, Value: false}
	case token.TRUE:
		pos := p.val.Pos
		p.advance()
		return &ast.LiteralExpr{ValuePos: pos, Value: true}
	case token.NIL:
		pos := p.val.Pos
		p.advance()
		return &ast.LiteralExpr{ValuePos: pos, Value: nil}
	case token.NUMBER:
		v := p.val
		p.advance()
		return &ast.LiteralExpr{ValuePos: v.Pos, Value: v.Number}
	case token.STRING:
		v := p.val
		p.advance()
		return &ast.LiteralExpr{ValuePos: v.Pos, Value: v.Str}
	case token.THIS:
		pos := p.val.Pos
		p.advance()
		return &ast.ThisExpr{ID: p.newID(), KeywordPos: pos}
	case token.SUPER:
		kw := p.val.Pos
		p.advance()
		p.expect(token.DOT)
		method := p.expect(token.IDENTIFIER)
		return &ast.SuperExpr{ID: p.newID(), KeywordPos: kw, Method: method.Lexeme}
	case token.IDENTIFIER:
		v := p.val
		p.advance()
		return &ast.VariableExpr{ID: p.newID(), NamePos: v.Pos, Name: v.Lexeme}
	case token.LEFT_PAREN:
		lparen := p.val.Pos
		p.advance()
		inner := p.expression()
		p.expect(token.RIGHT_PAREN)
		return &ast.GroupingExpr{LeftParen: lparen, Expr: inner}
	default:
		p.errorExpected("expression")
		panic(errParse)
	}
}
