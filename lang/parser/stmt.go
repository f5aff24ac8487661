package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

const maxParams = 255

func (p *parser) declaration() ast.Stmt {
	switch p.tok {
	case token.CLASS:
		return p.classDecl()
	case token.FUN:
		p.advance()
		return &ast.FunStmt{Decl: p.function("function")}
	case token.VAR:
		return p.varDecl()
	default:
		return p.statement()
	}
}

func (p *parser) classDecl() ast.Stmt {
	kw := p.expect(token.CLASS).Pos
	name := p.expect(token.IDENTIFIER)

	var super *ast.VariableExpr
	if p.match(token.LESS) {
		sup := p.expect(token.IDENTIFIER)
		super = &ast.VariableExpr{ID: p.newID(), NamePos: sup.Pos, Name: sup.Lexeme}
	}

	p.expect(token.LEFT_BRACE)
	var methods []*ast.FunctionDecl
	for p.tok != token.RIGHT_BRACE && p.tok != token.EOF {
		methods = append(methods, p.function("method"))
	}
	p.expect(token.RIGHT_BRACE)

	return &ast.ClassStmt{KeywordPos: kw, Name: name.Lexeme, Superclass: super, Methods: methods}
}

func (p *parser) function(kind string) *ast.FunctionDecl {
	name := p.expect(token.IDENTIFIER)
	p.expect(token.LEFT_PAREN)

	var params []string
	if p.tok != token.RIGHT_PAREN {
		for {
			if len(params) >= maxParams {
				p.errorAtCurrent("Can't have more than 255 parameters.")
			}
			params = append(params, p.expect(token.IDENTIFIER).Lexeme)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RIGHT_PAREN)

	p.expect(token.LEFT_BRACE)
	body := p.blockStmts()

	return &ast.FunctionDecl{NamePos: name.Pos, Name: name.Lexeme, Params: params, Body: body}
}

func (p *parser) varDecl() ast.Stmt {
	kw := p.expect(token.VAR).Pos
	name := p.expect(token.IDENTIFIER)

	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.expression()
	}
	p.expect(token.SEMICOLON)
	return &ast.VarStmt{KeywordPos: kw, Name: name.Lexeme, Init: init}
}

func (p *parser) statement() ast.Stmt {
	switch p.tok {
	case token.FOR:
		return p.forStmt()
	case token.IF:
		return p.ifStmt()
	case token.PRINT:
		return p.printStmt()
	case token.RETURN:
		return p.returnStmt()
	case token.WHILE:
		return p.whileStmt()
	case token.LEFT_BRACE:
		lbrace := p.val.Pos
		p.advance()
		return &ast.BlockStmt{LeftBrace: lbrace, Stmts: p.blockStmts()}
	default:
		return p.exprStmt()
	}
}

// blockStmts parses declaration* until a closing '}', which it consumes.
func (p *parser) blockStmts() []ast.Stmt {
	var stmts []ast.Stmt
	for p.tok != token.RIGHT_BRACE && p.tok != token.EOF {
		stmts = append(stmts, p.declaration())
	}
	p.expect(token.RIGHT_BRACE)
	return stmts
}

func (p *parser) exprStmt() ast.Stmt {
	expr := p.expression()
	p.expect(token.SEMICOLON)
	return &ast.ExprStmt{X: expr}
}

func (p *parser) printStmt() ast.Stmt {
	kw := p.expect(token.PRINT).Pos
	expr := p.expression()
	p.expect(token.SEMICOLON)
	return &ast.PrintStmt{KeywordPos: kw, X: expr}
}

func (p *parser) returnStmt() ast.Stmt {
	kw := p.expect(token.RETURN).Pos
	var value ast.Expr
	if p.tok != token.SEMICOLON {
		value = p.expression()
	}
	p.expect(token.SEMICOLON)
	return &ast.ReturnStmt{KeywordPos: kw, Value: value}
}

func (p *parser) ifStmt() ast.Stmt {
	kw := p.expect(token.IF).Pos
	p.expect(token.LEFT_PAREN)
	cond := p.expression()
	p.expect(token.RIGHT_PAREN)
	then := p.statement()

	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return &ast.IfStmt{KeywordPos: kw, Cond: cond, Then: then, Else: els}
}

func (p *parser) whileStmt() ast.Stmt {
	kw := p.expect(token.WHILE).Pos
	p.expect(token.LEFT_PAREN)
	cond := p.expression()
	p.expect(token.RIGHT_PAREN)
	body := p.statement()
	return &ast.WhileStmt{KeywordPos: kw, Cond: cond, Body: body}
}

// forStmt desugars `for (init; cond; incr) body` per §4.1 into:
//
//	Block([init, While(cond', Block([body, Expression(incr)]))])
//
// with a missing cond becoming `true` and missing init/incr simply dropped.
func (p *parser) forStmt() ast.Stmt {
	kw := p.expect(token.FOR).Pos
	p.expect(token.LEFT_PAREN)

	var init ast.Stmt
	switch p.tok {
	case token.SEMICOLON:
		p.advance()
	case token.VAR:
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if p.tok != token.SEMICOLON {
		cond = p.expression()
	}
	p.expect(token.SEMICOLON)

	var incr ast.Expr
	if p.tok != token.RIGHT_PAREN {
		incr = p.expression()
	}
	p.expect(token.RIGHT_PAREN)

	body := p.statement()

	if incr != nil {
		body = &ast.BlockStmt{LeftBrace: kw, Stmts: []ast.Stmt{body, &ast.ExprStmt{X: incr}}}
	}
	if cond == nil {
		cond = &ast.LiteralExpr{ValuePos: kw, Value: true}
	}
	body = &ast.WhileStmt{KeywordPos: kw, Cond: cond, Body: body}

	if init != nil {
		body = &ast.BlockStmt{LeftBrace: kw, Stmts: []ast.Stmt{init, body}}
	}
	return body
}
