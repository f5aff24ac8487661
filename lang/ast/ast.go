// Package ast defines the types used to represent the abstract syntax tree
// of a parsed program: expressions, statements, and the function
// declarations shared by FunStmt and method definitions in ClassStmt.
package ast

import "github.com/mna/lox/lang/token"

// Node is implemented by every AST node.
type Node interface {
	// Pos returns the position of the node's first token, used to anchor
	// diagnostics.
	Pos() token.Pos
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// FunctionDecl is the shape shared by a `fun` statement's declaration and a
// method definition inside a class body: a name, a parameter list and a
// block body.
type FunctionDecl struct {
	NamePos token.Pos
	Name    string
	Params  []string
	Body    []Stmt
}

func (d *FunctionDecl) Pos() token.Pos { return d.NamePos }
