package ast

import "github.com/mna/lox/lang/token"

type (
	// ExprStmt is an expression evaluated for its side effects.
	ExprStmt struct {
		X Expr
	}

	// PrintStmt evaluates X and prints its value followed by a newline.
	PrintStmt struct {
		KeywordPos token.Pos
		X          Expr
	}

	// VarStmt declares Name, bound to Init (or nil if absent).
	VarStmt struct {
		KeywordPos token.Pos
		Name       string
		Init       Expr // may be nil
	}

	// BlockStmt is a `{ ... }` sequence of statements executed in a new
	// lexical scope.
	BlockStmt struct {
		LeftBrace token.Pos
		Stmts     []Stmt
	}

	// IfStmt is a conditional with an optional else branch.
	IfStmt struct {
		KeywordPos token.Pos
		Cond       Expr
		Then       Stmt
		Else       Stmt // may be nil
	}

	// WhileStmt re-evaluates Cond before each execution of Body.
	WhileStmt struct {
		KeywordPos token.Pos
		Cond       Expr
		Body       Stmt
	}

	// FunStmt declares a named function in the enclosing scope.
	FunStmt struct {
		Decl *FunctionDecl
	}

	// ReturnStmt unwinds to the nearest enclosing function call, carrying
	// Value (or nil, meaning nil) back to the caller.
	ReturnStmt struct {
		KeywordPos token.Pos
		Value      Expr // may be nil
	}

	// ClassStmt declares a class, optionally inheriting from Superclass.
	ClassStmt struct {
		KeywordPos token.Pos
		Name       string
		Superclass *VariableExpr // may be nil
		Methods    []*FunctionDecl
	}
)

func (s *ExprStmt) Pos() token.Pos   { return s.X.Pos() }
func (s *PrintStmt) Pos() token.Pos  { return s.KeywordPos }
func (s *VarStmt) Pos() token.Pos    { return s.KeywordPos }
func (s *BlockStmt) Pos() token.Pos  { return s.LeftBrace }
func (s *IfStmt) Pos() token.Pos     { return s.KeywordPos }
func (s *WhileStmt) Pos() token.Pos  { return s.KeywordPos }
func (s *FunStmt) Pos() token.Pos    { return s.Decl.Pos() }
func (s *ReturnStmt) Pos() token.Pos { return s.KeywordPos }
func (s *ClassStmt) Pos() token.Pos  { return s.KeywordPos }

func (*ExprStmt) stmtNode()   {}
func (*PrintStmt) stmtNode()  {}
func (*VarStmt) stmtNode()    {}
func (*BlockStmt) stmtNode()  {}
func (*IfStmt) stmtNode()     {}
func (*WhileStmt) stmtNode()  {}
func (*FunStmt) stmtNode()    {}
func (*ReturnStmt) stmtNode() {}
func (*ClassStmt) stmtNode()  {}
