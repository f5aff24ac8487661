package ast

import "github.com/mna/lox/lang/token"

// ID uniquely identifies a resolvable expression node (Variable, Assign,
// This, Super) so the resolver can key its scope-depth side-table by
// identity without relying on node addresses, which would break across the
// for-loop desugaring that reshapes the AST after parsing.
type ID int

type (
	// LiteralExpr is a boolean, number, string or nil literal.
	LiteralExpr struct {
		ValuePos token.Pos
		Value    any // bool, float64, string, or nil
	}

	// GroupingExpr is a parenthesized expression.
	GroupingExpr struct {
		LeftParen token.Pos
		Expr      Expr
	}

	// UnaryExpr is a prefix `-` or `!` expression.
	UnaryExpr struct {
		OpPos token.Pos
		Op    token.Kind // MINUS or BANG
		Right Expr
	}

	// BinaryExpr is an arithmetic, comparison or equality expression.
	BinaryExpr struct {
		Left  Expr
		OpPos token.Pos
		Op    token.Kind
		Right Expr
	}

	// LogicalExpr is a short-circuiting `and`/`or` expression.
	LogicalExpr struct {
		Left  Expr
		OpPos token.Pos
		Op    token.Kind // AND or OR
		Right Expr
	}

	// VariableExpr reads the value bound to Name.
	VariableExpr struct {
		ID      ID
		NamePos token.Pos
		Name    string
	}

	// AssignExpr assigns Value to the variable Name.
	AssignExpr struct {
		ID      ID
		NamePos token.Pos
		Name    string
		Value   Expr
	}

	// CallExpr invokes Callee with Args. ParenPos is the position of the
	// closing ')', used to anchor call-site runtime errors.
	CallExpr struct {
		Callee   Expr
		ParenPos token.Pos
		Args     []Expr
	}

	// GetExpr reads the property Name off Object.
	GetExpr struct {
		Object  Expr
		NamePos token.Pos
		Name    string
	}

	// SetExpr writes Value to the property Name on Object.
	SetExpr struct {
		Object  Expr
		NamePos token.Pos
		Name    string
		Value   Expr
	}

	// ThisExpr refers to the implicit receiver inside a method body.
	ThisExpr struct {
		ID         ID
		KeywordPos token.Pos
	}

	// SuperExpr refers to Method on the enclosing class's superclass.
	SuperExpr struct {
		ID         ID
		KeywordPos token.Pos
		Method     string
	}
)

func (e *LiteralExpr) Pos() token.Pos  { return e.ValuePos }
func (e *GroupingExpr) Pos() token.Pos { return e.LeftParen }
func (e *UnaryExpr) Pos() token.Pos    { return e.OpPos }
func (e *BinaryExpr) Pos() token.Pos   { return e.Left.Pos() }
func (e *LogicalExpr) Pos() token.Pos  { return e.Left.Pos() }
func (e *VariableExpr) Pos() token.Pos { return e.NamePos }
func (e *AssignExpr) Pos() token.Pos   { return e.NamePos }
func (e *CallExpr) Pos() token.Pos     { return e.Callee.Pos() }
func (e *GetExpr) Pos() token.Pos      { return e.Object.Pos() }
func (e *SetExpr) Pos() token.Pos      { return e.Object.Pos() }
func (e *ThisExpr) Pos() token.Pos     { return e.KeywordPos }
func (e *SuperExpr) Pos() token.Pos    { return e.KeywordPos }

func (*LiteralExpr) exprNode()  {}
func (*GroupingExpr) exprNode() {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}
func (*CallExpr) exprNode()     {}
func (*GetExpr) exprNode()      {}
func (*SetExpr) exprNode()      {}
func (*ThisExpr) exprNode()     {}
func (*SuperExpr) exprNode()    {}
