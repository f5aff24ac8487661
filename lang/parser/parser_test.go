package parser_test

import (
	"strconv"
	"testing"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	fset := token.NewFileSet()
	b := []byte(src)
	f := fset.AddFile("test.lox", len(b))
	e, err := parser.ParseExpr(f, b)
	require.NoError(t, err)
	return e
}

func TestPrecedenceAndAssociativity(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"(1 + 2) * 3", "(* (group (+ 1 2)) 3)"},
		{"1 - 2 - 3", "(- (- 1 2) 3)"},
		{"!true == false", "(== (! true) false)"},
		{"1 < 2 and 3 < 4", "(and (< 1 2) (< 3 4))"},
		{"-a.b", "(- (get (var a) b))"},
	}
	for _, c := range cases {
		e := parseExpr(t, c.src)
		assert.Equal(t, c.want, ast.Print(e), "source: %s", c.src)
	}
}

func TestAssignmentRewriting(t *testing.T) {
	e := parseExpr(t, "a = 1")
	assign, ok := e.(*ast.AssignExpr)
	require.True(t, ok, "expected *ast.AssignExpr, got %T", e)
	assert.Equal(t, "a", assign.Name)

	e = parseExpr(t, "obj.field = 1")
	set, ok := e.(*ast.SetExpr)
	require.True(t, ok, "expected *ast.SetExpr, got %T", e)
	assert.Equal(t, "field", set.Name)
}

func TestInvalidAssignmentTarget(t *testing.T) {
	fset := token.NewFileSet()
	src := []byte("1 = 2")
	f := fset.AddFile("test.lox", len(src))
	_, err := parser.ParseExpr(f, src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid assignment target.")
}

func TestSuperCall(t *testing.T) {
	e := parseExpr(t, "super.method")
	super, ok := e.(*ast.SuperExpr)
	require.True(t, ok, "expected *ast.SuperExpr, got %T", e)
	assert.Equal(t, "method", super.Method)
}

func parseProgram(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	fset := token.NewFileSet()
	b := []byte(src)
	f := fset.AddFile("test.lox", len(b))
	stmts, err := parser.ParseProgram(f, b)
	require.NoError(t, err)
	return stmts
}

func TestForLoopDesugarsToWhile(t *testing.T) {
	stmts := parseProgram(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok, "expected outer for-desugar block, got %T", stmts[0])
	require.Len(t, outer.Stmts, 2)

	_, ok = outer.Stmts[0].(*ast.VarStmt)
	assert.True(t, ok, "expected the init clause as a VarStmt, got %T", outer.Stmts[0])

	whileStmt, ok := outer.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok, "expected a WhileStmt, got %T", outer.Stmts[1])

	body, ok := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, ok, "expected while body wrapped in a block, got %T", whileStmt.Body)
	require.Len(t, body.Stmts, 2)

	_, ok = body.Stmts[0].(*ast.PrintStmt)
	assert.True(t, ok, "expected the loop body first, got %T", body.Stmts[0])
	_, ok = body.Stmts[1].(*ast.ExprStmt)
	assert.True(t, ok, "expected the increment as an ExprStmt, got %T", body.Stmts[1])
}

func TestForLoopWithoutConditionDefaultsToTrue(t *testing.T) {
	stmts := parseProgram(t, `for (;;) print 1;`)
	require.Len(t, stmts, 1)

	whileStmt, ok := stmts[0].(*ast.WhileStmt)
	require.True(t, ok, "expected a bare WhileStmt when init/incr are absent, got %T", stmts[0])

	lit, ok := whileStmt.Cond.(*ast.LiteralExpr)
	require.True(t, ok, "expected the default condition to be a literal, got %T", whileStmt.Cond)
	assert.Equal(t, true, lit.Value)
}

func TestClassDeclWithInheritance(t *testing.T) {
	stmts := parseProgram(t, `
class Animal {
  speak() { print "..."; }
}
class Dog < Animal {
  speak() { print "Woof"; }
}
`)
	require.Len(t, stmts, 2)

	dog, ok := stmts[1].(*ast.ClassStmt)
	require.True(t, ok, "expected *ast.ClassStmt, got %T", stmts[1])
	assert.Equal(t, "Dog", dog.Name)
	require.NotNil(t, dog.Superclass)
	assert.Equal(t, "Animal", dog.Superclass.Name)
	require.Len(t, dog.Methods, 1)
	assert.Equal(t, "speak", dog.Methods[0].Name)
}

func TestTooManyParamsIsAnError(t *testing.T) {
	var params string
	for i := 0; i < 256; i++ {
		if i > 0 {
			params += ", "
		}
		params += "a"
		params += strconv.Itoa(i)
	}
	src := "fun f(" + params + ") { return 1; }"

	fset := token.NewFileSet()
	b := []byte(src)
	f := fset.AddFile("test.lox", len(b))
	_, err := parser.ParseProgram(f, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't have more than 255 parameters.")
}
