package ast

import (
	"testing"

	"github.com/mna/lox/lang/token"
)

func TestPrintLiteralsAndGrouping(t *testing.T) {
	cases := []struct {
		e    Expr
		want string
	}{
		{&LiteralExpr{Value: nil}, "nil"},
		{&LiteralExpr{Value: true}, "true"},
		{&LiteralExpr{Value: 1.0}, "1"},
		{&LiteralExpr{Value: "hi"}, "hi"},
		{&GroupingExpr{Expr: &LiteralExpr{Value: 3.0}}, "(group 3)"},
	}
	for _, c := range cases {
		if got := Print(c.e); got != c.want {
			t.Errorf("Print(%#v) = %q, want %q", c.e, got, c.want)
		}
	}
}

func TestPrintBinaryUnaryLogical(t *testing.T) {
	bin := &BinaryExpr{
		Left:  &LiteralExpr{Value: 1.0},
		Op:    token.PLUS,
		Right: &LiteralExpr{Value: 2.0},
	}
	if got, want := Print(bin), "(+ 1 2)"; got != want {
		t.Errorf("Print(binary) = %q, want %q", got, want)
	}

	un := &UnaryExpr{Op: token.MINUS, Right: &LiteralExpr{Value: 5.0}}
	if got, want := Print(un), "(- 5)"; got != want {
		t.Errorf("Print(unary) = %q, want %q", got, want)
	}

	logical := &LogicalExpr{
		Left:  &LiteralExpr{Value: true},
		Op:    token.OR,
		Right: &LiteralExpr{Value: false},
	}
	if got, want := Print(logical), "(or true false)"; got != want {
		t.Errorf("Print(logical) = %q, want %q", got, want)
	}
}

func TestPrintCallGetSet(t *testing.T) {
	call := &CallExpr{
		Callee: &VariableExpr{Name: "f"},
		Args:   []Expr{&LiteralExpr{Value: 1.0}, &LiteralExpr{Value: 2.0}},
	}
	if got, want := Print(call), "(call (var f) 1, 2)"; got != want {
		t.Errorf("Print(call) = %q, want %q", got, want)
	}

	get := &GetExpr{Object: &VariableExpr{Name: "obj"}, Name: "field"}
	if got, want := Print(get), "(get (var obj) field)"; got != want {
		t.Errorf("Print(get) = %q, want %q", got, want)
	}

	set := &SetExpr{Object: &VariableExpr{Name: "obj"}, Name: "field", Value: &LiteralExpr{Value: 9.0}}
	if got, want := Print(set), "(set (var obj) field 9)"; got != want {
		t.Errorf("Print(set) = %q, want %q", got, want)
	}
}

func TestPrintThisAndSuper(t *testing.T) {
	if got, want := Print(&ThisExpr{}), "this"; got != want {
		t.Errorf("Print(this) = %q, want %q", got, want)
	}
	if got, want := Print(&SuperExpr{Method: "init"}), "(super init)"; got != want {
		t.Errorf("Print(super) = %q, want %q", got, want)
	}
}
