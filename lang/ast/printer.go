package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders e in the parenthesised prefix form required by the `parse`
// CLI subcommand: Literal -> its value, Grouping(e) -> "(group e)",
// Unary{op,r} -> "(op r)", Binary/Logical{op,l,r} -> "(op l r)",
// Variable -> "(var NAME)", Assign -> "(assign NAME v)",
// Call -> "(call callee arg1, arg2)", Get -> "(get obj NAME)",
// Set -> "(set obj NAME v)".
func Print(e Expr) string {
	var b strings.Builder
	print1(&b, e)
	return b.String()
}

func print1(b *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *LiteralExpr:
		b.WriteString(formatLiteral(e.Value))

	case *GroupingExpr:
		parenthesize(b, "group", e.Expr)

	case *UnaryExpr:
		parenthesize(b, e.Op.String(), e.Right)

	case *BinaryExpr:
		parenthesize(b, e.Op.String(), e.Left, e.Right)

	case *LogicalExpr:
		parenthesize(b, e.Op.String(), e.Left, e.Right)

	case *VariableExpr:
		fmt.Fprintf(b, "(var %s)", e.Name)

	case *AssignExpr:
		b.WriteString("(assign ")
		b.WriteString(e.Name)
		b.WriteByte(' ')
		print1(b, e.Value)
		b.WriteByte(')')

	case *CallExpr:
		b.WriteString("(call ")
		print1(b, e.Callee)
		for i, a := range e.Args {
			if i == 0 {
				b.WriteByte(' ')
			} else {
				b.WriteString(", ")
			}
			print1(b, a)
		}
		b.WriteByte(')')

	case *GetExpr:
		b.WriteString("(get ")
		print1(b, e.Object)
		b.WriteByte(' ')
		b.WriteString(e.Name)
		b.WriteByte(')')

	case *SetExpr:
		b.WriteString("(set ")
		print1(b, e.Object)
		b.WriteByte(' ')
		b.WriteString(e.Name)
		b.WriteByte(' ')
		print1(b, e.Value)
		b.WriteByte(')')

	case *ThisExpr:
		b.WriteString("this")

	case *SuperExpr:
		fmt.Fprintf(b, "(super %s)", e.Method)

	default:
		fmt.Fprintf(b, "<unknown %T>", e)
	}
}

func parenthesize(b *strings.Builder, name string, exprs ...Expr) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		print1(b, e)
	}
	b.WriteByte(')')
}

func formatLiteral(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
