package interp

import (
	"fmt"
	"io"
	"strconv"
)

// stringer is satisfied by Function, NativeFunction and Instance's own
// String methods.
type stringer interface{ String() string }

func (in *Interpreter) print(v any) {
	fmt.Fprintln(in.out(), Stringify(v))
}

func (in *Interpreter) out() io.Writer {
	if in.Out != nil {
		return in.Out
	}
	return io.Discard
}

// truthy implements the language's truthiness rule (§3.2): nil and false
// are falsey, every other value (including 0 and "") is truthy.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements value equality for `==`/`!=` (§3.2): nil equals only
// nil; numbers and strings compare by value (including NaN == NaN, since
// this is structural rather than IEEE-754 equality); everything else
// (functions, classes, instances) compares by reference identity.
func isEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && (av == bv || (av != av && bv != bv))
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// Stringify renders v the way a `print` statement (and the `run`
// subcommand) does: nil -> "nil", booleans via their Go literal spelling,
// integer-valued numbers with a forced trailing ".0" (e.g. "3.0"),
// non-integer numbers via their shortest round-trip decimal, strings
// unquoted, everything else via its own String method.
func Stringify(v any) string {
	if f, ok := v.(float64); ok {
		return formatNumber(f)
	}
	return stringifyBare(v)
}

// StringifyBare renders v the way the `evaluate` CLI subcommand does: the
// same as Stringify except integer-valued numbers do NOT get a forced
// trailing ".0" — this divergence from Print is intentional (§6.3).
func StringifyBare(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return stringifyBare(v)
}

func stringifyBare(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	case stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatNumber renders a Number the way Print and tokenize's NUMBER literal
// column do: shortest round-trip decimal, with a trailing ".0" forced onto
// values that have no fractional part.
func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !containsAny(s, ".eE") && !containsAny(s, "nN") { // not already fractional, not Inf/NaN
		s += ".0"
	}
	return s
}

func containsAny(s, chars string) bool {
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(chars); j++ {
			if s[i] == chars[j] {
				return true
			}
		}
	}
	return false
}

// TypeName returns a runtime type name for v: "nil", "Boolean", "Number",
// "String", or the object kinds "function", "class" and "instance".
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "Boolean"
	case float64:
		return "Number"
	case string:
		return "String"
	case *Function, *NativeFunction:
		return "function"
	case *Class:
		return "class"
	case *Instance:
		return "instance"
	default:
		return fmt.Sprintf("%T", v)
	}
}
