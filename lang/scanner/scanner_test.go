package scanner

import (
	"testing"

	"github.com/mna/lox/lang/token"
)

func scanAll(t *testing.T, src string) []TokenAndValue {
	t.Helper()
	fset := token.NewFileSet()
	f := fset.AddFile("test.lox", len(src))
	toks, errs := Scan(f, []byte(src))
	if err := errs.Err(); err != nil {
		t.Fatalf("unexpected scan errors: %v", err)
	}
	return toks
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks := scanAll(t, "(){},.-+;*/ != == <= >= < > = !")
	want := []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON,
		token.STAR, token.SLASH, token.BANG_EQUAL, token.EQUAL_EQUAL,
		token.LESS_EQUAL, token.GREATER_EQUAL, token.LESS, token.GREATER,
		token.EQUAL, token.BANG, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	toks := scanAll(t, "class fun myVar _under")
	want := []token.Kind{token.CLASS, token.FUN, token.IDENTIFIER, token.IDENTIFIER, token.EOF}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
		}
	}
	if toks[2].Value.Lexeme != "myVar" {
		t.Errorf("lexeme = %q, want myVar", toks[2].Value.Lexeme)
	}
}

func TestScanNumberLiteral(t *testing.T) {
	toks := scanAll(t, "123 45.67")
	if toks[0].Kind != token.NUMBER || toks[0].Value.Number != 123 {
		t.Errorf("first number = %+v", toks[0].Value)
	}
	if toks[1].Kind != token.NUMBER || toks[1].Value.Number != 45.67 {
		t.Errorf("second number = %+v", toks[1].Value)
	}
}

func TestScanStringLiteral(t *testing.T) {
	toks := scanAll(t, `"hello world"`)
	if toks[0].Kind != token.STRING || toks[0].Value.Str != "hello world" {
		t.Errorf("string token = %+v", toks[0].Value)
	}
}

func TestScanSkipsLineComments(t *testing.T) {
	toks := scanAll(t, "var a = 1; // a comment\nvar b = 2;")
	var numVars int
	for _, tv := range toks {
		if tv.Kind == token.VAR {
			numVars++
		}
	}
	if numVars != 2 {
		t.Errorf("expected 2 var keywords, got %d", numVars)
	}
}

func TestScanUnterminatedStringReportsError(t *testing.T) {
	fset := token.NewFileSet()
	src := `"unterminated`
	f := fset.AddFile("test.lox", len(src))
	_, errs := Scan(f, []byte(src))
	if errs.Err() == nil {
		t.Fatal("expected an error for unterminated string")
	}
}

func TestScanUnexpectedCharacterReportsError(t *testing.T) {
	fset := token.NewFileSet()
	src := `@`
	f := fset.AddFile("test.lox", len(src))
	_, errs := Scan(f, []byte(src))
	if errs.Err() == nil {
		t.Fatal("expected an error for an unexpected character")
	}
}
