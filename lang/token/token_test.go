package token

import "testing"

func TestKindNameVsString(t *testing.T) {
	cases := []struct {
		k      Kind
		str    string
		name   string
		goStr  string
	}{
		{LEFT_PAREN, "(", "LEFT_PAREN", "'('"},
		{AND, "and", "AND", "'and'"},
		{IDENTIFIER, "identifier", "IDENTIFIER", "identifier"},
		{EOF, "end", "EOF", "end"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.str {
			t.Errorf("%v.String() = %q, want %q", c.k, got, c.str)
		}
		if got := c.k.Name(); got != c.name {
			t.Errorf("%v.Name() = %q, want %q", c.k, got, c.name)
		}
		if got := c.k.GoString(); got != c.goStr {
			t.Errorf("%v.GoString() = %q, want %q", c.k, got, c.goStr)
		}
	}
}

func TestLookupIdent(t *testing.T) {
	if k := LookupIdent("class"); k != CLASS {
		t.Errorf("LookupIdent(class) = %v, want CLASS", k)
	}
	if k := LookupIdent("foo"); k != IDENTIFIER {
		t.Errorf("LookupIdent(foo) = %v, want IDENTIFIER", k)
	}
}

func TestFilePosition(t *testing.T) {
	src := "var a = 1;\nprint a;\n"
	fset := NewFileSet()
	f := fset.AddFile("test.lox", len(src))
	for i, b := range []byte(src) {
		if b == '\n' {
			f.AddLine(i + 1)
		}
	}

	pos := f.Pos(0)
	if p := f.Position(pos); p.Line != 1 || p.Column != 1 {
		t.Errorf("Position(0) = %+v, want line 1 col 1", p)
	}

	printOffset := len("var a = 1;\n")
	pos = f.Pos(printOffset)
	if p := f.Position(pos); p.Line != 2 || p.Column != 1 {
		t.Errorf("Position(%d) = %+v, want line 2 col 1", printOffset, f.Position(pos))
	}

	if f.Offset(pos) != printOffset {
		t.Errorf("Offset(pos) = %d, want %d", f.Offset(pos), printOffset)
	}
}

func TestFileSetRoutesToOwningFile(t *testing.T) {
	fset := NewFileSet()
	f1 := fset.AddFile("a.lox", 5)
	f2 := fset.AddFile("b.lox", 5)

	p1 := f1.Pos(2)
	p2 := f2.Pos(2)

	if fset.File(p1) != f1 {
		t.Errorf("FileSet.File(p1) did not return f1")
	}
	if fset.File(p2) != f2 {
		t.Errorf("FileSet.File(p2) did not return f2")
	}
	if fset.Position(p2).Filename != "b.lox" {
		t.Errorf("FileSet.Position(p2).Filename = %q, want b.lox", fset.Position(p2).Filename)
	}
}
