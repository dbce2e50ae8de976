package minilisp

import (
	"bufio"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestNumbers(t *testing.T) {
	testRead(t, "1", 1)
	testRead(t, "7", 7)
	testRead(t, "  7   ", 7)
	testRead(t, "-123", -123)
	testRead(t, "+5", 5)
	testRead(t, "2.5", 2.5)
	testRead(t, "-0.25", -0.25)
}

func TestSymbols(t *testing.T) {
	testRead(t, "+", Symbol("+"))
	testRead(t, "abc", Symbol("abc"))
	testRead(t, "   abc   ", Symbol("abc"))
	testRead(t, "abc5", Symbol("abc5"))
	testRead(t, "abc-def", Symbol("abc-def"))
	testRead(t, "X", Symbol("X"))
}

func TestDashes(t *testing.T) {
	testRead(t, "-", Symbol("-"))
	testRead(t, "-abc", Symbol("-abc"))
	testRead(t, "->>", Symbol("->>"))
}

func TestLists(t *testing.T) {
	testRead(t, "(+ 1 2)", List{Symbol("+"), 1, 2})
	testRead(t, "()", List{})
	testRead(t, "( )", List{})
	testRead(t, "(nil)", List{nil})
	testRead(t, "((3 4))", List{List{3, 4}})
	testRead(t, "(+ 1 (+ 2 3))", List{Symbol("+"), 1, List{Symbol("+"), 2, 3}})
	testRead(t, "  ( +   1   (+   2 3   )   )  ", List{Symbol("+"), 1, List{Symbol("+"), 2, 3}})
	testRead(t, "(* -3 6)", List{Symbol("*"), -3, 6})
	testRead(t, "(()())", List{List{}, List{}})
}

func TestCommas(t *testing.T) {
	testRead(t, "(1 2, 3,,,,),,", List{1, 2, 3})
}

func TestNilTrueFalse(t *testing.T) {
	testRead(t, "nil", nil)
	testRead(t, "true", true)
	testRead(t, "false", false)
}

func TestStrings(t *testing.T) {
	testRead(t, `"abc"`, "abc")
	testRead(t, `   "abc"   `, "abc")
	testRead(t, `"abc (with parens)"`, "abc (with parens)")
	testRead(t, `"abc\"def"`, `abc"def`)
	testRead(t, `""`, "")
	testRead(t, `"\\"`, `\`)
	testRead(t, `"("`, "(")
	testRead(t, `")"`, ")")
	testRead(t, `";"`, ";")
	testRead(t, `"'"`, "'")
	testRead(t, `"\n"`, "\n")
	testRead(t, `"\t"`, "\t")
}

func TestQuoteShorthand(t *testing.T) {
	testRead(t, "'x", List{SymQuote, Symbol("x")})
	testRead(t, "'(1 2)", List{SymQuote, List{1, 2}})
	testRead(t, "(f 'a)", List{Symbol("f"), List{SymQuote, Symbol("a")}})
	testRead(t, "''a", List{SymQuote, List{SymQuote, Symbol("a")}})
}

func TestComments(t *testing.T) {
	testRead(t, "1 ; comment after expression", 1)
	testRead(t, "1; comment after expression", 1)
	testRead(t, "1;\"", 1)
	testRead(t, "1;'", 1)
	testRead(t, "; leading comment\n2", 2)
	testRead(t, "(1 ; inner\n 2)", List{1, 2})
}

func TestErrors(t *testing.T) {
	testReadError(t, `"abc`)
	testReadError(t, `"`)
	testReadError(t, `"\"`)
	testReadError(t, "(1 \"abc")
	testReadError(t, "(1 \"abc\"")
	testReadError(t, ")")
	testReadError(t, `"\q"`)
	testReadError(t, "1abc")
	testReadError(t, "'")
}

func TestIncompleteInput(t *testing.T) {
	for _, input := range []string{"(", "(1 (2", `"abc`, "'", "(quote"} {
		_, err := read(input)
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("%q: expected io.ErrUnexpectedEOF, got %v", input, err)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "; only a comment"} {
		_, err := read(input)
		if err != io.EOF {
			t.Errorf("%q: expected io.EOF, got %v", input, err)
		}
	}
}

func TestReadString(t *testing.T) {
	exprs, err := ReadString("1 (a b) \"c\" ; done")
	if err != nil {
		t.Fatal(err)
	}
	expected := []Expr{1, List{Symbol("a"), Symbol("b")}, "c"}
	if len(exprs) != len(expected) {
		t.Fatalf("expected %d expressions, got %d", len(expected), len(exprs))
	}
	for i := range expected {
		if !Equals(exprs[i], expected[i]) {
			t.Errorf("expression %d: expected %s, got %s", i, Render(expected[i]), Render(exprs[i]))
		}
	}
}

func testRead(t *testing.T, input string, output any) {
	t.Helper()
	actual, err := read(input)
	if err != nil {
		t.Errorf("\nExpected: %v - %v\nActual: Error - %s\n",
			reflect.TypeOf(output), Render(output),
			err)
		return
	}
	if !Equals(actual, output) || reflect.TypeOf(actual) != reflect.TypeOf(output) {
		t.Errorf("\nExpected: %v - %v\nActual: %v - %v\n",
			reflect.TypeOf(output), Render(output),
			reflect.TypeOf(actual), Render(actual))
	}
}

func testReadError(t *testing.T, input string) {
	t.Helper()
	actual, err := read(input)
	if err == nil {
		t.Errorf("Expected: Error\nActual: %v %v\n", reflect.TypeOf(actual), actual)
	}
}

func read(input string) (any, error) {
	return Read(bufio.NewReader(strings.NewReader(input)))
}
