package minilisp

import "testing"

func TestEqual(t *testing.T) {
	shouldEqual(t, 1, 1)
	shouldEqual(t, 2.5, 2.5)
	shouldEqual(t, "blah", "blah")
	shouldEqual(t, nil, nil)
	shouldEqual(t, Symbol("+"), Symbol("+"))
	shouldEqual(t, List{1, 2, "blah", true}, List{1, 2, "blah", true})
	shouldEqual(t, List{List{1}, List{}}, List{List{1}, List{}})
}

func TestNotEqual(t *testing.T) {
	shouldNotEqual(t, 1, 2)
	shouldNotEqual(t, 2.5, 3.6)
	shouldNotEqual(t, "blah", "bloo")
	shouldNotEqual(t, Symbol("+"), Symbol("-"))
	shouldNotEqual(t, List{1, 2, "blah", true}, List{1, 3, "blah", false})
	shouldNotEqual(t, List{1, 2}, List{1, 2, 3})
}

func TestTypeMismatch(t *testing.T) {
	shouldNotEqual(t, 1, "blah")
	shouldNotEqual(t, 1, 1.0)
	shouldNotEqual(t, Symbol("blah"), "blah")
	shouldNotEqual(t, List{}, nil)
	shouldNotEqual(t, List{1}, []int{1})
}

func TestUncomparableHostValues(t *testing.T) {
	shouldNotEqual(t, []int{1}, []int{1})
	shouldNotEqual(t, map[string]int{}, map[string]int{})
}

func shouldEqual(t *testing.T, val1, val2 Expr) {
	t.Helper()
	if !Equals(val1, val2) {
		t.Errorf("\n%v | %v - Expected: equal", val1, val2)
	}
}

func shouldNotEqual(t *testing.T, val1, val2 Expr) {
	t.Helper()
	if Equals(val1, val2) {
		t.Errorf("\n%v | %v - Expected: not equal", val1, val2)
	}
}
