package minilisp

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// NewBaseEnv returns the minimal root environment: the nil sentinel and list.
func NewBaseEnv() *Env {
	return NewEnv(map[Symbol]Expr{
		SymNil:  nil,
		SymList: primitive("list", list),
	})
}

// NewCoreEnv returns a child of a fresh base environment with arithmetic,
// comparison and output builtins. println writes to stdout.
func NewCoreEnv() *Env {
	return NewCoreEnvWriter(os.Stdout)
}

// NewCoreEnvWriter is NewCoreEnv with println writing to out.
func NewCoreEnvWriter(out io.Writer) *Env {
	env := Extend(NewBaseEnv())
	for name, fn := range map[string]func([]Expr) (Expr, error){
		"+":   add,
		"-":   sub,
		"*":   mul,
		"/":   div,
		"=":   eq,
		"not": not,
	} {
		env.Define(Symbol(name), primitive(name, fn))
	}
	for name, holds := range orderings {
		env.Define(Symbol(name), primitive(name, order(holds)))
	}
	env.Define(Symbol("println"), primitive("println", func(args []Expr) (Expr, error) {
		arr := make([]string, len(args))
		for i, a := range args {
			if s, isStr := a.(string); isStr {
				arr[i] = s
			} else {
				arr[i] = Render(a)
			}
		}
		_, err := fmt.Fprintln(out, strings.Join(arr, " "))
		return nil, err
	}))
	return env
}

// primitive wraps a function of pre-evaluated arguments that has no use for
// the caller's environment.
func primitive(name string, fn func(args []Expr) (Expr, error)) *Builtin {
	return &Builtin{
		Name: name,
		Fn: func(_ *Env, args []Expr) (Expr, error) {
			return fn(args)
		},
	}
}

// Primitives

func list(args []Expr) (Expr, error) {
	return List(append([]Expr{}, args...)), nil
}

func add(args []Expr) (Expr, error) {
	return agg(args,
		func(r, x int) (int, error) {
			return r + x, nil
		},
		func(r, x float64) (float64, error) {
			return r + x, nil
		})
}

func sub(args []Expr) (Expr, error) {
	if len(args) == 1 {
		return agg([]Expr{0, args[0]}, subInt, subFloat)
	}
	return agg(args, subInt, subFloat)
}

func subInt(r, x int) (int, error) {
	return r - x, nil
}

func subFloat(r, x float64) (float64, error) {
	return r - x, nil
}

func mul(args []Expr) (Expr, error) {
	return agg(args,
		func(r, x int) (int, error) {
			return r * x, nil
		},
		func(r, x float64) (float64, error) {
			return r * x, nil
		})
}

func div(args []Expr) (Expr, error) {
	return agg(args,
		func(r, x int) (int, error) {
			if x == 0 {
				return 0, Errorf("division by zero")
			}
			return r / x, nil
		},
		func(r, x float64) (float64, error) {
			if x == 0 {
				return 0, Errorf("division by zero")
			}
			return r / x, nil
		})
}

// agg folds args left to right. Ints stay ints until a float shows up.
func agg(args []Expr, accumInt func(int, int) (int, error), accumFloat func(float64, float64) (float64, error)) (Expr, error) {
	if len(args) < 1 {
		return nil, Errorf("wrong number of args (%d) passed to procedure", len(args))
	}

	ret := args[0]
	if !isNumber(ret) {
		return nil, Errorf("invalid operand: %s", Render(ret))
	}
	for _, arg := range args[1:] {
		if !isNumber(arg) {
			return nil, Errorf("invalid operand: %s", Render(arg))
		}

		var err error
		ri, rIsInt := ret.(int)
		ai, aIsInt := arg.(int)
		if rIsInt && aIsInt {
			ret, err = accumInt(ri, ai)
		} else {
			ret, err = accumFloat(toFloat(ret), toFloat(arg))
		}
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func isNumber(v Expr) bool {
	switch v.(type) {
	case int, float64:
		return true
	}
	return false
}

// toFloat assumes isNumber(v).
func toFloat(v Expr) float64 {
	if i, isInt := v.(int); isInt {
		return float64(i)
	}
	return v.(float64)
}

// compare returns -1, 0 or 1. Mixed int and float operands compare as floats.
func compare(a, b Expr) int {
	ai, aIsInt := a.(int)
	bi, bIsInt := b.(int)
	if aIsInt && bIsInt {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
		return 0
	}
	af, bf := toFloat(a), toFloat(b)
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	}
	return 0
}

var orderings = map[string]func(cmp int) bool{
	"<":  func(cmp int) bool { return cmp < 0 },
	"<=": func(cmp int) bool { return cmp <= 0 },
	">":  func(cmp int) bool { return cmp > 0 },
	">=": func(cmp int) bool { return cmp >= 0 },
}

// order builds a chained comparison: (< a b c) holds when every adjacent
// pair satisfies holds.
func order(holds func(cmp int) bool) func([]Expr) (Expr, error) {
	return func(args []Expr) (Expr, error) {
		if len(args) < 1 {
			return nil, Errorf("wrong number of args (%d) passed to procedure", len(args))
		}
		for _, arg := range args {
			if !isNumber(arg) {
				return nil, Errorf("invalid operand: %s", Render(arg))
			}
		}
		for i := 1; i < len(args); i++ {
			if !holds(compare(args[i-1], args[i])) {
				return false, nil
			}
		}
		return true, nil
	}
}

func eq(args []Expr) (Expr, error) {
	if len(args) < 1 {
		return nil, Errorf("wrong number of args (%d) passed to: =", len(args))
	}

	compare := args[0]
	for i := 1; i < len(args); i++ {
		if !Equals(compare, args[i]) {
			return false, nil
		}
	}
	return true, nil
}

func not(args []Expr) (Expr, error) {
	if len(args) != 1 {
		return nil, Errorf("wrong number of args (%d) passed to: not", len(args))
	}
	return !isTruthy(args[0]), nil
}
