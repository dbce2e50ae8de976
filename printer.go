package minilisp

import (
	"fmt"
	"strconv"
	"strings"
)

// Render returns the textual form of an expression or value. It is used to
// build diagnostics and never fails.
func Render(val Expr) string {
	switch t := val.(type) {
	case nil:
		return "nil"
	case Symbol:
		return string(t)
	case string:
		return strconv.Quote(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case List:
		return "(" + renderSlice(t) + ")"
	case []Expr:
		return "(" + renderSlice(t) + ")"
	case *Closure:
		params := make([]string, len(t.Params))
		for i, p := range t.Params {
			params[i] = string(p)
		}
		return fmt.Sprintf("#<fn (%s)>", strings.Join(params, " "))
	case *Builtin:
		return fmt.Sprintf("#<builtin %s>", t.Name)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func renderSlice(items []Expr) string {
	arr := make([]string, len(items))
	for i, v := range items {
		arr[i] = Render(v)
	}
	return strings.Join(arr, " ")
}
