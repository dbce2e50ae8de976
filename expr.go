package minilisp

// Expr is any expression or runtime value: a Symbol, a List, or a literal
// host value (int, float64, string, bool). nil is the nil sentinel.
type Expr = any

// Symbol is a variable name or special form tag. Symbols with the same name
// are equal, so the string itself is the interning scheme.
type Symbol string

// List is an ordered sequence of expressions.
type List []Expr

// Special form tags and reserved names.
const (
	SymQuote Symbol = "quote"
	SymIf    Symbol = "if"
	SymLet   Symbol = "let"
	SymFn    Symbol = "fn"
	SymNil   Symbol = "nil"
	SymList  Symbol = "list"
)

// Callable is a value that can sit in the operator position of a call.
type Callable interface {
	Call(env *Env, args []Expr) (Expr, error)
}

// Builtin is a callable implemented in Go. Fn receives the caller's
// environment and the already evaluated arguments.
type Builtin struct {
	Name string
	Fn   func(env *Env, args []Expr) (Expr, error)
}

func (b *Builtin) Call(env *Env, args []Expr) (Expr, error) {
	return b.Fn(env, args)
}

// Closure is a user defined function capturing its defining environment.
type Closure struct {
	Params []Symbol
	Body   Expr
	Env    *Env

	ev *Evaluator // evaluator that created the closure
}

// Call applies the closure from outside the evaluator, e.g. from a builtin.
// Arguments must already be evaluated. The call continues the depth count of
// env, the frame a builtin was handed.
func (c *Closure) Call(env *Env, args []Expr) (Expr, error) {
	ev := c.ev
	if ev == nil {
		ev = env.evaluator()
	}
	return ev.apply(c, args, env.depthOf()+1)
}
