package minilisp

import (
	"log/slog"
)

// DefaultMaxDepth bounds how deeply evaluations may nest before failing with
// RecursionLimit instead of exhausting the goroutine stack.
const DefaultMaxDepth = 10000

// DefaultEvaluator backs the package level Eval.
var DefaultEvaluator = NewEvaluator()

// Evaluator interprets expressions against an environment chain. It holds no
// per-evaluation state and may be shared.
type Evaluator struct {
	MaxDepth int
	Logger   *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithMaxDepth sets the nesting limit. Zero or less disables it.
func WithMaxDepth(depth int) Option {
	return func(ev *Evaluator) {
		ev.MaxDepth = depth
	}
}

// WithLogger enables debug tracing of calls.
func WithLogger(logger *slog.Logger) Option {
	return func(ev *Evaluator) {
		ev.Logger = logger
	}
}

// NewEvaluator returns an Evaluator limited to DefaultMaxDepth unless an
// option says otherwise.
func NewEvaluator(opts ...Option) *Evaluator {
	ev := &Evaluator{MaxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

// Eval evaluates expr in env. Inside a builtin it uses the evaluator that
// called the builtin, otherwise DefaultEvaluator.
func Eval(env *Env, expr Expr) (Expr, error) {
	return env.evaluator().Eval(env, expr)
}

// Eval evaluates expr in env, continuing the depth count of env when it is a
// frame handed to a builtin.
func (ev *Evaluator) Eval(env *Env, expr Expr) (Expr, error) {
	return ev.eval(env, expr, env.depthOf())
}

func (ev *Evaluator) eval(env *Env, val Expr, depth int) (Expr, error) {
	if ev.MaxDepth > 0 && depth > ev.MaxDepth {
		return nil, newError(RecursionLimit, val)
	}

	switch t := val.(type) {
	case Symbol:
		return env.Find(t)
	case List:
		if len(t) > 0 {
			if tag, isSym := t[0].(Symbol); isSym {
				switch tag {
				case SymQuote:
					return quote(t)
				case SymIf:
					return ev.ifprim(env, t, depth)
				case SymLet:
					return ev.let(env, t, depth)
				case SymFn:
					return ev.fn(env, t)
				}
			}
		}
		return ev.call(env, t, depth)
	default:
		return t, nil
	}
}

// eval all elements in a slice, left to right
func (ev *Evaluator) evalSlice(env *Env, val []Expr, depth int) ([]Expr, error) {
	arr := make([]Expr, len(val))
	for i, v := range val {
		res, err := ev.eval(env, v, depth)
		if err != nil {
			return nil, err
		}
		arr[i] = res
	}
	return arr, nil
}

func (ev *Evaluator) call(env *Env, expr List, depth int) (Expr, error) {
	if len(expr) == 0 {
		return nil, newError(NotCallable, expr)
	}

	vals, err := ev.evalSlice(env, expr, depth+1)
	if err != nil {
		return nil, err
	}
	args := vals[1:]

	switch front := vals[0].(type) {
	case *Closure:
		return ev.apply(front, args, depth+1)
	case Callable:
		if ev.Logger != nil {
			ev.Logger.Debug("call builtin",
				slog.String("operator", Render(expr[0])),
				slog.Int("argument-count", len(args)),
				slog.Int("depth", depth))
		}
		// a fresh frame carries the depth into callbacks; lookups still
		// reach the caller's bindings
		frame := Extend(env)
		frame.ev = ev
		frame.depth = depth + 1
		return front.Call(frame, args)
	default:
		return nil, newError(NotCallable, expr[0])
	}
}

// apply binds args to the closure's parameters in a single child of the
// captured environment and evaluates the body there.
func (ev *Evaluator) apply(proc *Closure, args []Expr, depth int) (Expr, error) {
	if len(args) != len(proc.Params) {
		return nil, newError(ArityMismatch, List(args))
	}
	if ev.Logger != nil {
		ev.Logger.Debug("call closure",
			slog.String("function", Render(proc)),
			slog.Int("argument-count", len(args)),
			slog.Int("depth", depth))
	}

	child := Extend(proc.Env)
	child.ev = ev
	child.depth = depth
	for i, arg := range args {
		child.Define(proc.Params[i], arg)
	}
	return ev.eval(child, proc.Body, depth)
}

// Special Forms

// (quote a)
func quote(expr List) (Expr, error) {
	if len(expr) != 2 {
		return nil, newError(ArityError, expr)
	}
	return expr[1], nil
}

// (if c1 e1 c2 e2 ... eN)
func (ev *Evaluator) ifprim(env *Env, expr List, depth int) (Expr, error) {
	for i := 1; i < len(expr)-1; i += 2 {
		cond, err := ev.eval(env, expr[i], depth+1)
		if err != nil {
			return nil, err
		}
		if isTruthy(cond) {
			return ev.eval(env, expr[i+1], depth+1)
		}
	}

	// an unpaired trailing expression is the else branch
	if len(expr)%2 == 0 {
		return ev.eval(env, expr[len(expr)-1], depth+1)
	}
	return nil, nil
}

// (let (v1 e1 v2 e2 ...) body)
func (ev *Evaluator) let(env *Env, expr List, depth int) (Expr, error) {
	if len(expr) != 3 {
		return nil, newError(ArityError, expr)
	}

	vars, isList := expr[1].(List)
	if !isList {
		return nil, newError(BindingsNotList, expr[1])
	}
	if len(vars)%2 != 0 {
		return nil, newError(OddBindingCount, vars)
	}

	newEnv := env
	for i := 0; i < len(vars); i += 2 {
		sym, isSym := vars[i].(Symbol)
		if !isSym {
			return nil, newError(InvalidBindingName, vars[i])
		}
		// The value is evaluated in the new frame before the name is bound,
		// so a closure created here captures the frame that will hold it.
		newEnv = Extend(newEnv)
		val, err := ev.eval(newEnv, vars[i+1], depth+1)
		if err != nil {
			return nil, err
		}
		newEnv.Define(sym, val)
	}

	return ev.eval(newEnv, expr[2], depth+1)
}

// (fn (p1 p2 ...) body)
func (ev *Evaluator) fn(env *Env, expr List) (Expr, error) {
	if len(expr) != 3 {
		return nil, newError(ArityError, expr)
	}

	params, isList := expr[1].(List)
	if !isList {
		return nil, newError(ParametersNotList, expr[1])
	}

	symbols := make([]Symbol, len(params))
	seen := make(map[Symbol]bool, len(params))
	for i, p := range params {
		sym, isSym := p.(Symbol)
		if !isSym {
			return nil, newError(InvalidParameterName, params)
		}
		if seen[sym] {
			return nil, newError(DuplicateParameter, params)
		}
		seen[sym] = true
		symbols[i] = sym
	}

	return &Closure{
		Params: symbols,
		Body:   expr[2],
		Env:    env,
		ev:     ev,
	}, nil
}

// Only the nil sentinel and false are falsy.
func isTruthy(val Expr) bool {
	isTrue, isBoolean := val.(bool)
	if isBoolean {
		return isTrue
	}
	return val != nil
}
