package minilisp

// Env is one frame of the lexical environment chain.
type Env struct {
	symbols map[Symbol]Expr
	parent  *Env

	// evaluator and depth of the evaluation that created the frame, so
	// builtins calling back into Eval or Closure.Call stay under its limit
	ev    *Evaluator
	depth int
}

// NewEnv creates a root environment holding a copy of s.
func NewEnv(s map[Symbol]Expr) *Env {
	symbols := make(map[Symbol]Expr, len(s))
	for k, v := range s {
		symbols[k] = v
	}
	return &Env{symbols: symbols}
}

// Extend creates an empty child frame of parent.
func Extend(parent *Env) *Env {
	env := &Env{symbols: make(map[Symbol]Expr), parent: parent}
	if parent != nil {
		env.ev = parent.ev
		env.depth = parent.depth
	}
	return env
}

// evaluator returns the evaluator running in this frame, or DefaultEvaluator.
func (e *Env) evaluator() *Evaluator {
	if e == nil || e.ev == nil {
		return DefaultEvaluator
	}
	return e.ev
}

func (e *Env) depthOf() int {
	if e == nil {
		return 0
	}
	return e.depth
}

// Parent returns the enclosing frame, or nil for a root.
func (e *Env) Parent() *Env {
	return e.parent
}

// Define binds sym in this frame only. Ancestors are never written.
func (e *Env) Define(sym Symbol, val Expr) {
	e.symbols[sym] = val
}

// Lookup walks the chain outward and returns the innermost binding of sym.
func (e *Env) Lookup(sym Symbol) (Expr, bool) {
	for env := e; env != nil; env = env.parent {
		if val, ok := env.symbols[sym]; ok {
			return val, true
		}
	}
	return nil, false
}

// Find is Lookup reporting a missing binding as an UnresolvedSymbol error.
func (e *Env) Find(sym Symbol) (Expr, error) {
	val, ok := e.Lookup(sym)
	if !ok {
		return nil, newError(UnresolvedSymbol, sym)
	}
	return val, nil
}
