package minilisp

import (
	"errors"
	"fmt"
)

// ErrorKind classifies evaluation failures.
type ErrorKind int

const (
	UnresolvedSymbol ErrorKind = iota + 1
	ArityError
	OddBindingCount
	BindingsNotList
	InvalidBindingName
	ParametersNotList
	InvalidParameterName
	DuplicateParameter
	NotCallable
	ArityMismatch
	RecursionLimit
	InvalidArgument
)

var kindMessages = map[ErrorKind]string{
	UnresolvedSymbol:     "Unable to resolve symbol",
	ArityError:           "Wrong number of arguments",
	OddBindingCount:      "Wrong number of elements in list of variable bindings",
	BindingsNotList:      "Variable bindings in let expression must be a list",
	InvalidBindingName:   "Invalid variable name",
	ParametersNotList:    "Function parameters must be a list",
	InvalidParameterName: "Function parameters must be names",
	DuplicateParameter:   "Function parameters must be unique",
	NotCallable:          "Not a function",
	ArityMismatch:        "Wrong number of arguments",
	RecursionLimit:       "Maximum evaluation depth exceeded",
	InvalidArgument:      "Invalid argument",
}

func (k ErrorKind) String() string {
	switch k {
	case UnresolvedSymbol:
		return "UnresolvedSymbol"
	case ArityError:
		return "ArityError"
	case OddBindingCount:
		return "OddBindingCount"
	case BindingsNotList:
		return "BindingsNotList"
	case InvalidBindingName:
		return "InvalidBindingName"
	case ParametersNotList:
		return "ParametersNotList"
	case InvalidParameterName:
		return "InvalidParameterName"
	case DuplicateParameter:
		return "DuplicateParameter"
	case NotCallable:
		return "NotCallable"
	case ArityMismatch:
		return "ArityMismatch"
	case RecursionLimit:
		return "RecursionLimit"
	case InvalidArgument:
		return "InvalidArgument"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// EvalError is the failure returned by Eval. Context is the rendered
// expression or value the failure is about.
type EvalError struct {
	Kind    ErrorKind
	Context string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", kindMessages[e.Kind], e.Context)
}

func newError(kind ErrorKind, context Expr) *EvalError {
	return &EvalError{Kind: kind, Context: Render(context)}
}

// Errorf builds an InvalidArgument failure for builtins.
func Errorf(format string, args ...any) error {
	return &EvalError{Kind: InvalidArgument, Context: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err wraps an EvalError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var evalErr *EvalError
	return errors.As(err, &evalErr) && evalErr.Kind == kind
}
