package eval

import (
	"fmt"

	"github.com/shiroscript/shiro/internal/ast"
	"github.com/shiroscript/shiro/internal/diag"
	"github.com/shiroscript/shiro/internal/scope"
	"github.com/shiroscript/shiro/internal/value"
)

// evalFunctionDecl creates a Function value capturing the current
// scope. A named declaration binds itself in that same scope and
// evaluates to Null; an anonymous one evaluates to the function value
// itself (spec §4.3).
func (in *Interp) evalFunctionDecl(n *ast.FunctionDecl, sc *scope.Scope) (value.Value, error) {
	fn := &value.FunctionValue{Name: n.Name, Params: n.Params, Body: n.Body, Scope: sc}
	if n.Name != "" {
		sc.Put(n.Name, fn, true)
		return value.Null, nil
	}
	return fn, nil
}

// evalInvocation resolves Path to a callable and applies it to Args.
// For a user Function, a child of its *captured* scope is created (not
// of the caller's scope — spec §4.3's closure contract) and parameters
// are bound positionally, limited to min(len(args), len(params)): extra
// call arguments beyond the function's arity are never even evaluated,
// matching the original interpreter exactly.
func (in *Interp) evalInvocation(n *ast.Invocation, sc *scope.Scope) (value.Value, error) {
	target, err := in.getValue(n.Path, sc)
	if err != nil {
		return nil, err
	}

	switch fn := target.(type) {
	case *value.FunctionValue:
		capturedScope, ok := fn.Scope.(*scope.Scope)
		if !ok {
			return nil, fmt.Errorf("internal error: captured scope is not *scope.Scope")
		}
		callScope := capturedScope.NewChild()

		matching := len(n.Args)
		if len(fn.Params) < matching {
			matching = len(fn.Params)
		}
		for i := 0; i < matching; i++ {
			argVal, err := in.eval(n.Args[i], sc)
			if err != nil {
				return nil, err
			}
			callScope.Put(fn.Params[i], argVal, true)
		}

		return in.EvalBlock(fn.Body, callScope)

	case *value.NativeFunctionValue:
		return fn.Fn(n.Args, sc, in)

	default:
		return nil, fmt.Errorf(diag.ErrMsgCallOnNonFunction, target.TypeName())
	}
}
