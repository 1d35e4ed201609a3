package stdlib

import (
	"fmt"

	"github.com/shiroscript/shiro/internal/ast"
	"github.com/shiroscript/shiro/internal/heap"
	"github.com/shiroscript/shiro/internal/natives"
	"github.com/shiroscript/shiro/internal/value"
)

// evalAll evaluates every argument expression in order, the common
// first step of most natives below.
func evalAll(ctx natives.Context, args []ast.Expr, scope value.ScopeRef) ([]value.Value, error) {
	vals := make([]value.Value, len(args))
	for i, a := range args {
		v, err := ctx.Eval(a, scope)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// argArray evaluates args[idx] and requires it to be a HeapRef pointing
// at an Array aggregate.
func argArray(ctx natives.Context, args []ast.Expr, scope value.ScopeRef, idx int) (*heap.Aggregate, error) {
	if idx >= len(args) {
		return nil, fmt.Errorf("expected at least %d argument(s)", idx+1)
	}
	v, err := ctx.Eval(args[idx], scope)
	if err != nil {
		return nil, err
	}
	ref, ok := v.(*value.HeapRefValue)
	if !ok {
		return nil, fmt.Errorf("expected an array, got %s", v.TypeName())
	}
	agg, err := ctx.Heap().Deref(ref.Addr)
	if err != nil {
		return nil, err
	}
	if agg.Shape() != heap.ShapeArray {
		return nil, fmt.Errorf("expected an array, got an object")
	}
	return agg, nil
}
