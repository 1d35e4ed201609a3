package stdlib

import (
	"math"

	"github.com/shiroscript/shiro/internal/ast"
	"github.com/shiroscript/shiro/internal/heap"
	"github.com/shiroscript/shiro/internal/natives"
	"github.com/shiroscript/shiro/internal/value"
)

// LibMath implements `@std/math`, a Decimal-oriented extension
// beyond the core binary-operator table of spec §3.3 — the kind of
// natural stdlib growth spec §4.6 leaves to native libraries rather than
// baking into the evaluator core.
func LibMath(obj *heap.Aggregate) {
	unary := func(f func(float64) float64) value.NativeFunc {
		return func(args []ast.Expr, scope value.ScopeRef, rt any) (value.Value, error) {
			ctx := rt.(natives.Context)
			vals, err := evalAll(ctx, args, scope)
			if err != nil {
				return nil, err
			}
			if len(vals) < 1 {
				return value.Null, nil
			}
			d, err := vals[0].ToDecimal()
			if err != nil {
				return nil, err
			}
			return &value.DecimalValue{Value: f(d)}, nil
		}
	}

	obj.TryInsertFun("abs", unary(math.Abs))
	obj.TryInsertFun("sqrt", unary(math.Sqrt))
	obj.TryInsertFun("floor", unary(math.Floor))
	obj.TryInsertFun("ceil", unary(math.Ceil))
	obj.TryInsertFun("round", unary(math.Round))

	obj.TryInsertFun("pow", func(args []ast.Expr, scope value.ScopeRef, rt any) (value.Value, error) {
		ctx := rt.(natives.Context)
		vals, err := evalAll(ctx, args, scope)
		if err != nil {
			return nil, err
		}
		if len(vals) < 2 {
			return value.Null, nil
		}
		base, err := vals[0].ToDecimal()
		if err != nil {
			return nil, err
		}
		exp, err := vals[1].ToDecimal()
		if err != nil {
			return nil, err
		}
		return &value.DecimalValue{Value: math.Pow(base, exp)}, nil
	})

	obj.TryInsertFun("min", func(args []ast.Expr, scope value.ScopeRef, rt any) (value.Value, error) {
		return minMax(rt.(natives.Context), args, scope, math.Min)
	})
	obj.TryInsertFun("max", func(args []ast.Expr, scope value.ScopeRef, rt any) (value.Value, error) {
		return minMax(rt.(natives.Context), args, scope, math.Max)
	})
}

func minMax(ctx natives.Context, args []ast.Expr, scope value.ScopeRef, pick func(a, b float64) float64) (value.Value, error) {
	vals, err := evalAll(ctx, args, scope)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return value.Null, nil
	}
	best, err := vals[0].ToDecimal()
	if err != nil {
		return nil, err
	}
	for _, v := range vals[1:] {
		d, err := v.ToDecimal()
		if err != nil {
			return nil, err
		}
		best = pick(best, d)
	}
	return &value.DecimalValue{Value: best}, nil
}
