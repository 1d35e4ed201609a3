package stdlib

import (
	"sort"

	"github.com/shiroscript/shiro/internal/ast"
	"github.com/shiroscript/shiro/internal/heap"
	"github.com/shiroscript/shiro/internal/natives"
	"github.com/shiroscript/shiro/internal/value"
)

// LibCollections implements `@std/collections`, Array-oriented helpers
// (`sum`, `min`, `max`, `sort`) layered on top of the evaluator's
// built-in `len`/`append`/`keys` globals (spec §4.6) rather than
// extending the evaluator core itself.
func LibCollections(obj *heap.Aggregate) {
	obj.TryInsertFun("sum", func(args []ast.Expr, scope value.ScopeRef, rt any) (value.Value, error) {
		ctx := rt.(natives.Context)
		agg, err := argArray(ctx, args, scope, 0)
		if err != nil {
			return nil, err
		}
		var sum float64
		for _, v := range agg.Values() {
			d, err := v.ToDecimal()
			if err != nil {
				return nil, err
			}
			sum += d
		}
		return &value.DecimalValue{Value: sum}, nil
	})

	obj.TryInsertFun("min", func(args []ast.Expr, scope value.ScopeRef, rt any) (value.Value, error) {
		return arrayExtreme(rt.(natives.Context), args, scope, -1)
	})
	obj.TryInsertFun("max", func(args []ast.Expr, scope value.ScopeRef, rt any) (value.Value, error) {
		return arrayExtreme(rt.(natives.Context), args, scope, 1)
	})

	obj.TryInsertFun("sort", func(args []ast.Expr, scope value.ScopeRef, rt any) (value.Value, error) {
		ctx := rt.(natives.Context)
		agg, err := argArray(ctx, args, scope, 0)
		if err != nil {
			return nil, err
		}
		items := agg.Values()
		sorted := make([]value.Value, len(items))
		copy(sorted, items)
		var sortErr error
		sort.SliceStable(sorted, func(i, j int) bool {
			if sortErr != nil {
				return false
			}
			cmp, ok := value.Compare(sorted[i], sorted[j])
			if !ok {
				return false
			}
			return cmp < 0
		})
		if sortErr != nil {
			return nil, sortErr
		}
		out := ctx.Heap().AllocArray()
		ref := out.(*value.HeapRefValue)
		outAgg, err := ctx.Heap().Deref(ref.Addr)
		if err != nil {
			return nil, err
		}
		for _, v := range sorted {
			if err := outAgg.TryPush(v); err != nil {
				return nil, err
			}
		}
		return out, nil
	})
}

func arrayExtreme(ctx natives.Context, args []ast.Expr, scope value.ScopeRef, dir int) (value.Value, error) {
	agg, err := argArray(ctx, args, scope, 0)
	if err != nil {
		return nil, err
	}
	items := agg.Values()
	if len(items) == 0 {
		return value.Null, nil
	}
	best := items[0]
	for _, v := range items[1:] {
		cmp, ok := value.Compare(v, best)
		if ok && ((dir < 0 && cmp < 0) || (dir > 0 && cmp > 0)) {
			best = v
		}
	}
	return best, nil
}
