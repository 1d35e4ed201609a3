package eval

import (
	"github.com/shiroscript/shiro/internal/ast"
	"github.com/shiroscript/shiro/internal/scope"
	"github.com/shiroscript/shiro/internal/value"
)

// evalObjectDef allocates a heap Object and evaluates each entry into it
// in source order.
func (in *Interp) evalObjectDef(n *ast.ObjectDef, sc *scope.Scope) (value.Value, error) {
	ref := in.HeapStore.AllocObject()
	heapRef := ref.(*value.HeapRefValue)
	agg, err := in.HeapStore.Deref(heapRef.Addr)
	if err != nil {
		return nil, err
	}
	for _, entry := range n.Entries {
		v, err := in.eval(entry.Value, sc)
		if err != nil {
			return nil, err
		}
		if err := agg.TryInsert(entry.Key, v); err != nil {
			return nil, err
		}
	}
	return ref, nil
}

// evalArrayDef allocates a heap Array and evaluates each item into it in
// order.
func (in *Interp) evalArrayDef(n *ast.ArrayDef, sc *scope.Scope) (value.Value, error) {
	ref := in.HeapStore.AllocArray()
	heapRef := ref.(*value.HeapRefValue)
	agg, err := in.HeapStore.Deref(heapRef.Addr)
	if err != nil {
		return nil, err
	}
	for _, item := range n.Items {
		v, err := in.eval(item, sc)
		if err != nil {
			return nil, err
		}
		if err := agg.TryPush(v); err != nil {
			return nil, err
		}
	}
	return ref, nil
}
