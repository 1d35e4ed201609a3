package eval

import (
	"fmt"

	"github.com/shiroscript/shiro/internal/ast"
	"github.com/shiroscript/shiro/internal/diag"
	"github.com/shiroscript/shiro/internal/heap"
	"github.com/shiroscript/shiro/internal/scope"
	"github.com/shiroscript/shiro/internal/value"
)

// registerGlobals binds the small set of natives the evaluator itself
// predefines into every root scope (spec §4.6), ahead of anything an
// `@`-prefixed library import might add.
func registerGlobals(root *scope.Scope, in *Interp) {
	root.RegisterNativeFunction("typeof", in.nativeTypeof)
	root.RegisterNativeFunction("append", in.nativeAppend)
	root.RegisterNativeFunction("len", in.nativeLen)
	root.RegisterNativeFunction("keys", in.nativeKeys)
	root.RegisterNativeFunction("dbg", in.nativeDbg)
}

func (in *Interp) evalArg(args []ast.Expr, sc value.ScopeRef, idx int) (value.Value, error) {
	s, ok := sc.(*scope.Scope)
	if !ok {
		return nil, fmt.Errorf("internal error: scope is not *scope.Scope")
	}
	return in.eval(args[idx], s)
}

// nativeTypeof returns the type-name string of its evaluated argument,
// or Null when called with no arguments.
func (in *Interp) nativeTypeof(args []ast.Expr, sc value.ScopeRef, rt any) (value.Value, error) {
	if len(args) == 0 {
		return value.Null, nil
	}
	v, err := in.evalArg(args, sc, 0)
	if err != nil {
		return nil, err
	}
	return &value.StringValue{Value: v.TypeName()}, nil
}

// nativeAppend pushes value onto container, a heap Array. A non-array
// container is a runtime error.
func (in *Interp) nativeAppend(args []ast.Expr, sc value.ScopeRef, rt any) (value.Value, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("append expects 2 arguments, got %d", len(args))
	}
	container, err := in.evalArg(args, sc, 0)
	if err != nil {
		return nil, err
	}
	agg, err := in.requireArray(container)
	if err != nil {
		return nil, err
	}
	v, err := in.evalArg(args, sc, 1)
	if err != nil {
		return nil, err
	}
	if err := agg.TryPush(v); err != nil {
		return nil, err
	}
	return value.Null, nil
}

// nativeLen returns the length of an array or a string; any other
// container kind is a runtime error.
func (in *Interp) nativeLen(args []ast.Expr, sc value.ScopeRef, rt any) (value.Value, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("len expects 1 argument, got %d", len(args))
	}
	v, err := in.evalArg(args, sc, 0)
	if err != nil {
		return nil, err
	}
	switch c := v.(type) {
	case *value.StringValue:
		return &value.IntegerValue{Value: int64(len([]rune(c.Value)))}, nil
	case *value.HeapRefValue:
		agg, err := in.HeapStore.Deref(c.Addr)
		if err != nil {
			return nil, err
		}
		if agg.Shape() != heap.ShapeArray {
			return nil, fmt.Errorf(diag.ErrMsgHeapKindMismatch, "array or string", "object")
		}
		return &value.IntegerValue{Value: int64(agg.Len())}, nil
	default:
		return nil, fmt.Errorf(diag.ErrMsgHeapKindMismatch, "array or string", v.TypeName())
	}
}

// nativeKeys returns a new array of object's keys in insertion order. A
// non-object argument is a runtime error.
func (in *Interp) nativeKeys(args []ast.Expr, sc value.ScopeRef, rt any) (value.Value, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("keys expects 1 argument, got %d", len(args))
	}
	v, err := in.evalArg(args, sc, 0)
	if err != nil {
		return nil, err
	}
	ref, ok := v.(*value.HeapRefValue)
	if !ok {
		return nil, fmt.Errorf(diag.ErrMsgHeapKindMismatch, "object", v.TypeName())
	}
	agg, err := in.HeapStore.Deref(ref.Addr)
	if err != nil {
		return nil, err
	}
	if agg.Shape() != heap.ShapeObject {
		return nil, fmt.Errorf(diag.ErrMsgKeysOnArray)
	}
	ks, err := agg.Keys()
	if err != nil {
		return nil, err
	}

	resultRef := in.HeapStore.AllocArray()
	resultAgg, err := in.HeapStore.Deref(resultRef.(*value.HeapRefValue).Addr)
	if err != nil {
		return nil, err
	}
	for _, k := range ks {
		if err := resultAgg.TryPush(&value.StringValue{Value: k}); err != nil {
			return nil, err
		}
	}
	return resultRef, nil
}

// nativeDbg evaluates every argument for its side effects and prints a
// trace line; it always returns Null.
func (in *Interp) nativeDbg(args []ast.Expr, sc value.ScopeRef, rt any) (value.Value, error) {
	vals := make([]any, 0, len(args))
	for _, a := range args {
		s, ok := sc.(*scope.Scope)
		if !ok {
			return nil, fmt.Errorf("internal error: scope is not *scope.Scope")
		}
		v, err := in.eval(a, s)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v.ToString())
	}
	fmt.Println(vals...)
	return value.Null, nil
}

func (in *Interp) requireArray(v value.Value) (*heap.Aggregate, error) {
	ref, ok := v.(*value.HeapRefValue)
	if !ok {
		return nil, fmt.Errorf(diag.ErrMsgHeapKindMismatch, "array", v.TypeName())
	}
	agg, err := in.HeapStore.Deref(ref.Addr)
	if err != nil {
		return nil, err
	}
	if agg.Shape() != heap.ShapeArray {
		return nil, fmt.Errorf(diag.ErrMsgHeapKindMismatch, "array", "object")
	}
	return agg, nil
}
