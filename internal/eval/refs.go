package eval

import (
	"fmt"

	"github.com/shiroscript/shiro/internal/ast"
	"github.com/shiroscript/shiro/internal/diag"
	"github.com/shiroscript/shiro/internal/scope"
	"github.com/shiroscript/shiro/internal/value"
)

func (in *Interp) evalLet(n *ast.Let, sc *scope.Scope) (value.Value, error) {
	v, err := in.eval(n.Value, sc)
	if err != nil {
		return nil, err
	}
	sc.Put(n.Name, v, true)
	return v, nil
}

// refPath resolves a Ref node's flat path, evaluating the trailing
// computed segment (if any) and coercing it to a string (spec §3.1's
// ref_to_string).
func (in *Interp) refPath(n *ast.Ref, sc *scope.Scope) ([]string, error) {
	path := n.Path
	if n.Indexed != nil {
		idx, err := in.eval(n.Indexed, sc)
		if err != nil {
			return nil, err
		}
		path = append(append([]string{}, n.Path...), idx.ToString())
	}
	return path, nil
}

func (in *Interp) evalRef(n *ast.Ref, sc *scope.Scope) (value.Value, error) {
	path, err := in.refPath(n, sc)
	if err != nil {
		return nil, err
	}
	return in.getValue(path, sc)
}

// getValue implements spec §4.3's Reference resolution: the first
// segment comes from the scope chain (Null if undefined, never an
// error); each further segment walks into a HeapRef's aggregate, or
// indexes a String to produce a Char (or Null out of range); any other
// kind for a non-final segment is a runtime error.
func (in *Interp) getValue(path []string, sc *scope.Scope) (value.Value, error) {
	cur := sc.Get(path[0])
	for _, seg := range path[1:] {
		switch tv := cur.(type) {
		case *value.HeapRefValue:
			agg, err := in.HeapStore.Deref(tv.Addr)
			if err != nil {
				return nil, err
			}
			cur = agg.Get(&value.StringValue{Value: seg})
		case *value.StringValue:
			idx, err := (&value.StringValue{Value: seg}).ToInteger()
			if err != nil {
				return nil, err
			}
			runes := []rune(tv.Value)
			if idx < 0 || int(idx) >= len(runes) {
				cur = value.Null
			} else {
				cur = &value.CharValue{Value: runes[idx]}
			}
		default:
			return nil, fmt.Errorf(diag.ErrMsgPropertyOnScalar, cur.TypeName())
		}
	}
	return cur, nil
}

// setValue implements spec §4.3's assignment target resolution: a
// single-segment path assigns directly in the scope chain; a longer path
// walks every segment but the last through HeapRef aggregates, then
// writes the final segment into the last aggregate reached.
func (in *Interp) setValue(path []string, newVal value.Value, sc *scope.Scope) error {
	if len(path) == 1 {
		sc.Put(path[0], newVal, false)
		return nil
	}

	cur := sc.Get(path[0])
	for _, seg := range path[1 : len(path)-1] {
		ref, ok := cur.(*value.HeapRefValue)
		if !ok {
			return fmt.Errorf(diag.ErrMsgPropertyOnScalar, cur.TypeName())
		}
		agg, err := in.HeapStore.Deref(ref.Addr)
		if err != nil {
			return err
		}
		cur = agg.Get(&value.StringValue{Value: seg})
	}

	ref, ok := cur.(*value.HeapRefValue)
	if !ok {
		return fmt.Errorf(diag.ErrMsgPropertyOnScalar, cur.TypeName())
	}
	agg, err := in.HeapStore.Deref(ref.Addr)
	if err != nil {
		return err
	}
	return agg.Put(&value.StringValue{Value: path[len(path)-1]}, newVal)
}
