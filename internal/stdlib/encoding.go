package stdlib

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/shiroscript/shiro/internal/ast"
	"github.com/shiroscript/shiro/internal/heap"
	"github.com/shiroscript/shiro/internal/natives"
	"github.com/shiroscript/shiro/internal/value"
)

// LibEncoding implements `@std/encoding`: UTF-16 round-tripping through
// x/text's codec + transform pipeline, materialized as heap Arrays of
// Integer byte values since the heap has no raw byte-buffer type (spec
// §3.4). Grounded on the teacher's detectAndDecodeFile/decodeUTF16.
func LibEncoding(obj *heap.Aggregate) {
	obj.TryInsertFun("toUTF16", func(args []ast.Expr, scope value.ScopeRef, rt any) (value.Value, error) {
		ctx := rt.(natives.Context)
		vals, err := evalAll(ctx, args, scope)
		if err != nil {
			return nil, err
		}
		if len(vals) < 1 {
			return value.Null, nil
		}
		s := vals[0].ToString()
		encoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
		encoded, _, err := transform.String(encoder, s)
		if err != nil {
			return nil, err
		}

		out := ctx.Heap().AllocArray()
		ref := out.(*value.HeapRefValue)
		agg, err := ctx.Heap().Deref(ref.Addr)
		if err != nil {
			return nil, err
		}
		for _, b := range []byte(encoded) {
			if err := agg.TryPush(&value.IntegerValue{Value: int64(b)}); err != nil {
				return nil, err
			}
		}
		return out, nil
	})

	obj.TryInsertFun("fromUTF16", func(args []ast.Expr, scope value.ScopeRef, rt any) (value.Value, error) {
		ctx := rt.(natives.Context)
		agg, err := argArray(ctx, args, scope, 0)
		if err != nil {
			return nil, err
		}
		items := agg.Values()
		buf := make([]byte, len(items))
		for i, v := range items {
			n, err := v.ToInteger()
			if err != nil {
				return nil, err
			}
			buf[i] = byte(n)
		}
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		decoded, _, err := transform.Bytes(decoder, buf)
		if err != nil {
			return nil, err
		}
		return &value.StringValue{Value: string(decoded)}, nil
	})
}
