package stdlib

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/shiroscript/shiro/internal/ast"
	"github.com/shiroscript/shiro/internal/heap"
	"github.com/shiroscript/shiro/internal/natives"
	"github.com/shiroscript/shiro/internal/value"
)

// LibStrings implements `@std/strings`: locale-aware comparison and
// Unicode normalization layered above the byte-wise `<`/`>` operators of
// spec §3.3, grounded on the teacher's CompareLocaleStr/NormalizeStr
// builtins.
func LibStrings(obj *heap.Aggregate) {
	obj.TryInsertFun("compareText", func(args []ast.Expr, scope value.ScopeRef, rt any) (value.Value, error) {
		ctx := rt.(natives.Context)
		vals, err := evalAll(ctx, args, scope)
		if err != nil {
			return nil, err
		}
		if len(vals) < 2 {
			return value.Null, nil
		}
		a := vals[0].ToString()
		b := vals[1].ToString()
		locale := "und"
		if len(vals) >= 3 {
			locale = vals[2].ToString()
		}
		tag, err := language.Parse(locale)
		if err != nil {
			tag = language.Und
		}
		result := collate.New(tag).CompareString(a, b)
		return &value.IntegerValue{Value: int64(result)}, nil
	})

	obj.TryInsertFun("normalize", func(args []ast.Expr, scope value.ScopeRef, rt any) (value.Value, error) {
		ctx := rt.(natives.Context)
		vals, err := evalAll(ctx, args, scope)
		if err != nil {
			return nil, err
		}
		if len(vals) < 1 {
			return value.Null, nil
		}
		s := vals[0].ToString()
		form := "NFC"
		if len(vals) >= 2 {
			form = vals[1].ToString()
		}
		var f norm.Form
		switch form {
		case "NFD":
			f = norm.NFD
		case "NFKC":
			f = norm.NFKC
		case "NFKD":
			f = norm.NFKD
		default:
			f = norm.NFC
		}
		return &value.StringValue{Value: f.String(s)}, nil
	})
}
