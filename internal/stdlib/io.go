// Package stdlib implements the native library bodies exposed under the
// `@std/...` import namespace. Each library is a natives.Factory; the
// bulk of a library's work is evaluating its own unevaluated arguments
// through the natives.Context handed to it at call time (spec §4.6).
package stdlib

import (
	"fmt"
	"strings"

	"github.com/shiroscript/shiro/internal/ast"
	"github.com/shiroscript/shiro/internal/heap"
	"github.com/shiroscript/shiro/internal/natives"
	"github.com/shiroscript/shiro/internal/value"
)

// contactArgs evaluates every argument expression and joins them with a
// trailing space after each one (including the last), matching the
// original interpreter's eval_contact helper exactly.
func contactArgs(ctx natives.Context, args []ast.Expr, scope value.ScopeRef) (string, error) {
	var b strings.Builder
	for _, a := range args {
		v, err := ctx.Eval(a, scope)
		if err != nil {
			return "", err
		}
		b.WriteString(v.ToString())
		b.WriteByte(' ')
	}
	return b.String(), nil
}

// LibIO implements `@std/io`.
func LibIO(obj *heap.Aggregate) {
	obj.TryInsertFun("println", func(args []ast.Expr, scope value.ScopeRef, rt any) (value.Value, error) {
		ctx := rt.(natives.Context)
		s, err := contactArgs(ctx, args, scope)
		if err != nil {
			return nil, err
		}
		fmt.Println(s)
		return value.Null, nil
	})
	obj.TryInsertFun("print", func(args []ast.Expr, scope value.ScopeRef, rt any) (value.Value, error) {
		ctx := rt.(natives.Context)
		s, err := contactArgs(ctx, args, scope)
		if err != nil {
			return nil, err
		}
		fmt.Print(s)
		return value.Null, nil
	})
}
