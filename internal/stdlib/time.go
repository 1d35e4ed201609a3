package stdlib

import (
	"time"

	"github.com/shiroscript/shiro/internal/ast"
	"github.com/shiroscript/shiro/internal/heap"
	"github.com/shiroscript/shiro/internal/value"
)

// LibTime implements `@std/time`, a single pure host-clock read with no
// external resource, grounded on the original's stdlib/time.rs.
func LibTime(obj *heap.Aggregate) {
	obj.TryInsertFun("millis", func(args []ast.Expr, scope value.ScopeRef, rt any) (value.Value, error) {
		return &value.IntegerValue{Value: time.Now().UnixMilli()}, nil
	})
}
