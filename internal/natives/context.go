package natives

import (
	"github.com/shiroscript/shiro/internal/ast"
	"github.com/shiroscript/shiro/internal/heap"
	"github.com/shiroscript/shiro/internal/value"
)

// Context is the slice of evaluator behavior a native function body
// needs: evaluating one of its own unevaluated argument expressions, and
// reaching the shared heap to allocate or dereference aggregates. It is
// declared here (rather than in internal/eval) so internal/stdlib can
// depend on it without importing internal/eval.
// The concrete implementation (*eval.Interp) is handed to every
// value.NativeFunc as its untyped rt parameter and type-asserted to
// Context at the call site.
type Context interface {
	Eval(expr ast.Expr, scope value.ScopeRef) (value.Value, error)
	Heap() *heap.Heap
}
