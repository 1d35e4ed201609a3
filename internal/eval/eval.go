// Package eval implements the recursive tree-walking evaluator (spec
// §4.3, §4.4): one case per AST node kind, dispatched over a shared Heap
// and a chain of lexical Scopes. Grounded on the teacher's
// internal/interp package (a single big eval(node, env) dispatch with
// explicit error returns, no panics) and on
// original_source/interpreter/src/runtime/eval.rs for exact per-variant
// evaluation order.
package eval

import (
	"fmt"

	"github.com/shiroscript/shiro/internal/ast"
	"github.com/shiroscript/shiro/internal/heap"
	"github.com/shiroscript/shiro/internal/natives"
	"github.com/shiroscript/shiro/internal/scope"
	"github.com/shiroscript/shiro/internal/value"
)

// Interp is the evaluator engine: it owns no state of its own beyond the
// shared heap and native registry, both supplied by the runtime driver
// (internal/runtime), and is handed to native functions as their opaque
// rt parameter (see internal/natives.Context, which it implements).
type Interp struct {
	HeapStore *heap.Heap
	Natives   *natives.Registry
	// ModuleLoader resolves a non-native `use` path to a freshly
	// evaluated module value. It is set by the runtime driver, which
	// owns file resolution and the import mechanism (spec §4.5).
	ModuleLoader func(path string) (value.Value, error)
}

// New creates an Interp sharing h and registry.
func New(h *heap.Heap, registry *natives.Registry) *Interp {
	return &Interp{HeapStore: h, Natives: registry}
}

// Heap implements natives.Context.
func (in *Interp) Heap() *heap.Heap { return in.HeapStore }

// NewRootScope builds a fresh root scope with the five globally
// predefined natives (spec §4.6) registered into it.
func (in *Interp) NewRootScope() *scope.Scope {
	root := scope.New()
	registerGlobals(root, in)
	return root
}

// Eval dispatches a single AST node. It implements natives.Context.
func (in *Interp) Eval(node ast.Expr, sc value.ScopeRef) (value.Value, error) {
	s, ok := sc.(*scope.Scope)
	if !ok {
		return nil, fmt.Errorf("internal error: scope is not *scope.Scope")
	}
	return in.eval(node, s)
}

func (in *Interp) eval(node ast.Expr, sc *scope.Scope) (value.Value, error) {
	switch n := node.(type) {
	case *ast.Nop:
		return value.Null, nil
	case *ast.NullLit:
		return value.Null, nil
	case *ast.IntegerLit:
		return &value.IntegerValue{Value: n.Value}, nil
	case *ast.DecimalLit:
		return &value.DecimalValue{Value: n.Value}, nil
	case *ast.BooleanLit:
		return &value.BooleanValue{Value: n.Value}, nil
	case *ast.StringLit:
		return &value.StringValue{Value: n.Value}, nil
	case *ast.Let:
		return in.evalLet(n, sc)
	case *ast.Ref:
		return in.evalRef(n, sc)
	case *ast.BinaryOp:
		return in.evalBinaryOp(n, sc)
	case *ast.UnaryOp:
		return in.evalUnaryOp(n, sc)
	case *ast.AssignOp:
		return in.evalAssignOp(n, sc)
	case *ast.FunctionDecl:
		return in.evalFunctionDecl(n, sc)
	case *ast.Invocation:
		return in.evalInvocation(n, sc)
	case *ast.Return:
		return in.eval(n.Value, sc)
	case *ast.If:
		return in.evalIf(n, sc)
	case *ast.While:
		return in.evalWhile(n, sc)
	case *ast.For:
		return in.evalFor(n, sc)
	case *ast.ObjectDef:
		return in.evalObjectDef(n, sc)
	case *ast.ArrayDef:
		return in.evalArrayDef(n, sc)
	case *ast.Import:
		return in.evalImport(n, sc)
	default:
		return nil, fmt.Errorf("the evaluator has no case for %T", node)
	}
}

// EvalBlock evaluates an ordered block of statements, returning the last
// statement's value. A literal *ast.Return node at the top level of this
// block stops evaluation right there — Return is "terminate this block
// with this value", not a propagating signal that unwinds through
// enclosing If/While/For bodies (spec §9's open question).
func (in *Interp) EvalBlock(body []ast.Expr, sc *scope.Scope) (value.Value, error) {
	var result value.Value = value.Null
	for _, stmt := range body {
		v, err := in.eval(stmt, sc)
		if err != nil {
			return nil, err
		}
		result = v
		if _, isReturn := stmt.(*ast.Return); isReturn {
			break
		}
	}
	return result, nil
}
