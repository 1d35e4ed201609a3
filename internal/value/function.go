package value

import "github.com/shiroscript/shiro/internal/ast"

// ScopeRef is the slice of scope behavior the value package needs to
// describe a closure and to let the heap's mark-sweep (internal/heap)
// walk live bindings, without importing internal/scope — which itself
// must import this package to store Values. Concrete scopes (internal/
// scope.Scope) implement this interface; the dependency edge runs
// scope -> value, never value -> scope.
type ScopeRef interface {
	// Bindings returns the name->Value pairs defined directly in this
	// frame (not its ancestors).
	Bindings() map[string]Value
	// Parent returns the enclosing frame, if any.
	Parent() (ScopeRef, bool)
}

// FunctionValue is a user-defined function together with the scope it
// closed over at declaration time (spec §4.3: closures capture their
// defining scope, not the caller's).
type FunctionValue struct {
	Name   string // "" when declared anonymously
	Params []string
	Body   []ast.Expr
	Scope  ScopeRef
}

func (v *FunctionValue) Kind() Kind                  { return KindFunction }
func (v *FunctionValue) TypeName() string            { return "function" }
func (v *FunctionValue) ToInteger() (int64, error)   { return 0, nil }
func (v *FunctionValue) ToDecimal() (float64, error) { return 0, nil }
func (v *FunctionValue) ToString() string            { return "[function]" }
func (v *FunctionValue) ToBoolean() bool             { return true }
func (v *FunctionValue) ToChar() rune                { return 0 }

// NativeFunc is the signature every native library function implements
// (spec §4.6): it receives the *unevaluated* argument expressions, the
// calling scope, and an opaque runtime handle. It is responsible for
// evaluating whichever of its own arguments it needs, which is what lets
// a native like typeof() inspect an expression's shape instead of its
// value. rt is typed `any` instead of a concrete *eval.Interp to avoid an
// import cycle (eval depends on value, not the reverse); native
// implementations in internal/stdlib type-assert it to the concrete
// evaluator handle they need.
type NativeFunc func(args []ast.Expr, scope ScopeRef, rt any) (Value, error)

// NativeFunctionValue wraps a NativeFunc so it can flow through the
// value model like any other callable.
type NativeFunctionValue struct {
	Name string
	Fn   NativeFunc
}

func (v *NativeFunctionValue) Kind() Kind                  { return KindNativeFunction }
func (v *NativeFunctionValue) TypeName() string            { return "function" }
func (v *NativeFunctionValue) ToInteger() (int64, error)   { return 0, nil }
func (v *NativeFunctionValue) ToDecimal() (float64, error) { return 0, nil }
func (v *NativeFunctionValue) ToString() string            { return "[native function]" }
func (v *NativeFunctionValue) ToBoolean() bool             { return true }
func (v *NativeFunctionValue) ToChar() rune                { return 0 }
