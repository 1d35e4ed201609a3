// Package scope implements the lexical environment chain the evaluator
// threads through every block: parent-linked frames with define-vs-
// assign cascading lookup (spec §3.5).
package scope

import "github.com/shiroscript/shiro/internal/value"

// Scope is one lexical frame. The zero value is not usable; construct
// with New or NewChild.
type Scope struct {
	parent *Scope
	vars   map[string]value.Value
}

// New creates a root frame with no parent.
func New() *Scope {
	return &Scope{vars: make(map[string]value.Value)}
}

// NewChild creates a frame whose lookups and cascading assigns fall
// through to s.
func (s *Scope) NewChild() *Scope {
	return &Scope{parent: s, vars: make(map[string]value.Value)}
}

// Get looks up name in this frame, then each ancestor in turn. A missing
// binding anywhere in the chain resolves to value.Null, never an error
// (spec §3.5 — undefined reads are Null, not a diagnostic).
func (s *Scope) Get(name string) value.Value {
	if v, ok := s.vars[name]; ok {
		return v
	}
	if s.parent != nil {
		return s.parent.Get(name)
	}
	return value.Null
}

// GetByValue looks up name using a Value coerced to a string key —
// mirrors a native function resolving a computed property name.
func (s *Scope) GetByValue(name value.Value) value.Value {
	return s.Get(name.ToString())
}

// Put binds name to val. When define is true it always binds in this
// frame (shadowing any ancestor binding), matching `let`. When define is
// false it is an assignment: the nearest frame (starting here) that
// already has name is mutated in place; if no frame in the chain has it,
// it falls back to defining it in this frame (spec §3.5, §4.2).
func (s *Scope) Put(name string, val value.Value, define bool) {
	if define {
		s.vars[name] = val
		return
	}
	for frame := s; frame != nil; frame = frame.parent {
		if _, ok := frame.vars[name]; ok {
			frame.vars[name] = val
			return
		}
	}
	s.vars[name] = val
}

// RegisterNativeFunction binds a native function directly into this
// frame, used to install the small set of globally-predefined natives
// (spec §4.6) into a fresh root scope.
func (s *Scope) RegisterNativeFunction(name string, fn value.NativeFunc) {
	s.vars[name] = &value.NativeFunctionValue{Name: name, Fn: fn}
}

// Bindings and Parent implement value.ScopeRef, letting the value
// package describe closures and the heap's mark-sweep walk live scope
// chains without importing this package.
func (s *Scope) Bindings() map[string]value.Value { return s.vars }

func (s *Scope) Parent() (value.ScopeRef, bool) {
	if s.parent == nil {
		return nil, false
	}
	return s.parent, true
}
