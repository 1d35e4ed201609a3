// Package heap implements the address-keyed store of mutable Object and
// Array aggregates (spec §3.4). Addresses are opaque uint32 handles
// minted by a monotonic counter starting at 1; Values never embed a
// pointer into the heap directly, only a value.HeapRefValue address, so
// the heap is free to move or discard an aggregate once nothing
// references its address.
package heap

import (
	"fmt"
	"os"

	"github.com/shiroscript/shiro/internal/value"
)

// Heap owns every Object/Array aggregate allocated during a run.
type Heap struct {
	objects map[uint32]*Aggregate
	addrCtr uint32
	debug   bool
}

// New creates an empty heap with the address counter starting at 1, so
// address 0 is never valid and can be used as a sentinel.
func New() *Heap {
	return &Heap{objects: make(map[uint32]*Aggregate), addrCtr: 1}
}

// SetDebug toggles gc tracing to stderr (spec's SPEC_FULL.md debug-mode
// addition, grounded on heap.rs's compile-time HEAD_DEBUG constant made
// runtime-toggleable).
func (h *Heap) SetDebug(on bool) { h.debug = on }

func (h *Heap) newAddr() uint32 {
	addr := h.addrCtr
	h.addrCtr++
	return addr
}

// AllocObject allocates a fresh empty Object aggregate and returns a
// HeapRef Value pointing at it.
func (h *Heap) AllocObject() value.Value {
	addr := h.newAddr()
	h.objects[addr] = newObject(addr)
	return &value.HeapRefValue{Addr: addr}
}

// AllocArray allocates a fresh empty Array aggregate and returns a
// HeapRef Value pointing at it.
func (h *Heap) AllocArray() value.Value {
	addr := h.newAddr()
	h.objects[addr] = newArray(addr)
	return &value.HeapRefValue{Addr: addr}
}

// Deref resolves an address to its backing Aggregate. A missing address
// (one that GC has already reclaimed, or that was never allocated) is a
// runtime error, not a panic.
func (h *Heap) Deref(addr uint32) (*Aggregate, error) {
	a, ok := h.objects[addr]
	if !ok {
		return nil, fmt.Errorf("dereference of freed or invalid heap address %d", addr)
	}
	return a, nil
}

// GC reclaims every aggregate unreachable from roots. Spec §3.4
// describes strong-reference counting; this implementation instead
// takes the mark-sweep alternative spec §9 explicitly sanctions (see
// DESIGN.md) so that closures and self-referential object graphs are
// collected correctly, not just acyclic graphs.
func (h *Heap) GC(roots []value.Value) {
	if h.debug {
		fmt.Fprintf(os.Stderr, "[gc] running cycle over %d objects\n", len(h.objects))
	}

	marked := make(map[uint32]bool, len(h.objects))
	visitedScopes := make(map[value.ScopeRef]bool)
	for _, r := range roots {
		h.mark(r, marked, visitedScopes)
	}

	for addr := range h.objects {
		if !marked[addr] {
			if h.debug {
				fmt.Fprintf(os.Stderr, "[gc] #%d unreachable, freeing\n", addr)
			}
			delete(h.objects, addr)
		}
	}
}

func (h *Heap) mark(v value.Value, marked map[uint32]bool, visited map[value.ScopeRef]bool) {
	switch tv := v.(type) {
	case *value.HeapRefValue:
		if marked[tv.Addr] {
			return
		}
		marked[tv.Addr] = true
		agg, ok := h.objects[tv.Addr]
		if !ok {
			return
		}
		for _, child := range agg.Values() {
			h.mark(child, marked, visited)
		}
	case *value.FunctionValue:
		h.markScope(tv.Scope, marked, visited)
	}
}

func (h *Heap) markScope(s value.ScopeRef, marked map[uint32]bool, visited map[value.ScopeRef]bool) {
	if s == nil || visited[s] {
		return
	}
	visited[s] = true
	for _, v := range s.Bindings() {
		h.mark(v, marked, visited)
	}
	if parent, ok := s.Parent(); ok {
		h.markScope(parent, marked, visited)
	}
}
