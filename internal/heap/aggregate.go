package heap

import (
	"fmt"

	"github.com/shiroscript/shiro/internal/value"
)

// Shape distinguishes the two aggregate kinds the heap stores.
type Shape int

const (
	ShapeObject Shape = iota
	ShapeArray
)

// Aggregate is one heap-allocated Object or Array (spec §3.4). Objects
// are string-keyed; arrays are contiguous and index-keyed, growable only
// by exactly one past their current length.
type Aggregate struct {
	Address uint32
	shape   Shape
	object  map[string]value.Value
	// keyOrder preserves Object insertion order, since Go map iteration
	// order is undefined and spec §8 requires keys() to return insertion
	// order.
	keyOrder []string
	array    []value.Value
}

func newObject(addr uint32) *Aggregate {
	return &Aggregate{Address: addr, shape: ShapeObject, object: make(map[string]value.Value)}
}

func newArray(addr uint32) *Aggregate {
	return &Aggregate{Address: addr, shape: ShapeArray}
}

// Shape reports whether this aggregate is an Object or an Array.
func (a *Aggregate) Shape() Shape { return a.shape }

// Put writes val at the property key coerces to. On an Object the key
// coerces to a string; on an Array it coerces to an integer index, which
// must be within [0, len] — one past the end grows the array by one,
// matching the teacher's append-on-next-index convention; anything
// further out of range is a runtime error rather than a panic.
func (a *Aggregate) Put(key, val value.Value) error {
	switch a.shape {
	case ShapeObject:
		k := key.ToString()
		if _, exists := a.object[k]; !exists {
			a.keyOrder = append(a.keyOrder, k)
		}
		a.object[k] = val
		return nil
	default:
		idx, err := key.ToInteger()
		if err != nil {
			return err
		}
		return a.putIndex(int(idx), val)
	}
}

func (a *Aggregate) putIndex(idx int, val value.Value) error {
	switch {
	case idx >= 0 && idx < len(a.array):
		a.array[idx] = val
		return nil
	case idx == len(a.array):
		a.array = append(a.array, val)
		return nil
	default:
		return fmt.Errorf("array index %d out of range (len %d)", idx, len(a.array))
	}
}

// TryInsert sets an Object key directly by a Go string, used by native
// library factories populating a fresh module object. It errors on an
// Array aggregate.
func (a *Aggregate) TryInsert(key string, val value.Value) error {
	if a.shape != ShapeObject {
		return fmt.Errorf("cannot insert key %q into an array", key)
	}
	if _, exists := a.object[key]; !exists {
		a.keyOrder = append(a.keyOrder, key)
	}
	a.object[key] = val
	return nil
}

// TryInsertFun is TryInsert specialized for binding a native function.
func (a *Aggregate) TryInsertFun(key string, fn value.NativeFunc) error {
	return a.TryInsert(key, &value.NativeFunctionValue{Name: key, Fn: fn})
}

// TryPush appends to an Array aggregate; it errors on an Object.
func (a *Aggregate) TryPush(val value.Value) error {
	if a.shape != ShapeArray {
		return fmt.Errorf("cannot push onto an object")
	}
	a.array = append(a.array, val)
	return nil
}

// Len returns the element count for either shape.
func (a *Aggregate) Len() int {
	if a.shape == ShapeObject {
		return len(a.object)
	}
	return len(a.array)
}

// Keys returns an Object's keys in insertion order. It errors on an
// Array.
func (a *Aggregate) Keys() ([]string, error) {
	if a.shape != ShapeObject {
		return nil, fmt.Errorf("an array has no keys")
	}
	return append([]string(nil), a.keyOrder...), nil
}

// Get reads the property key coerces to, returning value.Null on a
// missing Object key or an out-of-range Array index (spec §3.4 — reads
// never error).
func (a *Aggregate) Get(key value.Value) value.Value {
	if a.shape == ShapeObject {
		if v, ok := a.object[key.ToString()]; ok {
			return v
		}
		return value.Null
	}
	idx, err := key.ToInteger()
	if err != nil || idx < 0 || int(idx) >= len(a.array) {
		return value.Null
	}
	return a.array[idx]
}

// Values returns the immediate Values held by this aggregate, used by
// the heap's mark-sweep to follow nested HeapRefs and closures.
func (a *Aggregate) Values() []value.Value {
	if a.shape == ShapeObject {
		vals := make([]value.Value, 0, len(a.object))
		for _, v := range a.object {
			vals = append(vals, v)
		}
		return vals
	}
	return append([]value.Value(nil), a.array...)
}
