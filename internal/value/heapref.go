package value

// HeapRefValue is an opaque handle to a heap-allocated Object or Array
// (spec §3.4). The address is only meaningful to the Heap that minted
// it; the value package itself never dereferences it.
type HeapRefValue struct{ Addr uint32 }

func (v *HeapRefValue) Kind() Kind                  { return KindHeapRef }
func (v *HeapRefValue) TypeName() string            { return "object" }
func (v *HeapRefValue) ToInteger() (int64, error)   { return 0, nil }
func (v *HeapRefValue) ToDecimal() (float64, error) { return 0, nil }
func (v *HeapRefValue) ToString() string            { return "[object]" }
func (v *HeapRefValue) ToBoolean() bool             { return true }
func (v *HeapRefValue) ToChar() rune                { return 0 }
