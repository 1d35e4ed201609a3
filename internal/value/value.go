// Package value implements the dynamic value model (spec §3.2): a closed
// set of scalar, callable, and heap-reference kinds with implicit
// cross-type coercion. It is the leaf dependency of the interpreter core
// — it imports nothing from scope, heap, or eval, matching the
// Value-before-Heap-before-Scope-before-Evaluator ordering in the design
// overview.
package value

// Kind tags the concrete variant of a Value for dispatch and for the
// type-name strings spec §3.2 requires.
type Kind int

const (
	KindString Kind = iota
	KindChar
	KindInteger
	KindDecimal
	KindBoolean
	KindFunction
	KindNativeFunction
	KindNull
	KindHeapRef
)

// Value is the single type every expression evaluates to. Immediates
// (String, Integer, Decimal, Boolean, Char) are plain Go values and are
// freely copyable; HeapRef is an opaque handle whose backing aggregate is
// shared across copies.
type Value interface {
	Kind() Kind
	// TypeName returns the stable string spec §3.2 names for typeof().
	TypeName() string
	// ToInteger, ToDecimal, ToString, ToBoolean, ToChar implement the
	// coercion contract of spec §3.2. Only ToInteger/ToDecimal can fail
	// (an unparsable String).
	ToInteger() (int64, error)
	ToDecimal() (float64, error)
	ToString() string
	ToBoolean() bool
	ToChar() rune
}

// Null is the single Null value. The language has no other nil-like
// values: missing variables, missing object keys, and out-of-range reads
// all yield this exact value (spec §3.5, §4.3).
var Null Value = nullValue{}

type nullValue struct{}

func (nullValue) Kind() Kind                { return KindNull }
func (nullValue) TypeName() string          { return "null" }
func (nullValue) ToInteger() (int64, error) { return 0, nil }
func (nullValue) ToDecimal() (float64, error) { return 0, nil }
func (nullValue) ToString() string          { return "null" }
func (nullValue) ToBoolean() bool           { return false }
func (nullValue) ToChar() rune              { return 0 }
