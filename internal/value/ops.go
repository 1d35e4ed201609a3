package value

import (
	"fmt"
	"math"
)

// Binary operators dispatch on the kind of the left operand (spec §3.3):
// the right operand is always coerced to match. Arithmetic on a kind the
// left side doesn't support (e.g. subtracting from a String) yields Null
// rather than an error — only a malformed numeric String or integer
// division/modulo by zero are reported as errors.

// Add implements `+`. String and Char concatenate (coercing the right
// side to a string); Integer, Decimal, and Boolean add numerically;
// every other left kind yields Null.
func Add(lhs, rhs Value) (Value, error) {
	switch l := lhs.(type) {
	case *StringValue:
		return &StringValue{Value: l.Value + rhs.ToString()}, nil
	case *CharValue:
		return &StringValue{Value: string(l.Value) + rhs.ToString()}, nil
	case *IntegerValue:
		r, err := rhs.ToInteger()
		if err != nil {
			return nil, err
		}
		return &IntegerValue{Value: l.Value + r}, nil
	case *BooleanValue:
		lhsInt, _ := l.ToInteger()
		r, err := rhs.ToInteger()
		if err != nil {
			return nil, err
		}
		return &IntegerValue{Value: lhsInt + r}, nil
	case *DecimalValue:
		r, err := rhs.ToDecimal()
		if err != nil {
			return nil, err
		}
		return &DecimalValue{Value: l.Value + r}, nil
	default:
		return Null, nil
	}
}

// Sub implements `-`.
func Sub(lhs, rhs Value) (Value, error) {
	switch l := lhs.(type) {
	case *IntegerValue:
		r, err := rhs.ToInteger()
		if err != nil {
			return nil, err
		}
		return &IntegerValue{Value: l.Value - r}, nil
	case *BooleanValue:
		lhsInt, _ := l.ToInteger()
		r, err := rhs.ToInteger()
		if err != nil {
			return nil, err
		}
		return &IntegerValue{Value: lhsInt - r}, nil
	case *DecimalValue:
		r, err := rhs.ToDecimal()
		if err != nil {
			return nil, err
		}
		return &DecimalValue{Value: l.Value - r}, nil
	default:
		return Null, nil
	}
}

// Mul implements `*`.
func Mul(lhs, rhs Value) (Value, error) {
	switch l := lhs.(type) {
	case *IntegerValue:
		r, err := rhs.ToInteger()
		if err != nil {
			return nil, err
		}
		return &IntegerValue{Value: l.Value * r}, nil
	case *BooleanValue:
		lhsInt, _ := l.ToInteger()
		r, err := rhs.ToInteger()
		if err != nil {
			return nil, err
		}
		return &IntegerValue{Value: lhsInt * r}, nil
	case *DecimalValue:
		r, err := rhs.ToDecimal()
		if err != nil {
			return nil, err
		}
		return &DecimalValue{Value: l.Value * r}, nil
	default:
		return Null, nil
	}
}

// Div implements `/`. Integer division by zero is reported as an error;
// Decimal division by zero follows IEEE-754 float semantics (±Inf/NaN).
func Div(lhs, rhs Value) (Value, error) {
	switch l := lhs.(type) {
	case *IntegerValue:
		r, err := rhs.ToInteger()
		if err != nil {
			return nil, err
		}
		if r == 0 {
			return nil, fmt.Errorf("integer division by zero")
		}
		return &IntegerValue{Value: l.Value / r}, nil
	case *BooleanValue:
		lhsInt, _ := l.ToInteger()
		r, err := rhs.ToInteger()
		if err != nil {
			return nil, err
		}
		if r == 0 {
			return nil, fmt.Errorf("integer division by zero")
		}
		return &IntegerValue{Value: lhsInt / r}, nil
	case *DecimalValue:
		r, err := rhs.ToDecimal()
		if err != nil {
			return nil, err
		}
		return &DecimalValue{Value: l.Value / r}, nil
	default:
		return Null, nil
	}
}

// Mod implements `%`. Integer modulo by zero is reported as an error;
// Decimal modulo follows the Go equivalent of IEEE-754 fmod.
func Mod(lhs, rhs Value) (Value, error) {
	switch l := lhs.(type) {
	case *IntegerValue:
		r, err := rhs.ToInteger()
		if err != nil {
			return nil, err
		}
		if r == 0 {
			return nil, fmt.Errorf("integer modulo by zero")
		}
		return &IntegerValue{Value: l.Value % r}, nil
	case *DecimalValue:
		r, err := rhs.ToDecimal()
		if err != nil {
			return nil, err
		}
		return &DecimalValue{Value: math.Mod(l.Value, r)}, nil
	case *BooleanValue:
		lhsInt, _ := l.ToInteger()
		r, err := rhs.ToInteger()
		if err != nil {
			return nil, err
		}
		if r == 0 {
			return nil, fmt.Errorf("integer modulo by zero")
		}
		return &IntegerValue{Value: lhsInt % r}, nil
	default:
		return Null, nil
	}
}

// Equal implements `==`, dispatching on the left operand's kind. Kinds
// with no defined equality (Function, NativeFunction, Null, HeapRef)
// always compare unequal, including to themselves.
func Equal(lhs, rhs Value) bool {
	switch l := lhs.(type) {
	case *StringValue:
		return l.Value == rhs.ToString()
	case *IntegerValue:
		r, err := rhs.ToInteger()
		return err == nil && l.Value == r
	case *BooleanValue:
		return l.Value == rhs.ToBoolean()
	case *DecimalValue:
		r, err := rhs.ToDecimal()
		return err == nil && l.Value == r
	case *CharValue:
		r, err := rhs.ToInteger()
		return err == nil && int64(l.Value) == r
	default:
		return false
	}
}

// Compare implements `<`, `<=`, `>`, `>=`. ok is false when the left
// operand's kind defines no ordering, in which case every comparison
// operator evaluates to false (spec §3.3).
func Compare(lhs, rhs Value) (cmp int, ok bool) {
	switch l := lhs.(type) {
	case *StringValue:
		r := rhs.ToString()
		return stringCompare(l.Value, r), true
	case *IntegerValue:
		r, err := rhs.ToInteger()
		if err != nil {
			return 0, false
		}
		return intCompare(l.Value, r), true
	case *BooleanValue:
		r := rhs.ToBoolean()
		return boolCompare(l.Value, r), true
	case *DecimalValue:
		r, err := rhs.ToDecimal()
		if err != nil {
			return 0, false
		}
		if l.Value < r {
			return -1, true
		}
		if l.Value > r {
			return 1, true
		}
		if l.Value == r {
			return 0, true
		}
		return 0, false // NaN on either side: unordered
	case *CharValue:
		r, err := rhs.ToInteger()
		if err != nil {
			return 0, false
		}
		return intCompare(int64(l.Value), r), true
	default:
		return 0, false
	}
}

func stringCompare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func intCompare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a && b:
		return -1
	default:
		return 1
	}
}
