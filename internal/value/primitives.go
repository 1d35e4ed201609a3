package value

import (
	"fmt"
	"strconv"
)

// StringValue is a UTF-8 text value.
type StringValue struct{ Value string }

func (v *StringValue) Kind() Kind       { return KindString }
func (v *StringValue) TypeName() string { return "string" }
func (v *StringValue) ToInteger() (int64, error) {
	n, err := strconv.ParseInt(v.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to integer", v.Value)
	}
	return n, nil
}
func (v *StringValue) ToDecimal() (float64, error) {
	f, err := strconv.ParseFloat(v.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to decimal", v.Value)
	}
	return f, nil
}
func (v *StringValue) ToString() string { return v.Value }
func (v *StringValue) ToBoolean() bool  { return v.Value != "" }
func (v *StringValue) ToChar() rune     { return 0 }

// CharValue is a single Unicode code point, distinct from a one-rune
// String (spec §3.2).
type CharValue struct{ Value rune }

func (v *CharValue) Kind() Kind       { return KindChar }
func (v *CharValue) TypeName() string { return "char" }
func (v *CharValue) ToInteger() (int64, error) { return int64(v.Value), nil }
func (v *CharValue) ToDecimal() (float64, error) { return float64(v.Value), nil }
func (v *CharValue) ToString() string { return string(v.Value) }
func (v *CharValue) ToBoolean() bool  { return v.Value != 0 }
func (v *CharValue) ToChar() rune     { return v.Value }

// IntegerValue is a 64-bit signed integer.
type IntegerValue struct{ Value int64 }

func (v *IntegerValue) Kind() Kind       { return KindInteger }
func (v *IntegerValue) TypeName() string { return "integer" }
func (v *IntegerValue) ToInteger() (int64, error) { return v.Value, nil }
func (v *IntegerValue) ToDecimal() (float64, error) { return float64(v.Value), nil }
func (v *IntegerValue) ToString() string { return strconv.FormatInt(v.Value, 10) }
func (v *IntegerValue) ToBoolean() bool  { return v.Value != 0 }
func (v *IntegerValue) ToChar() rune     { return 0 }

// DecimalValue is a 64-bit float.
type DecimalValue struct{ Value float64 }

func (v *DecimalValue) Kind() Kind       { return KindDecimal }
func (v *DecimalValue) TypeName() string { return "decimal" }
func (v *DecimalValue) ToInteger() (int64, error) { return int64(v.Value), nil }
func (v *DecimalValue) ToDecimal() (float64, error) { return v.Value, nil }
func (v *DecimalValue) ToString() string { return strconv.FormatFloat(v.Value, 'f', -1, 64) }

// ToBoolean is false only for an exact-zero decimal; NaN is truthy.
func (v *DecimalValue) ToBoolean() bool { return v.Value != 0 }
func (v *DecimalValue) ToChar() rune    { return 0 }

// BooleanValue is true/false.
type BooleanValue struct{ Value bool }

func (v *BooleanValue) Kind() Kind       { return KindBoolean }
func (v *BooleanValue) TypeName() string { return "boolean" }
func (v *BooleanValue) ToInteger() (int64, error) {
	if v.Value {
		return 1, nil
	}
	return 0, nil
}
func (v *BooleanValue) ToDecimal() (float64, error) {
	if v.Value {
		return 1, nil
	}
	return 0, nil
}
func (v *BooleanValue) ToString() string {
	if v.Value {
		return "true"
	}
	return "false"
}
func (v *BooleanValue) ToBoolean() bool { return v.Value }
func (v *BooleanValue) ToChar() rune    { return 0 }
