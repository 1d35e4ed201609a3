package value

import (
	"math"
	"testing"
)

func TestAddDispatchesOnLeftOperand(t *testing.T) {
	cases := []struct {
		name     string
		lhs, rhs Value
		want     Value
	}{
		{"string concat coerces rhs", &StringValue{Value: "x="}, &IntegerValue{Value: 7}, &StringValue{Value: "x=7"}},
		{"char concat", &CharValue{Value: 'a'}, &StringValue{Value: "b"}, &StringValue{Value: "ab"}},
		{"integer add", &IntegerValue{Value: 2}, &IntegerValue{Value: 3}, &IntegerValue{Value: 5}},
		{"boolean add yields integer", &BooleanValue{Value: true}, &BooleanValue{Value: true}, &IntegerValue{Value: 2}},
		{"decimal add", &DecimalValue{Value: 1.5}, &DecimalValue{Value: 2.5}, &DecimalValue{Value: 4}},
		{"null left yields null", Null, &IntegerValue{Value: 1}, Null},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Add(c.lhs, c.rhs)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ToString() != c.want.ToString() || got.Kind() != c.want.Kind() {
				t.Errorf("Add(%v, %v) = %v, want %v", c.lhs, c.rhs, got, c.want)
			}
		})
	}
}

func TestDivIntegerByZeroErrors(t *testing.T) {
	_, err := Div(&IntegerValue{Value: 1}, &IntegerValue{Value: 0})
	if err == nil {
		t.Fatal("expected an error for integer division by zero")
	}
}

func TestDivDecimalByZeroIsInfNotError(t *testing.T) {
	got, err := Div(&DecimalValue{Value: 1}, &DecimalValue{Value: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, ok := got.(*DecimalValue)
	if !ok {
		t.Fatalf("expected a DecimalValue, got %T", got)
	}
	if !math.IsInf(d.Value, 1) {
		t.Errorf("expected +Inf, got %v", d.Value)
	}
}

func TestModIntegerByZeroErrors(t *testing.T) {
	_, err := Mod(&IntegerValue{Value: 5}, &IntegerValue{Value: 0})
	if err == nil {
		t.Fatal("expected an error for integer modulo by zero")
	}
}

func TestCompareUnorderedKindsAreNotOk(t *testing.T) {
	_, ok := Compare(Null, &IntegerValue{Value: 1})
	if ok {
		t.Error("Null has no defined ordering; Compare should report ok=false")
	}
}

func TestEqualityHasNoIdentityForHeapRefsOrNull(t *testing.T) {
	if Equal(Null, Null) {
		t.Error("Null should never compare equal, even to itself (spec §3.3)")
	}
	a := &HeapRefValue{Addr: 1}
	if Equal(a, a) {
		t.Error("HeapRef has no identity equality in this language")
	}
}

func TestStringCoercionFailureIsAnError(t *testing.T) {
	s := &StringValue{Value: "not a number"}
	if _, err := s.ToInteger(); err == nil {
		t.Error("expected an error converting a non-numeric string to integer")
	}
	if _, err := s.ToDecimal(); err == nil {
		t.Error("expected an error converting a non-numeric string to decimal")
	}
}

func TestDecimalNaNIsTruthy(t *testing.T) {
	nan, err := Div(&DecimalValue{Value: 0}, &DecimalValue{Value: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !nan.ToBoolean() {
		t.Error("NaN should coerce truthy; only an exact-zero decimal is false")
	}
}
