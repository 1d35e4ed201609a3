package heap

import (
	"reflect"
	"testing"

	"github.com/shiroscript/shiro/internal/value"
)

func TestKeysReturnsInsertionOrder(t *testing.T) {
	h := New()
	ref := h.AllocObject().(*value.HeapRefValue)
	agg, err := h.Deref(ref.Addr)
	if err != nil {
		t.Fatal(err)
	}

	order := []string{"z", "a", "m", "b"}
	for _, k := range order {
		if err := agg.TryInsert(k, &value.IntegerValue{Value: 1}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := agg.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, order) {
		t.Errorf("Keys() = %v, want insertion order %v", got, order)
	}
}

func TestKeysDoesNotDuplicateOnOverwrite(t *testing.T) {
	h := New()
	ref := h.AllocObject().(*value.HeapRefValue)
	agg, _ := h.Deref(ref.Addr)

	agg.Put(&value.StringValue{Value: "a"}, &value.IntegerValue{Value: 1})
	agg.Put(&value.StringValue{Value: "a"}, &value.IntegerValue{Value: 2})

	got, err := agg.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("overwriting an existing key should not grow keyOrder, got %v", got)
	}
}

func TestArrayGrowsByExactlyOnePastEnd(t *testing.T) {
	h := New()
	ref := h.AllocArray().(*value.HeapRefValue)
	agg, _ := h.Deref(ref.Addr)

	if err := agg.Put(&value.IntegerValue{Value: 0}, &value.IntegerValue{Value: 10}); err != nil {
		t.Fatal(err)
	}
	if err := agg.Put(&value.IntegerValue{Value: 5}, &value.IntegerValue{Value: 99}); err == nil {
		t.Error("writing far past the end of an array should be a runtime error")
	}
}

func TestGetOnMissingKeyOrOutOfRangeIndexIsNullNotError(t *testing.T) {
	h := New()
	objRef := h.AllocObject().(*value.HeapRefValue)
	obj, _ := h.Deref(objRef.Addr)
	if got := obj.Get(&value.StringValue{Value: "missing"}); got != value.Null {
		t.Errorf("missing object key should read as Null, got %v", got)
	}

	arrRef := h.AllocArray().(*value.HeapRefValue)
	arr, _ := h.Deref(arrRef.Addr)
	if got := arr.Get(&value.IntegerValue{Value: 3}); got != value.Null {
		t.Errorf("out-of-range array index should read as Null, got %v", got)
	}
}

func TestGCReclaimsUnreachableAndKeepsReachable(t *testing.T) {
	h := New()
	kept := h.AllocObject().(*value.HeapRefValue)
	discarded := h.AllocArray().(*value.HeapRefValue)

	h.GC([]value.Value{kept})

	if _, err := h.Deref(kept.Addr); err != nil {
		t.Errorf("reachable object should survive GC: %v", err)
	}
	if _, err := h.Deref(discarded.Addr); err == nil {
		t.Error("unreachable array should be collected")
	}
}

func TestGCFollowsNestedAggregatesAndClosures(t *testing.T) {
	h := New()
	outer := h.AllocObject().(*value.HeapRefValue)
	outerAgg, _ := h.Deref(outer.Addr)

	inner := h.AllocArray().(*value.HeapRefValue)
	if err := outerAgg.TryInsert("child", inner); err != nil {
		t.Fatal(err)
	}

	h.GC([]value.Value{outer})

	if _, err := h.Deref(inner.Addr); err != nil {
		t.Errorf("nested aggregate reachable through its parent should survive GC: %v", err)
	}
}
