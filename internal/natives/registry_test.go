package natives

import (
	"testing"

	"github.com/shiroscript/shiro/internal/heap"
	"github.com/shiroscript/shiro/internal/value"
)

func TestIsNativePathRequiresAtPrefix(t *testing.T) {
	if !IsNativePath("@std/math") {
		t.Error("@std/math should be a native path")
	}
	if IsNativePath("./lib.shiro") {
		t.Error("a relative source path is not a native path")
	}
	if IsNativePath("lib.shiro") {
		t.Error("a bare source path is not a native path")
	}
}

func TestHasReportsRegisteredPathsOnly(t *testing.T) {
	r := NewRegistry()
	r.Register("@std/math", func(obj *heap.Aggregate) {})

	if !r.Has("@std/math") {
		t.Error("expected Has to report a registered library path")
	}
	if r.Has("@std/nope") {
		t.Error("an unregistered @-prefixed path is not recognized as native")
	}
	if r.Has("./lib.shiro") {
		t.Error("a source module path is never recognized as native")
	}
}

func TestLoadUnknownLibraryIsAnError(t *testing.T) {
	r := NewRegistry()
	h := heap.New()
	if _, err := r.Load("@std/nope", h); err == nil {
		t.Error("expected an error loading an unregistered library path")
	}
}

func TestLoadRunsFactoryAgainstFreshObject(t *testing.T) {
	r := NewRegistry()
	r.Register("@std/answer", func(obj *heap.Aggregate) {
		obj.Put(&value.StringValue{Value: "n"}, &value.IntegerValue{Value: 42})
	})
	h := heap.New()

	ref, err := r.Load("@std/answer", h)
	if err != nil {
		t.Fatal(err)
	}
	heapRef, ok := ref.(*value.HeapRefValue)
	if !ok {
		t.Fatalf("expected a HeapRefValue, got %T", ref)
	}
	agg, err := h.Deref(heapRef.Addr)
	if err != nil {
		t.Fatal(err)
	}
	got := agg.Get(&value.StringValue{Value: "n"})
	if got.ToString() != "42" {
		t.Errorf("got %v, want 42", got.ToString())
	}
}

func TestLoadIsNeverCachedAcrossCalls(t *testing.T) {
	calls := 0
	r := NewRegistry()
	r.Register("@std/counter", func(obj *heap.Aggregate) {
		calls++
		obj.Put(&value.StringValue{Value: "calls"}, &value.IntegerValue{Value: int64(calls)})
	})
	h := heap.New()

	first, _ := r.Load("@std/counter", h)
	second, _ := r.Load("@std/counter", h)

	firstRef := first.(*value.HeapRefValue)
	secondRef := second.(*value.HeapRefValue)
	if firstRef.Addr == secondRef.Addr {
		t.Error("every Load should allocate a fresh object, not reuse a cached one")
	}
	if calls != 2 {
		t.Errorf("factory should run once per Load call, ran %d times", calls)
	}
}
