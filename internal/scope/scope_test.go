package scope

import (
	"testing"

	"github.com/shiroscript/shiro/internal/value"
)

func TestLetAlwaysDefinesInCurrentFrame(t *testing.T) {
	parent := New()
	parent.Put("x", &value.IntegerValue{Value: 1}, true)

	child := parent.NewChild()
	child.Put("x", &value.IntegerValue{Value: 2}, true)

	if got := child.Get("x"); got.ToString() != "2" {
		t.Errorf("child shadowing: got %v, want 2", got.ToString())
	}
	if got := parent.Get("x"); got.ToString() != "1" {
		t.Errorf("parent should be unaffected by child's let: got %v, want 1", got.ToString())
	}
}

func TestAssignCascadesToNearestExistingFrame(t *testing.T) {
	root := New()
	root.Put("x", &value.IntegerValue{Value: 1}, true)

	child := root.NewChild()
	child.Put("x", &value.IntegerValue{Value: 99}, false) // assignment, not let

	if got := root.Get("x"); got.ToString() != "99" {
		t.Errorf("assignment should mutate the nearest existing frame: got %v, want 99", got.ToString())
	}
}

func TestAssignToUndefinedNameFallsBackToDefiningInCurrentFrame(t *testing.T) {
	root := New()
	child := root.NewChild()

	child.Put("never_declared", &value.IntegerValue{Value: 5}, false)

	if got := child.Get("never_declared"); got.ToString() != "5" {
		t.Errorf("assignment to an undefined name should fall back to defining it, got %v", got.ToString())
	}
	if got := root.Get("never_declared"); got != value.Null {
		t.Errorf("the fallback definition belongs to the assigning frame, not its parent: got %v", got.ToString())
	}
}

func TestGetOnMissingBindingIsNullNotError(t *testing.T) {
	s := New()
	if got := s.Get("nope"); got != value.Null {
		t.Errorf("undefined read should be Null, got %v", got)
	}
}

func TestScopeImplementsValueScopeRef(t *testing.T) {
	root := New()
	root.Put("a", &value.IntegerValue{Value: 1}, true)
	child := root.NewChild()

	var ref value.ScopeRef = child
	if _, ok := ref.Parent(); !ok {
		t.Error("child scope should report a parent")
	}
	if _, ok := root.Parent(); ok {
		t.Error("root scope should report no parent")
	}
}
