package eval

import (
	"github.com/shiroscript/shiro/internal/ast"
	"github.com/shiroscript/shiro/internal/scope"
	"github.com/shiroscript/shiro/internal/value"
)

// evalIf runs the first branch whose condition is absent or truthy,
// each in its own fresh child scope, and returns that branch's block
// value. If nothing matches, the result is Null (spec §4.3).
func (in *Interp) evalIf(n *ast.If, sc *scope.Scope) (value.Value, error) {
	for _, branch := range n.Branches {
		branchScope := sc.NewChild()
		if branch.Condition == nil {
			return in.EvalBlock(branch.Body, branchScope)
		}
		cond, err := in.eval(branch.Condition, branchScope)
		if err != nil {
			return nil, err
		}
		if cond.ToBoolean() {
			return in.EvalBlock(branch.Body, branchScope)
		}
	}
	return value.Null, nil
}

// evalWhile loops Body in a single fresh child scope shared across
// every iteration, re-testing Cond before each pass. The loop's own
// result is always Null (spec §4.3).
func (in *Interp) evalWhile(n *ast.While, sc *scope.Scope) (value.Value, error) {
	loopScope := sc.NewChild()
	for {
		cond, err := in.eval(n.Cond, loopScope)
		if err != nil {
			return nil, err
		}
		if !cond.ToBoolean() {
			return value.Null, nil
		}
		if _, err := in.EvalBlock(n.Body, loopScope); err != nil {
			return nil, err
		}
	}
}

// evalFor creates one fresh child scope for the whole loop (so Init's
// bindings are visible to Cond, Body, and Step across every iteration),
// runs Init once, then alternates Body and Step while Cond is truthy.
func (in *Interp) evalFor(n *ast.For, sc *scope.Scope) (value.Value, error) {
	loopScope := sc.NewChild()
	if _, err := in.eval(n.Init, loopScope); err != nil {
		return nil, err
	}
	for {
		cond, err := in.eval(n.Cond, loopScope)
		if err != nil {
			return nil, err
		}
		if !cond.ToBoolean() {
			return value.Null, nil
		}
		if _, err := in.EvalBlock(n.Body, loopScope); err != nil {
			return nil, err
		}
		if _, err := in.eval(n.Step, loopScope); err != nil {
			return nil, err
		}
	}
}
