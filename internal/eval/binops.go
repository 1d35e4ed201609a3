package eval

import (
	"github.com/shiroscript/shiro/internal/ast"
	"github.com/shiroscript/shiro/internal/scope"
	"github.com/shiroscript/shiro/internal/token"
	"github.com/shiroscript/shiro/internal/value"
)

func (in *Interp) evalBinaryOp(n *ast.BinaryOp, sc *scope.Scope) (value.Value, error) {
	left, err := in.eval(n.Left, sc)
	if err != nil {
		return nil, err
	}

	// && and || short-circuit after coercing the left side to Boolean
	// (spec §3.3); the right side is only evaluated when it can affect
	// the result.
	switch n.Op {
	case token.AND:
		if !left.ToBoolean() {
			return &value.BooleanValue{Value: false}, nil
		}
		right, err := in.eval(n.Right, sc)
		if err != nil {
			return nil, err
		}
		return &value.BooleanValue{Value: right.ToBoolean()}, nil
	case token.OR:
		if left.ToBoolean() {
			return &value.BooleanValue{Value: true}, nil
		}
		right, err := in.eval(n.Right, sc)
		if err != nil {
			return nil, err
		}
		return &value.BooleanValue{Value: right.ToBoolean()}, nil
	}

	right, err := in.eval(n.Right, sc)
	if err != nil {
		return nil, err
	}
	return applyBinaryOp(n.Op, left, right)
}

func applyBinaryOp(op token.Type, left, right value.Value) (value.Value, error) {
	switch op {
	case token.PLUS:
		return value.Add(left, right)
	case token.MINUS:
		return value.Sub(left, right)
	case token.STAR:
		return value.Mul(left, right)
	case token.SLASH:
		return value.Div(left, right)
	case token.PERCENT:
		return value.Mod(left, right)
	case token.EQ:
		return &value.BooleanValue{Value: value.Equal(left, right)}, nil
	case token.NEQ:
		return &value.BooleanValue{Value: !value.Equal(left, right)}, nil
	case token.LT:
		cmp, ok := value.Compare(left, right)
		return &value.BooleanValue{Value: ok && cmp < 0}, nil
	case token.GT:
		cmp, ok := value.Compare(left, right)
		return &value.BooleanValue{Value: ok && cmp > 0}, nil
	case token.LE:
		cmp, ok := value.Compare(left, right)
		return &value.BooleanValue{Value: ok && cmp <= 0}, nil
	case token.GE:
		cmp, ok := value.Compare(left, right)
		return &value.BooleanValue{Value: ok && cmp >= 0}, nil
	case token.AND:
		return &value.BooleanValue{Value: left.ToBoolean() && right.ToBoolean()}, nil
	case token.OR:
		return &value.BooleanValue{Value: left.ToBoolean() || right.ToBoolean()}, nil
	default:
		return value.Null, nil
	}
}

func (in *Interp) evalUnaryOp(n *ast.UnaryOp, sc *scope.Scope) (value.Value, error) {
	v, err := in.eval(n.Value, sc)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case token.NOT:
		return &value.BooleanValue{Value: !v.ToBoolean()}, nil
	default:
		return value.Null, nil
	}
}

var compoundAssignOp = map[token.Type]token.Type{
	token.PLUSEQ:    token.PLUS,
	token.MINUSEQ:   token.MINUS,
	token.STAREQ:    token.STAR,
	token.SLASHEQ:   token.SLASH,
	token.PERCENTEQ: token.PERCENT,
}

// evalAssignOp implements spec §4.3's AssignOp handling: `=` simply
// stores the evaluated rhs; every compound operator reads the current
// target value, combines it with rhs via the matching binary operator,
// and writes the result back — in both cases the stored value is also
// the expression's own result.
func (in *Interp) evalAssignOp(n *ast.AssignOp, sc *scope.Scope) (value.Value, error) {
	path, err := in.refPath(n.Target, sc)
	if err != nil {
		return nil, err
	}

	rhs, err := in.eval(n.Value, sc)
	if err != nil {
		return nil, err
	}

	var result value.Value
	if n.Op == token.ASSIGN {
		result = rhs
	} else {
		current, err := in.getValue(path, sc)
		if err != nil {
			return nil, err
		}
		result, err = applyBinaryOp(compoundAssignOp[n.Op], current, rhs)
		if err != nil {
			return nil, err
		}
	}

	if err := in.setValue(path, result, sc); err != nil {
		return nil, err
	}
	return result, nil
}
