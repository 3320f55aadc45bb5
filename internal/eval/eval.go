// Package eval implements LIMEX's recursive evaluator: one function that
// switches on ast.Node.Kind and applies the exact per-kind semantics of
// spec §4.4, delegating every actual arithmetic/logical/relational
// operation to the Number[V] value itself. The evaluator never branches
// on what concrete type V is - it only ever calls V's own methods, type
// asserts for the optional value.ZeroChecker/value.IntCaster interfaces,
// or calls through the Handle for anything resembling a function.
package eval

import (
	"fmt"

	"github.com/bpmn-os/limex/handle"
	"github.com/bpmn-os/limex/internal/ast"
	"github.com/bpmn-os/limex/value"
)

// Env is everything Evaluate needs besides the node itself: the current
// variable/collection bindings and the handle to dispatch calls through.
type Env[V value.Number[V]] struct {
	Vars        []V
	Collections [][]V
	Handle      *handle.Handle[V]
}

// Evaluate walks n and returns its value under env.
func Evaluate[V value.Number[V]](n *ast.Node[V], env *Env[V]) (V, error) {
	var zero V
	switch n.Kind {
	case ast.KindLiteral:
		return n.Value, nil

	case ast.KindVariable:
		if n.Index < 0 || n.Index >= len(env.Vars) {
			return zero, fmt.Errorf("eval error: variable index %d out of range (have %d)", n.Index, len(env.Vars))
		}
		return env.Vars[n.Index], nil

	case ast.KindCollection:
		return zero, fmt.Errorf("eval error: collection %q cannot be evaluated as a scalar", "")

	case ast.KindGroup:
		return Evaluate(n.Children[0], env)

	case ast.KindSet, ast.KindSequence:
		return zero, fmt.Errorf("eval error: a %s literal cannot be evaluated as a scalar", n.Kind)

	case ast.KindFunctionCall, ast.KindAggregation:
		args, err := evalArgs(n.Children, env)
		if err != nil {
			return zero, err
		}
		return env.Handle.Call(n.Index, args)

	case ast.KindIndex:
		return evalIndex(n, env)

	case ast.KindNegate:
		v, err := Evaluate(n.Children[0], env)
		if err != nil {
			return zero, err
		}
		return v.Negate(), nil

	case ast.KindLogicalNot:
		v, err := Evaluate(n.Children[0], env)
		if err != nil {
			return zero, err
		}
		return v.Not(), nil

	case ast.KindSquare:
		v, err := Evaluate(n.Children[0], env)
		if err != nil {
			return zero, err
		}
		return v.Multiply(v), nil

	case ast.KindCube:
		v, err := Evaluate(n.Children[0], env)
		if err != nil {
			return zero, err
		}
		return v.Multiply(v).Multiply(v), nil

	case ast.KindAdd, ast.KindSubtract, ast.KindMultiply, ast.KindDivide, ast.KindExponentiate,
		ast.KindLogicalAnd, ast.KindLogicalOr,
		ast.KindLessThan, ast.KindLessOrEqual, ast.KindGreaterThan, ast.KindGreaterOrEqual,
		ast.KindEqualTo, ast.KindNotEqualTo:
		return evalBinary(n, env)

	case ast.KindElementOf, ast.KindNotElementOf:
		return evalMembership(n, env)

	case ast.KindIfThenElse:
		return evalIfThenElse(n, env)

	case ast.KindAssign, ast.KindAddAssign, ast.KindSubtractAssign, ast.KindMultiplyAssign, ast.KindDivideAssign:
		return evalAssign(n, env)
	}

	return zero, fmt.Errorf("eval error: unhandled node kind %v", n.Kind)
}

func evalBinary[V value.Number[V]](n *ast.Node[V], env *Env[V]) (V, error) {
	var zero V
	left, err := Evaluate(n.Children[0], env)
	if err != nil {
		return zero, err
	}
	right, err := Evaluate(n.Children[1], env)
	if err != nil {
		return zero, err
	}
	switch n.Kind {
	case ast.KindAdd:
		return left.Add(right), nil
	case ast.KindSubtract:
		return left.Subtract(right), nil
	case ast.KindMultiply:
		return left.Multiply(right), nil
	case ast.KindDivide:
		return divide(left, right)
	case ast.KindExponentiate:
		return env.Handle.Call(handle.IdxPow, []V{left, right})
	case ast.KindLogicalAnd:
		return left.And(right), nil
	case ast.KindLogicalOr:
		return left.Or(right), nil
	case ast.KindLessThan:
		return left.Less(right), nil
	case ast.KindLessOrEqual:
		return left.LessOrEqual(right), nil
	case ast.KindGreaterThan:
		return left.Greater(right), nil
	case ast.KindGreaterOrEqual:
		return left.GreaterOrEqual(right), nil
	case ast.KindEqualTo:
		return left.Equal(right), nil
	case ast.KindNotEqualTo:
		return left.NotEqual(right), nil
	}
	return zero, fmt.Errorf("eval error: unhandled binary kind %v", n.Kind)
}

// divide performs the division node's zero-divisor check of spec §4.4:
// when the numeric type is a plain arithmetic type (it implements
// value.ZeroChecker) and the divisor is zero, this fails here rather than
// delegating to the type's own Divide.
func divide[V value.Number[V]](left, right V) (V, error) {
	var zero V
	if zc, ok := any(right).(value.ZeroChecker); ok && zc.IsZero() {
		return zero, fmt.Errorf("eval error: division by zero")
	}
	return left.Divide(right)
}

func evalIfThenElse[V value.Number[V]](n *ast.Node[V], env *Env[V]) (V, error) {
	var zero V
	cond, err := Evaluate(n.Children[0], env)
	if err != nil {
		return zero, err
	}
	thenVal, err := Evaluate(n.Children[1], env)
	if err != nil {
		return zero, err
	}
	elseVal, err := Evaluate(n.Children[2], env)
	if err != nil {
		return zero, err
	}
	// Both branches are evaluated eagerly and unconditionally before the
	// handle's if_then_else built-in picks one (spec §9): a division by
	// zero in the branch that is never "taken" still fails the whole
	// expression. This is documented behavior, not a bug.
	return env.Handle.Call(handle.IdxIfThenElse, []V{cond, thenVal, elseVal})
}

// evalAssign evaluates an assignment node and returns the value to store;
// it never writes back into env.Vars itself (spec §4.4: "the store is the
// caller's responsibility"). A plain ':=' has a single RHS child and
// simply evaluates it; the compound forms keep the pre-assignment LHS
// read as their first child and combine it with the RHS.
func evalAssign[V value.Number[V]](n *ast.Node[V], env *Env[V]) (V, error) {
	var zero V
	if n.Kind == ast.KindAssign {
		return Evaluate(n.Children[0], env)
	}

	left, err := Evaluate(n.Children[0], env)
	if err != nil {
		return zero, err
	}
	right, err := Evaluate(n.Children[1], env)
	if err != nil {
		return zero, err
	}
	switch n.Kind {
	case ast.KindAddAssign:
		return left.Add(right), nil
	case ast.KindSubtractAssign:
		return left.Subtract(right), nil
	case ast.KindMultiplyAssign:
		return left.Multiply(right), nil
	case ast.KindDivideAssign:
		return divide(left, right)
	}
	return zero, fmt.Errorf("eval error: unhandled assignment kind %v", n.Kind)
}

func evalMembership[V value.Number[V]](n *ast.Node[V], env *Env[V]) (V, error) {
	var zero V
	needle, err := Evaluate(n.Children[0], env)
	if err != nil {
		return zero, err
	}
	haystack, err := evalCollectionLike(n.Children[1], env)
	if err != nil {
		return zero, err
	}
	idx := handle.IdxElementOf
	if n.Kind == ast.KindNotElementOf {
		idx = handle.IdxNotElementOf
	}
	args := append([]V{needle}, haystack...)
	return env.Handle.Call(idx, args)
}

// evalArgs evaluates a function_call/aggregation node's argument list. The
// collection fast path of spec §4.4 only applies when there is exactly one
// operand and it is a bare collection/set/sequence: `sum{collection[]}`
// sees every element as its own argument, but `f(a[], b)` is a fatal
// evaluate error rather than a silent flatten of `a` into the argument list.
func evalArgs[V value.Number[V]](children []*ast.Node[V], env *Env[V]) ([]V, error) {
	if len(children) == 1 {
		return evalCollectionLike(children[0], env)
	}
	args := make([]V, 0, len(children))
	for _, c := range children {
		v, err := Evaluate(c, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

// evalCollectionLike evaluates n as a slice of values: collections, sets
// and sequences expand to their elements; any other node evaluates to a
// single-element slice.
func evalCollectionLike[V value.Number[V]](n *ast.Node[V], env *Env[V]) ([]V, error) {
	switch n.Kind {
	case ast.KindCollection:
		if n.Index < 0 || n.Index >= len(env.Collections) {
			return nil, fmt.Errorf("eval error: collection index %d out of range (have %d)", n.Index, len(env.Collections))
		}
		return env.Collections[n.Index], nil
	case ast.KindSet, ast.KindSequence:
		out := make([]V, 0, len(n.Children))
		for _, c := range n.Children {
			v, err := Evaluate(c, env)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	default:
		v, err := Evaluate(n, env)
		if err != nil {
			return nil, err
		}
		return []V{v}, nil
	}
}
