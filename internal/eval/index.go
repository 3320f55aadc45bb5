package eval

import (
	"fmt"

	"github.com/bpmn-os/limex/handle"
	"github.com/bpmn-os/limex/internal/ast"
	"github.com/bpmn-os/limex/value"
)

// evalIndex implements the `index` node's two-tier resolution (spec
// §4.4): when the index value implements value.IntCaster, it is cast to a
// 1-based position and bounds-checked directly. When it does not - a
// numeric type with no meaningful integer cast, such as an exact fraction
// - resolution is handed to the handle's `at` built-in instead, passing
// the index value followed by every collection element; a caller using
// such a type is expected to have registered its own `at` semantics,
// since there is no type-agnostic way to turn a non-castable value into a
// position.
func evalIndex[V value.Number[V]](n *ast.Node[V], env *Env[V]) (V, error) {
	var zero V
	coll, err := evalCollectionLike(n.Children[0], env)
	if err != nil {
		return zero, err
	}
	idxVal, err := Evaluate(n.Children[1], env)
	if err != nil {
		return zero, err
	}

	if caster, ok := any(idxVal).(value.IntCaster); ok {
		i, ok := caster.Int()
		if !ok {
			return zero, fmt.Errorf("eval error: index value %v is not an integer", idxVal)
		}
		if i < 1 || i > len(coll) {
			return zero, fmt.Errorf("eval error: collection index %d out of range (1..%d)", i, len(coll))
		}
		return coll[i-1], nil
	}

	args := append([]V{idxVal}, coll...)
	return env.Handle.Call(handle.IdxAt, args)
}
