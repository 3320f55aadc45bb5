package handle

import (
	"fmt"
	"math"

	"github.com/bpmn-os/limex/value"
)

// Built-in callable indices, in registration order. internal/eval
// addresses IdxIfThenElse, IdxPow, IdxElementOf, IdxNotElementOf and IdxAt
// positionally rather than by name lookup, since every Handle produced by
// NewDefault carries them at these fixed slots (spec §3: "the first
// BUILTINS positions are reserved").
const (
	IdxIfThenElse = iota
	IdxNAryIf
	IdxAbs
	IdxPow
	IdxSqrt
	IdxCbrt
	IdxSum
	IdxAvg
	IdxCount
	IdxMin
	IdxMax
	IdxElementOf
	IdxNotElementOf
	IdxAt

	BuiltinCount
)

// NewDefault builds a Handle seeded with LIMEX's fourteen built-in
// callables (spec §4.5). factory constructs a V from a float64 literal -
// it is how `count`, `avg`, and the membership built-ins produce their
// boolean/integer results without Number needing a bare constructor
// of its own. If V also implements value.Realer, pow/sqrt/cbrt are wired
// through math.Pow/Sqrt/Cbrt via a factory round-trip; otherwise those
// three report an error (Handle.Add rejects a name that is already
// registered, so they cannot be replaced on the returned handle). at is
// the callable backing the `at` built-in;
// pass nil for the scalar configuration, where `at` must not be called.
func NewDefault[V value.Number[V]](factory func(float64) V, at Callable[V]) *Handle[V] {
	h := New[V]()
	one := factory(1)
	zero := factory(0)

	h.MustAdd("if_then_else", func(args []V) (V, error) {
		if err := arity("if_then_else", args, 3); err != nil {
			return zero, err
		}
		if args[0].Truthy() {
			return args[1], nil
		}
		return args[2], nil
	})

	h.MustAdd("n_ary_if", func(args []V) (V, error) {
		if len(args) < 1 || len(args)%2 == 0 {
			return zero, fmt.Errorf("n_ary_if: expected an odd number of arguments (cond, val, ..., default), got %d", len(args))
		}
		for i := 0; i+1 < len(args); i += 2 {
			if args[i].Truthy() {
				return args[i+1], nil
			}
		}
		return args[len(args)-1], nil
	})

	h.MustAdd("abs", func(args []V) (V, error) {
		if err := arity("abs", args, 1); err != nil {
			return zero, err
		}
		x := args[0]
		if x.Less(x.Subtract(x)).Truthy() {
			return x.Negate(), nil
		}
		return x, nil
	})

	h.MustAdd("pow", realBinary[V]("pow", factory, math.Pow))
	h.MustAdd("sqrt", realUnary[V]("sqrt", factory, math.Sqrt))
	h.MustAdd("cbrt", realUnary[V]("cbrt", factory, math.Cbrt))

	h.MustAdd("sum", func(args []V) (V, error) {
		if len(args) == 0 {
			return zero, nil
		}
		acc := args[0]
		for _, v := range args[1:] {
			acc = acc.Add(v)
		}
		return acc, nil
	})

	h.MustAdd("avg", func(args []V) (V, error) {
		if len(args) == 0 {
			return zero, fmt.Errorf("avg: empty collection")
		}
		acc := args[0]
		for _, v := range args[1:] {
			acc = acc.Add(v)
		}
		return acc.Divide(factory(float64(len(args))))
	})

	h.MustAdd("count", func(args []V) (V, error) {
		return factory(float64(len(args))), nil
	})

	h.MustAdd("min", func(args []V) (V, error) {
		if len(args) == 0 {
			return zero, fmt.Errorf("min: empty collection")
		}
		best := args[0]
		for _, v := range args[1:] {
			if v.Less(best).Truthy() {
				best = v
			}
		}
		return best, nil
	})

	h.MustAdd("max", func(args []V) (V, error) {
		if len(args) == 0 {
			return zero, fmt.Errorf("max: empty collection")
		}
		best := args[0]
		for _, v := range args[1:] {
			if v.Greater(best).Truthy() {
				best = v
			}
		}
		return best, nil
	})

	// element_of / not_element_of: args[0] is the needle, args[1:] the
	// haystack. An empty haystack resolves the open question of spec §9
	// in the mathematically conventional direction: membership in the
	// empty set is always false.
	h.MustAdd("element_of", func(args []V) (V, error) {
		if len(args) < 1 {
			return zero, fmt.Errorf("element_of: missing needle argument")
		}
		needle := args[0]
		for _, v := range args[1:] {
			if needle.Equal(v).Truthy() {
				return one, nil
			}
		}
		return zero, nil
	})

	h.MustAdd("not_element_of", func(args []V) (V, error) {
		if len(args) < 1 {
			return zero, fmt.Errorf("not_element_of: missing needle argument")
		}
		needle := args[0]
		for _, v := range args[1:] {
			if needle.Equal(v).Truthy() {
				return zero, nil
			}
		}
		return one, nil
	})

	if at == nil {
		at = func(args []V) (V, error) {
			return zero, fmt.Errorf("at: no custom indexing is registered for this numeric type")
		}
	}
	h.MustAdd("at", at)

	return h
}

func arity[V any](name string, args []V, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s: expected %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

// realUnary and realBinary build a built-in that requires V to implement
// value.Realer, round-tripping through float64 via fn and back through
// factory. If V does not implement value.Realer, the returned callable
// always reports an error instead of panicking.
func realUnary[V value.Number[V]](name string, factory func(float64) V, fn func(float64) float64) Callable[V] {
	return func(args []V) (V, error) {
		var zero V
		if err := arity(name, args, 1); err != nil {
			return zero, err
		}
		r, ok := any(args[0]).(value.Realer)
		if !ok {
			return zero, fmt.Errorf("%s: not supported for this numeric type", name)
		}
		f, ok := r.Float()
		if !ok {
			return zero, fmt.Errorf("%s: value has no real representation", name)
		}
		return factory(fn(f)), nil
	}
}

func realBinary[V value.Number[V]](name string, factory func(float64) V, fn func(float64, float64) float64) Callable[V] {
	return func(args []V) (V, error) {
		var zero V
		if err := arity(name, args, 2); err != nil {
			return zero, err
		}
		a, aok := any(args[0]).(value.Realer)
		b, bok := any(args[1]).(value.Realer)
		if !aok || !bok {
			return zero, fmt.Errorf("%s: not supported for this numeric type", name)
		}
		af, aok := a.Float()
		bf, bok := b.Float()
		if !aok || !bok {
			return zero, fmt.Errorf("%s: value has no real representation", name)
		}
		return factory(fn(af, bf)), nil
	}
}
