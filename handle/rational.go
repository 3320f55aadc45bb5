package handle

import "github.com/bpmn-os/limex/value"

// NewDefaultRational is a ready-made handle for the generic
// collection-element configuration's reference type, value.Rational.
// Because Rational implements neither value.IntCaster nor value.Realer,
// this handle exercises two of §9's documented fallbacks end to end: the
// `index` node falls back to the handle's `at` built-in (no direct
// integer cast is possible), and pow/sqrt/cbrt report an error
// until a caller registers its own (no implicit float conversion exists
// for an exact fraction). `at` is registered with the same always-erroring
// default as the scalar configuration; Handle.Add rejects a name that is
// already registered, so a caller with its own rational indexing
// convention passes it to NewDefault instead.
func NewDefaultRational() *Handle[value.Rational] {
	return NewDefault(func(f float64) value.Rational {
		// float64 literals only ever arrive here as the small integers
		// handle.NewDefault itself needs (0, 1, and count()'s lengths),
		// so an exact denominator of 1 is always correct.
		return value.NewRational(int64(f), 1)
	}, nil)
}
