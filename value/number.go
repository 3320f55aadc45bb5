// Package value defines the numeric contract LIMEX expressions are
// evaluated over, plus two reference implementations: Float64, the plain
// arithmetic type used by the scalar / single-valued configuration, and
// Rational, an exact fraction type used by the generic collection-element
// configuration. LIMEX's core never performs arithmetic itself - every
// operator in internal/eval delegates to one of these methods, so a
// caller's own Number implementation is a first-class citizen, not a
// special case.
package value

// Number is the operation set LIMEX's evaluator needs from a scalar type.
// V is the implementing type itself (Go's usual self-referential generic
// constraint shape), so method signatures read naturally: a.Add(b) returns
// another V, never a boxed interface.
type Number[V any] interface {
	Add(V) V
	Subtract(V) V
	Multiply(V) V
	Divide(V) (V, error)
	Negate() V
	Not() V
	And(V) V
	Or(V) V
	Less(V) V
	LessOrEqual(V) V
	Greater(V) V
	GreaterOrEqual(V) V
	Equal(V) V
	NotEqual(V) V
	Truthy() bool
	String() string
}

// ZeroChecker is implemented by plain arithmetic Number types. Its
// presence is exactly the evaluator's test for "the numeric type is a
// plain arithmetic type" before a divide node's zero-divisor check.
type ZeroChecker interface {
	IsZero() bool
}

// IntCaster is implemented by Number types that can be losslessly cast to
// a 1-based collection index. Its absence routes the `index` node through
// the handle's `at` built-in instead of a direct bounds-checked lookup.
type IntCaster interface {
	Int() (int, bool)
}

// Realer is implemented by Number types with a meaningful conversion
// to/from float64. Its presence lets handle.NewDefault wire real
// pow/sqrt/cbrt built-ins; its absence means those three built-ins report
// an error until the caller registers its own.
type Realer interface {
	Float() (float64, bool)
}
