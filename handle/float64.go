package handle

import "github.com/bpmn-os/limex/value"

// NewDefaultFloat64 is the scalar / single-valued configuration's default
// handle: all fourteen built-ins over value.Float64, with `at` wired to
// always error - value.Float64 implements value.IntCaster, so the `index`
// node always takes the direct bounds-checked lookup and `at` is never
// reached.
func NewDefaultFloat64() *Handle[value.Float64] {
	return NewDefault(func(f float64) value.Float64 { return value.Float64(f) }, nil)
}
