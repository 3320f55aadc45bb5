package value

import (
	"errors"
	"fmt"
)

// errDivideByZero is returned by a Number's own Divide method when it
// detects a zero divisor. internal/eval additionally short-circuits
// ZeroChecker-implementing types before ever calling Divide, so this is
// the fallback path for types that don't implement ZeroChecker but still
// want to refuse a zero divisor themselves.
var errDivideByZero = errors.New("division by zero")

func errInvalidRational(text string) error {
	return fmt.Errorf("invalid rational literal %q", text)
}
