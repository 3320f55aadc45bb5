package value

import (
	"math/big"
)

// Rational is an exact p/q fraction, the reference Number implementation
// for the generic collection-element configuration of spec §1/§9: it
// deliberately does not implement IntCaster (a fraction is not generally
// an integer, so `index` falls back to the handle's `at` built-in) nor
// Realer (no implicit lossy float conversion), so wiring it through
// handle.NewDefault exercises exactly the code paths a "numeric type that
// is not a plain arithmetic type" is supposed to take.
type Rational struct {
	r *big.Rat
}

// NewRational builds an exact p/q value.
func NewRational(p, q int64) Rational {
	return Rational{r: big.NewRat(p, q)}
}

func ratOf(n int64) Rational { return NewRational(n, 1) }

func (r Rational) rat() *big.Rat {
	if r.r == nil {
		return big.NewRat(0, 1)
	}
	return r.r
}

func (r Rational) Add(o Rational) Rational {
	return Rational{r: new(big.Rat).Add(r.rat(), o.rat())}
}

func (r Rational) Subtract(o Rational) Rational {
	return Rational{r: new(big.Rat).Sub(r.rat(), o.rat())}
}

func (r Rational) Multiply(o Rational) Rational {
	return Rational{r: new(big.Rat).Mul(r.rat(), o.rat())}
}

func (r Rational) Divide(o Rational) (Rational, error) {
	if o.IsZero() {
		return Rational{}, errDivideByZero
	}
	return Rational{r: new(big.Rat).Quo(r.rat(), o.rat())}, nil
}

func (r Rational) Negate() Rational { return Rational{r: new(big.Rat).Neg(r.rat())} }

func (r Rational) Not() Rational {
	if r.Truthy() {
		return ratOf(0)
	}
	return ratOf(1)
}

func (r Rational) And(o Rational) Rational { return ratBool(r.Truthy() && o.Truthy()) }
func (r Rational) Or(o Rational) Rational  { return ratBool(r.Truthy() || o.Truthy()) }

func (r Rational) Less(o Rational) Rational           { return ratBool(r.rat().Cmp(o.rat()) < 0) }
func (r Rational) LessOrEqual(o Rational) Rational    { return ratBool(r.rat().Cmp(o.rat()) <= 0) }
func (r Rational) Greater(o Rational) Rational        { return ratBool(r.rat().Cmp(o.rat()) > 0) }
func (r Rational) GreaterOrEqual(o Rational) Rational { return ratBool(r.rat().Cmp(o.rat()) >= 0) }
func (r Rational) Equal(o Rational) Rational          { return ratBool(r.rat().Cmp(o.rat()) == 0) }
func (r Rational) NotEqual(o Rational) Rational       { return ratBool(r.rat().Cmp(o.rat()) != 0) }

func (r Rational) Truthy() bool { return r.rat().Sign() != 0 }

func (r Rational) String() string { return r.rat().RatString() }

func (r Rational) IsZero() bool { return r.rat().Sign() == 0 }

func ratBool(b bool) Rational {
	if b {
		return ratOf(1)
	}
	return ratOf(0)
}

// RationalFromText parses an integer or decimal literal lexeme into an
// exact Rational (decimals are exact: "0.1" becomes 1/10, not a rounded
// binary approximation).
func RationalFromText(text string) (Rational, error) {
	switch text {
	case "true":
		return ratOf(1), nil
	case "false":
		return ratOf(0), nil
	}
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return Rational{}, errInvalidRational(text)
	}
	return Rational{r: r}, nil
}
