package value

import "strconv"

// Float64 is the scalar / single-valued Number implementation: ordinary
// IEEE-754 double-precision arithmetic, with the host language's usual
// C-style truthiness (non-zero is true) for the boolean-shaped operators.
type Float64 float64

func (f Float64) Add(o Float64) Float64      { return f + o }
func (f Float64) Subtract(o Float64) Float64 { return f - o }
func (f Float64) Multiply(o Float64) Float64 { return f * o }

func (f Float64) Divide(o Float64) (Float64, error) {
	if o == 0 {
		return 0, errDivideByZero
	}
	return f / o, nil
}

func (f Float64) Negate() Float64 { return -f }

func (f Float64) Not() Float64 {
	if f.Truthy() {
		return 0
	}
	return 1
}

func (f Float64) And(o Float64) Float64 { return boolFloat(f.Truthy() && o.Truthy()) }
func (f Float64) Or(o Float64) Float64  { return boolFloat(f.Truthy() || o.Truthy()) }

func (f Float64) Less(o Float64) Float64           { return boolFloat(f < o) }
func (f Float64) LessOrEqual(o Float64) Float64    { return boolFloat(f <= o) }
func (f Float64) Greater(o Float64) Float64        { return boolFloat(f > o) }
func (f Float64) GreaterOrEqual(o Float64) Float64 { return boolFloat(f >= o) }
func (f Float64) Equal(o Float64) Float64          { return boolFloat(f == o) }
func (f Float64) NotEqual(o Float64) Float64       { return boolFloat(f != o) }

func (f Float64) Truthy() bool { return f != 0 }

func (f Float64) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

func (f Float64) IsZero() bool { return f == 0 }

func (f Float64) Int() (int, bool) {
	i := int(f)
	if Float64(i) != f {
		return 0, false
	}
	return i, true
}

func (f Float64) Float() (float64, bool) { return float64(f), true }

func boolFloat(b bool) Float64 {
	if b {
		return 1
	}
	return 0
}

// FloatFromText parses a LIMEX numeric or boolean literal lexeme into a
// Float64, the literal parser limex.NewFloat64 hands to internal/builder
// to turn a NUMBER token's text into a KindLiteral value.
func FloatFromText(text string) (Float64, error) {
	switch text {
	case "true":
		return 1, nil
	case "false":
		return 0, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	return Float64(f), nil
}
