package value

import "testing"

func TestRationalArithmetic(t *testing.T) {
	half := NewRational(1, 2)
	third := NewRational(1, 3)

	if got, want := half.Add(third), NewRational(5, 6); got.String() != want.String() {
		t.Errorf("Add: got %v, want %v", got, want)
	}
	if got, want := half.Multiply(third), NewRational(1, 6); got.String() != want.String() {
		t.Errorf("Multiply: got %v, want %v", got, want)
	}
	if got, want := half.Subtract(third), NewRational(1, 6); got.String() != want.String() {
		t.Errorf("Subtract: got %v, want %v", got, want)
	}
	if got, err := half.Divide(third); err != nil || got.String() != NewRational(3, 2).String() {
		t.Errorf("Divide: got %v, %v", got, err)
	}
	if _, err := half.Divide(NewRational(0, 1)); err == nil {
		t.Error("Divide by zero should error")
	}
}

func TestRationalExactDecimal(t *testing.T) {
	got, err := RationalFromText("0.5")
	if err != nil {
		t.Fatalf("RationalFromText: %v", err)
	}
	if want := NewRational(1, 2); got.String() != want.String() {
		t.Errorf("RationalFromText(0.5) = %v, want %v (exact, not a binary approximation)", got, want)
	}
}

func TestRationalFromTextBooleans(t *testing.T) {
	if got, err := RationalFromText("true"); err != nil || !got.Truthy() {
		t.Errorf("RationalFromText(true) = %v, %v", got, err)
	}
	if got, err := RationalFromText("false"); err != nil || got.Truthy() {
		t.Errorf("RationalFromText(false) = %v, %v", got, err)
	}
}

func TestRationalFromTextInvalid(t *testing.T) {
	if _, err := RationalFromText("not-a-number"); err == nil {
		t.Error("expected an error for an unparseable literal")
	}
}

func TestRationalRelationalAndLogic(t *testing.T) {
	a, b := NewRational(1, 2), NewRational(2, 3)
	if !a.Less(b).Truthy() {
		t.Error("1/2 should be less than 2/3")
	}
	if !a.Equal(NewRational(2, 4)).Truthy() {
		t.Error("1/2 should equal 2/4")
	}
	if a.NotEqual(NewRational(2, 4)).Truthy() {
		t.Error("1/2 should not be != 2/4")
	}
}

func TestRationalIsZero(t *testing.T) {
	if !NewRational(0, 1).IsZero() {
		t.Error("0/1 should be zero")
	}
	if NewRational(1, 1).IsZero() {
		t.Error("1/1 should not be zero")
	}
}

func TestRationalZeroValueIsZero(t *testing.T) {
	var r Rational
	if !r.IsZero() {
		t.Error("the zero value of Rational should behave as zero")
	}
	if got, want := r.String(), "0"; got != want {
		t.Errorf("zero value String() = %q, want %q", got, want)
	}
}

func TestRationalDoesNotImplementOptionalCapabilities(t *testing.T) {
	var r any = NewRational(1, 2)
	if _, ok := r.(IntCaster); ok {
		t.Error("Rational must not implement IntCaster")
	}
	if _, ok := r.(Realer); ok {
		t.Error("Rational must not implement Realer")
	}
}
