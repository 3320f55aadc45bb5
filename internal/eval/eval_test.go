package eval

import (
	"testing"

	"github.com/bpmn-os/limex/handle"
	"github.com/bpmn-os/limex/internal/ast"
	"github.com/bpmn-os/limex/internal/builder"
	"github.com/bpmn-os/limex/internal/lexer"
	"github.com/bpmn-os/limex/value"
)

// evalSource lexes, builds and evaluates src end to end against vars (in
// name-table order) and the default Float64 handle, giving eval tests a
// realistic AST instead of hand-built nodes for anything but the smallest
// unit cases.
func evalSource(t *testing.T, src string, vars map[string]value.Float64, colls map[string][]value.Float64) (value.Float64, error) {
	t.Helper()
	root, errs := lexer.New(src).Tokenize()
	if len(errs) != 0 {
		t.Fatalf("lex error for %q: %v", src, errs)
	}
	h := handle.NewDefaultFloat64()
	b := builder.New(h, value.FloatFromText)
	node, err := b.Build(root)
	if err != nil {
		t.Fatalf("build error for %q: %v", src, err)
	}
	varSlice := make([]value.Float64, len(b.Variables()))
	for i, name := range b.Variables() {
		varSlice[i] = vars[name]
	}
	collSlice := make([][]value.Float64, len(b.Collections()))
	for i, name := range b.Collections() {
		collSlice[i] = colls[name]
	}
	env := &Env[value.Float64]{Vars: varSlice, Collections: collSlice, Handle: h}
	return Evaluate(node, env)
}

func TestEvaluateArithmetic(t *testing.T) {
	got, err := evalSource(t, "3 + 4 * 2", nil, nil)
	if err != nil || got != 11 {
		t.Errorf("got %v, %v, want 11, nil", got, err)
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	if _, err := evalSource(t, "1 / 0", nil, nil); err == nil {
		t.Error("expected a division-by-zero error")
	}
}

func TestEvaluateExponentiation(t *testing.T) {
	got, err := evalSource(t, "2^3^2", nil, nil)
	if err != nil || got != 512 {
		t.Errorf("2^3^2 = %v, %v, want 512, nil", got, err)
	}
}

func TestEvaluateUnaryOperators(t *testing.T) {
	cases := map[string]value.Float64{
		"-5":   -5,
		"!0":   1,
		"!1":   0,
		"3²":   9,
		"2³":   8,
	}
	for src, want := range cases {
		got, err := evalSource(t, src, nil, nil)
		if err != nil || got != want {
			t.Errorf("%s = %v, %v, want %v, nil", src, got, err, want)
		}
	}
}

func TestEvaluateIfThenElseEagerlyEvaluatesBothBranches(t *testing.T) {
	// The else branch divides by zero; even though the condition selects
	// the then branch, both branches are evaluated up front, so this must
	// fail rather than return 1.
	if _, err := evalSource(t, "if true then 1 else 1/0", nil, nil); err == nil {
		t.Error("expected the unreached else branch's division by zero to still fail the expression")
	}
}

func TestEvaluateIfThenElse(t *testing.T) {
	got, err := evalSource(t, "if x > 0 then 1 else -1", map[string]value.Float64{"x": 5}, nil)
	if err != nil || got != 1 {
		t.Errorf("got %v, %v, want 1, nil", got, err)
	}
}

func TestEvaluateAssignment(t *testing.T) {
	// x is the plain-assign target and is not read by the RHS, so it is
	// excluded from Variables(); evaluating needs no bindings at all.
	got, err := evalSource(t, "x := 3", nil, nil)
	if err != nil || got != 3 {
		t.Errorf("x := 3 = %v, %v, want 3, nil", got, err)
	}
}

func TestEvaluateCompoundAssignment(t *testing.T) {
	// z -= sqrt(x^2+y^2) with x=3, y=4, z=5 -> z becomes 0.
	got, err := evalSource(t, "z -= sqrt(x^2+y^2)", map[string]value.Float64{"x": 3, "y": 4, "z": 5}, nil)
	if err != nil || got != 0 {
		t.Errorf("got %v, %v, want 0, nil", got, err)
	}
}

func TestEvaluateAssignmentDoesNotMutateEnv(t *testing.T) {
	// x is read by the RHS, so it stays registered and env.Vars[0] feeds
	// the read - but the store is the caller's responsibility (spec
	// §4.4), so evaluating must leave env.Vars untouched.
	root, errs := lexer.New("x := x + 1").Tokenize()
	if len(errs) != 0 {
		t.Fatalf("lex error: %v", errs)
	}
	h := handle.NewDefaultFloat64()
	b := builder.New(h, value.FloatFromText)
	node, err := b.Build(root)
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	env := &Env[value.Float64]{Vars: []value.Float64{10}, Handle: h}
	got, err := Evaluate(node, env)
	if err != nil || got != 11 {
		t.Fatalf("got %v, %v, want 11, nil", got, err)
	}
	if env.Vars[0] != 10 {
		t.Errorf("env.Vars[0] = %v, want it left unchanged at 10", env.Vars[0])
	}
}

func TestEvaluateMembership(t *testing.T) {
	got, err := evalSource(t, "x in {1, 2, 3}", map[string]value.Float64{"x": 2}, nil)
	if err != nil || got != 1 {
		t.Errorf("2 in {1,2,3} = %v, %v, want true, nil", got, err)
	}
	got, err = evalSource(t, "x not in {1, 2, 3}", map[string]value.Float64{"x": 5}, nil)
	if err != nil || got != 1 {
		t.Errorf("5 not in {1,2,3} = %v, %v, want true, nil", got, err)
	}
}

func TestEvaluateMembershipAgainstCollection(t *testing.T) {
	got, err := evalSource(t, "x in roster[]", map[string]value.Float64{"x": 7},
		map[string][]value.Float64{"roster": {5, 6, 7}})
	if err != nil || got != 1 {
		t.Errorf("got %v, %v, want true, nil", got, err)
	}
}

func TestEvaluateCollectionFastPathInAggregation(t *testing.T) {
	got, err := evalSource(t, "sum{data[]}", nil, map[string][]value.Float64{"data": {1, 2, 3, 4}})
	if err != nil || got != 10 {
		t.Errorf("sum{data[]} = %v, %v, want 10, nil", got, err)
	}
}

func TestEvaluateCollectionFastPathOnlyAppliesToASingleOperand(t *testing.T) {
	if _, err := evalSource(t, "sum{data[], 5}", nil, map[string][]value.Float64{"data": {1, 2, 3}}); err == nil {
		t.Error("expected a bare collection operand alongside another argument to be a fatal evaluate error")
	}
}

func TestEvaluateIndexDirectLookup(t *testing.T) {
	got, err := evalSource(t, "data[2]", nil, map[string][]value.Float64{"data": {10, 20, 30}})
	if err != nil || got != 20 {
		t.Errorf("data[2] = %v, %v, want 20, nil", got, err)
	}
}

func TestEvaluateIndexOutOfRange(t *testing.T) {
	if _, err := evalSource(t, "data[5]", nil, map[string][]value.Float64{"data": {10, 20, 30}}); err == nil {
		t.Error("expected an out-of-range error")
	}
}

func TestEvaluateIndexFallsBackToAtBuiltinForNonIntCaster(t *testing.T) {
	root, errs := lexer.New("data[x]").Tokenize()
	if len(errs) != 0 {
		t.Fatalf("lex error: %v", errs)
	}
	h := handle.NewDefault(func(f float64) value.Rational { return value.NewRational(int64(f), 1) }, nil)
	b := builder.New(h, value.RationalFromText)
	node, err := b.Build(root)
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	env := &Env[value.Rational]{
		Vars:        []value.Rational{value.NewRational(1, 2)},
		Collections: [][]value.Rational{{value.NewRational(1, 1), value.NewRational(2, 1)}},
		Handle:      h,
	}
	if _, err := Evaluate(node, env); err == nil {
		t.Error("expected the unresolved `at` built-in to error")
	}
}

func TestEvaluateGroupAndLiteral(t *testing.T) {
	node := &ast.Node[value.Float64]{Kind: ast.KindGroup, Children: []*ast.Node[value.Float64]{
		{Kind: ast.KindLiteral, Value: 42},
	}}
	env := &Env[value.Float64]{Handle: handle.NewDefaultFloat64()}
	got, err := Evaluate(node, env)
	if err != nil || got != 42 {
		t.Errorf("got %v, %v, want 42, nil", got, err)
	}
}

func TestEvaluateCollectionAsScalarIsAnError(t *testing.T) {
	node := &ast.Node[value.Float64]{Kind: ast.KindCollection, Index: 0}
	env := &Env[value.Float64]{Collections: [][]value.Float64{{1, 2}}, Handle: handle.NewDefaultFloat64()}
	if _, err := Evaluate(node, env); err == nil {
		t.Error("expected an error evaluating a bare collection as a scalar")
	}
}
