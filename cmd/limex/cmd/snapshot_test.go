package cmd

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestEvalGoldenOutput snapshots the eval subcommand's text-mode output
// across a handful of representative expressions, the way the teacher
// snapshots fixture output (internal/interp/fixture_test.go).
func TestEvalGoldenOutput(t *testing.T) {
	cases := []struct {
		name     string
		expr     string
		varsJSON string
	}{
		{"arithmetic", "3*5", ""},
		{"compound_assign", "z -= sqrt(x^2 + y^2)", `{"variables":{"x":3,"y":4,"z":5}}`},
		{"membership", "x in {1, 2, 3}", `{"variables":{"x":2}}`},
		{"if_then_else", "if x > 0 then 1 else -1", `{"variables":{"x":-5}}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resetFlags()
			evalExpr = c.expr
			evalVarsJSON = c.varsJSON
			out, err := captureStdout(t, func() error { return runEval(evalCmd, nil) })
			if err != nil {
				t.Fatalf("runEval(%q): %v", c.expr, err)
			}
			snaps.MatchSnapshot(t, c.name, out)
		})
	}
}
