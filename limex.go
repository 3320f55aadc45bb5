// Package limex parses and evaluates LIMEX expressions: a small,
// Unicode-rich expression language over a numeric type V, its variables,
// its named collections, and a user-extensible table of named callables
// (value.Number, handle.Handle). Construct an Expression with New, then
// call Evaluate as many times as needed against different bindings - a
// single Expression is immutable once built and safe to evaluate
// repeatedly (spec §1, §5, §6).
package limex

import (
	"fmt"

	"github.com/bpmn-os/limex/handle"
	"github.com/bpmn-os/limex/internal/ast"
	"github.com/bpmn-os/limex/internal/builder"
	"github.com/bpmn-os/limex/internal/errs"
	"github.com/bpmn-os/limex/internal/eval"
	"github.com/bpmn-os/limex/internal/lexer"
	"github.com/bpmn-os/limex/internal/token"
	"github.com/bpmn-os/limex/value"
)

// Expression is a parsed LIMEX expression: an AST plus the ordered
// variable/collection name tables the caller must supply values for when
// evaluating it.
type Expression[V value.Number[V]] struct {
	source string
	names  ast.NameTables
	target *string
	root   *ast.Node[V]
	handle *handle.Handle[V]
}

// New lexes and builds source into an Expression against h, using literal
// to parse NUMBER/boolean token lexemes into V. The first lexical error,
// or the first structural error, aborts construction entirely - there is
// no partial result to inspect on failure (spec §7).
func New[V value.Number[V]](source string, h *handle.Handle[V], literal func(string) (V, error)) (*Expression[V], error) {
	lx := lexer.New(source)
	root, lexErrs := lx.Tokenize()
	if len(lexErrs) > 0 {
		first := lexErrs[0]
		return nil, errs.NewLex(source, first.Pos, "%s", first.Message)
	}

	b := builder.New(h, literal)
	astRoot, err := b.Build(root)
	if err != nil {
		return nil, errs.NewParse(source, token.Position{}, "%s", err.Error())
	}

	var target *string
	if name, ok := b.Target(); ok {
		target = &name
	}

	return &Expression[V]{
		source: source,
		names:  ast.NameTables{Variables: b.Variables(), Collections: b.Collections()},
		target: target,
		root:   astRoot,
		handle: h,
	}, nil
}

// NewFloat64 is the scalar / single-valued configuration's convenience
// constructor: New wired to value.Float64 and handle.NewDefaultFloat64.
func NewFloat64(source string) (*Expression[value.Float64], error) {
	return New(source, handle.NewDefaultFloat64(), value.FloatFromText)
}

// Variables reports the expression's free variable names, in first-seen
// order, excluding a plain ':=' assignment's target unless the RHS also
// reads it (spec §4.3/§8).
func (e *Expression[V]) Variables() []string {
	return append([]string(nil), e.names.Variables...)
}

// Collections reports the expression's referenced collection names, in
// first-seen order.
func (e *Expression[V]) Collections() []string {
	return append([]string(nil), e.names.Collections...)
}

// Target reports the variable name a top-level assignment writes to, if
// the expression's root is an assignment.
func (e *Expression[V]) Target() (string, bool) {
	if e.target == nil {
		return "", false
	}
	return *e.target, true
}

// Source returns the original input text.
func (e *Expression[V]) Source() string { return e.source }

// Root returns the built AST, for callers that walk the tree themselves
// rather than evaluating or stringifying it.
func (e *Expression[V]) Root() *ast.Node[V] { return e.root }

// String renders the AST in prefix form (spec §6's stringify()).
func (e *Expression[V]) String() string {
	return e.root.String(e.names, e.target, e.handle.Name)
}

// Evaluate computes the expression's value given one value per entry of
// Variables() and one slice per entry of Collections(), in the same
// order. It neither mutates the caller's slices nor retains them.
func (e *Expression[V]) Evaluate(vars []V, collections [][]V) (V, error) {
	var zero V
	if len(vars) != len(e.names.Variables) {
		return zero, fmt.Errorf("limex: expected %d variable value(s), got %d", len(e.names.Variables), len(vars))
	}
	if len(collections) != len(e.names.Collections) {
		return zero, fmt.Errorf("limex: expected %d collection value(s), got %d", len(e.names.Collections), len(collections))
	}

	env := &eval.Env[V]{
		Vars:        append([]V(nil), vars...),
		Collections: collections,
		Handle:      e.handle,
	}
	result, err := eval.Evaluate(e.root, env)
	if err != nil {
		return zero, errs.NewEval(e.source, token.Position{}, "%s", err.Error())
	}
	return result, nil
}
