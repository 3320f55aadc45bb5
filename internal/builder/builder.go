// Package builder turns the lexer's grouped token tree into LIMEX's AST
// via precedence climbing over two explicit stacks (an operand stack and
// an infix-operator stack), with comma-driven segment flushing for
// argument lists, set/sequence literals, and a dedicated recursive
// sub-parse for the short ternary family - both spellings, `if/then/else`
// and `?:` (spec §4.3).
//
// Ternary handling deserves a note: the two spellings do not reduce
// against a plain operand pair the way every other infix operator does -
// `then`/`?` needs the matched condition, and `else`/`:` needs the
// matched branch's whole result. Rather than encode that relationship
// into the generic two-stack reduction (which would need operator-stack
// entries to sometimes resolve against other operator-stack entries
// instead of against the operand stack), the builder special-cases the
// `if_` prefix token and the `?` infix token wherever either appears: it
// locates the matching `then`/`else` or `:` by depth-counting nested
// occurrences, recursively builds the branches, and splices the finished
// KindIfThenElse node in as if it were an ordinary operand. This keeps
// the general algorithm - the part that does need the two stacks -
// uniform for every other operator.
package builder

import (
	"fmt"

	"github.com/bpmn-os/limex/handle"
	"github.com/bpmn-os/limex/internal/ast"
	"github.com/bpmn-os/limex/internal/token"
	"github.com/bpmn-os/limex/value"
)

// Builder accumulates the ordered variable/collection name tables and the
// assignment target while folding one token tree into one AST.
type Builder[V value.Number[V]] struct {
	h *handle.Handle[V]

	variables []string
	varIndex  map[string]int

	collections []string
	collIndex   map[string]int

	target *string

	literal func(text string) (V, error)
}

// New creates a Builder. literal parses a NUMBER token's lexeme (or the
// "true"/"false" keywords) into V.
func New[V value.Number[V]](h *handle.Handle[V], literal func(string) (V, error)) *Builder[V] {
	return &Builder[V]{
		h:         h,
		varIndex:  make(map[string]int),
		collIndex: make(map[string]int),
		literal:   literal,
	}
}

// Build folds root (the lexer's implicit top-level group) into an AST.
func (b *Builder[V]) Build(root token.Token) (*ast.Node[V], error) {
	n, err := b.buildExpr(root.Children, true)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Variables, Collections and Target report the name tables and assignment
// target accumulated while building. Call after Build.
func (b *Builder[V]) Variables() []string   { return append([]string(nil), b.variables...) }
func (b *Builder[V]) Collections() []string { return append([]string(nil), b.collections...) }
func (b *Builder[V]) Target() (string, bool) {
	if b.target == nil {
		return "", false
	}
	return *b.target, true
}

func (b *Builder[V]) registerVariable(name string) int {
	if idx, ok := b.varIndex[name]; ok {
		return idx
	}
	idx := len(b.variables)
	b.variables = append(b.variables, name)
	b.varIndex[name] = idx
	return idx
}

func (b *Builder[V]) registerCollection(name string) int {
	if idx, ok := b.collIndex[name]; ok {
		return idx
	}
	idx := len(b.collections)
	b.collections = append(b.collections, name)
	b.collIndex[name] = idx
	return idx
}

type opEntry struct {
	op  token.Op
	pos token.Position
}

// buildExpr parses tokens as a single expression. topLevel gates whether
// an assignment operator is permitted (spec §4.3: assignment is only
// legal as the outermost operator of the whole expression).
func (b *Builder[V]) buildExpr(tokens []token.Token, topLevel bool) (*ast.Node[V], error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("parse error: empty expression")
	}

	var operands []*ast.Node[V]
	var ops []opEntry
	var pendingPrefix []token.Token

	assignSeen := false

	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		switch {
		case tok.Category == token.Prefix && tok.Value == string(token.OpIf):
			thenIdx, err := findMatching(tokens, i+1, string(token.OpIf), string(token.OpThen))
			if err != nil {
				return nil, err
			}
			elseIdx, err := findMatching(tokens, thenIdx+1, string(token.OpIf), string(token.OpElse))
			if err != nil {
				return nil, err
			}
			cond, err := b.buildExpr(tokens[i+1:thenIdx], false)
			if err != nil {
				return nil, err
			}
			thenBranch, err := b.buildExpr(tokens[thenIdx+1:elseIdx], false)
			if err != nil {
				return nil, err
			}
			elseBranch, err := b.buildExpr(tokens[elseIdx+1:], false)
			if err != nil {
				return nil, err
			}
			node := &ast.Node[V]{Kind: ast.KindIfThenElse, Children: []*ast.Node[V]{cond, thenBranch, elseBranch}}
			node = b.applyPending(&pendingPrefix, node)
			operands = append(operands, node)
			i = len(tokens)
			continue

		case tok.Value == string(token.OpThen) || tok.Value == string(token.OpElse):
			return nil, fmt.Errorf("parse error at %s: %q without a matching 'if'", tok.Pos, tok.Value)

		case tok.Category == token.Infix && tok.Value == string(token.OpTernaryQuestion):
			colonIdx, err := findMatching(tokens, i+1, string(token.OpTernaryQuestion), string(token.OpTernaryColon))
			if err != nil {
				return nil, err
			}
			cond, err := b.flush(ops, operands, pendingPrefix)
			if err != nil {
				return nil, err
			}
			thenBranch, err := b.buildExpr(tokens[i+1:colonIdx], false)
			if err != nil {
				return nil, err
			}
			elseBranch, err := b.buildExpr(tokens[colonIdx+1:], false)
			if err != nil {
				return nil, err
			}
			node := &ast.Node[V]{Kind: ast.KindIfThenElse, Children: []*ast.Node[V]{cond, thenBranch, elseBranch}}
			operands = []*ast.Node[V]{node}
			ops = nil
			pendingPrefix = nil
			i = len(tokens)
			continue

		case tok.Value == string(token.OpTernaryColon):
			return nil, fmt.Errorf("parse error at %s: %q without a matching '?'", tok.Pos, tok.Value)

		case tok.Category == token.Postfix:
			if len(operands) == 0 {
				return nil, fmt.Errorf("parse error at %s: postfix operator with no operand", tok.Pos)
			}
			top := operands[len(operands)-1]
			kind, err := postfixKind(tok.Value)
			if err != nil {
				return nil, err
			}
			operands[len(operands)-1] = &ast.Node[V]{Kind: kind, Children: []*ast.Node[V]{top}}
			i++

		case tok.Category == token.Prefix:
			pendingPrefix = append(pendingPrefix, tok)
			i++

		case tok.Kind == token.Separator:
			return nil, fmt.Errorf("parse error at %s: unexpected separator", tok.Pos)

		case tok.Category == token.Infix:
			op := token.Canonical(tok.Value)
			if token.IsAssignment(op) {
				if !topLevel || assignSeen || len(operands) != 1 || len(ops) != 0 {
					return nil, fmt.Errorf("parse error at %s: assignment is only legal as the outermost operator", tok.Pos)
				}
				left := operands[0]
				if left.Kind != ast.KindVariable {
					return nil, fmt.Errorf("parse error at %s: assignment target is not a simple variable", tok.Pos)
				}
				name := b.variables[left.Index]
				b.target = &name
				assignSeen = true
				// Plain ':=' does not count the target as a read (spec
				// §4.3): clear its registration now, before the RHS is
				// parsed, so a name that also appears in the RHS
				// re-registers fresh rather than reusing this slot.
				// Compound forms (+=, -=, ...) retain it as a read.
				if op == token.OpAssign {
					delete(b.varIndex, name)
					b.variables = b.variables[:0]
					operands = operands[:0]
				}
			}
			prec := token.Precedence[op]
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				topPrec := token.Precedence[top.op]
				reduce := topPrec > prec || (topPrec == prec && !token.RightAssociative[op])
				if !reduce {
					break
				}
				node, consumed, err := b.reduceBinary(ops, operands)
				if err != nil {
					return nil, err
				}
				ops = ops[:len(ops)-1]
				operands = operands[:len(operands)-consumed]
				operands = append(operands, node)
			}
			ops = append(ops, opEntry{op: op, pos: tok.Pos})
			i++

		default:
			node, err := b.convertOperand(tok)
			if err != nil {
				return nil, err
			}
			node = b.applyPending(&pendingPrefix, node)
			operands = append(operands, node)
			i++
		}
	}

	return b.flush(ops, operands, pendingPrefix)
}

// flush reduces any remaining operators against the operand stack and
// returns the single resulting node, the same closing step buildExpr
// performs at the end of its token loop. It is factored out so the `?`
// ternary bootstrap can reduce "everything seen so far" into a condition
// node without re-parsing those tokens from scratch.
func (b *Builder[V]) flush(ops []opEntry, operands []*ast.Node[V], pendingPrefix []token.Token) (*ast.Node[V], error) {
	for len(ops) > 0 {
		node, consumed, err := b.reduceBinary(ops, operands)
		if err != nil {
			return nil, err
		}
		ops = ops[:len(ops)-1]
		operands = operands[:len(operands)-consumed]
		operands = append(operands, node)
	}
	if len(pendingPrefix) > 0 {
		return nil, fmt.Errorf("parse error: prefix operator with no operand")
	}
	if len(operands) != 1 {
		return nil, fmt.Errorf("parse error: malformed expression (expected exactly one result, got %d)", len(operands))
	}
	return operands[0], nil
}

func (b *Builder[V]) applyPending(pending *[]token.Token, node *ast.Node[V]) *ast.Node[V] {
	p := *pending
	for len(p) > 0 {
		tok := p[len(p)-1]
		p = p[:len(p)-1]
		kind := ast.KindNegate
		if token.Canonical(tok.Value) == token.OpNot {
			kind = ast.KindLogicalNot
		}
		node = &ast.Node[V]{Kind: kind, Children: []*ast.Node[V]{node}}
	}
	*pending = p
	return node
}

// findMatching scans tokens[from:] for the first occurrence of target,
// treating every occurrence of opener as increasing the nesting depth, so
// a nested if/then(/else) pair is skipped over correctly. It returns the
// absolute index of the match.
func findMatching(tokens []token.Token, from int, opener, target string) (int, error) {
	depth := 1
	for i := from; i < len(tokens); i++ {
		switch tokens[i].Value {
		case opener:
			depth++
		case target:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("parse error: unmatched %q with no corresponding %q", opener, target)
}

// reduceBinary pops the top operator and applies it to the operand stack,
// returning the new node and how many operands it consumed. Every
// operator consumes two (left, right) except a plain ':=', which - per
// spec §4.3's apply helper - keeps only the RHS, since its LHS was
// already rewritten into the builder's out-of-band assignment target
// rather than an ordinary child.
func (b *Builder[V]) reduceBinary(ops []opEntry, operands []*ast.Node[V]) (*ast.Node[V], int, error) {
	top := ops[len(ops)-1]
	if top.op == token.OpAssign {
		if len(operands) < 1 {
			return nil, 0, fmt.Errorf("parse error at %s: missing operand for assignment", top.pos)
		}
		right := operands[len(operands)-1]
		return &ast.Node[V]{Kind: ast.KindAssign, Children: []*ast.Node[V]{right}}, 1, nil
	}
	if len(operands) < 2 {
		return nil, 0, fmt.Errorf("parse error at %s: missing operand for infix operator %q", top.pos, top.op)
	}
	left := operands[len(operands)-2]
	right := operands[len(operands)-1]
	kind, err := infixKind(top.op)
	if err != nil {
		return nil, 0, err
	}
	return &ast.Node[V]{Kind: kind, Children: []*ast.Node[V]{left, right}}, 2, nil
}
