package builder

import (
	"fmt"

	"github.com/bpmn-os/limex/internal/ast"
	"github.com/bpmn-os/limex/internal/token"
)

func (b *Builder[V]) convertOperand(tok token.Token) (*ast.Node[V], error) {
	switch tok.Kind {
	case token.Number:
		v, err := b.literal(tok.Value)
		if err != nil {
			return nil, fmt.Errorf("parse error at %s: invalid literal %q: %w", tok.Pos, tok.Value, err)
		}
		return &ast.Node[V]{Kind: ast.KindLiteral, Value: v}, nil

	case token.Variable:
		idx := b.registerVariable(tok.Value)
		return &ast.Node[V]{Kind: ast.KindVariable, Index: idx}, nil

	case token.Collection:
		idx := b.registerCollection(tok.Value)
		return &ast.Node[V]{Kind: ast.KindCollection, Index: idx}, nil

	case token.IndexedVariable:
		collIdx := b.registerCollection(tok.Value)
		indexExpr, err := b.buildExpr(tok.Children, false)
		if err != nil {
			return nil, err
		}
		base := &ast.Node[V]{Kind: ast.KindCollection, Index: collIdx}
		return &ast.Node[V]{Kind: ast.KindIndex, Children: []*ast.Node[V]{base, indexExpr}}, nil

	case token.Group:
		inner, err := b.buildExpr(tok.Children, false)
		if err != nil {
			return nil, err
		}
		return &ast.Node[V]{Kind: ast.KindGroup, Children: []*ast.Node[V]{inner}}, nil

	case token.Set:
		elems, err := b.buildArgList(tok.Children)
		if err != nil {
			return nil, err
		}
		return &ast.Node[V]{Kind: ast.KindSet, Children: elems}, nil

	case token.Sequence:
		elems, err := b.buildArgList(tok.Children)
		if err != nil {
			return nil, err
		}
		return &ast.Node[V]{Kind: ast.KindSequence, Children: elems}, nil

	case token.FunctionCall, token.Aggregation:
		idx, err := b.h.GetIndex(tok.Value)
		if err != nil {
			return nil, fmt.Errorf("parse error at %s: %w", tok.Pos, err)
		}
		args, err := b.buildArgList(tok.Children)
		if err != nil {
			return nil, err
		}
		kind := ast.KindFunctionCall
		if tok.Kind == token.Aggregation {
			kind = ast.KindAggregation
		}
		return &ast.Node[V]{Kind: kind, Index: idx, Children: args}, nil

	default:
		return nil, fmt.Errorf("parse error at %s: unexpected token %q", tok.Pos, tok.Value)
	}
}

// buildArgList splits tokens on top-level commas and builds each segment
// as an independent expression - the "comma-driven segment flushing" of
// function-call, aggregation, set and sequence contents.
func (b *Builder[V]) buildArgList(tokens []token.Token) ([]*ast.Node[V], error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	var segments [][]token.Token
	start := 0
	for i, tok := range tokens {
		if tok.Kind == token.Separator {
			segments = append(segments, tokens[start:i])
			start = i + 1
		}
	}
	segments = append(segments, tokens[start:])

	nodes := make([]*ast.Node[V], 0, len(segments))
	for _, seg := range segments {
		n, err := b.buildExpr(seg, false)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func postfixKind(op string) (ast.Kind, error) {
	switch token.Canonical(op) {
	case token.OpSquare:
		return ast.KindSquare, nil
	case token.OpCube:
		return ast.KindCube, nil
	default:
		return 0, fmt.Errorf("parse error: unknown postfix operator %q", op)
	}
}

func infixKind(op token.Op) (ast.Kind, error) {
	switch op {
	case token.OpAssign:
		return ast.KindAssign, nil
	case token.OpAddAssign:
		return ast.KindAddAssign, nil
	case token.OpSubtractAssign:
		return ast.KindSubtractAssign, nil
	case token.OpMultiplyAssign:
		return ast.KindMultiplyAssign, nil
	case token.OpDivideAssign:
		return ast.KindDivideAssign, nil
	case token.OpOr:
		return ast.KindLogicalOr, nil
	case token.OpAnd:
		return ast.KindLogicalAnd, nil
	case token.OpEqual:
		return ast.KindEqualTo, nil
	case token.OpNotEqual:
		return ast.KindNotEqualTo, nil
	case token.OpLess:
		return ast.KindLessThan, nil
	case token.OpLessOrEqual:
		return ast.KindLessOrEqual, nil
	case token.OpGreater:
		return ast.KindGreaterThan, nil
	case token.OpGreaterOrEqual:
		return ast.KindGreaterOrEqual, nil
	case token.OpElementOf:
		return ast.KindElementOf, nil
	case token.OpNotElementOf:
		return ast.KindNotElementOf, nil
	case token.OpAdd:
		return ast.KindAdd, nil
	case token.OpSubtract:
		return ast.KindSubtract, nil
	case token.OpMultiply:
		return ast.KindMultiply, nil
	case token.OpDivide:
		return ast.KindDivide, nil
	case token.OpExponentiate:
		return ast.KindExponentiate, nil
	default:
		return 0, fmt.Errorf("parse error: unknown infix operator %q", op)
	}
}
