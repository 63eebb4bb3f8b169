package compiler

import (
	"fmt"

	"minicc/pkg/lexer"
)

// exprParser carries the read-only state shared by every recursive call of
// one top-level ParseExpression: the line, the paren-match table computed
// over its full range, the namespace, and the operator emitter bindings.
// Sub-ranges are passed by value into each call.
type exprParser struct {
	line      *lexer.Line
	exprStart int
	matches   []int
	scope     *Scope
	emitters  map[Operator]EmitFunc
}

// ParseExpression parses the token range [start, end) of line into a
// type-resolved AST with an emission callback bound on every
// binary-operation node. All failures are fatal compile errors wrapped with
// the originating line.
func (c *Compiler) ParseExpression(line *lexer.Line, start, end int, scope *Scope) (Expression, error) {
	if start >= end {
		panic(fmt.Sprintf("expression range [%d, %d) is empty", start, end))
	}

	matches, ok := matchParens(line.Tokens, start, end)
	if !ok {
		return nil, line.WrapError(ErrMismatchedParens)
	}

	p := &exprParser{
		line:      line,
		exprStart: start,
		matches:   matches,
		scope:     scope,
		emitters:  c.Config.Emitters,
	}

	return p.parse(start, end)
}

// matchParens maps every close-paren offset (relative to start) to the
// absolute offset of its matching open paren. A close with no open, or
// leftover opens at the end of the range, means the parens do not balance.
func matchParens(tokens []string, start, end int) ([]int, bool) {
	matches := make([]int, end-start)

	var open []int
	for i := start; i < end; i++ {
		switch tokens[i] {
		case parenOpen:
			open = append(open, i)
		case parenClose:
			if len(open) == 0 {
				return nil, false
			}
			matches[i-start] = open[len(open)-1]
			open = open[:len(open)-1]
		}
	}

	return matches, len(open) == 0
}

func (p *exprParser) parse(start, end int) (Expression, error) {
	if start+1 == end {
		return p.parseValue(start)
	}

	tokens := p.line.Tokens
	if tokens[start] == parenOpen && tokens[end-1] == parenClose && p.matches[end-1-p.exprStart] == start {
		return p.parse(start+1, end-1)
	}

	for _, group := range precedenceGroups {
		for i := end - 1; i >= start; i-- {
			token := tokens[i]

			if token == parenClose {
				// skip the parenthesized sub-expression; only
				// top-level operators split this range
				i = p.matches[i-p.exprStart]
				continue
			}

			if op, ok := matchOperator(token, group); ok {
				return p.parseOperator(op, start, i, end)
			}
		}
	}

	return nil, p.line.WrapError(ErrNoOperator)
}

func (p *exprParser) parseOperator(op Operator, start, split, end int) (Expression, error) {
	if op == OperatorAssignment {
		return p.parseAssignment(start, split, end)
	}

	left, err := p.parse(start, split)
	if err != nil {
		return nil, err
	}

	right, err := p.parse(split+1, end)
	if err != nil {
		return nil, err
	}

	return newBinaryOperation(op, left, right, p.emitters[op]), nil
}

// parseAssignment requires the left-hand side to be exactly one token. The
// target resolves to its declaring node when the name is in scope; an
// undeclared target is not an error here, it stays an untyped reference.
func (p *exprParser) parseAssignment(start, split, end int) (Expression, error) {
	if split != start+1 {
		return nil, p.line.WrapError(ErrInvalidAssignment)
	}

	name := p.line.Tokens[start]

	var target Expression
	if v, ok := p.scope.getVariable(name); ok {
		target = v
	} else {
		target = &VariableReference{name: name, typ: UnknownType}
	}

	right, err := p.parse(split+1, end)
	if err != nil {
		return nil, err
	}

	return newBinaryOperation(OperatorAssignment, target, right, p.emitters[OperatorAssignment]), nil
}

func (p *exprParser) parseValue(index int) (Expression, error) {
	token := p.line.Tokens[index]

	if typ, ok := LiteralType(token); ok {
		return NewLiteral(typ, token), nil
	}

	if v, ok := p.scope.getVariable(token); ok {
		return &VariableReference{name: token, typ: v.Type()}, nil
	}

	return nil, p.line.WrapError(fmt.Errorf("%w %q", ErrInvalidValue, token))
}
