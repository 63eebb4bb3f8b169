package compiler

import (
	"fmt"

	"minicc/pkg/lexer"
)

type Statement struct {
	Line       *lexer.Line
	Expression Expression
}

// compileLine compiles one source line: a type keyword starts a variable
// declaration (with an optional initializer), anything else is an
// expression statement. A declaration without an initializer produces no
// statement, only a namespace entry.
func (c *Compiler) compileLine(line *lexer.Line, scope *Scope) (*Statement, error) {
	end := len(line.Tokens)
	if end > 0 && line.Tokens[end-1] == ";" {
		end--
	}

	if end == 0 {
		return nil, nil
	}

	typ, ok := TypeByName(line.Tokens[0])
	if !ok {
		expr, err := c.ParseExpression(line, 0, end, scope)
		if err != nil {
			return nil, err
		}

		return &Statement{Line: line, Expression: expr}, nil
	}

	return c.compileDeclaration(line, typ, end, scope)
}

func (c *Compiler) compileDeclaration(line *lexer.Line, typ Type, end int, scope *Scope) (*Statement, error) {
	if end < 2 {
		return nil, line.WrapError(fmt.Errorf("expected a variable name after %q", line.Tokens[0]))
	}

	name := line.Tokens[1]
	if !isValidSymbol(name) {
		return nil, line.WrapError(fmt.Errorf("invalid symbol %q", name))
	}

	err := scope.put(NewVariable(name, typ))
	if err != nil {
		return nil, line.WrapError(err)
	}

	c.logger.Debug("declared variable", "name", name, "type", typ.String())

	if end == 2 {
		return nil, nil
	}

	if line.Tokens[2] != string(OperatorAssignment) {
		return nil, line.WrapError(fmt.Errorf("unexpected token %q, expected %q", line.Tokens[2], OperatorAssignment))
	}

	// the initializer compiles as an assignment expression over the
	// declaration's tail, name included
	expr, err := c.ParseExpression(line, 1, end, scope)
	if err != nil {
		return nil, err
	}

	return &Statement{Line: line, Expression: expr}, nil
}

func isValidSymbol(name string) bool {
	if len(name) == 0 {
		return false
	}

	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}
