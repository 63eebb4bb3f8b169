// Package asm turns compiled programs into assembly text for a small stack
// machine. Operands are pushed left to right; each binary-operation node's
// bound emitter pops two values and pushes the result, except assignment,
// which stores the top of the stack into its target variable.
package asm

import (
	"fmt"
	"io"
	"strings"

	"minicc/pkg/compiler"
)

type Instruction struct {
	Mnemonic string
	Operands []string
}

func (i Instruction) String() string {
	if len(i.Operands) == 0 {
		return i.Mnemonic
	}

	return i.Mnemonic + " " + strings.Join(i.Operands, ", ")
}

type Generator struct {
	instructions []Instruction
}

func NewGenerator() *Generator {
	return &Generator{}
}

// Emitters binds every operator the parser knows to this generator. The
// compiler attaches these to binary-operation nodes at parse time.
func (g *Generator) Emitters() map[compiler.Operator]compiler.EmitFunc {
	return map[compiler.Operator]compiler.EmitFunc{
		compiler.OperatorAssignment:     g.Assign,
		compiler.OperatorAddition:       g.Add,
		compiler.OperatorSubtraction:    g.Sub,
		compiler.OperatorMultiplication: g.Mul,
		compiler.OperatorDivision:       g.Div,
		compiler.OperatorModulo:         g.Mod,
	}
}

func (g *Generator) Add(*compiler.BinaryOperation) error {
	g.emit("ADD")
	return nil
}

func (g *Generator) Sub(*compiler.BinaryOperation) error {
	g.emit("SUB")
	return nil
}

func (g *Generator) Mul(*compiler.BinaryOperation) error {
	g.emit("MUL")
	return nil
}

func (g *Generator) Div(*compiler.BinaryOperation) error {
	g.emit("DIV")
	return nil
}

func (g *Generator) Mod(*compiler.BinaryOperation) error {
	g.emit("MOD")
	return nil
}

func (g *Generator) Assign(node *compiler.BinaryOperation) error {
	target, ok := node.Left.(compiler.Symbol)
	if !ok {
		return fmt.Errorf("assignment target is not a variable")
	}

	g.emit("STORE", target.Name())
	return nil
}

// EmitExpression walks the tree post-order, emitting operands before the
// node's own instruction. Assignment targets produce no load.
func (g *Generator) EmitExpression(expr compiler.Expression) error {
	switch expr := expr.(type) {
	case *compiler.Literal:
		g.emit("PUSH", expr.Raw())
		return nil
	case *compiler.VariableReference:
		g.emit("LOAD", expr.Name())
		return nil
	case *compiler.BinaryOperation:
		if expr.Operator != compiler.OperatorAssignment {
			err := g.EmitExpression(expr.Left)
			if err != nil {
				return err
			}
		}

		err := g.EmitExpression(expr.Right)
		if err != nil {
			return err
		}

		return expr.Emit()
	default:
		return fmt.Errorf("cannot emit expression of type %T", expr)
	}
}

func (g *Generator) EmitProgram(prog *compiler.Program) error {
	for _, stmt := range prog.Statements() {
		err := g.EmitExpression(stmt.Expression)
		if err != nil {
			return stmt.Line.WrapError(err)
		}
	}

	return nil
}

func (g *Generator) Instructions() []Instruction {
	return g.instructions
}

func (g *Generator) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, instr := range g.instructions {
		n, err := fmt.Fprintln(w, instr.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

func (g *Generator) emit(mnemonic string, operands ...string) {
	g.instructions = append(g.instructions, Instruction{Mnemonic: mnemonic, Operands: operands})
}
