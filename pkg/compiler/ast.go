package compiler

// Expression is a value-producing AST node. Every node has exactly one
// resolved Type by the time parsing returns it.
type Expression interface {
	Type() Type
}

// EmitFunc produces assembly for one binary-operation node. The parser binds
// one per node at construction time; the emission walk invokes it after both
// operands have been emitted.
type EmitFunc func(*BinaryOperation) error

type Literal struct {
	typ Type
	raw string
}

func NewLiteral(typ Type, raw string) *Literal {
	return &Literal{typ: typ, raw: raw}
}

func (l *Literal) Type() Type {
	return l.typ
}

func (l *Literal) Raw() string {
	return l.raw
}

// Variable is a declared name. It doubles as the namespace entry and as the
// resolution target for assignment left-hand sides.
type Variable struct {
	name string
	typ  Type
}

func NewVariable(name string, typ Type) *Variable {
	return &Variable{name: name, typ: typ}
}

func (v *Variable) Name() string {
	return v.name
}

func (v *Variable) Type() Type {
	return v.typ
}

type VariableReference struct {
	name string
	typ  Type
}

func (e *VariableReference) Name() string {
	return e.name
}

func (e *VariableReference) Type() Type {
	return e.typ
}

// BinaryOperation owns its two operand sub-trees exclusively. Its type is
// always the right operand's type, for every operator including assignment.
type BinaryOperation struct {
	Operator Operator
	Left     Expression
	Right    Expression

	typ  Type
	emit EmitFunc
}

func newBinaryOperation(op Operator, left, right Expression, emit EmitFunc) *BinaryOperation {
	return &BinaryOperation{
		Operator: op,
		Left:     left,
		Right:    right,
		typ:      right.Type(),
		emit:     emit,
	}
}

func (e *BinaryOperation) Type() Type {
	return e.typ
}

// Emit invokes the emission callback bound at parse time, passing the node
// itself.
func (e *BinaryOperation) Emit() error {
	return e.emit(e)
}
