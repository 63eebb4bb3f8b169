package compiler

type Program struct {
	root       *Scope
	statements []*Statement
}

func newProgram() *Program {
	return &Program{
		root: newScope(nil, "main"),
	}
}

func (p *Program) Statements() []*Statement {
	return p.statements
}

// Variable looks up a declared variable by name in the program's namespace.
func (p *Program) Variable(name string) (*Variable, bool) {
	return p.root.getVariable(name)
}
