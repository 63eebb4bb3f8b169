package compiler

type Operator string

const (
	OperatorAssignment Operator = "="

	OperatorAddition    Operator = "+"
	OperatorSubtraction Operator = "-"

	OperatorMultiplication Operator = "*"
	OperatorDivision       Operator = "/"
	OperatorModulo         Operator = "%"
)

const (
	parenOpen  = "("
	parenClose = ")"
)

// precedenceGroups is the fixed operator table, lowest precedence first.
// Lower-precedence groups are searched first so they split the expression
// outermost.
var precedenceGroups = [][]Operator{
	{OperatorAssignment},
	{OperatorAddition, OperatorSubtraction},
	{OperatorMultiplication, OperatorDivision, OperatorModulo},
}

func matchOperator(token string, group []Operator) (Operator, bool) {
	for _, op := range group {
		if token == string(op) {
			return op, true
		}
	}

	return "", false
}
