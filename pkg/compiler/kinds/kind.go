package kinds

type Kind int

const (
	Unknown Kind = iota
	Void
	Int
	String
)

func (k Kind) IsValue() bool {
	return k == Int || k == String
}

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case String:
		return "str"
	case Void:
		return "<void>"
	default:
		return "<unknown>"
	}
}
