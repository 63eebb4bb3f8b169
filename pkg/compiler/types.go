package compiler

import (
	"minicc/pkg/compiler/kinds"
)

type Kind = kinds.Kind

const (
	KindUnknown = kinds.Unknown
	KindVoid    = kinds.Void
	KindInt     = kinds.Int
	KindString  = kinds.String
)

type Type interface {
	Kind() Kind
	String() string
}

var UnknownType = unknownType{}

type unknownType struct{}

func (unknownType) String() string { return "<unknown>" }
func (unknownType) Kind() Kind     { return KindUnknown }

var VoidType = voidType{}

type voidType struct{}

func (voidType) String() string { return "<void>" }
func (voidType) Kind() Kind     { return KindVoid }

type BasicType struct {
	kind Kind
	name string
}

func (t *BasicType) Kind() Kind     { return t.kind }
func (t *BasicType) String() string { return t.name }

var (
	IntType = &BasicType{kind: KindInt, name: "int"}
	StrType = &BasicType{kind: KindString, name: "str"}
)

var typesByName = map[string]Type{
	"int": IntType,
	"str": StrType,
}

// TypeByName resolves a type keyword in declaration position.
func TypeByName(name string) (Type, bool) {
	t, ok := typesByName[name]
	return t, ok
}

// LiteralType classifies a token by its lexical form: all digits is an int
// literal, double-quoted is a str literal. Anything else is not a literal
// and must resolve as a variable.
func LiteralType(token string) (Type, bool) {
	if isIntLiteral(token) {
		return IntType, true
	}

	if isStrLiteral(token) {
		return StrType, true
	}

	return nil, false
}

func isIntLiteral(token string) bool {
	if len(token) == 0 {
		return false
	}

	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func isStrLiteral(token string) bool {
	return len(token) >= 2 && token[0] == '"' && token[len(token)-1] == '"'
}
