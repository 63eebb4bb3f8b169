package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScope_PutGet(t *testing.T) {
	r := require.New(t)

	scope := newScope(nil, "unit")

	x := NewVariable("x", IntType)
	r.NoError(scope.put(x))

	got, ok := scope.getVariable("x")
	r.True(ok)
	r.Same(x, got)

	_, ok = scope.getVariable("y")
	r.False(ok)
}

func TestScope_Duplicate(t *testing.T) {
	r := require.New(t)

	scope := newScope(nil, "unit")
	r.NoError(scope.put(NewVariable("x", IntType)))

	err := scope.put(NewVariable("x", StrType))
	r.ErrorIs(err, ErrDuplicateVariable)

	// a different AST node under the same name still collides
	err = scope.put(NewVariable("x", IntType))
	r.ErrorIs(err, ErrDuplicateVariable)
}

func TestScope_ParentLookup(t *testing.T) {
	r := require.New(t)

	parent := newScope(nil, "file")
	r.NoError(parent.put(NewVariable("x", IntType)))

	child := newScope(parent, "block")

	got, ok := child.getVariable("x")
	r.True(ok)
	r.Equal("x", got.Name())
}
