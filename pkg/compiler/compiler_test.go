package compiler_test

import (
	"context"
	"strings"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"

	"minicc/pkg/asm"
	"minicc/pkg/compiler"
)

func newCompiler(t *testing.T) (*compiler.Compiler, *asm.Generator) {
	t.Helper()

	gen := asm.NewGenerator()
	c, err := compiler.New(slogt.New(t), compiler.Config{Emitters: gen.Emitters()})
	require.NoError(t, err)

	return c, gen
}

func TestNew_MissingEmitters(t *testing.T) {
	r := require.New(t)

	_, err := compiler.New(slogt.New(t), compiler.Config{})
	r.Error(err)
}

func TestCompile(t *testing.T) {
	r := require.New(t)

	c, _ := newCompiler(t)
	c.AddFile("main.mc", strings.NewReader(`
int x ;
int y = 2 ;
x = y + 3 ;
`))

	prog, err := c.Compile(context.Background())
	r.NoError(err)

	// the bare declaration produces no statement, only a namespace entry
	r.Len(prog.Statements(), 2)

	x, ok := prog.Variable("x")
	r.True(ok)
	r.Equal(compiler.IntType, x.Type())

	_, ok = prog.Variable("z")
	r.False(ok)
}

func TestCompile_DuplicateVariable(t *testing.T) {
	r := require.New(t)

	c, _ := newCompiler(t)
	c.AddFile("main.mc", strings.NewReader(`
int x ;
int x ;
`))

	_, err := c.Compile(context.Background())
	r.ErrorIs(err, compiler.ErrDuplicateVariable)
	r.Contains(err.Error(), "main.mc:3:")
}

func TestCompile_UndeclaredValue(t *testing.T) {
	r := require.New(t)

	c, _ := newCompiler(t)
	c.AddFile("main.mc", strings.NewReader("1 + z ;\n"))

	_, err := c.Compile(context.Background())
	r.ErrorIs(err, compiler.ErrInvalidValue)
	r.Contains(err.Error(), "main.mc:1:")
}

func TestCompile_DeclarationErrors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		source string
	}{
		{"missing name", "int ;"},
		{"invalid symbol", "int 5x ;"},
		{"unexpected token", "int x + 1 ;"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := require.New(t)

			c, _ := newCompiler(t)
			c.AddFile("main.mc", strings.NewReader(tc.source))

			_, err := c.Compile(context.Background())
			r.Error(err)
			r.Contains(err.Error(), "main.mc:1:")
		})
	}
}

func TestCompile_MultipleFilesShareNamespace(t *testing.T) {
	r := require.New(t)

	c, _ := newCompiler(t)
	c.AddFile("a.mc", strings.NewReader("int x = 1 ;\n"))
	c.AddFile("b.mc", strings.NewReader("x = x + 1 ;\n"))

	prog, err := c.Compile(context.Background())
	r.NoError(err)
	r.Len(prog.Statements(), 2)
}

func TestCompile_Canceled(t *testing.T) {
	r := require.New(t)

	c, _ := newCompiler(t)
	c.AddFile("main.mc", strings.NewReader("int x ;\n"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Compile(ctx)
	r.ErrorIs(err, context.Canceled)
}
